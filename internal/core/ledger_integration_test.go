package core_test

import (
	"errors"
	"testing"

	"truckstock/internal/core"

	"github.com/shopspring/decimal"
)

func TestLedger_AdjustSumsDeltas(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)
	ledger := core.NewStockLedger(pool, core.Policy{AllowNegativeStock: true})

	itemID := mustItem(t, ctx, catalog, "Cups", "24x355 mL")
	loc := mustLocation(t, ctx, catalog, "Reefer")

	deltas := []string{"5", "-2", "3.5", "-1.25", "10"}
	expected := decimal.Zero
	for _, d := range deltas {
		delta := decimal.RequireFromString(d)
		if err := ledger.Adjust(ctx, itemID, loc.ID, delta); err != nil {
			t.Fatalf("Adjust(%s) failed: %v", d, err)
		}
		expected = expected.Add(delta)
	}

	balance, err := ledger.BalanceOf(ctx, itemID, loc.ID)
	if err != nil {
		t.Fatalf("BalanceOf failed: %v", err)
	}
	if !balance.Equal(expected) {
		t.Errorf("Expected balance %s (sum of deltas), got %s", expected, balance)
	}
}

func TestLedger_BalanceOf_UntouchedPairIsZero(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)
	ledger := core.NewStockLedger(pool, core.Policy{AllowNegativeStock: true})

	itemID := mustItem(t, ctx, catalog, "Cups", "24x355 mL")
	loc := mustLocation(t, ctx, catalog, "Truck3")

	balance, err := ledger.BalanceOf(ctx, itemID, loc.ID)
	if err != nil {
		t.Fatalf("BalanceOf failed: %v", err)
	}
	if !balance.IsZero() {
		t.Errorf("Expected 0 for untouched pair, got %s", balance)
	}
}

func TestLedger_Adjust_UnknownReferences(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)
	ledger := core.NewStockLedger(pool, core.Policy{AllowNegativeStock: true})

	itemID := mustItem(t, ctx, catalog, "Cups", "24x355 mL")
	loc := mustLocation(t, ctx, catalog, "Reefer")

	if err := ledger.Adjust(ctx, 9999, loc.ID, decimal.NewFromInt(1)); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown item, got %v", err)
	}
	if err := ledger.Adjust(ctx, itemID, 9999, decimal.NewFromInt(1)); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown location, got %v", err)
	}
}

func TestLedger_Transfer(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)
	ledger := core.NewStockLedger(pool, core.Policy{AllowNegativeStock: true})

	itemID := mustItem(t, ctx, catalog, "Cups", "24x355 mL")
	reefer := mustLocation(t, ctx, catalog, "Reefer")
	tent1 := mustLocation(t, ctx, catalog, "Tent1")

	if err := ledger.Adjust(ctx, itemID, reefer.ID, decimal.NewFromInt(5)); err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	if err := ledger.Transfer(ctx, itemID, reefer.ID, tent1.ID, decimal.NewFromInt(2)); err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}

	fromBal, _ := ledger.BalanceOf(ctx, itemID, reefer.ID)
	toBal, _ := ledger.BalanceOf(ctx, itemID, tent1.ID)
	if !fromBal.Equal(decimal.NewFromInt(3)) {
		t.Errorf("Expected Reefer balance 3, got %s", fromBal)
	}
	if !toBal.Equal(decimal.NewFromInt(2)) {
		t.Errorf("Expected Tent1 balance 2, got %s", toBal)
	}
	// The item's total across locations is conserved.
	if !fromBal.Add(toBal).Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected total 5 across locations, got %s", fromBal.Add(toBal))
	}
}

func TestLedger_Transfer_SameLocationRejected(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)
	ledger := core.NewStockLedger(pool, core.Policy{AllowNegativeStock: true})

	itemID := mustItem(t, ctx, catalog, "Cups", "24x355 mL")
	reefer := mustLocation(t, ctx, catalog, "Reefer")

	if err := ledger.Adjust(ctx, itemID, reefer.ID, decimal.NewFromInt(5)); err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}

	err := ledger.Transfer(ctx, itemID, reefer.ID, reefer.ID, decimal.NewFromInt(2))
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for from == to, got %v", err)
	}

	balance, _ := ledger.BalanceOf(ctx, itemID, reefer.ID)
	if !balance.Equal(decimal.NewFromInt(5)) {
		t.Errorf("Expected balance unchanged at 5, got %s", balance)
	}
}

func TestLedger_Transfer_NonPositiveQtyRejected(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)
	ledger := core.NewStockLedger(pool, core.Policy{AllowNegativeStock: true})

	itemID := mustItem(t, ctx, catalog, "Cups", "24x355 mL")
	reefer := mustLocation(t, ctx, catalog, "Reefer")
	tent1 := mustLocation(t, ctx, catalog, "Tent1")

	for _, qty := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-3)} {
		err := ledger.Transfer(ctx, itemID, reefer.ID, tent1.ID, qty)
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput for qty %s, got %v", qty, err)
		}
	}
}

func TestLedger_NegativeStockAllowedByDefaultPolicy(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)
	ledger := core.NewStockLedger(pool, core.Policy{AllowNegativeStock: true})

	itemID := mustItem(t, ctx, catalog, "Cups", "24x355 mL")
	reefer := mustLocation(t, ctx, catalog, "Reefer")
	tent1 := mustLocation(t, ctx, catalog, "Tent1")

	// Move more than is on hand: source goes negative, silently.
	if err := ledger.Adjust(ctx, itemID, reefer.ID, decimal.NewFromInt(1)); err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	if err := ledger.Transfer(ctx, itemID, reefer.ID, tent1.ID, decimal.NewFromInt(4)); err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}

	balance, _ := ledger.BalanceOf(ctx, itemID, reefer.ID)
	if !balance.Equal(decimal.NewFromInt(-3)) {
		t.Errorf("Expected Reefer balance -3, got %s", balance)
	}
}

func TestLedger_NegativeStockDisallowedRollsBack(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)
	ledger := core.NewStockLedger(pool, core.Policy{AllowNegativeStock: false})

	itemID := mustItem(t, ctx, catalog, "Cups", "24x355 mL")
	reefer := mustLocation(t, ctx, catalog, "Reefer")
	tent1 := mustLocation(t, ctx, catalog, "Tent1")

	if err := ledger.Adjust(ctx, itemID, reefer.ID, decimal.NewFromInt(1)); err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}

	err := ledger.Transfer(ctx, itemID, reefer.ID, tent1.ID, decimal.NewFromInt(4))
	if !errors.Is(err, core.ErrInsufficientStock) {
		t.Fatalf("Expected ErrInsufficientStock, got %v", err)
	}

	// Neither side of the transfer may be visible after the failure.
	fromBal, _ := ledger.BalanceOf(ctx, itemID, reefer.ID)
	toBal, _ := ledger.BalanceOf(ctx, itemID, tent1.ID)
	if !fromBal.Equal(decimal.NewFromInt(1)) {
		t.Errorf("Expected Reefer balance unchanged at 1, got %s", fromBal)
	}
	if !toBal.IsZero() {
		t.Errorf("Expected Tent1 balance unchanged at 0, got %s", toBal)
	}
}

package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Policy carries the ledger's behavioral switches.
type Policy struct {
	// AllowNegativeStock preserves the reference behavior: a transfer or
	// waste larger than the available balance succeeds and leaves a
	// negative qty. When false, such adjustments fail with
	// ErrInsufficientStock and roll back.
	AllowNegativeStock bool
}

// StockLedger owns per-(item, location) quantity balances. Balances are
// mutated only through signed deltas; a pair's balance is always the sum of
// every delta ever applied to it.
type StockLedger struct {
	pool   *pgxpool.Pool
	policy Policy
}

func NewStockLedger(pool *pgxpool.Pool, policy Policy) *StockLedger {
	return &StockLedger{pool: pool, policy: policy}
}

// Adjust applies a signed delta to one (item, location) pair in its own
// transaction, creating the stock row at zero first if the pair was never
// touched.
func (l *StockLedger) Adjust(ctx context.Context, itemID, locationID int, delta decimal.Decimal) error {
	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := l.AdjustInTx(ctx, tx, itemID, locationID, delta); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit adjustment: %w", err)
	}
	return nil
}

// AdjustInTx applies a signed delta within the caller's transaction. Used
// by Transfer and by the waste event so the delta lands atomically with its
// sibling write. Get-or-create and increment are a single statement, so
// concurrent adjusters cannot lose updates.
func (l *StockLedger) AdjustInTx(ctx context.Context, tx pgx.Tx, itemID, locationID int, delta decimal.Decimal) error {
	if err := checkItemExists(ctx, tx, itemID); err != nil {
		return err
	}
	if err := checkLocationExists(ctx, tx, locationID); err != nil {
		return err
	}

	var newQty decimal.Decimal
	err := tx.QueryRow(ctx, `
		INSERT INTO stock (item_id, location_id, qty)
		VALUES ($1, $2, $3)
		ON CONFLICT (item_id, location_id) DO UPDATE SET qty = stock.qty + EXCLUDED.qty
		RETURNING qty
	`, itemID, locationID, delta).Scan(&newQty)
	if err != nil {
		return fmt.Errorf("failed to apply stock adjustment: %w", err)
	}

	if !l.policy.AllowNegativeStock && newQty.IsNegative() {
		return fmt.Errorf("item %d at location %d would go to %s: %w",
			itemID, locationID, newQty.String(), ErrInsufficientStock)
	}
	return nil
}

// BalanceOf returns the current balance for a pair, zero if it was never
// touched.
func (l *StockLedger) BalanceOf(ctx context.Context, itemID, locationID int) (decimal.Decimal, error) {
	var qty decimal.Decimal
	err := l.pool.QueryRow(ctx,
		"SELECT qty FROM stock WHERE item_id = $1 AND location_id = $2",
		itemID, locationID,
	).Scan(&qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return qty, nil
}

// Transfer moves qty of an item between two locations: −qty at the source,
// +qty at the destination, in one transaction. The item's total across all
// locations is unchanged.
func (l *StockLedger) Transfer(ctx context.Context, itemID, fromLocationID, toLocationID int, qty decimal.Decimal) error {
	if !qty.IsPositive() {
		return fmt.Errorf("transfer quantity must be positive, got %s: %w", qty, ErrInvalidInput)
	}
	if fromLocationID == toLocationID {
		return fmt.Errorf("transfer source and destination are the same location: %w", ErrInvalidInput)
	}

	tx, err := l.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := l.AdjustInTx(ctx, tx, itemID, fromLocationID, qty.Neg()); err != nil {
		return err
	}
	if err := l.AdjustInTx(ctx, tx, itemID, toLocationID, qty); err != nil {
		return err
	}

	// Single commit: both sides land together or not at all.
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transfer: %w", err)
	}
	return nil
}

func checkItemExists(ctx context.Context, tx pgx.Tx, itemID int) error {
	var one int
	if err := tx.QueryRow(ctx, "SELECT 1 FROM items WHERE id = $1", itemID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("item %d: %w", itemID, ErrNotFound)
		}
		return fmt.Errorf("failed to check item %d: %w", itemID, err)
	}
	return nil
}

func checkLocationExists(ctx context.Context, tx pgx.Tx, locationID int) error {
	var one int
	if err := tx.QueryRow(ctx, "SELECT 1 FROM locations WHERE id = $1", locationID).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("location %d: %w", locationID, ErrNotFound)
		}
		return fmt.Errorf("failed to check location %d: %w", locationID, err)
	}
	return nil
}

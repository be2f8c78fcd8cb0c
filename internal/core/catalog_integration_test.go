package core_test

import (
	"errors"
	"testing"

	"truckstock/internal/core"
)

func TestInitSchema_Idempotent(t *testing.T) {
	pool, ctx := setupTestDB(t)

	// setupTestDB already ran InitSchema twice; run it once more and count.
	if err := core.InitSchema(ctx, pool); err != nil {
		t.Fatalf("Repeated InitSchema failed: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM locations").Scan(&count); err != nil {
		t.Fatalf("Failed to count locations: %v", err)
	}
	if count != 12 {
		t.Errorf("Expected exactly 12 seeded locations, got %d", count)
	}
}

func TestCatalog_ResolveLocation(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)

	loc, err := catalog.ResolveLocation(ctx, "Reefer")
	if err != nil {
		t.Fatalf("ResolveLocation(Reefer) failed: %v", err)
	}
	if loc.Name != "Reefer" {
		t.Errorf("Expected name Reefer, got %s", loc.Name)
	}

	_, err = catalog.ResolveLocation(ctx, "Basement")
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unseeded location, got %v", err)
	}
}

func TestCatalog_Locations_SeedOrder(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)

	locations, err := catalog.Locations(ctx)
	if err != nil {
		t.Fatalf("Locations failed: %v", err)
	}
	if len(locations) != len(core.SeedLocations) {
		t.Fatalf("Expected %d locations, got %d", len(core.SeedLocations), len(locations))
	}
	for i, want := range core.SeedLocations {
		if locations[i].Name != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, locations[i].Name)
		}
	}
}

func TestCatalog_UpsertItem_Idempotent(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)

	first := mustItem(t, ctx, catalog, "Cups", "24x355 mL")
	second := mustItem(t, ctx, catalog, "Cups", "24x355 mL")
	if first != second {
		t.Errorf("Expected same id for identical natural key, got %d and %d", first, second)
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM items").Scan(&count); err != nil {
		t.Fatalf("Failed to count items: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly 1 item row, got %d", count)
	}
}

func TestCatalog_UpsertItem_TrimsNaturalKey(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)

	plain := mustItem(t, ctx, catalog, "Napkins", "500ct")
	padded := mustItem(t, ctx, catalog, "  Napkins  ", " 500ct ")
	if plain != padded {
		t.Errorf("Expected whitespace-padded key to resolve to id %d, got %d", plain, padded)
	}

	item, err := catalog.ItemByID(ctx, plain)
	if err != nil {
		t.Fatalf("ItemByID failed: %v", err)
	}
	if item.Description != "Napkins" || item.SizePack != "500ct" {
		t.Errorf("Expected stored key trimmed, got %q / %q", item.Description, item.SizePack)
	}
}

func TestCatalog_UpsertItem_EmptyDescription(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)

	_, err := catalog.UpsertItem(ctx, "   ", "500ct")
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for blank description, got %v", err)
	}
}

func TestCatalog_ItemByID_NotFound(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)

	_, err := catalog.ItemByID(ctx, 9999)
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown item id, got %v", err)
	}
}

func TestCatalog_Items_OrderedByNaturalKey(t *testing.T) {
	pool, ctx := setupTestDB(t)
	catalog := core.NewCatalogService(pool)

	mustItem(t, ctx, catalog, "Napkins", "500ct")
	mustItem(t, ctx, catalog, "Cups", "24x355 mL")
	mustItem(t, ctx, catalog, "Cups", "12x500 mL")

	items, err := catalog.Items(ctx)
	if err != nil {
		t.Fatalf("Items failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}
	want := []core.ItemKey{
		{Description: "Cups", SizePack: "12x500 mL"},
		{Description: "Cups", SizePack: "24x355 mL"},
		{Description: "Napkins", SizePack: "500ct"},
	}
	for i, k := range want {
		if items[i].Key() != k {
			t.Errorf("Position %d: expected %+v, got %+v", i, k, items[i].Key())
		}
	}
}

package core_test

import (
	"context"
	"os"
	"testing"

	"truckstock/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

// setupTestDB connects to the dedicated test database, resets all tables,
// and reseeds the fixed location set.
func setupTestDB(t *testing.T) (*pgxpool.Pool, context.Context) {
	t.Helper()
	_ = godotenv.Load("../../.env")

	// Use a dedicated TEST database to avoid wiping the live app database.
	// Set TEST_DATABASE_URL in your .env or environment to run integration tests.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set — skipping integration test to protect live database")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := core.InitSchema(ctx, pool); err != nil {
		t.Fatalf("Failed to initialize schema: %v", err)
	}
	_, err = pool.Exec(ctx, "TRUNCATE TABLE waste, stock, items, locations RESTART IDENTITY CASCADE")
	if err != nil {
		t.Fatalf("Failed to reset test database: %v", err)
	}
	if err := core.InitSchema(ctx, pool); err != nil {
		t.Fatalf("Failed to reseed locations: %v", err)
	}

	return pool, ctx
}

// mustLocation resolves a seeded location or fails the test.
func mustLocation(t *testing.T, ctx context.Context, catalog core.CatalogService, name string) *core.Location {
	t.Helper()
	loc, err := catalog.ResolveLocation(ctx, name)
	if err != nil {
		t.Fatalf("ResolveLocation(%s) failed: %v", name, err)
	}
	return loc
}

// mustItem creates or resolves an item by natural key or fails the test.
func mustItem(t *testing.T, ctx context.Context, catalog core.CatalogService, description, sizePack string) int {
	t.Helper()
	id, err := catalog.UpsertItem(ctx, description, sizePack)
	if err != nil {
		t.Fatalf("UpsertItem(%s, %s) failed: %v", description, sizePack, err)
	}
	return id
}

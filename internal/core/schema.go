package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedLocations is the fixed location set created at initialization:
// four storage locations and eight trucks. Operations only ever reference
// these names; no path creates further locations.
var SeedLocations = []string{
	"Reefer", "Tent1", "Tent2", "StockTruck",
	"Truck1", "Truck2", "Truck3", "Truck4",
	"Truck5", "Truck6", "Truck7", "Truck8",
}

const schemaDDL = `
CREATE TABLE IF NOT EXISTS locations (
    id   SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS items (
    id          SERIAL PRIMARY KEY,
    description TEXT NOT NULL,
    size_pack   TEXT NOT NULL DEFAULT '',
    UNIQUE (description, size_pack)
);

CREATE TABLE IF NOT EXISTS stock (
    item_id     INT NOT NULL REFERENCES items(id),
    location_id INT NOT NULL REFERENCES locations(id),
    qty         NUMERIC NOT NULL DEFAULT 0,
    PRIMARY KEY (item_id, location_id)
);

CREATE TABLE IF NOT EXISTS waste (
    id          SERIAL PRIMARY KEY,
    waste_date  DATE NOT NULL,
    location_id INT NOT NULL REFERENCES locations(id),
    item_id     INT NOT NULL REFERENCES items(id),
    qty         NUMERIC NOT NULL,
    reason      TEXT NOT NULL DEFAULT ''
);
`

// InitSchema creates the tables and seeds the fixed location set. It is
// idempotent: every entry point runs it at startup, and re-running it never
// duplicates locations or errors on existing tables.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	for _, name := range SeedLocations {
		if _, err := tx.Exec(ctx,
			"INSERT INTO locations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING",
			name,
		); err != nil {
			return fmt.Errorf("failed to seed location %s: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit schema init: %w", err)
	}
	return nil
}

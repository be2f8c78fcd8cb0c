package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogService owns the identity of items and locations. Locations are
// the fixed seeded set; items are created lazily by natural key.
type CatalogService interface {
	// ResolveLocation looks up a seeded location by its unique name.
	ResolveLocation(ctx context.Context, name string) (*Location, error)
	// Locations returns all locations in seed order (ascending id).
	Locations(ctx context.Context) ([]Location, error)
	// UpsertItem trims both fields and returns the id of the existing item
	// with that natural key, creating it first if absent. Calling it
	// repeatedly with the same input never produces a second row.
	UpsertItem(ctx context.Context, description, sizePack string) (int, error)
	// Items returns all items ordered by natural key.
	Items(ctx context.Context) ([]Item, error)
	// ItemByID fetches a single item.
	ItemByID(ctx context.Context, id int) (*Item, error)
}

type catalogService struct {
	pool *pgxpool.Pool
}

func NewCatalogService(pool *pgxpool.Pool) CatalogService {
	return &catalogService{pool: pool}
}

func (s *catalogService) ResolveLocation(ctx context.Context, name string) (*Location, error) {
	var loc Location
	err := s.pool.QueryRow(ctx,
		"SELECT id, name FROM locations WHERE name = $1", strings.TrimSpace(name),
	).Scan(&loc.ID, &loc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("location %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to resolve location: %w", err)
	}
	return &loc, nil
}

func (s *catalogService) Locations(ctx context.Context) ([]Location, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name FROM locations ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []Location
	for rows.Next() {
		var loc Location
		if err := rows.Scan(&loc.ID, &loc.Name); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

func (s *catalogService) UpsertItem(ctx context.Context, description, sizePack string) (int, error) {
	description = strings.TrimSpace(description)
	sizePack = strings.TrimSpace(sizePack)
	if description == "" {
		return 0, fmt.Errorf("item description must not be empty: %w", ErrInvalidInput)
	}

	// The no-op DO UPDATE makes RETURNING yield the id on the conflict
	// path too, so one statement covers both create and lookup.
	var id int
	err := s.pool.QueryRow(ctx, `
		INSERT INTO items (description, size_pack)
		VALUES ($1, $2)
		ON CONFLICT (description, size_pack) DO UPDATE SET description = EXCLUDED.description
		RETURNING id
	`, description, sizePack).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert item: %w", err)
	}
	return id, nil
}

func (s *catalogService) Items(ctx context.Context) ([]Item, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, description, size_pack FROM items ORDER BY description, size_pack",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Description, &it.SizePack); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *catalogService) ItemByID(ctx context.Context, id int) (*Item, error) {
	var it Item
	err := s.pool.QueryRow(ctx,
		"SELECT id, description, size_pack FROM items WHERE id = $1", id,
	).Scan(&it.ID, &it.Description, &it.SizePack)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("item %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch item %d: %w", id, err)
	}
	return &it, nil
}

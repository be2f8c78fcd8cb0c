package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// WasteLogService is the append-only record of waste events. Recording a
// waste event also deducts the quantity from stock; the two writes always
// land in the same transaction.
type WasteLogService interface {
	// Record appends a waste event and applies the matching −qty stock
	// adjustment atomically. Returns the new record's id.
	Record(ctx context.Context, wasteDate string, locationID, itemID int,
		qty decimal.Decimal, reason string, ledger *StockLedger) (int, error)
	// TotalsByItem sums waste quantities per item natural key. Items with
	// no waste events are absent from the map.
	TotalsByItem(ctx context.Context) (map[ItemKey]decimal.Decimal, error)
	// Records returns the newest waste events first, at most limit of them
	// (limit <= 0 means no cap).
	Records(ctx context.Context, limit int) ([]WasteRecord, error)
}

type wasteLogService struct {
	pool *pgxpool.Pool
}

func NewWasteLogService(pool *pgxpool.Pool) WasteLogService {
	return &wasteLogService{pool: pool}
}

func (s *wasteLogService) Record(ctx context.Context, wasteDate string, locationID, itemID int,
	qty decimal.Decimal, reason string, ledger *StockLedger) (int, error) {

	if !qty.IsPositive() {
		return 0, fmt.Errorf("waste quantity must be positive, got %s: %w", qty, ErrInvalidInput)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// The ledger validates item and location existence before touching
	// stock, so a bad reference aborts before the waste row is visible.
	if err := ledger.AdjustInTx(ctx, tx, itemID, locationID, qty.Neg()); err != nil {
		return 0, err
	}

	var recordID int
	err = tx.QueryRow(ctx, `
		INSERT INTO waste (waste_date, location_id, item_id, qty, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, wasteDate, locationID, itemID, qty, strings.TrimSpace(reason)).Scan(&recordID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert waste record: %w", err)
	}

	// Single commit: waste record + stock deduction land together or not at all.
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit waste event: %w", err)
	}
	return recordID, nil
}

func (s *wasteLogService) TotalsByItem(ctx context.Context) (map[ItemKey]decimal.Decimal, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT i.description, i.size_pack, SUM(w.qty)
		FROM waste w
		JOIN items i ON i.id = w.item_id
		GROUP BY i.description, i.size_pack
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query waste totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[ItemKey]decimal.Decimal)
	for rows.Next() {
		var key ItemKey
		var total decimal.Decimal
		if err := rows.Scan(&key.Description, &key.SizePack, &total); err != nil {
			return nil, fmt.Errorf("failed to scan waste total: %w", err)
		}
		totals[key] = total
	}
	return totals, rows.Err()
}

func (s *wasteLogService) Records(ctx context.Context, limit int) ([]WasteRecord, error) {
	q := `
		SELECT w.id, w.waste_date::text, w.location_id, l.name,
		       w.item_id, i.description, i.size_pack, w.qty, w.reason
		FROM waste w
		JOIN locations l ON l.id = w.location_id
		JOIN items i     ON i.id = w.item_id
		ORDER BY w.id DESC`
	args := []any{}
	if limit > 0 {
		args = append(args, limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query waste records: %w", err)
	}
	defer rows.Close()

	var records []WasteRecord
	for rows.Next() {
		var r WasteRecord
		if err := rows.Scan(
			&r.ID, &r.WasteDate, &r.LocationID, &r.LocationName,
			&r.ItemID, &r.Item.Description, &r.Item.SizePack, &r.Qty, &r.Reason,
		); err != nil {
			return nil, fmt.Errorf("failed to scan waste record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

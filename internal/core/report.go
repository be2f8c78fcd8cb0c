package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ReportService derives the on-hand summary from catalog, stock, and waste
// state. It is read-only.
type ReportService interface {
	// BuildSummary produces the dense item × location matrix: every known
	// item appears with a quantity for every location (zero when the pair
	// was never touched), a cumulative waste column, and
	// TotalOnHand = sum(locations) − waste. Rows are ordered by item
	// natural key, columns by location seed order.
	BuildSummary(ctx context.Context) (*Summary, error)
}

type reportService struct {
	pool *pgxpool.Pool
}

func NewReportService(pool *pgxpool.Pool) ReportService {
	return &reportService{pool: pool}
}

func (s *reportService) BuildSummary(ctx context.Context) (*Summary, error) {
	locations, locIndex, err := s.locationAxis(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Locations: locations}

	// Cross product of items × locations keeps untouched pairs in the
	// result as explicit zeros; waste totals ride along per item.
	rows, err := s.pool.Query(ctx, `
		SELECT i.id, i.description, i.size_pack, l.id, COALESCE(s.qty, 0),
		       COALESCE(w.total, 0)
		FROM items i
		CROSS JOIN locations l
		LEFT JOIN stock s ON s.item_id = i.id AND s.location_id = l.id
		LEFT JOIN (
		    SELECT item_id, SUM(qty) AS total
		    FROM waste
		    GROUP BY item_id
		) w ON w.item_id = i.id
		ORDER BY i.description, i.size_pack, l.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query on-hand matrix: %w", err)
	}
	defer rows.Close()

	var current *SummaryRow
	for rows.Next() {
		var itemID, locationID int
		var description, sizePack string
		var qty, wasteTotal decimal.Decimal
		if err := rows.Scan(&itemID, &description, &sizePack, &locationID, &qty, &wasteTotal); err != nil {
			return nil, fmt.Errorf("failed to scan matrix cell: %w", err)
		}

		if current == nil || current.ItemID != itemID {
			summary.Rows = append(summary.Rows, SummaryRow{
				ItemID:      itemID,
				Description: description,
				SizePack:    sizePack,
				Quantities:  make([]decimal.Decimal, len(locations)),
				WasteQty:    wasteTotal,
			})
			current = &summary.Rows[len(summary.Rows)-1]
		}
		current.Quantities[locIndex[locationID]] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("matrix row iteration error: %w", err)
	}

	for i := range summary.Rows {
		row := &summary.Rows[i]
		total := decimal.Zero
		for _, q := range row.Quantities {
			total = total.Add(q)
		}
		row.TotalOnHand = total.Sub(row.WasteQty)
	}

	return summary, nil
}

// locationAxis returns the ordered location names plus an id → column map.
func (s *reportService) locationAxis(ctx context.Context) ([]string, map[int]int, error) {
	rows, err := s.pool.Query(ctx, "SELECT id, name FROM locations ORDER BY id")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var names []string
	index := make(map[int]int)
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, nil, fmt.Errorf("failed to scan location: %w", err)
		}
		index[id] = len(names)
		names = append(names, name)
	}
	return names, index, rows.Err()
}

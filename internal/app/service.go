package app

import (
	"context"
	"io"
)

// ApplicationService is the single interface all UI adapters (CLI, Web)
// call. It decouples presentation from business logic. Implementations must
// contain no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// ReceiveStock resolves or creates the item by natural key and adds
	// the quantity at the named location.
	ReceiveStock(ctx context.Context, req ReceiveRequest) (*ReceiveResult, error)

	// MoveStock transfers a quantity of an item between two named
	// locations as one atomic operation.
	MoveStock(ctx context.Context, req MoveRequest) (*MoveResult, error)

	// RecordWaste appends a waste event and deducts the quantity from
	// stock at the named location. An empty WasteDate defaults to today.
	RecordWaste(ctx context.Context, req WasteRequest) (*WasteResult, error)

	// GetSummary returns the dense on-hand matrix with waste and
	// total-on-hand columns.
	GetSummary(ctx context.Context) (*SummaryResult, error)

	// ExportSummary writes the current summary to w in the given format
	// ("xlsx" or "csv").
	ExportSummary(ctx context.Context, w io.Writer, format string) error

	// ListLocations returns the seeded locations in seed order.
	ListLocations(ctx context.Context) (*LocationListResult, error)

	// ListItems returns all known items ordered by natural key. Adapters
	// use an empty result to disable move/waste prompts.
	ListItems(ctx context.Context) (*ItemListResult, error)

	// ListWasteRecords returns the newest waste events first.
	ListWasteRecords(ctx context.Context, limit int) (*WasteListResult, error)
}

package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"truckstock/internal/core"
	"truckstock/internal/export"
)

type appService struct {
	catalog  core.CatalogService
	ledger   *core.StockLedger
	wasteLog core.WasteLogService
	reports  core.ReportService
}

// NewAppService constructs an appService that satisfies ApplicationService.
func NewAppService(
	catalog core.CatalogService,
	ledger *core.StockLedger,
	wasteLog core.WasteLogService,
	reports core.ReportService,
) ApplicationService {
	return &appService{
		catalog:  catalog,
		ledger:   ledger,
		wasteLog: wasteLog,
		reports:  reports,
	}
}

// ReceiveStock resolves or creates the item, then adds the quantity at the
// named location.
func (s *appService) ReceiveStock(ctx context.Context, req ReceiveRequest) (*ReceiveResult, error) {
	if !req.Qty.IsPositive() {
		return nil, fmt.Errorf("receive quantity must be positive, got %s: %w", req.Qty, core.ErrInvalidInput)
	}

	loc, err := s.catalog.ResolveLocation(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	itemID, err := s.catalog.UpsertItem(ctx, req.Description, req.SizePack)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Adjust(ctx, itemID, loc.ID, req.Qty); err != nil {
		return nil, err
	}

	item, err := s.catalog.ItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.BalanceOf(ctx, itemID, loc.ID)
	if err != nil {
		return nil, err
	}

	return &ReceiveResult{
		ItemID:     itemID,
		Item:       item.Key(),
		Location:   loc.Name,
		NewBalance: balance.String(),
		Confirmation: fmt.Sprintf("Received %s x %s (%s) into %s — now %s on hand there",
			req.Qty.String(), item.Description, item.SizePack, loc.Name, balance.String()),
	}, nil
}

// MoveStock transfers a quantity of an item between two named locations.
func (s *appService) MoveStock(ctx context.Context, req MoveRequest) (*MoveResult, error) {
	item, err := s.catalog.ItemByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	from, err := s.catalog.ResolveLocation(ctx, req.From)
	if err != nil {
		return nil, err
	}
	to, err := s.catalog.ResolveLocation(ctx, req.To)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Transfer(ctx, item.ID, from.ID, to.ID, req.Qty); err != nil {
		return nil, err
	}

	fromBal, err := s.ledger.BalanceOf(ctx, item.ID, from.ID)
	if err != nil {
		return nil, err
	}
	toBal, err := s.ledger.BalanceOf(ctx, item.ID, to.ID)
	if err != nil {
		return nil, err
	}

	return &MoveResult{
		ItemID:      item.ID,
		Item:        item.Key(),
		From:        from.Name,
		To:          to.Name,
		FromBalance: fromBal.String(),
		ToBalance:   toBal.String(),
		Confirmation: fmt.Sprintf("Moved %s x %s (%s) from %s to %s — %s: %s, %s: %s",
			req.Qty.String(), item.Description, item.SizePack,
			from.Name, to.Name, from.Name, fromBal.String(), to.Name, toBal.String()),
	}, nil
}

// RecordWaste appends a waste event and deducts the quantity from stock.
func (s *appService) RecordWaste(ctx context.Context, req WasteRequest) (*WasteResult, error) {
	item, err := s.catalog.ItemByID(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}
	loc, err := s.catalog.ResolveLocation(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	wasteDate := req.WasteDate
	if wasteDate == "" {
		wasteDate = time.Now().Format("2006-01-02")
	}

	recordID, err := s.wasteLog.Record(ctx, wasteDate, loc.ID, item.ID, req.Qty, req.Reason, s.ledger)
	if err != nil {
		return nil, err
	}

	balance, err := s.ledger.BalanceOf(ctx, item.ID, loc.ID)
	if err != nil {
		return nil, err
	}

	return &WasteResult{
		RecordID:   recordID,
		Item:       item.Key(),
		Location:   loc.Name,
		NewBalance: balance.String(),
		Confirmation: fmt.Sprintf("Logged waste of %s x %s (%s) at %s — now %s on hand there",
			req.Qty.String(), item.Description, item.SizePack, loc.Name, balance.String()),
	}, nil
}

// GetSummary returns the dense on-hand matrix.
func (s *appService) GetSummary(ctx context.Context) (*SummaryResult, error) {
	summary, err := s.reports.BuildSummary(ctx)
	if err != nil {
		return nil, err
	}
	return &SummaryResult{Summary: summary}, nil
}

// ExportSummary writes the current summary to w as xlsx or csv.
func (s *appService) ExportSummary(ctx context.Context, w io.Writer, format string) error {
	summary, err := s.reports.BuildSummary(ctx)
	if err != nil {
		return err
	}

	switch format {
	case "xlsx", "":
		return export.WriteXLSX(w, summary)
	case "csv":
		return export.WriteCSV(w, summary)
	default:
		return fmt.Errorf("unsupported export format %q: %w", format, core.ErrInvalidInput)
	}
}

// ListLocations returns the seeded locations in seed order.
func (s *appService) ListLocations(ctx context.Context) (*LocationListResult, error) {
	locations, err := s.catalog.Locations(ctx)
	if err != nil {
		return nil, err
	}
	return &LocationListResult{Locations: locations}, nil
}

// ListItems returns all known items ordered by natural key.
func (s *appService) ListItems(ctx context.Context) (*ItemListResult, error) {
	items, err := s.catalog.Items(ctx)
	if err != nil {
		return nil, err
	}
	return &ItemListResult{Items: items}, nil
}

// ListWasteRecords returns the newest waste events first.
func (s *appService) ListWasteRecords(ctx context.Context, limit int) (*WasteListResult, error) {
	records, err := s.wasteLog.Records(ctx, limit)
	if err != nil {
		return nil, err
	}
	return &WasteListResult{Records: records}, nil
}

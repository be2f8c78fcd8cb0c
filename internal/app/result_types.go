package app

import "truckstock/internal/core"

// ReceiveResult is returned by ReceiveStock. Confirmation is a
// human-readable line describing what changed, suitable for direct display.
type ReceiveResult struct {
	ItemID       int
	Item         core.ItemKey
	Location     string
	NewBalance   string
	Confirmation string
}

// MoveResult is returned by MoveStock.
type MoveResult struct {
	ItemID       int
	Item         core.ItemKey
	From         string
	To           string
	FromBalance  string
	ToBalance    string
	Confirmation string
}

// WasteResult is returned by RecordWaste.
type WasteResult struct {
	RecordID     int
	Item         core.ItemKey
	Location     string
	NewBalance   string
	Confirmation string
}

// SummaryResult is returned by GetSummary.
type SummaryResult struct {
	Summary *core.Summary
}

// LocationListResult is returned by ListLocations.
type LocationListResult struct {
	Locations []core.Location
}

// ItemListResult is returned by ListItems.
type ItemListResult struct {
	Items []core.Item
}

// WasteListResult is returned by ListWasteRecords.
type WasteListResult struct {
	Records []core.WasteRecord
}

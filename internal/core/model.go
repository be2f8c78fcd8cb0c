package core

import (
	"github.com/shopspring/decimal"
)

// Location is a fixed physical storage or vehicle slot where stock may
// reside. The full set is seeded at initialization and never grows during
// normal operation.
type Location struct {
	ID   int
	Name string
}

// Item is a distinct product identified by its (Description, SizePack)
// natural key. Both fields are stored trimmed. Items are created lazily on
// first receipt and never updated or deleted.
type Item struct {
	ID          int
	Description string
	SizePack    string
}

// ItemKey is the natural key of an Item, used to index aggregates that are
// keyed by product rather than by row id.
type ItemKey struct {
	Description string
	SizePack    string
}

// Key returns the item's natural key.
func (i Item) Key() ItemKey {
	return ItemKey{Description: i.Description, SizePack: i.SizePack}
}

// WasteRecord is one appended waste event. Every record has a matching
// negative stock adjustment applied in the same transaction.
type WasteRecord struct {
	ID           int
	WasteDate    string // YYYY-MM-DD
	LocationID   int
	LocationName string
	ItemID       int
	Item         ItemKey
	Qty          decimal.Decimal
	Reason       string
}

// Summary is the dense item × location on-hand report. Locations is the
// ordered column axis; every row's Quantities slice is aligned with it.
type Summary struct {
	Locations []string
	Rows      []SummaryRow
}

// SummaryRow is one item's line in the summary: a quantity per location,
// the cumulative waste, and TotalOnHand = sum(Quantities) − WasteQty.
type SummaryRow struct {
	ItemID      int
	Description string
	SizePack    string
	Quantities  []decimal.Decimal
	WasteQty    decimal.Decimal
	TotalOnHand decimal.Decimal
}

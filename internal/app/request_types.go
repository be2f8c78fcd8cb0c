package app

import "github.com/shopspring/decimal"

// ReceiveRequest is the input for a goods receipt into storage.
type ReceiveRequest struct {
	Description string
	SizePack    string
	Location    string // seeded location name
	Qty         decimal.Decimal
}

// MoveRequest is the input for a transfer between two locations.
type MoveRequest struct {
	ItemID int
	From   string // seeded location name
	To     string // seeded location name
	Qty    decimal.Decimal
}

// WasteRequest is the input for a waste event.
type WasteRequest struct {
	ItemID    int
	Location  string // seeded location name
	Qty       decimal.Decimal
	Reason    string
	WasteDate string // YYYY-MM-DD; empty means today
}

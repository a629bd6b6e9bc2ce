package domain

import (
	"github.com/shopspring/decimal"
)

// CartEntry is the unresolved (item id, quantity) pair supplied at checkout.
// Quantity zero means "unspecified" and resolves to 1.
type CartEntry struct {
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

// CartLine is a CartEntry resolved against the catalog. UnitPrice is a
// snapshot of the catalog price at resolve time.
type CartLine struct {
	Item      Item            `json:"item"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

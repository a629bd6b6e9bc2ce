package domain

import (
	"github.com/shopspring/decimal"
)

// Item is owned by the catalog; the checkout flow only ever reads it.
type Item struct {
	ID     int             `json:"id" validate:"required"`
	Name   string          `json:"name" validate:"required"`
	Price  decimal.Decimal `json:"price"`
	IsSold bool            `json:"is_sold"`
}

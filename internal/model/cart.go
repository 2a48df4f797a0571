package model

import "github.com/shopspring/decimal"

// CartLine is one pending quantity-at-price line awaiting checkout.
// UnitPrice is snapshotted at add-time; later menu edits do not touch it.
type CartLine struct {
	ItemID       string          `json:"itemId" validate:"required"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
	LineDiscount decimal.Decimal `json:"lineDiscount"`
}

// Recalculate refreshes LineTotal after a quantity change.
func (l *CartLine) Recalculate() {
	l.LineTotal = l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

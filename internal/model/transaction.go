package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionItem is a snapshot of a sold cart line. It copies name and
// price so later menu edits or deletes never rewrite history.
type TransactionItem struct {
	MenuID       string          `json:"menuId,omitempty"`
	Name         string          `json:"name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	LineTotal    decimal.Decimal `json:"lineTotal"`
	LineDiscount decimal.Decimal `json:"lineDiscount"`
}

// Transaction is an immutable record of a completed sale. Created only by
// the checkout engine; never mutated or deleted afterwards.
type Transaction struct {
	ID           string            `json:"id"`
	Date         time.Time         `json:"date"`
	Items        []TransactionItem `json:"items"`
	Subtotal     decimal.Decimal   `json:"subtotal"`
	Discount     decimal.Decimal   `json:"discount"`
	FinalTotal   decimal.Decimal   `json:"finalTotal"`
	UserID       string            `json:"userId,omitempty"`
	UserName     string            `json:"userName"`
	UserUsername string            `json:"userUsername"`
}

// TotalQuantity sums the units sold across all lines.
func (t *Transaction) TotalQuantity() int {
	total := 0
	for _, item := range t.Items {
		total += item.Quantity
	}
	return total
}

package model

import "time"

type AdjustmentKind string

const (
	AdjustmentSale    AdjustmentKind = "sale"
	AdjustmentReceipt AdjustmentKind = "receipt"
	AdjustmentManual  AdjustmentKind = "adjustment"
)

// StockAdjustmentEntry is one append-only audit row of a stock change.
// QuantityDelta records the requested delta, not the clamped effect:
// applying all deltas for a menuId in order (with the floor at zero)
// reproduces the item's current stock.
type StockAdjustmentEntry struct {
	ID            string         `json:"id"`
	MenuID        string         `json:"menuId"`
	ItemName      string         `json:"itemName"`
	QuantityDelta int            `json:"quantityDelta"`
	Reason        string         `json:"reason"`
	Kind          AdjustmentKind `json:"kind"`
	UserID        string         `json:"userId,omitempty"`
	UserName      string         `json:"userName"`
	UserUsername  string         `json:"userUsername"`
	Date          time.Time      `json:"date"`
}

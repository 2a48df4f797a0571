package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is one row of the simple expense log. Independent of inventory.
type Expense struct {
	ID           string          `json:"id"`
	PersonName   string          `json:"personName" validate:"required"`
	Purpose      string          `json:"purpose" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
	UserID       string          `json:"userId,omitempty"`
	UserName     string          `json:"userName"`
	UserUsername string          `json:"userUsername"`
	Date         time.Time       `json:"date"`
}

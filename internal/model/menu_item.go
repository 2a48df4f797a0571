package model

import (
	"github.com/shopspring/decimal"
)

const DefaultItemImage = "https://via.placeholder.com/200x150?text=Item"

// MenuItem is a sellable catalog entry. MenuID is the human-facing short
// code (MENU001, MENU002, ...), generated by the catalog when absent.
type MenuItem struct {
	ID           string          `json:"id"`
	MenuID       string          `json:"menuId"`
	Name         string          `json:"name" validate:"required"`
	Image        string          `json:"image"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
	Stock        int             `json:"stock"`
}

// MenuItemInput carries caller-provided fields for creating an item.
// MenuID is optional; price and stock default to zero when omitted.
type MenuItemInput struct {
	MenuID       string          `json:"menuId"`
	Name         string          `json:"name" validate:"required"`
	Image        string          `json:"image"`
	DefaultPrice decimal.Decimal `json:"defaultPrice"`
	Stock        int             `json:"stock"`
}

// MenuItemPatch is a partial update. Nil fields keep the stored value.
type MenuItemPatch struct {
	MenuID       *string          `json:"menuId"`
	Name         *string          `json:"name"`
	Image        *string          `json:"image"`
	DefaultPrice *decimal.Decimal `json:"defaultPrice"`
	Stock        *int             `json:"stock"`
}

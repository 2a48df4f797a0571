package service

import (
	"errors"
	"fmt"

	"go-pos-billing/internal/model"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameExists     = errors.New("username already exists")
)

// NotFoundError reports a lookup that resolved nothing. No mutation has
// happened when it is returned.
type NotFoundError struct {
	Resource   string
	Identifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q was not found", e.Resource, e.Identifier)
}

// InsufficientStockError aborts a checkout before any stock is touched.
type InsufficientStockError struct {
	ItemName  string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: %d available", e.ItemName, e.Available)
}

// normalizeActor fills placeholder identity when no auth context was
// supplied. Absence of an actor is never an error.
func normalizeActor(actor model.Actor) model.Actor {
	if actor.Name == "" {
		actor.Name = "Unknown"
	}
	if actor.Username == "" {
		actor.Username = "unknown"
	}
	return actor
}

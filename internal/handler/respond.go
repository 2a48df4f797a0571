package handler

import (
	"errors"

	"go-pos-billing/internal/service"
)

// statusForError maps service failures onto HTTP statuses: not-found 404,
// duplicate-trigger and conflict conditions 409, everything else a plain
// validation 400.
func statusForError(err error) int {
	var notFound *service.NotFoundError
	var insufficient *service.InsufficientStockError

	switch {
	case errors.As(err, &notFound):
		return 404
	case errors.As(err, &insufficient):
		return 409
	case errors.Is(err, service.ErrCheckoutInProgress):
		return 409
	case errors.Is(err, service.ErrUsernameExists):
		return 409
	case errors.Is(err, service.ErrInvalidCredentials):
		return 401
	default:
		return 400
	}
}

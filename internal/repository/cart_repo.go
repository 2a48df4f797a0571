package repository

import (
	"go-pos-billing/internal/model"
	"go-pos-billing/internal/store"
)

// CartRepository is local-only: the cart never leaves the terminal.
type CartRepository interface {
	Lines() ([]model.CartLine, error)
	Save(lines []model.CartLine) error
	Clear() error
}

type cartRepo struct {
	local store.LocalStore
}

func NewCartRepo(local store.LocalStore) CartRepository {
	return &cartRepo{local: local}
}

func (r *cartRepo) Lines() ([]model.CartLine, error) {
	var lines []model.CartLine
	if _, err := r.local.Get(store.KeyCart, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *cartRepo) Save(lines []model.CartLine) error {
	return r.local.Put(store.KeyCart, lines)
}

func (r *cartRepo) Clear() error {
	return r.local.Put(store.KeyCart, []model.CartLine{})
}

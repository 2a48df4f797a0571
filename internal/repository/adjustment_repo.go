package repository

import (
	"context"
	"sort"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/store"

	"github.com/sirupsen/logrus"
)

type AdjustmentRepository interface {
	Append(ctx context.Context, entry model.StockAdjustmentEntry) (store.SyncResult, error)
	All(ctx context.Context) ([]model.StockAdjustmentEntry, error)
	AllLocal() ([]model.StockAdjustmentEntry, error)
}

type adjustmentRepo struct {
	entries *store.Collection[model.StockAdjustmentEntry]
}

func NewAdjustmentRepo(local store.LocalStore, remote store.RemoteStore, log *logrus.Logger) AdjustmentRepository {
	return &adjustmentRepo{
		entries: store.NewCollection(store.KeyStockAdjustments, local, remote,
			func(e model.StockAdjustmentEntry) string { return e.ID }, log),
	}
}

func (r *adjustmentRepo) Append(ctx context.Context, entry model.StockAdjustmentEntry) (store.SyncResult, error) {
	return r.entries.Append(ctx, entry)
}

// All returns audit entries remote-preferred, newest first.
func (r *adjustmentRepo) All(ctx context.Context) ([]model.StockAdjustmentEntry, error) {
	entries, err := r.entries.Load(ctx)
	if err != nil {
		return nil, err
	}
	sortAdjustmentsDesc(entries)
	return entries, nil
}

func (r *adjustmentRepo) AllLocal() ([]model.StockAdjustmentEntry, error) {
	entries, err := r.entries.LoadLocal()
	if err != nil {
		return nil, err
	}
	sortAdjustmentsDesc(entries)
	return entries, nil
}

func sortAdjustmentsDesc(entries []model.StockAdjustmentEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

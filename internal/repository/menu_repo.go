package repository

import (
	"context"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/store"

	"github.com/sirupsen/logrus"
)

type MenuRepository interface {
	All(ctx context.Context) ([]model.MenuItem, error)
	AllLocal() ([]model.MenuItem, error)
	FindByID(id string) (*model.MenuItem, error)
	FindByIdentifier(identifier string) (*model.MenuItem, error)
	Save(ctx context.Context, item model.MenuItem) (store.SyncResult, error)
	ReplaceAll(ctx context.Context, items []model.MenuItem) (store.SyncResult, error)
	Remove(ctx context.Context, id string) (store.SyncResult, error)
}

type menuRepo struct {
	items *store.Collection[model.MenuItem]
}

func NewMenuRepo(local store.LocalStore, remote store.RemoteStore, log *logrus.Logger) MenuRepository {
	return &menuRepo{
		items: store.NewCollection(store.KeyMenuItems, local, remote,
			func(m model.MenuItem) string { return m.ID }, log),
	}
}

func (r *menuRepo) All(ctx context.Context) ([]model.MenuItem, error) {
	return r.items.Load(ctx)
}

func (r *menuRepo) AllLocal() ([]model.MenuItem, error) {
	return r.items.LoadLocal()
}

func (r *menuRepo) FindByID(id string) (*model.MenuItem, error) {
	items, err := r.items.LoadLocal()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// FindByIdentifier resolves by the external menuId first, falling back to
// the internal id. Returns nil when nothing matches.
func (r *menuRepo) FindByIdentifier(identifier string) (*model.MenuItem, error) {
	items, err := r.items.LoadLocal()
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].MenuID == identifier {
			return &items[i], nil
		}
	}
	for i := range items {
		if items[i].ID == identifier {
			return &items[i], nil
		}
	}
	return nil, nil
}

func (r *menuRepo) Save(ctx context.Context, item model.MenuItem) (store.SyncResult, error) {
	return r.items.Upsert(ctx, item)
}

func (r *menuRepo) ReplaceAll(ctx context.Context, items []model.MenuItem) (store.SyncResult, error) {
	return r.items.SaveAll(ctx, items)
}

func (r *menuRepo) Remove(ctx context.Context, id string) (store.SyncResult, error) {
	return r.items.Remove(ctx, id)
}

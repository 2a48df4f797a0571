package store

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Collection applies the dual-store policy to one record key: reads prefer
// the remote copy and overwrite the local one on success; writes commit
// locally first and mirror to the remote best-effort. Mirror failures are
// logged and swallowed — the caller sees them only through SyncResult.
type Collection[T any] struct {
	key    string
	local  LocalStore
	remote RemoteStore
	idOf   func(T) string
	log    *logrus.Logger
}

func NewCollection[T any](key string, local LocalStore, remote RemoteStore, idOf func(T) string, log *logrus.Logger) *Collection[T] {
	return &Collection[T]{
		key:    key,
		local:  local,
		remote: remote,
		idOf:   idOf,
		log:    log,
	}
}

func (c *Collection[T]) Key() string {
	return c.key
}

// LoadLocal reads the local record only. A missing key yields an empty
// slice, never an error.
func (c *Collection[T]) LoadLocal() ([]T, error) {
	var items []T
	if _, err := c.local.Get(c.key, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Collection[T]) SaveLocal(items []T) error {
	return c.local.Put(c.key, items)
}

// Load reads remote-preferred. On remote success the local record is
// overwritten with the remote result; on any remote failure the local
// record is returned instead.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	if !c.remote.Available() {
		return c.LoadLocal()
	}

	raws, err := c.remote.List(ctx, c.key)
	if err != nil {
		c.log.WithFields(logrus.Fields{
			"collection": c.key,
			"error":      err.Error(),
		}).Warn("remote read failed, falling back to local store")
		return c.LoadLocal()
	}

	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			c.log.WithFields(logrus.Fields{
				"collection": c.key,
				"error":      err.Error(),
			}).Warn("skipping malformed remote document")
			continue
		}
		items = append(items, item)
	}

	if err := c.SaveLocal(items); err != nil {
		return nil, err
	}
	return items, nil
}

// Append commits item to the local record, then mirrors the single
// document remotely.
func (c *Collection[T]) Append(ctx context.Context, item T) (SyncResult, error) {
	items, err := c.LoadLocal()
	if err != nil {
		return SyncResult{}, err
	}
	items = append(items, item)
	if err := c.SaveLocal(items); err != nil {
		return SyncResult{}, err
	}

	return SyncResult{
		CommittedLocally: true,
		MirroredRemotely: c.mirrorPut(ctx, item),
	}, nil
}

// Upsert replaces the local item with the same id (appending when absent),
// then mirrors the single document remotely.
func (c *Collection[T]) Upsert(ctx context.Context, item T) (SyncResult, error) {
	items, err := c.LoadLocal()
	if err != nil {
		return SyncResult{}, err
	}

	id := c.idOf(item)
	replaced := false
	for i := range items {
		if c.idOf(items[i]) == id {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}

	if err := c.SaveLocal(items); err != nil {
		return SyncResult{}, err
	}

	return SyncResult{
		CommittedLocally: true,
		MirroredRemotely: c.mirrorPut(ctx, item),
	}, nil
}

// SaveAll rewrites the whole record locally and replaces the remote
// collection wholesale.
func (c *Collection[T]) SaveAll(ctx context.Context, items []T) (SyncResult, error) {
	if err := c.SaveLocal(items); err != nil {
		return SyncResult{}, err
	}

	res := SyncResult{CommittedLocally: true}
	if !c.remote.Available() {
		return res, nil
	}

	docs := make([]RemoteDoc, 0, len(items))
	for _, item := range items {
		docs = append(docs, RemoteDoc{ID: c.idOf(item), Doc: item})
	}
	if err := c.remote.ReplaceAll(ctx, c.key, docs); err != nil {
		c.log.WithFields(logrus.Fields{
			"collection": c.key,
			"error":      err.Error(),
		}).Error("remote mirror replace failed")
		return res, nil
	}
	res.MirroredRemotely = true
	return res, nil
}

// Remove drops the item with the given id locally and deletes its remote
// document.
func (c *Collection[T]) Remove(ctx context.Context, id string) (SyncResult, error) {
	items, err := c.LoadLocal()
	if err != nil {
		return SyncResult{}, err
	}

	filtered := items[:0:0]
	for _, item := range items {
		if c.idOf(item) != id {
			filtered = append(filtered, item)
		}
	}
	if err := c.SaveLocal(filtered); err != nil {
		return SyncResult{}, err
	}

	res := SyncResult{CommittedLocally: true}
	if !c.remote.Available() {
		return res, nil
	}
	if err := c.remote.Delete(ctx, c.key, id); err != nil {
		c.log.WithFields(logrus.Fields{
			"collection": c.key,
			"doc_id":     id,
			"error":      err.Error(),
		}).Error("remote mirror delete failed")
		return res, nil
	}
	res.MirroredRemotely = true
	return res, nil
}

func (c *Collection[T]) mirrorPut(ctx context.Context, item T) bool {
	if !c.remote.Available() {
		return false
	}
	if err := c.remote.Put(ctx, c.key, c.idOf(item), item); err != nil {
		c.log.WithFields(logrus.Fields{
			"collection": c.key,
			"doc_id":     c.idOf(item),
			"error":      err.Error(),
		}).Error("remote mirror write failed")
		return false
	}
	return true
}

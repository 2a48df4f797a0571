package store

import (
	"context"
	"encoding/json"
)

// Logical record keys. The local store keeps one JSON record per key; the
// remote store mirrors the same names as document collections.
const (
	KeyMenuItems        = "menuItems"
	KeyCart             = "cart"
	KeyTransactions     = "transactions"
	KeyStockAdjustments = "stockAdjustments"
	KeyUsers            = "users"
	KeyExpenses         = "expenses"
	KeyBookmarks        = "bookmarks"
	KeyAdminPassword    = "adminPassword"
)

// LocalStore is the always-available synchronous backend. It is the
// durability contract: an operation succeeds once its local write lands.
type LocalStore interface {
	Get(key string, out any) (bool, error)
	Put(key string, v any) error
}

// RemoteStore is the optional best-effort mirror. Availability is fixed at
// construction and never re-probed; an unreachable remote fails each call
// individually and callers fall back to the local store.
type RemoteStore interface {
	Available() bool
	List(ctx context.Context, collection string) ([]json.RawMessage, error)
	Put(ctx context.Context, collection, id string, doc any) error
	Delete(ctx context.Context, collection, id string) error
	ReplaceAll(ctx context.Context, collection string, docs []RemoteDoc) error
}

// RemoteDoc pairs a document id with its payload for bulk replacement.
type RemoteDoc struct {
	ID  string
	Doc any
}

// SyncResult reports where a write landed. CommittedLocally false means the
// operation failed outright; MirroredRemotely false with CommittedLocally
// true means the remote mirror lagged and the failure was swallowed.
type SyncResult struct {
	CommittedLocally bool `json:"committedLocally"`
	MirroredRemotely bool `json:"mirroredRemotely"`
}

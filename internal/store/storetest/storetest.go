// Package storetest provides in-memory store fakes for tests.
package storetest

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go-pos-billing/internal/store"
)

// Local is an in-memory LocalStore.
type Local struct {
	mu      sync.Mutex
	records map[string][]byte
}

func NewLocal() *Local {
	return &Local{records: make(map[string][]byte)}
}

func (l *Local) Get(key string, out any) (bool, error) {
	l.mu.Lock()
	raw, ok := l.records[key]
	l.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (l *Local) Put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.records[key] = data
	l.mu.Unlock()
	return nil
}

type stubDoc struct {
	ID   string
	Data json.RawMessage
}

// Remote is a scriptable RemoteStore. Failure flags make individual calls
// error; Enabled toggles the construction-time availability flag. PutHook,
// when set, runs before each Put and may block or fail it.
type Remote struct {
	mu      sync.Mutex
	Enabled bool
	docs    map[string][]stubDoc

	FailLists   bool
	FailPuts    bool
	FailDeletes bool
	FailReplace bool

	PutHook func(collection, id string) error

	PutCount  int
	ListCount int
}

func NewRemote(enabled bool) *Remote {
	return &Remote{Enabled: enabled, docs: make(map[string][]stubDoc)}
}

func (r *Remote) Available() bool {
	return r.Enabled
}

func (r *Remote) List(_ context.Context, collection string) ([]json.RawMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ListCount++
	if r.FailLists {
		return nil, errors.New("storetest: list failed")
	}
	raws := make([]json.RawMessage, 0, len(r.docs[collection]))
	for _, doc := range r.docs[collection] {
		raws = append(raws, doc.Data)
	}
	return raws, nil
}

func (r *Remote) Put(_ context.Context, collection, id string, doc any) error {
	if hook := r.PutHook; hook != nil {
		if err := hook(collection, id); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.PutCount++
	if r.FailPuts {
		return errors.New("storetest: put failed")
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	for i, existing := range r.docs[collection] {
		if existing.ID == id {
			r.docs[collection][i].Data = data
			return nil
		}
	}
	r.docs[collection] = append(r.docs[collection], stubDoc{ID: id, Data: data})
	return nil
}

func (r *Remote) Delete(_ context.Context, collection, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailDeletes {
		return errors.New("storetest: delete failed")
	}
	docs := r.docs[collection]
	for i, doc := range docs {
		if doc.ID == id {
			r.docs[collection] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *Remote) ReplaceAll(_ context.Context, collection string, docs []store.RemoteDoc) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailReplace {
		return errors.New("storetest: replace failed")
	}
	replaced := make([]stubDoc, 0, len(docs))
	for _, d := range docs {
		data, err := json.Marshal(d.Doc)
		if err != nil {
			return err
		}
		replaced = append(replaced, stubDoc{ID: d.ID, Data: data})
	}
	r.docs[collection] = replaced
	return nil
}

// Seed stores a document directly, bypassing hooks and failure flags.
func (r *Remote) Seed(collection, id string, doc any) {
	data, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	r.mu.Lock()
	r.docs[collection] = append(r.docs[collection], stubDoc{ID: id, Data: data})
	r.mu.Unlock()
}

// Docs returns the raw stored documents for a collection.
func (r *Remote) Docs(collection string) []json.RawMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	raws := make([]json.RawMessage, 0, len(r.docs[collection]))
	for _, doc := range r.docs[collection] {
		raws = append(raws, doc.Data)
	}
	return raws
}

package repository

import (
	"go-pos-billing/internal/store"
)

// BookmarkRepository tracks bookmarked menuIds. Local-only, like the cart.
type BookmarkRepository interface {
	List() ([]string, error)
	IsBookmarked(menuID string) (bool, error)
	Toggle(menuID string) (bool, error)
}

type bookmarkRepo struct {
	local store.LocalStore
}

func NewBookmarkRepo(local store.LocalStore) BookmarkRepository {
	return &bookmarkRepo{local: local}
}

func (r *bookmarkRepo) List() ([]string, error) {
	var bookmarks []string
	if _, err := r.local.Get(store.KeyBookmarks, &bookmarks); err != nil {
		return nil, err
	}
	return bookmarks, nil
}

func (r *bookmarkRepo) IsBookmarked(menuID string) (bool, error) {
	bookmarks, err := r.List()
	if err != nil {
		return false, err
	}
	for _, id := range bookmarks {
		if id == menuID {
			return true, nil
		}
	}
	return false, nil
}

// Toggle adds the menuId when absent and removes it when present,
// reporting the new state.
func (r *bookmarkRepo) Toggle(menuID string) (bool, error) {
	bookmarks, err := r.List()
	if err != nil {
		return false, err
	}
	for i, id := range bookmarks {
		if id == menuID {
			bookmarks = append(bookmarks[:i], bookmarks[i+1:]...)
			return false, r.local.Put(store.KeyBookmarks, bookmarks)
		}
	}
	bookmarks = append(bookmarks, menuID)
	return true, r.local.Put(store.KeyBookmarks, bookmarks)
}

package repository_test

import (
	"testing"

	"go-pos-billing/internal/repository"
	"go-pos-billing/internal/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookmarkToggle(t *testing.T) {
	repo := repository.NewBookmarkRepo(storetest.NewLocal())

	on, err := repo.Toggle("MENU001")
	require.NoError(t, err)
	assert.True(t, on)

	bookmarked, err := repo.IsBookmarked("MENU001")
	require.NoError(t, err)
	assert.True(t, bookmarked)

	off, err := repo.Toggle("MENU001")
	require.NoError(t, err)
	assert.False(t, off)

	bookmarked, err = repo.IsBookmarked("MENU001")
	require.NoError(t, err)
	assert.False(t, bookmarked)
}

func TestBookmarkListKeepsOthers(t *testing.T) {
	repo := repository.NewBookmarkRepo(storetest.NewLocal())

	_, err := repo.Toggle("MENU001")
	require.NoError(t, err)
	_, err = repo.Toggle("MENU002")
	require.NoError(t, err)
	_, err = repo.Toggle("MENU001")
	require.NoError(t, err)

	list, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"MENU002"}, list)
}

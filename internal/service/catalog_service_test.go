package service_test

import (
	"testing"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemGeneratesSequentialMenuID(t *testing.T) {
	env := newTestEnv(t, false)

	first, err := env.catalog.AddItem(background, model.MenuItemInput{Name: "Xerox", DefaultPrice: price(2)}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "MENU001", first.MenuID)

	second, err := env.catalog.AddItem(background, model.MenuItemInput{Name: "Printout", DefaultPrice: price(5)}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "MENU002", second.MenuID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGeneratedMenuIDSkipsGaps(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t,
		model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "A"},
		model.MenuItem{ID: "id-3", MenuID: "MENU003", Name: "C"},
	)

	// MENU002 was deleted at some point; the gap is never reused.
	item, err := env.catalog.AddItem(background, model.MenuItemInput{Name: "D"}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "MENU004", item.MenuID)
}

func TestAddItemDefaultsImage(t *testing.T) {
	env := newTestEnv(t, false)

	item, err := env.catalog.AddItem(background, model.MenuItemInput{Name: "Xerox"}, testActor)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultItemImage, item.Image)
}

func TestAddItemValidation(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.catalog.AddItem(background, model.MenuItemInput{Name: ""}, testActor)
	assert.Error(t, err)

	_, err = env.catalog.AddItem(background, model.MenuItemInput{Name: "Bad", DefaultPrice: price(-1)}, testActor)
	assert.Error(t, err)

	_, err = env.catalog.AddItem(background, model.MenuItemInput{Name: "Bad", Stock: -1}, testActor)
	assert.Error(t, err)
}

func TestUpdateItemPatchKeepsUnsetFields(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", Image: "img", DefaultPrice: price(2), Stock: 10})

	newName := "Xerox A4"
	updated, err := env.catalog.UpdateItem(background, "id-1", model.MenuItemPatch{Name: &newName}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "Xerox A4", updated.Name)
	assert.Equal(t, "img", updated.Image)
	assert.True(t, updated.DefaultPrice.Equal(price(2)))
	assert.Equal(t, 10, updated.Stock)
}

func TestUpdateItemIgnoresInvalidPatchValues(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", DefaultPrice: price(2), Stock: 10})

	empty := ""
	negPrice := decimal.NewFromInt(-5)
	negStock := -1
	updated, err := env.catalog.UpdateItem(background, "id-1", model.MenuItemPatch{
		Name:         &empty,
		DefaultPrice: &negPrice,
		Stock:        &negStock,
	}, testActor)
	require.NoError(t, err)
	assert.Equal(t, "Xerox", updated.Name)
	assert.True(t, updated.DefaultPrice.Equal(price(2)))
	assert.Equal(t, 10, updated.Stock)
}

func TestDeleteItemKeepsHistory(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", DefaultPrice: price(2), Stock: 10})
	env.addToCart(t, "id-1", 1)

	_, err := env.checkout.Checkout(background, decimal.Zero, testActor)
	require.NoError(t, err)

	require.NoError(t, env.catalog.DeleteItem(background, "id-1"))

	// Past transactions and audit entries survive the delete untouched.
	require.Len(t, env.transactions(t), 1)
	assert.Equal(t, "Xerox", env.transactions(t)[0].Items[0].Name)
	require.Len(t, env.adjustments(t), 1)
}

func TestImportMergeAppends(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox"})

	items, err := env.catalog.Import(background, []model.MenuItemInput{
		{Name: "Printout", DefaultPrice: price(5), Stock: 100},
	}, service.ImportMerge)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "MENU002", items[1].MenuID)
}

func TestImportReplaceRebuilds(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox"})

	items, err := env.catalog.Import(background, []model.MenuItemInput{
		{Name: "Printout"},
		{MenuID: "MENU042", Name: "Scan"},
	}, service.ImportReplace)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "MENU001", items[0].MenuID)
	assert.Equal(t, "MENU042", items[1].MenuID)

	all, err := env.menuRepo.AllLocal()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportRejectsInvalidRows(t *testing.T) {
	env := newTestEnv(t, false)

	_, err := env.catalog.Import(background, []model.MenuItemInput{{Name: ""}}, service.ImportMerge)
	assert.Error(t, err)

	_, err = env.catalog.Import(background, []model.MenuItemInput{{Name: "X", Stock: -1}}, service.ImportMerge)
	assert.Error(t, err)

	_, err = env.catalog.Import(background, []model.MenuItemInput{{Name: "X"}}, service.ImportMode("sideways"))
	assert.Error(t, err)
}

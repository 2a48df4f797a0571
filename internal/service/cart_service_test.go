package service_test

import (
	"errors"
	"testing"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemSnapshotsPrice(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", DefaultPrice: price(2), Stock: 10})

	lines, err := env.cart.AddItem("id-1", 3)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].UnitPrice.Equal(price(2)))
	assert.True(t, lines[0].LineTotal.Equal(price(6)))

	// Raising the catalog price does not rewrite the pending line.
	newPrice := price(99)
	_, err = env.catalog.UpdateItem(background, "id-1", model.MenuItemPatch{DefaultPrice: &newPrice}, testActor)
	require.NoError(t, err)

	lines, err = env.cart.Lines()
	require.NoError(t, err)
	assert.True(t, lines[0].UnitPrice.Equal(price(2)))
}

func TestAddItemMergesExistingLine(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", DefaultPrice: price(2), Stock: 10})

	_, err := env.cart.AddItem("id-1", 2)
	require.NoError(t, err)
	lines, err := env.cart.AddItem("id-1", 3)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.True(t, lines[0].LineTotal.Equal(price(10)))
}

func TestAddItemRejectsBadInput(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", DefaultPrice: price(2)})

	_, err := env.cart.AddItem("id-1", 0)
	assert.Error(t, err)

	_, err = env.cart.AddItem("missing", 1)
	var notFound *service.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", DefaultPrice: price(2), Stock: 10})
	env.addToCart(t, "id-1", 2)

	lines, err := env.cart.UpdateQuantity("id-1", 0)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestUpdateQuantityRecalculatesTotal(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", DefaultPrice: price(2), Stock: 10})
	env.addToCart(t, "id-1", 2)

	lines, err := env.cart.UpdateQuantity("id-1", 7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
	assert.True(t, lines[0].LineTotal.Equal(price(14)))
}

func TestClearCart(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", DefaultPrice: price(2), Stock: 10})
	env.addToCart(t, "id-1", 2)

	require.NoError(t, env.cart.Clear())
	lines, err := env.cart.Lines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

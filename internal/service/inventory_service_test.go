package service_test

import (
	"errors"
	"testing"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustStockAppliesDelta(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", Stock: 10})

	item, entry, err := env.inventory.AdjustStock(background, "MENU001", 5, "restock", model.AdjustmentReceipt, testActor)
	require.NoError(t, err)
	assert.Equal(t, 15, item.Stock)
	assert.Equal(t, 5, entry.QuantityDelta)
	assert.Equal(t, "restock", entry.Reason)
	assert.Equal(t, model.AdjustmentReceipt, entry.Kind)

	assert.Equal(t, 15, env.item(t, "id-1").Stock)
}

func TestAdjustStockFloorsAtZero(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", Stock: 3})

	item, entry, err := env.inventory.AdjustStock(background, "MENU001", -10, "write-off", model.AdjustmentManual, testActor)
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)

	// The audit entry records the requested delta, not the clamped effect.
	assert.Equal(t, -10, entry.QuantityDelta)
}

func TestAdjustStockResolvesMenuIDBeforeInternalID(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t,
		// The second item's menuId collides with the first item's internal id.
		model.MenuItem{ID: "MENU001", MenuID: "MENU900", Name: "Decoy", Stock: 1},
		model.MenuItem{ID: "id-2", MenuID: "MENU001", Name: "Target", Stock: 5},
	)

	item, _, err := env.inventory.AdjustStock(background, "MENU001", 1, "", model.AdjustmentReceipt, testActor)
	require.NoError(t, err)
	assert.Equal(t, "Target", item.Name)
	assert.Equal(t, 6, item.Stock)
}

func TestAdjustStockFallsBackToInternalID(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", Stock: 5})

	item, _, err := env.inventory.AdjustStock(background, "id-1", -1, "", model.AdjustmentManual, testActor)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Stock)
}

func TestAdjustStockUnknownItem(t *testing.T) {
	env := newTestEnv(t, false)

	_, _, err := env.inventory.AdjustStock(background, "MENU999", 1, "", model.AdjustmentReceipt, testActor)
	var notFound *service.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Empty(t, env.adjustments(t))
}

func TestAdjustStockDefaultsReason(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", Stock: 5})

	_, entry, err := env.inventory.AdjustStock(background, "MENU001", 1, "", model.AdjustmentReceipt, testActor)
	require.NoError(t, err)
	assert.Equal(t, service.ReasonManualAdjustment, entry.Reason)
}

func TestManualAdjustDerivesKindFromSign(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", Stock: 5})

	_, err := env.inventory.ManualAdjust(background, "MENU001", 3, "restock", testActor)
	require.NoError(t, err)
	_, err = env.inventory.ManualAdjust(background, "MENU001", -2, "damage", testActor)
	require.NoError(t, err)

	entries := env.adjustments(t)
	require.Len(t, entries, 2)

	kinds := map[int]model.AdjustmentKind{}
	for _, entry := range entries {
		kinds[entry.QuantityDelta] = entry.Kind
	}
	assert.Equal(t, model.AdjustmentReceipt, kinds[3])
	assert.Equal(t, model.AdjustmentManual, kinds[-2])
}

func TestAuditTrailReplaysToCurrentStock(t *testing.T) {
	env := newTestEnv(t, false)
	env.seedItems(t, model.MenuItem{ID: "id-1", MenuID: "MENU001", Name: "Xerox", Stock: 10})

	deltas := []int{-4, 7, -20, 2}
	for _, delta := range deltas {
		_, _, err := env.inventory.AdjustStock(background, "MENU001", delta, "replay", model.AdjustmentManual, testActor)
		require.NoError(t, err)
	}

	// Replaying the recorded deltas in order, clamped at zero, must land on
	// the item's current stock.
	replayed := 10
	for _, delta := range deltas {
		replayed += delta
		if replayed < 0 {
			replayed = 0
		}
	}
	assert.Equal(t, replayed, env.item(t, "id-1").Stock)
}

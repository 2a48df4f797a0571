package service_test

import (
	"context"
	"io"
	"testing"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/repository"
	"go-pos-billing/internal/service"
	"go-pos-billing/internal/store"
	"go-pos-billing/internal/store/storetest"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// testEnv wires the full service stack over in-memory stores.
type testEnv struct {
	local  *storetest.Local
	remote *storetest.Remote

	menuRepo       repository.MenuRepository
	cartRepo       repository.CartRepository
	txRepo         repository.TransactionRepository
	adjustmentRepo repository.AdjustmentRepository

	inventory service.InventoryService
	checkout  service.CheckoutService
	cart      service.CartService
	catalog   service.CatalogService
	reports   service.ReportService
}

func newTestEnv(t *testing.T, remoteEnabled bool) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	local := storetest.NewLocal()
	remote := storetest.NewRemote(remoteEnabled)

	env := &testEnv{
		local:          local,
		remote:         remote,
		menuRepo:       repository.NewMenuRepo(local, remote, log),
		cartRepo:       repository.NewCartRepo(local),
		txRepo:         repository.NewTransactionRepo(local, remote, log),
		adjustmentRepo: repository.NewAdjustmentRepo(local, remote, log),
	}
	env.inventory = service.NewInventoryService(env.menuRepo, env.adjustmentRepo, nil)
	env.checkout = service.NewCheckoutService(env.cartRepo, env.menuRepo, env.txRepo, env.inventory, nil)
	env.cart = service.NewCartService(env.cartRepo, env.menuRepo)
	env.catalog = service.NewCatalogService(env.menuRepo, nil)
	env.reports = service.NewReportService(env.txRepo)
	return env
}

func (e *testEnv) seedItems(t *testing.T, items ...model.MenuItem) {
	t.Helper()
	require.NoError(t, e.local.Put(store.KeyMenuItems, items))
}

func (e *testEnv) item(t *testing.T, id string) model.MenuItem {
	t.Helper()
	item, err := e.menuRepo.FindByID(id)
	require.NoError(t, err)
	require.NotNil(t, item)
	return *item
}

func (e *testEnv) addToCart(t *testing.T, itemID string, quantity int) {
	t.Helper()
	_, err := e.cart.AddItem(itemID, quantity)
	require.NoError(t, err)
}

func (e *testEnv) adjustments(t *testing.T) []model.StockAdjustmentEntry {
	t.Helper()
	entries, err := e.adjustmentRepo.AllLocal()
	require.NoError(t, err)
	return entries
}

func (e *testEnv) transactions(t *testing.T) []model.Transaction {
	t.Helper()
	txs, err := e.txRepo.AllLocal()
	require.NoError(t, err)
	return txs
}

func price(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

var testActor = model.Actor{ID: "u1", Name: "Cashier One", Username: "cashier1"}

var background = context.Background()

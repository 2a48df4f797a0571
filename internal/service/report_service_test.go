package service_test

import (
	"testing"
	"time"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/service"
	"go-pos-billing/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTransactions(t *testing.T, env *testEnv) {
	t.Helper()
	txs := []model.Transaction{
		{
			ID:   "tx-1",
			Date: time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC),
			Items: []model.TransactionItem{
				{Name: "Xerox", Quantity: 4, UnitPrice: price(2), LineTotal: price(8)},
			},
			Subtotal: price(8), FinalTotal: price(8),
		},
		{
			ID:   "tx-2",
			Date: time.Date(2025, 3, 20, 23, 30, 0, 0, time.UTC),
			Items: []model.TransactionItem{
				{Name: "Printout", Quantity: 2, UnitPrice: price(5), LineTotal: price(10)},
				{Name: "Xerox", Quantity: 1, UnitPrice: price(2), LineTotal: price(2)},
			},
			Subtotal: price(12), Discount: price(2), FinalTotal: price(10),
		},
		{
			ID:   "tx-3",
			Date: time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
			Items: []model.TransactionItem{
				{Name: "Scan", Quantity: 1, UnitPrice: price(20), LineTotal: price(20)},
			},
			Subtotal: price(20), FinalTotal: price(20),
		},
	}
	require.NoError(t, env.local.Put(store.KeyTransactions, txs))
}

func TestTransactionsMonthFilter(t *testing.T) {
	env := newTestEnv(t, false)
	seedTransactions(t, env)

	txs, err := env.reports.Transactions(background, service.ReportFilter{Month: "2025-03"})
	require.NoError(t, err)
	require.Len(t, txs, 2)

	// Newest first.
	assert.Equal(t, "tx-2", txs[0].ID)
	assert.Equal(t, "tx-1", txs[1].ID)
}

func TestTransactionsDateRangeIncludesWholeEndDay(t *testing.T) {
	env := newTestEnv(t, false)
	seedTransactions(t, env)

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	txs, err := env.reports.Transactions(background, service.ReportFilter{From: &from, To: &to})
	require.NoError(t, err)

	// tx-2 happened at 23:30 on the end date and still counts.
	require.Len(t, txs, 1)
	assert.Equal(t, "tx-2", txs[0].ID)
}

func TestTransactionsItemFilter(t *testing.T) {
	env := newTestEnv(t, false)
	seedTransactions(t, env)

	txs, err := env.reports.Transactions(background, service.ReportFilter{ItemName: "Xerox"})
	require.NoError(t, err)
	assert.Len(t, txs, 2)

	txs, err = env.reports.Transactions(background, service.ReportFilter{Month: "2025-04", ItemName: "Xerox"})
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestSummaryTotalsAndRollup(t *testing.T) {
	env := newTestEnv(t, false)
	seedTransactions(t, env)

	summary, err := env.reports.Summary(background, service.ReportFilter{Month: "2025-03"})
	require.NoError(t, err)

	// Total sales sum the discounted finals, not the subtotals.
	assert.True(t, summary.TotalSales.Equal(price(18)))
	assert.Equal(t, 2, summary.TotalTransactions)
	assert.Equal(t, 7, summary.TotalItems)

	require.Len(t, summary.Items, 2)
	assert.Equal(t, "Printout", summary.Items[0].Name)
	assert.Equal(t, "Xerox", summary.Items[1].Name)
	assert.Equal(t, 5, summary.Items[1].Quantity)
	assert.True(t, summary.Items[1].Revenue.Equal(price(10)))
}

func TestSummaryEmptyHistory(t *testing.T) {
	env := newTestEnv(t, false)

	summary, err := env.reports.Summary(background, service.ReportFilter{})
	require.NoError(t, err)
	assert.True(t, summary.TotalSales.IsZero())
	assert.Zero(t, summary.TotalTransactions)
	assert.Empty(t, summary.Items)
}

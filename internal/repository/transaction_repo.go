package repository

import (
	"context"
	"sort"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/store"

	"github.com/sirupsen/logrus"
)

type TransactionRepository interface {
	Append(ctx context.Context, tx model.Transaction) (store.SyncResult, error)
	All(ctx context.Context) ([]model.Transaction, error)
	AllLocal() ([]model.Transaction, error)
}

type transactionRepo struct {
	txs *store.Collection[model.Transaction]
}

func NewTransactionRepo(local store.LocalStore, remote store.RemoteStore, log *logrus.Logger) TransactionRepository {
	return &transactionRepo{
		txs: store.NewCollection(store.KeyTransactions, local, remote,
			func(t model.Transaction) string { return t.ID }, log),
	}
}

func (r *transactionRepo) Append(ctx context.Context, tx model.Transaction) (store.SyncResult, error) {
	return r.txs.Append(ctx, tx)
}

// All returns transactions remote-preferred, newest first.
func (r *transactionRepo) All(ctx context.Context) ([]model.Transaction, error) {
	txs, err := r.txs.Load(ctx)
	if err != nil {
		return nil, err
	}
	sortTransactionsDesc(txs)
	return txs, nil
}

func (r *transactionRepo) AllLocal() ([]model.Transaction, error) {
	txs, err := r.txs.LoadLocal()
	if err != nil {
		return nil, err
	}
	sortTransactionsDesc(txs)
	return txs, nil
}

func sortTransactionsDesc(txs []model.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
}

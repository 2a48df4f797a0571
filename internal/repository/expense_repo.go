package repository

import (
	"context"
	"sort"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/store"

	"github.com/sirupsen/logrus"
)

type ExpenseRepository interface {
	Append(ctx context.Context, expense model.Expense) (store.SyncResult, error)
	All(ctx context.Context) ([]model.Expense, error)
	Remove(ctx context.Context, id string) (store.SyncResult, error)
}

type expenseRepo struct {
	expenses *store.Collection[model.Expense]
}

func NewExpenseRepo(local store.LocalStore, remote store.RemoteStore, log *logrus.Logger) ExpenseRepository {
	return &expenseRepo{
		expenses: store.NewCollection(store.KeyExpenses, local, remote,
			func(e model.Expense) string { return e.ID }, log),
	}
}

func (r *expenseRepo) Append(ctx context.Context, expense model.Expense) (store.SyncResult, error) {
	return r.expenses.Append(ctx, expense)
}

// All returns expenses remote-preferred, newest first.
func (r *expenseRepo) All(ctx context.Context) ([]model.Expense, error) {
	expenses, err := r.expenses.Load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})
	return expenses, nil
}

func (r *expenseRepo) Remove(ctx context.Context, id string) (store.SyncResult, error) {
	return r.expenses.Remove(ctx, id)
}

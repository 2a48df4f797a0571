package service

import (
	"context"
	"sort"
	"time"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/repository"

	"github.com/shopspring/decimal"
)

// ReportFilter narrows the transaction history. Month and the From/To
// range are mutually exclusive in practice (the caller clears one when
// setting the other); the item filter stacks with either.
type ReportFilter struct {
	Month    string // "2006-01"
	From     *time.Time
	To       *time.Time
	ItemName string
}

type ItemSummary struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

type SalesSummary struct {
	TotalSales        decimal.Decimal `json:"totalSales"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalItems        int             `json:"totalItems"`
	Items             []ItemSummary   `json:"items"`
}

// ReportService reads the transaction history for the admin reports tab.
type ReportService interface {
	Transactions(ctx context.Context, filter ReportFilter) ([]model.Transaction, error)
	Summary(ctx context.Context, filter ReportFilter) (*SalesSummary, error)
}

type reportService struct {
	txRepo repository.TransactionRepository
}

func NewReportService(txRepo repository.TransactionRepository) ReportService {
	return &reportService{txRepo: txRepo}
}

// Transactions returns the filtered history, newest first.
func (s *reportService) Transactions(ctx context.Context, filter ReportFilter) ([]model.Transaction, error) {
	txs, err := s.txRepo.All(ctx)
	if err != nil {
		return nil, err
	}
	return filterTransactions(txs, filter), nil
}

func (s *reportService) Summary(ctx context.Context, filter ReportFilter) (*SalesSummary, error) {
	txs, err := s.Transactions(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary := &SalesSummary{
		TotalSales:        decimal.Zero,
		TotalTransactions: len(txs),
	}

	type rollup struct {
		quantity int
		revenue  decimal.Decimal
	}
	perItem := make(map[string]*rollup)

	for _, tx := range txs {
		summary.TotalSales = summary.TotalSales.Add(tx.FinalTotal)
		for _, item := range tx.Items {
			summary.TotalItems += item.Quantity
			r, ok := perItem[item.Name]
			if !ok {
				r = &rollup{revenue: decimal.Zero}
				perItem[item.Name] = r
			}
			r.quantity += item.Quantity
			r.revenue = r.revenue.Add(item.LineTotal)
		}
	}

	summary.Items = make([]ItemSummary, 0, len(perItem))
	for name, r := range perItem {
		summary.Items = append(summary.Items, ItemSummary{
			Name:     name,
			Quantity: r.quantity,
			Revenue:  r.revenue,
		})
	}
	sort.Slice(summary.Items, func(i, j int) bool {
		return summary.Items[i].Name < summary.Items[j].Name
	})

	return summary, nil
}

func filterTransactions(txs []model.Transaction, filter ReportFilter) []model.Transaction {
	filtered := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !matchesDate(tx.Date, filter) {
			continue
		}
		if filter.ItemName != "" && !containsItem(tx, filter.ItemName) {
			continue
		}
		filtered = append(filtered, tx)
	}
	return filtered
}

func matchesDate(date time.Time, filter ReportFilter) bool {
	if filter.From != nil && filter.To != nil {
		// The range is inclusive; the end date covers its whole day.
		endOfDay := filter.To.Add(24*time.Hour - time.Nanosecond)
		return !date.Before(*filter.From) && !date.After(endOfDay)
	}
	if filter.Month != "" {
		return date.Format("2006-01") == filter.Month
	}
	return true
}

func containsItem(tx model.Transaction, name string) bool {
	for _, item := range tx.Items {
		if item.Name == name {
			return true
		}
	}
	return false
}

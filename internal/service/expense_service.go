package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/repository"
	"go-pos-billing/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AddExpenseRequest struct {
	PersonName string          `json:"personName" validate:"required"`
	Purpose    string          `json:"purpose" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
}

// ExpenseService is the simple append/delete expense log.
type ExpenseService interface {
	AddExpense(ctx context.Context, req *AddExpenseRequest, actor model.Actor) (*model.Expense, error)
	Expenses(ctx context.Context) ([]model.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
}

type expenseService struct {
	expenseRepo repository.ExpenseRepository
}

func NewExpenseService(expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{expenseRepo: expenseRepo}
}

func (s *expenseService) AddExpense(ctx context.Context, req *AddExpenseRequest, actor model.Actor) (*model.Expense, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	if !req.Amount.IsPositive() {
		return nil, errors.New("amount must be greater than zero")
	}

	actor = normalizeActor(actor)
	expense := model.Expense{
		ID:           uuid.NewString(),
		PersonName:   req.PersonName,
		Purpose:      req.Purpose,
		Amount:       req.Amount,
		UserID:       actor.ID,
		UserName:     actor.Name,
		UserUsername: actor.Username,
		Date:         time.Now().UTC(),
	}

	if _, err := s.expenseRepo.Append(ctx, expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (s *expenseService) Expenses(ctx context.Context) ([]model.Expense, error) {
	return s.expenseRepo.All(ctx)
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string) error {
	expenses, err := s.expenseRepo.All(ctx)
	if err != nil {
		return err
	}
	for _, expense := range expenses {
		if expense.ID == id {
			_, err := s.expenseRepo.Remove(ctx, id)
			return err
		}
	}
	return &NotFoundError{Resource: "expense", Identifier: id}
}

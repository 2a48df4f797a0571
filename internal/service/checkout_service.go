package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/repository"
	"go-pos-billing/internal/store"
	"go-pos-billing/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReasonSale is the audit reason stamped on every checkout decrement.
const ReasonSale = "Billing - Sale"

// CheckoutResult carries the committed transaction plus where its write
// landed, so callers can observe a lagging mirror without scraping logs.
type CheckoutResult struct {
	Transaction model.Transaction `json:"transaction"`
	Sync        store.SyncResult  `json:"sync"`
}

// CheckoutService converts the cart into a committed transaction.
type CheckoutService interface {
	Checkout(ctx context.Context, discount decimal.Decimal, actor model.Actor) (*CheckoutResult, error)
}

type checkoutService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
	txRepo   repository.TransactionRepository
	ledger   InventoryService
	wsHub    *ws.Hub

	// Single-flight guard: set before any mutation, cleared on every exit
	// path. Guards against duplicate triggers, not against independent
	// concurrent checkouts racing on the same item.
	inFlight atomic.Bool
}

func NewCheckoutService(cartRepo repository.CartRepository, menuRepo repository.MenuRepository, txRepo repository.TransactionRepository, ledger InventoryService, hub *ws.Hub) CheckoutService {
	return &checkoutService{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
		txRepo:   txRepo,
		ledger:   ledger,
		wsHub:    hub,
	}
}

// Checkout validates stock for every line before touching anything, then
// decrements stock per line through the ledger and persists the
// transaction. Once mutation begins, a remote failure does not roll back
// earlier lines: the sale stands locally and the mirror lags.
func (s *checkoutService) Checkout(ctx context.Context, discount decimal.Decimal, actor model.Actor) (*CheckoutResult, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, ErrCheckoutInProgress
	}
	defer s.inFlight.Store(false)

	lines, err := s.cartRepo.Lines()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if discount.IsNegative() {
		return nil, errors.New("discount must not be negative")
	}

	actor = normalizeActor(actor)

	// All-or-nothing pre-check: every line is validated before any stock
	// moves.
	resolved := make([]model.MenuItem, len(lines))
	for i, line := range lines {
		item, err := s.menuRepo.FindByID(line.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, &NotFoundError{Resource: "menu item", Identifier: line.ItemID}
		}
		if item.Stock < line.Quantity {
			return nil, &InsufficientStockError{ItemName: item.Name, Available: item.Stock}
		}
		resolved[i] = *item
	}

	for i, line := range lines {
		identifier := resolved[i].MenuID
		if identifier == "" {
			identifier = resolved[i].ID
		}
		if _, _, err := s.ledger.AdjustStock(ctx, identifier, -line.Quantity, ReasonSale, model.AdjustmentSale, actor); err != nil {
			return nil, err
		}
	}

	subtotal := decimal.Zero
	items := make([]model.TransactionItem, 0, len(lines))
	for i, line := range lines {
		subtotal = subtotal.Add(line.LineTotal)
		items = append(items, model.TransactionItem{
			MenuID:       resolved[i].MenuID,
			Name:         line.Name,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			LineTotal:    line.LineTotal,
			LineDiscount: line.LineDiscount,
		})
	}

	finalTotal := subtotal.Sub(discount)
	if finalTotal.IsNegative() {
		finalTotal = decimal.Zero
	}

	tx := model.Transaction{
		ID:           uuid.NewString(),
		Date:         time.Now().UTC(),
		Items:        items,
		Subtotal:     subtotal,
		Discount:     discount,
		FinalTotal:   finalTotal,
		UserID:       actor.ID,
		UserName:     actor.Name,
		UserUsername: actor.Username,
	}

	// The sale is durable once the local write lands; a failed mirror only
	// shows up in the sync result.
	syncRes, err := s.txRepo.Append(ctx, tx)
	if err != nil {
		return nil, err
	}

	if err := s.cartRepo.Clear(); err != nil {
		return nil, err
	}

	s.broadcastSale(&tx, actor)

	return &CheckoutResult{Transaction: tx, Sync: syncRes}, nil
}

func (s *checkoutService) broadcastSale(tx *model.Transaction, actor model.Actor) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "sale_completed",
			"action": "transaction_created",
			"transaction": map[string]interface{}{
				"id":         tx.ID,
				"finalTotal": tx.FinalTotal,
				"items":      len(tx.Items),
				"quantity":   tx.TotalQuantity(),
			},
			"user": map[string]interface{}{
				"id":       actor.ID,
				"name":     actor.Name,
				"username": actor.Username,
			},
			"message": fmt.Sprintf("%s completed a sale of %d items", actor.Name, tx.TotalQuantity()),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}

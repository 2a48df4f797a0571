package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/repository"
	"go-pos-billing/internal/ws"

	"github.com/google/uuid"
)

// ReasonManualAdjustment is the default audit reason when the caller gives
// none.
const ReasonManualAdjustment = "Manual adjustment"

// InventoryService is the inventory ledger: it owns stock mutation and the
// append-only audit trail of stock movements.
type InventoryService interface {
	AdjustStock(ctx context.Context, identifier string, delta int, reason string, kind model.AdjustmentKind, actor model.Actor) (*model.MenuItem, *model.StockAdjustmentEntry, error)
	ManualAdjust(ctx context.Context, menuID string, delta int, reason string, actor model.Actor) (*model.MenuItem, error)
	Adjustments(ctx context.Context) ([]model.StockAdjustmentEntry, error)
}

type inventoryService struct {
	menuRepo       repository.MenuRepository
	adjustmentRepo repository.AdjustmentRepository
	wsHub          *ws.Hub
}

func NewInventoryService(menuRepo repository.MenuRepository, adjustmentRepo repository.AdjustmentRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		menuRepo:       menuRepo,
		adjustmentRepo: adjustmentRepo,
		wsHub:          hub,
	}
}

// AdjustStock applies a signed delta to the resolved item's stock, floored
// at zero, and appends an audit entry recording the requested delta (not
// the clamped effect). Both writes commit locally; remote mirroring is
// best-effort and never fails the call.
func (s *inventoryService) AdjustStock(ctx context.Context, identifier string, delta int, reason string, kind model.AdjustmentKind, actor model.Actor) (*model.MenuItem, *model.StockAdjustmentEntry, error) {
	item, err := s.menuRepo.FindByIdentifier(identifier)
	if err != nil {
		return nil, nil, err
	}
	if item == nil {
		return nil, nil, &NotFoundError{Resource: "menu item", Identifier: identifier}
	}

	actor = normalizeActor(actor)
	if reason == "" {
		reason = ReasonManualAdjustment
	}

	oldStock := item.Stock
	updated := *item
	updated.Stock = oldStock + delta
	if updated.Stock < 0 {
		updated.Stock = 0
	}

	// Item write first, audit entry second, same order on every path.
	if _, err := s.menuRepo.Save(ctx, updated); err != nil {
		return nil, nil, err
	}

	entry := model.StockAdjustmentEntry{
		ID:            uuid.NewString(),
		MenuID:        updated.MenuID,
		ItemName:      updated.Name,
		QuantityDelta: delta,
		Reason:        reason,
		Kind:          kind,
		UserID:        actor.ID,
		UserName:      actor.Name,
		UserUsername:  actor.Username,
		Date:          time.Now().UTC(),
	}
	if _, err := s.adjustmentRepo.Append(ctx, entry); err != nil {
		return nil, nil, err
	}

	s.broadcastStockUpdate(&updated, oldStock, &entry, actor)

	return &updated, &entry, nil
}

// ManualAdjust is the admin-panel path: the kind is derived from the delta
// sign (positive receives stock, negative writes it off).
func (s *inventoryService) ManualAdjust(ctx context.Context, menuID string, delta int, reason string, actor model.Actor) (*model.MenuItem, error) {
	kind := model.AdjustmentManual
	if delta > 0 {
		kind = model.AdjustmentReceipt
	}
	item, _, err := s.AdjustStock(ctx, menuID, delta, reason, kind, actor)
	return item, err
}

// Adjustments returns the audit trail remote-preferred, newest first.
func (s *inventoryService) Adjustments(ctx context.Context) ([]model.StockAdjustmentEntry, error) {
	return s.adjustmentRepo.All(ctx)
}

func (s *inventoryService) broadcastStockUpdate(item *model.MenuItem, oldStock int, entry *model.StockAdjustmentEntry, actor model.Actor) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": string(entry.Kind),
			"item": map[string]interface{}{
				"id":        item.ID,
				"menuId":    item.MenuID,
				"name":      item.Name,
				"old_stock": oldStock,
				"new_stock": item.Stock,
			},
			"user": map[string]interface{}{
				"id":       actor.ID,
				"name":     actor.Name,
				"username": actor.Username,
			},
			"message": fmt.Sprintf("%s adjusted stock of '%s' by %d (%s)", actor.Name, item.Name, entry.QuantityDelta, entry.Kind),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}

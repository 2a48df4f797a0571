package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/repository"
	"go-pos-billing/internal/ws"
	"go-pos-billing/pkg/validator"

	"github.com/google/uuid"
)

const menuIDPrefix = "MENU"

// ImportMode selects how bulk-imported rows are applied. The choice is the
// caller's, not the catalog's.
type ImportMode string

const (
	ImportMerge   ImportMode = "merge"
	ImportReplace ImportMode = "replace"
)

// CatalogService is the menu CRUD surface. Deleting an item never touches
// past transactions or the ledger's history.
type CatalogService interface {
	Items(ctx context.Context) ([]model.MenuItem, error)
	AddItem(ctx context.Context, input model.MenuItemInput, actor model.Actor) (*model.MenuItem, error)
	UpdateItem(ctx context.Context, id string, patch model.MenuItemPatch, actor model.Actor) (*model.MenuItem, error)
	DeleteItem(ctx context.Context, id string) error
	Import(ctx context.Context, rows []model.MenuItemInput, mode ImportMode) ([]model.MenuItem, error)
}

type catalogService struct {
	menuRepo repository.MenuRepository
	wsHub    *ws.Hub
}

func NewCatalogService(menuRepo repository.MenuRepository, hub *ws.Hub) CatalogService {
	return &catalogService{menuRepo: menuRepo, wsHub: hub}
}

func (s *catalogService) Items(ctx context.Context) ([]model.MenuItem, error) {
	return s.menuRepo.All(ctx)
}

func (s *catalogService) AddItem(ctx context.Context, input model.MenuItemInput, actor model.Actor) (*model.MenuItem, error) {
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	if input.DefaultPrice.IsNegative() {
		return nil, errors.New("default price must not be negative")
	}
	if input.Stock < 0 {
		return nil, errors.New("stock must not be negative")
	}

	items, err := s.menuRepo.AllLocal()
	if err != nil {
		return nil, err
	}

	item := newMenuItem(input, items)
	if _, err := s.menuRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.broadcastMenuEvent("item_created", &item, normalizeActor(actor))

	return &item, nil
}

// UpdateItem applies only the provided fields; nil or invalid values keep
// the stored value.
func (s *catalogService) UpdateItem(ctx context.Context, id string, patch model.MenuItemPatch, actor model.Actor) (*model.MenuItem, error) {
	item, err := s.menuRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &NotFoundError{Resource: "menu item", Identifier: id}
	}

	updated := *item
	if patch.MenuID != nil && *patch.MenuID != "" {
		updated.MenuID = *patch.MenuID
	}
	if patch.Name != nil && *patch.Name != "" {
		updated.Name = *patch.Name
	}
	if patch.Image != nil && *patch.Image != "" {
		updated.Image = *patch.Image
	}
	if patch.DefaultPrice != nil && !patch.DefaultPrice.IsNegative() {
		updated.DefaultPrice = *patch.DefaultPrice
	}
	if patch.Stock != nil && *patch.Stock >= 0 {
		updated.Stock = *patch.Stock
	}

	if _, err := s.menuRepo.Save(ctx, updated); err != nil {
		return nil, err
	}

	s.broadcastMenuEvent("item_updated", &updated, normalizeActor(actor))

	return &updated, nil
}

func (s *catalogService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.menuRepo.FindByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return &NotFoundError{Resource: "menu item", Identifier: id}
	}
	_, err = s.menuRepo.Remove(ctx, id)
	return err
}

// Import applies already-parsed rows. Merge appends every row as a new
// item; replace discards the existing catalog and rebuilds it with fresh
// ids, reusing given menuIds and generating the rest.
func (s *catalogService) Import(ctx context.Context, rows []model.MenuItemInput, mode ImportMode) ([]model.MenuItem, error) {
	for _, row := range rows {
		if row.Name == "" {
			return nil, errors.New("import row missing name")
		}
		if row.DefaultPrice.IsNegative() || row.Stock < 0 {
			return nil, fmt.Errorf("import row %q has negative price or stock", row.Name)
		}
	}

	var items []model.MenuItem
	switch mode {
	case ImportMerge:
		existing, err := s.menuRepo.AllLocal()
		if err != nil {
			return nil, err
		}
		items = existing
	case ImportReplace:
		items = []model.MenuItem{}
	default:
		return nil, fmt.Errorf("unknown import mode %q", mode)
	}

	for _, row := range rows {
		items = append(items, newMenuItem(row, items))
	}

	if _, err := s.menuRepo.ReplaceAll(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// newMenuItem builds an item with a fresh id, generating the next MENU###
// code from existing when none is given.
func newMenuItem(input model.MenuItemInput, existing []model.MenuItem) model.MenuItem {
	menuID := input.MenuID
	if menuID == "" {
		menuID = generateMenuID(existing)
	}
	image := input.Image
	if image == "" {
		image = model.DefaultItemImage
	}
	return model.MenuItem{
		ID:           uuid.NewString(),
		MenuID:       menuID,
		Name:         input.Name,
		Image:        image,
		DefaultPrice: input.DefaultPrice,
		Stock:        input.Stock,
	}
}

// generateMenuID returns one past the highest numeric suffix among
// existing MENU codes, zero-padded to three digits. Gaps are not reused.
func generateMenuID(items []model.MenuItem) string {
	maxNum := 0
	for _, item := range items {
		if !strings.HasPrefix(item.MenuID, menuIDPrefix) {
			continue
		}
		num, err := strconv.Atoi(strings.TrimPrefix(item.MenuID, menuIDPrefix))
		if err == nil && num > maxNum {
			maxNum = num
		}
	}
	return fmt.Sprintf("%s%03d", menuIDPrefix, maxNum+1)
}

func (s *catalogService) broadcastMenuEvent(action string, item *model.MenuItem, actor model.Actor) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "menu_update",
			"action": action,
			"item": map[string]interface{}{
				"id":     item.ID,
				"menuId": item.MenuID,
				"name":   item.Name,
				"price":  item.DefaultPrice,
				"stock":  item.Stock,
			},
			"user": map[string]interface{}{
				"id":       actor.ID,
				"name":     actor.Name,
				"username": actor.Username,
			},
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}

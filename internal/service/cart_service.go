package service

import (
	"errors"

	"go-pos-billing/internal/model"
	"go-pos-billing/internal/repository"
)

// CartService maintains the pending cart. All cart state is local-only.
type CartService interface {
	Lines() ([]model.CartLine, error)
	AddItem(itemID string, quantity int) ([]model.CartLine, error)
	UpdateQuantity(itemID string, quantity int) ([]model.CartLine, error)
	RemoveItem(itemID string) ([]model.CartLine, error)
	Clear() error
}

type cartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuRepository
}

func NewCartService(cartRepo repository.CartRepository, menuRepo repository.MenuRepository) CartService {
	return &cartService{cartRepo: cartRepo, menuRepo: menuRepo}
}

func (s *cartService) Lines() ([]model.CartLine, error) {
	return s.cartRepo.Lines()
}

// AddItem snapshots the item's current price into a new line, or merges
// the quantity into an existing line for the same item.
func (s *cartService) AddItem(itemID string, quantity int) ([]model.CartLine, error) {
	if quantity <= 0 {
		return nil, errors.New("quantity must be greater than zero")
	}

	item, err := s.menuRepo.FindByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &NotFoundError{Resource: "menu item", Identifier: itemID}
	}

	lines, err := s.cartRepo.Lines()
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity += quantity
			lines[i].Recalculate()
			merged = true
			break
		}
	}
	if !merged {
		line := model.CartLine{
			ItemID:    item.ID,
			Name:      item.Name,
			Quantity:  quantity,
			UnitPrice: item.DefaultPrice,
		}
		line.Recalculate()
		lines = append(lines, line)
	}

	if err := s.cartRepo.Save(lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (s *cartService) UpdateQuantity(itemID string, quantity int) ([]model.CartLine, error) {
	if quantity <= 0 {
		return s.RemoveItem(itemID)
	}

	lines, err := s.cartRepo.Lines()
	if err != nil {
		return nil, err
	}
	for i := range lines {
		if lines[i].ItemID == itemID {
			lines[i].Quantity = quantity
			lines[i].Recalculate()
			if err := s.cartRepo.Save(lines); err != nil {
				return nil, err
			}
			return lines, nil
		}
	}
	return nil, &NotFoundError{Resource: "cart line", Identifier: itemID}
}

func (s *cartService) RemoveItem(itemID string) ([]model.CartLine, error) {
	lines, err := s.cartRepo.Lines()
	if err != nil {
		return nil, err
	}
	filtered := lines[:0:0]
	for _, line := range lines {
		if line.ItemID != itemID {
			filtered = append(filtered, line)
		}
	}
	if err := s.cartRepo.Save(filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

func (s *cartService) Clear() error {
	return s.cartRepo.Clear()
}

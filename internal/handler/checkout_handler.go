package handler

import (
	"go-pos-billing/internal/middleware"
	"go-pos-billing/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
	cartService     service.CartService
}

func NewCheckoutHandler(checkoutService service.CheckoutService, cartService service.CartService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService, cartService: cartService}
}

type CheckoutRequest struct {
	Discount decimal.Decimal `json:"discount"`
}

// Checkout converts the cart into a transaction.
// POST /api/v1/checkout
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var req CheckoutRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
		}
	}

	actor := middleware.ActorFromContext(c)
	result, err := h.checkoutService.Checkout(c.Context(), req.Discount, actor)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Payment confirmed", "data": result})
}

// GET /api/v1/cart
func (h *CheckoutHandler) GetCart(c *fiber.Ctx) error {
	lines, err := h.cartService.Lines()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(lines)
}

type AddCartItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// POST /api/v1/cart/items
func (h *CheckoutHandler) AddCartItem(c *fiber.Ctx) error {
	var req AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	lines, err := h.cartService.AddItem(req.ItemID, req.Quantity)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(lines)
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// PUT /api/v1/cart/items/:itemId
func (h *CheckoutHandler) UpdateCartItem(c *fiber.Ctx) error {
	var req UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	lines, err := h.cartService.UpdateQuantity(c.Params("itemId"), req.Quantity)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(lines)
}

// DELETE /api/v1/cart/items/:itemId
func (h *CheckoutHandler) RemoveCartItem(c *fiber.Ctx) error {
	lines, err := h.cartService.RemoveItem(c.Params("itemId"))
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(lines)
}

// DELETE /api/v1/cart
func (h *CheckoutHandler) ClearCart(c *fiber.Ctx) error {
	if err := h.cartService.Clear(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"message": "Cart cleared"})
}

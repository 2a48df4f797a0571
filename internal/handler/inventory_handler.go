package handler

import (
	"go-pos-billing/internal/middleware"
	"go-pos-billing/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// GET /api/v1/adjustments
func (h *InventoryHandler) GetAdjustments(c *fiber.Ctx) error {
	entries, err := h.inventoryService.Adjustments(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(entries)
}

type AdjustStockRequest struct {
	MenuID        string `json:"menuId"`
	QuantityDelta int    `json:"quantityDelta"`
	Reason        string `json:"reason"`
}

// AdjustStock is the manual admin adjustment: positive deltas receive
// stock, negative deltas write it off.
// POST /api/v1/adjustments
func (h *InventoryHandler) AdjustStock(c *fiber.Ctx) error {
	var req AdjustStockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.MenuID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "menuId is required"})
	}
	if req.QuantityDelta == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "quantityDelta must not be zero"})
	}

	actor := middleware.ActorFromContext(c)
	item, err := h.inventoryService.ManualAdjust(c.Context(), req.MenuID, req.QuantityDelta, req.Reason, actor)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Stock adjusted", "data": item})
}

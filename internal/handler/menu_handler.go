package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"go-pos-billing/internal/middleware"
	"go-pos-billing/internal/model"
	"go-pos-billing/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type MenuHandler struct {
	catalogService service.CatalogService
}

func NewMenuHandler(catalogService service.CatalogService) *MenuHandler {
	return &MenuHandler{catalogService: catalogService}
}

// GET /api/v1/menu
func (h *MenuHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.catalogService.Items(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(items)
}

// POST /api/v1/menu
func (h *MenuHandler) CreateItem(c *fiber.Ctx) error {
	var input model.MenuItemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	actor := middleware.ActorFromContext(c)
	item, err := h.catalogService.AddItem(c.Context(), input, actor)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Item created", "data": item})
}

// PUT /api/v1/menu/:id
func (h *MenuHandler) UpdateItem(c *fiber.Ctx) error {
	var patch model.MenuItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	actor := middleware.ActorFromContext(c)
	item, err := h.catalogService.UpdateItem(c.Context(), c.Params("id"), patch, actor)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Item updated", "data": item})
}

// DELETE /api/v1/menu/:id
func (h *MenuHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteItem(c.Context(), c.Params("id")); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}

// ImportItems ingests a CSV body of menu rows. The mode query parameter
// picks merge (default) or replace.
// POST /api/v1/menu/import?mode=merge|replace
func (h *MenuHandler) ImportItems(c *fiber.Ctx) error {
	mode := service.ImportMode(c.Query("mode", string(service.ImportMerge)))

	rows, err := parseMenuCSV(c.Body())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if len(rows) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "no rows to import"})
	}

	items, err := h.catalogService.Import(c.Context(), rows, mode)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": fmt.Sprintf("%d rows imported", len(rows)), "data": items})
}

// parseMenuCSV reads rows of name,image,defaultPrice,stock[,menuId]. A
// leading header row is skipped.
func parseMenuCSV(body []byte) ([]model.MenuItemInput, error) {
	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV: %w", err)
	}

	rows := make([]model.MenuItemInput, 0, len(records))
	for i, record := range records {
		if i == 0 && len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "name") {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("row %d: expected at least name,image,defaultPrice", i+1)
		}

		price, err := decimal.NewFromString(strings.TrimSpace(record[2]))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q", i+1, record[2])
		}

		row := model.MenuItemInput{
			Name:         strings.TrimSpace(record[0]),
			Image:        strings.TrimSpace(record[1]),
			DefaultPrice: price,
		}
		if len(record) > 3 && strings.TrimSpace(record[3]) != "" {
			stock, err := strconv.Atoi(strings.TrimSpace(record[3]))
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid stock %q", i+1, record[3])
			}
			row.Stock = stock
		}
		if len(record) > 4 {
			row.MenuID = strings.TrimSpace(record[4])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

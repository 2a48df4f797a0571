package handler

import (
	"time"

	"go-pos-billing/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GET /api/v1/transactions?month=2006-01&from=2006-01-02&to=2006-01-31&item=Name
func (h *ReportHandler) GetTransactions(c *fiber.Ctx) error {
	filter, err := parseReportFilter(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	txs, err := h.reportService.Transactions(c.Context(), filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(txs)
}

// GET /api/v1/transactions/summary
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	filter, err := parseReportFilter(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	summary, err := h.reportService.Summary(c.Context(), filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(summary)
}

func parseReportFilter(c *fiber.Ctx) (service.ReportFilter, error) {
	filter := service.ReportFilter{
		Month:    c.Query("month"),
		ItemName: c.Query("item"),
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filter, fiber.NewError(400, "invalid from date, expected YYYY-MM-DD")
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filter, fiber.NewError(400, "invalid to date, expected YYYY-MM-DD")
		}
		filter.To = &t
	}

	// A date range overrides the month shortcut.
	if filter.From != nil || filter.To != nil {
		filter.Month = ""
	}
	return filter, nil
}

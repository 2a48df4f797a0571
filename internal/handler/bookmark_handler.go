package handler

import (
	"go-pos-billing/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type BookmarkHandler struct {
	bookmarkRepo repository.BookmarkRepository
}

func NewBookmarkHandler(bookmarkRepo repository.BookmarkRepository) *BookmarkHandler {
	return &BookmarkHandler{bookmarkRepo: bookmarkRepo}
}

// GET /api/v1/bookmarks
func (h *BookmarkHandler) GetBookmarks(c *fiber.Ctx) error {
	bookmarks, err := h.bookmarkRepo.List()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if bookmarks == nil {
		bookmarks = []string{}
	}
	return c.JSON(bookmarks)
}

// POST /api/v1/bookmarks/:menuId/toggle
func (h *BookmarkHandler) ToggleBookmark(c *fiber.Ctx) error {
	bookmarked, err := h.bookmarkRepo.Toggle(c.Params("menuId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{"menuId": c.Params("menuId"), "bookmarked": bookmarked})
}

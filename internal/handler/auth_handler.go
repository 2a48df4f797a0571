package handler

import (
	"go-pos-billing/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "username and password are required"})
	}

	resp, err := h.authService.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(resp)
}

type AdminUnlockRequest struct {
	Password string `json:"password"`
}

// AdminUnlock checks the admin-panel password, which is separate from
// any login account.
// POST /api/v1/auth/admin/unlock
func (h *AuthHandler) AdminUnlock(c *fiber.Ctx) error {
	var req AdminUnlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	ok, err := h.authService.CheckAdminPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "incorrect admin password"})
	}
	return c.JSON(fiber.Map{"message": "Admin panel unlocked"})
}

type SetAdminPasswordRequest struct {
	Password string `json:"password"`
}

// PUT /api/v1/auth/admin/password
func (h *AuthHandler) SetAdminPassword(c *fiber.Ctx) error {
	var req SetAdminPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.authService.SetAdminPassword(req.Password); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Admin password updated"})
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eesaa/retail-suite/internal/application/auth"
	"github.com/eesaa/retail-suite/internal/application/dto"
)

// AuthHandler handles login and the operator roster.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Login(in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(resp)
}

// ListUsers GET /api/auth/users (public: the login screen shows the
// selectable profiles before anyone is signed in)
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListUsers())
}

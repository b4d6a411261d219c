package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-auth/internal/auth"
	apperrors "github.com/spec-kit/storefront-auth/pkg/util/errorutil"
)

// MeHandler exposes the resolved principal of an authenticated request.
type MeHandler struct{}

// NewMeHandler constructs handler.
func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// Show handles GET /me.
func (h *MeHandler) Show(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"kind":        principal.Kind,
			"subject":     principal.Subject(),
			"authorities": principal.Authorities(),
		},
	})
}

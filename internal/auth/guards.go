package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront-auth/internal/domain"
	apperrors "github.com/spec-kit/storefront-auth/pkg/util/errorutil"
)

// RequireUser ensures an end-user principal is attached.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Kind != domain.SubjectKindUser {
			return apperrors.NewForbidden("user principal required")
		}
		return c.Next()
	}
}

// RequireAdmin ensures an admin principal is attached.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.Kind != domain.SubjectKindAdmin {
			return apperrors.NewForbidden("admin principal required")
		}
		return c.Next()
	}
}

// RequireAuthenticated ensures any principal is attached.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}

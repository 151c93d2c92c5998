package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"
)

// NewAdminGate returns a middleware that guards the arbitration routes
// with a shared token. Full authentication lives outside this service;
// the gate only keeps the dispute pool off the public surface. An empty
// configured token disables the admin routes entirely.
func NewAdminGate(token string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if token == "" {
			return ErrorResponse(c, fiber.StatusServiceUnavailable, "ADMIN_DISABLED",
				"Admin routes are not configured")
		}
		got := c.Get("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED",
				"Invalid admin token")
		}
		return c.Next()
	}
}

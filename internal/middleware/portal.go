package middleware

import (
	"context"

	common_models "go-campfire/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

// PortalMiddleware extracts the X-Campfire-Portal header and adds it to the
// context so downstream services know which portal the shell is rendering.
func PortalMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		portal := c.Get("X-Campfire-Portal")
		if portal != "" {
			ctx := context.WithValue(c.UserContext(), common_models.PortalKey, portal)
			c.SetUserContext(ctx)
		}
		return c.Next()
	}
}

package middleware

import (
	"strings"

	"github.com/arnavk03/staffdir/internal/apperror"
	"github.com/arnavk03/staffdir/internal/services"
	"github.com/gofiber/fiber/v2"
)

// IdentityKey is the ctx locals key under which the authenticated identity is
// stored for downstream handlers.
const IdentityKey = "identity"

// RequireAuth returns a guard that validates the bearer token and passes the
// decoded identity down the pipeline.
func RequireAuth(tokens *services.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Access denied. No token provided."})
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token format"})
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			if ae, ok := apperror.From(err); ok {
				return c.Status(ae.StatusCode()).JSON(fiber.Map{"message": ae.Message})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
		}

		c.Locals(IdentityKey, identity)
		return c.Next()
	}
}

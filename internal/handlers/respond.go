package handlers

import (
	"github.com/arnavk03/staffdir/internal/apperror"
	"github.com/gofiber/fiber/v2"
)

// respondError converts any error into the uniform JSON error body. Unknown
// errors become a generic 500 without leaking internals.
func respondError(c *fiber.Ctx, err error) error {
	if ae, ok := apperror.From(err); ok {
		body := fiber.Map{"message": ae.Message}
		if len(ae.Details) > 0 {
			body["errors"] = ae.Details
		}
		return c.Status(ae.StatusCode()).JSON(body)
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Server error"})
}

package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/nizs/delizia-server/internal/models"
)

// RoleLookup resolves the stored role for an email. An empty role with a nil
// error means the user exists without a role; a not-found user also resolves
// to an empty role.
type RoleLookup func(ctx context.Context, email string) (string, error)

// VerifyAdmin gates a route on the verified caller's stored role being admin.
// Always mounted after VerifyToken. The lookup hits the user store on every
// request, so a role revoked mid-session takes effect on the very next call.
func VerifyAdmin(lookup RoleLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := VerifiedEmail(c)

		role, err := lookup(c.Context(), email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to look up user role"})
		}
		if role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
		}

		return c.Next()
	}
}

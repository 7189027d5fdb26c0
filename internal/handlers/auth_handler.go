package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nizs/delizia-server/internal/services"
)

// IssueTokenHandler signs whatever identity payload the client sends into a
// one-hour bearer token. There is deliberately no check that the email maps
// to a registered user; the token only certifies the claim itself.
func IssueTokenHandler(c *fiber.Ctx) error {
	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	token, err := services.IssueToken(payload)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to sign token"})
	}

	return c.JSON(fiber.Map{"token": token})
}

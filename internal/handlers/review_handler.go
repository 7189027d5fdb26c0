package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nizs/delizia-server/internal/services"
)

// ListReviewsHandler returns every review
func ListReviewsHandler(c *fiber.Ctx) error {
	reviews, err := services.ListReviews(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to fetch reviews"})
	}
	return c.JSON(reviews)
}

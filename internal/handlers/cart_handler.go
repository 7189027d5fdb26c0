package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nizs/delizia-server/internal/models"
	"github.com/nizs/delizia-server/internal/services"
)

// ListCartHandler returns the cart items for the email in the query string
func ListCartHandler(c *fiber.Ctx) error {
	items, err := services.ListCartItems(c.Context(), c.Query("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to fetch cart"})
	}
	return c.JSON(items)
}

// AddCartItemHandler inserts one cart item
func AddCartItemHandler(c *fiber.Ctx) error {
	var item models.CartItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	result, err := services.AddCartItem(c.Context(), item)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to add cart item"})
	}

	return c.JSON(fiber.Map{"insertedId": result.InsertedID})
}

// DeleteCartItemHandler removes one cart item by id
func DeleteCartItemHandler(c *fiber.Ctx) error {
	result, err := services.DeleteCartItem(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "failed to delete cart item"})
	}

	return c.JSON(fiber.Map{"deletedCount": result.DeletedCount})
}

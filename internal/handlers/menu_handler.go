package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nizs/delizia-server/internal/models"
	"github.com/nizs/delizia-server/internal/services"
)

// ListMenuHandler returns the full menu
func ListMenuHandler(c *fiber.Ctx) error {
	items, err := services.ListMenu(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to fetch menu"})
	}
	return c.JSON(items)
}

// GetMenuItemHandler returns one menu item, or null when it doesn't exist
func GetMenuItemHandler(c *fiber.Ctx) error {
	item, err := services.GetMenuItem(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid menu id"})
	}
	return c.JSON(item)
}

// AddMenuItemHandler inserts a menu item. Admin gated at the route.
func AddMenuItemHandler(c *fiber.Ctx) error {
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	result, err := services.AddMenuItem(c.Context(), item)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to add menu item"})
	}

	return c.JSON(fiber.Map{"insertedId": result.InsertedID})
}

// UpdateMenuItemHandler overwrites a menu item's editable fields
func UpdateMenuItemHandler(c *fiber.Ctx) error {
	var item models.MenuItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	result, err := services.UpdateMenuItem(c.Context(), c.Params("id"), item)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "failed to update menu item"})
	}

	return c.JSON(fiber.Map{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

// DeleteMenuItemHandler removes a menu item by id
func DeleteMenuItemHandler(c *fiber.Ctx) error {
	result, err := services.DeleteMenuItem(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "failed to delete menu item"})
	}

	return c.JSON(fiber.Map{"deletedCount": result.DeletedCount})
}

// UploadMenuImageHandler stores an image for a menu item and returns its URL
func UploadMenuImageHandler(c *fiber.Ctx) error {
	imageURL, err := services.UploadMenuImage(c, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"image": imageURL})
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/nizs/delizia-server/internal/middleware"
	"github.com/nizs/delizia-server/internal/models"
	"github.com/nizs/delizia-server/internal/services"
)

// ListUsersHandler returns every user. Admin gated at the route.
func ListUsersHandler(c *fiber.Ctx) error {
	users, err := services.ListUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to fetch users"})
	}
	return c.JSON(users)
}

// AdminStatusHandler answers "is this email an admin" for the caller's own
// email only. A mismatched email is forbidden; "not admin" is a plain false.
func AdminStatusHandler(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.VerifiedEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
	}

	admin, err := services.IsAdmin(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to look up user"})
	}

	return c.JSON(fiber.Map{"admin": admin})
}

// RegisterUserHandler stores a new user; registering an email twice is a
// no-op reported in the body, not an error status.
func RegisterUserHandler(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	result, err := services.RegisterUser(c.Context(), user)
	if errors.Is(err, services.ErrUserExists) {
		return c.JSON(fiber.Map{"message": "user already exists", "insertedId": nil})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to register user"})
	}

	return c.JSON(fiber.Map{"insertedId": result.InsertedID})
}

// PromoteUserHandler sets the target user's role to admin
func PromoteUserHandler(c *fiber.Ctx) error {
	result, err := services.PromoteToAdmin(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "failed to update user"})
	}

	return c.JSON(fiber.Map{
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
	})
}

// DeleteUserHandler removes a user by id
func DeleteUserHandler(c *fiber.Ctx) error {
	result, err := services.DeleteUser(c.Context(), c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "failed to delete user"})
	}

	return c.JSON(fiber.Map{"deletedCount": result.DeletedCount})
}

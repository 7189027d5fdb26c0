package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nizs/delizia-server/internal/middleware"
	"github.com/nizs/delizia-server/internal/models"
	"github.com/nizs/delizia-server/internal/services"
)

// CreatePaymentIntentHandler asks the payment service for an intent over the
// posted price and hands the client secret back for client-side completion
func CreatePaymentIntentHandler(c *fiber.Ctx) error {
	var request struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	clientSecret, err := services.CreatePaymentIntent(request.Price)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to create payment intent"})
	}

	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// ListPaymentsHandler returns the caller's own payment history; asking for
// anyone else's email is forbidden
func ListPaymentsHandler(c *fiber.Ctx) error {
	email := c.Params("email")
	if email != middleware.VerifiedEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "forbidden access"})
	}

	payments, err := services.ListPayments(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to fetch payments"})
	}
	return c.JSON(payments)
}

// SettlePaymentHandler records a completed payment and prunes its cart items
// in one transaction, returning both result counts
func SettlePaymentHandler(c *fiber.Ctx) error {
	var payment models.Payment
	if err := c.BodyParser(&payment); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	result, err := services.Settle(c.Context(), payment)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to record payment"})
	}

	return c.JSON(result)
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nizs/delizia-server/internal/services"
)

// VerifyToken validates the bearer token and stores the verified email in the
// request context. Missing, malformed, mis-signed and expired tokens are all
// rejected the same way so a caller cannot tell them apart.
func VerifyToken(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
	}

	// Expected form "Bearer <token>"
	parts := strings.Fields(authHeader)
	if len(parts) < 2 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		return services.SigningSecret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized access"})
	}

	email, _ := claims["email"].(string)
	c.Locals("email", email)

	return c.Next()
}

// VerifiedEmail reads the email attached by VerifyToken.
func VerifiedEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("email").(string)
	return email
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/nizs/delizia-server/internal/middleware"
	"github.com/nizs/delizia-server/internal/services"
)

func TestIssueTokenHandler(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	app := fiber.New()
	app.Post("/jwt", IssueTokenHandler)

	payload, _ := json.Marshal(map[string]string{"email": "a@x.com"})
	req := httptest.NewRequest(http.MethodPost, "/jwt", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Token == "" {
		t.Fatal("no token in response")
	}

	token, err := jwt.Parse(body.Token, func(token *jwt.Token) (interface{}, error) {
		return services.SigningSecret(), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token failed verification: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if email, _ := claims["email"].(string); email != "a@x.com" {
		t.Errorf("email claim = %q, want %q", email, "a@x.com")
	}
}

// The self-only routes must refuse a path email that differs from the token's
// email before touching the user or payment stores.
func TestSelfOnlyRoutesRejectMismatchedEmail(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	app := fiber.New()
	app.Get("/users/admin/:email", middleware.VerifyToken, AdminStatusHandler)
	app.Get("/payments/:email", middleware.VerifyToken, ListPaymentsHandler)

	token, err := services.IssueToken(map[string]interface{}{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	for _, path := range []string{"/users/admin/b@x.com", "/payments/b@x.com"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request to %s failed: %v", path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("%s: status = %d, want %d", path, resp.StatusCode, http.StatusForbidden)
		}
	}
}

func TestSelfOnlyRoutesRejectMissingToken(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	app := fiber.New()
	app.Get("/payments/:email", middleware.VerifyToken, ListPaymentsHandler)

	req := httptest.NewRequest(http.MethodGet, "/payments/a@x.com", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}

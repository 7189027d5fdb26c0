package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	tokenString, err := IssueToken(map[string]interface{}{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}
	if tokenString == "" {
		t.Fatal("IssueToken returned an empty token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return SigningSecret(), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token failed verification: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not a map")
	}
	if email, _ := claims["email"].(string); email != "a@x.com" {
		t.Errorf("email claim = %q, want %q", email, "a@x.com")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("missing exp claim: %v", err)
	}
	lifetime := time.Until(exp.Time)
	if lifetime > TokenLifetime || lifetime < TokenLifetime-time.Minute {
		t.Errorf("token lifetime = %v, want about %v", lifetime, TokenLifetime)
	}
}

func TestIssueTokenCallerCannotOverrideLifetime(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	tokenString, err := IssueToken(map[string]interface{}{
		"email": "a@x.com",
		"exp":   time.Now().Add(365 * 24 * time.Hour).Unix(),
		"iat":   time.Now().Add(-24 * time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return SigningSecret(), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token failed verification: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("missing exp claim: %v", err)
	}
	if lifetime := time.Until(exp.Time); lifetime > TokenLifetime {
		t.Errorf("token lifetime = %v, caller-supplied exp won over the %v bound", lifetime, TokenLifetime)
	}

	iat, err := claims.GetIssuedAt()
	if err != nil {
		t.Fatalf("missing iat claim: %v", err)
	}
	if age := time.Since(iat.Time); age > time.Minute || age < 0 {
		t.Errorf("iat is %v old, caller-supplied iat won", age)
	}
}

func TestIssueTokenRejectedByOtherSecret(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_SECRET", "test-secret")

	tokenString, err := IssueToken(map[string]interface{}{"email": "a@x.com"})
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("a different secret"), nil
	})
	if err == nil && token.Valid {
		t.Fatal("token verified against the wrong secret")
	}
}

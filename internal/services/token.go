package services

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime bounds every issued token.
const TokenLifetime = time.Hour

// SigningSecret returns the process-wide token signing secret. Read per call
// rather than captured at init so a rotated environment takes effect without
// a restart.
func SigningSecret() []byte {
	return []byte(os.Getenv("ACCESS_TOKEN_SECRET"))
}

// IssueToken signs the caller's identity payload into a bearer token that
// expires one hour from now. The payload is not checked against the user
// store; possession of the token only proves what the caller claimed.
func IssueToken(payload map[string]interface{}) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	// Set last so a caller-supplied exp or iat can't stretch the lifetime
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(TokenLifetime).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(SigningSecret())
}

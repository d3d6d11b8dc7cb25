package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims carried by a session token. Tokens are
// issued by the external auth provider; user ids are opaque strings.
type SessionClaims struct {
	UserID string
	jwt.RegisteredClaims
}

// TokenService validates session tokens shared with the auth provider.
// Issuing is exposed for development tooling and tests.
type TokenService interface {
	// IssueToken creates a signed session token for the user.
	IssueToken(userID string, ttl time.Duration) (string, error)

	// ValidateToken checks the token signature and expiry and extracts
	// the claims.
	ValidateToken(tokenString string) (*SessionClaims, error)
}

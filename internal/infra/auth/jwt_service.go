// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campusmap/config"
	"campusmap/internal/domain/service"
	"campusmap/internal/errors"
)

// jwtService validates HS256 session tokens against the secret shared with
// the external auth provider.
type jwtService struct {
	accessSecret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("access token secret must be provided")
	}

	return &jwtService{accessSecret: cfg.SecretKey.Access}, nil
}

// IssueToken creates a signed session token. The auth provider is the
// normal issuer; this exists for development tooling and tests.
func (s *jwtService) IssueToken(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// ValidateToken checks the token signature and expiry and extracts the
// claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Reject anything but the HMAC family we issue with.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse session token")
	}
	if !token.Valid {
		return nil, errors.New("session token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("unexpected session token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("session token has no subject")
	}

	return &service.SessionClaims{UserID: sub}, nil
}

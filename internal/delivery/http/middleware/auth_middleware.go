package middleware

import (
	"net/http"
	"strings"

	"campusmap/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// KeyUserID is the echo.Context key holding the authenticated user id.
const KeyUserID = "userID"

// AuthMiddleware validates bearer session tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Authorization header and stores the user id
// on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		c.Set(KeyUserID, claims.UserID)

		return next(c)
	}
}

// AuthenticatedUserID returns the user id set by Authenticate, or false
// when the request is unauthenticated.
func AuthenticatedUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(KeyUserID).(string)
	if !ok || userID == "" {
		return "", false
	}

	return userID, true
}

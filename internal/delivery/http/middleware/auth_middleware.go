// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"net/http"
	"strings"

	"roster/internal/delivery/http/response"
	"roster/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys under which the authenticated identity is stored for handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyOrgIDs = "orgIDs"
)

// AuthMiddleware validates bearer access tokens on protected routes.
type AuthMiddleware struct {
	tokenService service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenService service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate parses the Authorization header, verifies the access token,
// and stores the subject's ID and organisation memberships on the request
// context. Every failure collapses into the same 401 so clients learn
// nothing about why a token was rejected.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "Unauthorized")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Error(c, http.StatusUnauthorized, "Unauthorized")
		}

		claims, err := m.tokenService.Validate(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "Unauthorized")
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyOrgIDs, claims.OrgIDs)

		return next(c)
	}
}

// Package middleware contains the echo middleware for the HTTP delivery.
package middleware

import (
	"strconv"
	"strings"

	"terraverde/config"
	"terraverde/internal/domain/entity"
	domainerrors "terraverde/internal/domain/errors"
	"terraverde/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	cfg      *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, cfg: cfg}
}

// Authenticate is the core middleware function that validates the JWT access
// token. Failures are returned as taxonomy errors so the central error
// handler renders the same envelope every other failure carries.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthenticated.WithDetails("Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString, m.cfg.SecretKey.Access)
		if err != nil || !token.Valid {
			return domainerrors.ErrInvalidToken.WithDetails("Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return domainerrors.ErrInvalidToken.WithDetails("Failed to parse token claims")
		}

		userIDStr, ok := claims["sub"].(string)
		if !ok {
			return domainerrors.ErrInvalidToken.WithDetails("User ID missing from token")
		}
		userID, err := strconv.ParseUint(userIDStr, 10, 64)
		if err != nil {
			return domainerrors.ErrInvalidToken.WithDetails("Invalid user ID format in token")
		}

		role, _ := claims["role"].(string)

		// Set user info on the context for handlers to use
		c.Set(ContextKeyUserID, uint(userID))
		c.Set(ContextKeyRole, role)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok || role == "" {
				return domainerrors.ErrForbidden.WithDetails("role information missing")
			}

			if role != requiredRole {
				return domainerrors.ErrForbidden.WithDetails("require '" + requiredRole + "' role")
			}

			return next(c)
		}
	}
}

// CallerID returns the authenticated user ID set by Authenticate.
func CallerID(c echo.Context) (uint, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uint)

	return userID, ok
}

// CallerIsAdmin reports whether the authenticated caller carries the admin
// role.
func CallerIsAdmin(c echo.Context) bool {
	role, _ := c.Get(ContextKeyRole).(string)

	return role == entity.RoleAdmin.String()
}

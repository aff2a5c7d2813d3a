// Package service defines the interfaces for infrastructure services the
// application layer depends on.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService abstracts session token generation and validation.
type TokenService interface {
	// GenerateTokens creates an access/refresh token pair for a user. The
	// role travels in the access token for stateless authorization.
	GenerateTokens(userID uint, role string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)

	// GetRefreshTokenDuration returns the configured refresh token TTL.
	GetRefreshTokenDuration() time.Duration
}

// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
)

// AuthUsecase defines the interface for authentication business operations.
type AuthUsecase interface {
	// GoogleSignIn verifies a Google-issued ID token, upserts the user keyed
	// by the provider identity and returns a session token pair.
	GoogleSignIn(ctx context.Context, input *GoogleSignInInput) (*AuthResult, error)

	// RefreshToken exchanges a valid refresh token for a new token pair.
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResult, error)
}

// --- Input DTOs ---

// GoogleSignInInput defines the data required for a Google sign-in.
type GoogleSignInInput struct {
	IDToken string `json:"id_token" validate:"required"`
}

// --- Output DTOs ---

// AuthResult carries the signed-in user together with a fresh token pair.
type AuthResult struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}

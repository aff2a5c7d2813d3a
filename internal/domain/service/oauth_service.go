package service

import "context"

// OAuthUser is the identity the external provider vouches for on a
// successful sign-in.
type OAuthUser struct {
	ID          string // Opaque provider ID; Users are keyed by it.
	Email       string
	Name        string
	Picture     string
	LoginMethod string
}

// OAuthAuthService verifies provider-issued ID tokens.
type OAuthAuthService interface {
	// VerifyIDToken validates the token and returns the asserted identity.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}

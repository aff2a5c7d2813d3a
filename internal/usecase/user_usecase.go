package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
)

// UserAdminUsecase defines the back-office operations over user accounts.
type UserAdminUsecase interface {
	// ListUsers returns every account, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateAccess changes a user's role and/or access level.
	UpdateAccess(ctx context.Context, userID uint, input *UpdateUserAccessInput) error
}

// --- Input DTOs ---

// UpdateUserAccessInput defines the data required to change a user's role or
// access level.
type UpdateUserAccessInput struct {
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
	AccessLevel *string `json:"access_level,omitempty" validate:"omitempty,oneof=free login premium"`
}

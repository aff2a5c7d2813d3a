package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)

	// UpdateProfile writes the provided fields only; nil fields are left
	// untouched.
	UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*entity.User, error)
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update a user profile.
// Pointer fields distinguish "not sent" from zero values.
type UpdateProfileInput struct {
	Name               *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone              *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Address            *string `json:"address,omitempty"`
	Bio                *string `json:"bio,omitempty"`
	PictureURL         *string `json:"picture_url,omitempty" validate:"omitempty,url"`
	EmailNotifications *bool   `json:"email_notifications,omitempty"`
	OrderUpdates       *bool   `json:"order_updates,omitempty"`
}

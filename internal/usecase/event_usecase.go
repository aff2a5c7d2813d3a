package usecase

import (
	"context"
	"time"

	"terraverde/internal/domain/entity"
)

// EventUsecase defines the interface for community events.
type EventUsecase interface {
	// List returns events ordered by start time. Cancelled events are
	// included only for admins.
	List(ctx context.Context, isAdmin bool) ([]*entity.Event, error)

	Get(ctx context.Context, id uint) (*entity.Event, error)
	Create(ctx context.Context, input *CreateEventInput) (*entity.Event, error)
	Update(ctx context.Context, id uint, input *UpdateEventInput) error
	Delete(ctx context.Context, id uint) error
}

// --- Input DTOs ---

// CreateEventInput defines the data required to create an event.
type CreateEventInput struct {
	TitlePt       string    `json:"title_pt" validate:"required,max=255"`
	TitleEn       string    `json:"title_en" validate:"required,max=255"`
	DescriptionPt string    `json:"description_pt"`
	DescriptionEn string    `json:"description_en"`
	Location      string    `json:"location" validate:"max=255"`
	StartsAt      time.Time `json:"starts_at" validate:"required"`
	Status        string    `json:"status" validate:"omitempty,oneof=upcoming past cancelled"`
}

// UpdateEventInput defines a partial event update.
type UpdateEventInput struct {
	TitlePt       *string    `json:"title_pt,omitempty" validate:"omitempty,max=255"`
	TitleEn       *string    `json:"title_en,omitempty" validate:"omitempty,max=255"`
	DescriptionPt *string    `json:"description_pt,omitempty"`
	DescriptionEn *string    `json:"description_en,omitempty"`
	Location      *string    `json:"location,omitempty" validate:"omitempty,max=255"`
	StartsAt      *time.Time `json:"starts_at,omitempty"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=upcoming past cancelled"`
}

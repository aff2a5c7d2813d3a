package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
)

// OfferingUsecase defines the interface for bookable agricultural services.
type OfferingUsecase interface {
	// List returns offerings. Inactive ones are included only for admins.
	List(ctx context.Context, isAdmin bool) ([]*entity.ServiceOffering, error)

	Get(ctx context.Context, id uint) (*entity.ServiceOffering, error)
	Create(ctx context.Context, input *CreateOfferingInput) (*entity.ServiceOffering, error)
	Update(ctx context.Context, id uint, input *UpdateOfferingInput) error
	Delete(ctx context.Context, id uint) error
}

// --- Input DTOs ---

// CreateOfferingInput defines the data required to create a service offering.
type CreateOfferingInput struct {
	TitlePt       string `json:"title_pt" validate:"required,max=255"`
	TitleEn       string `json:"title_en" validate:"required,max=255"`
	DescriptionPt string `json:"description_pt"`
	DescriptionEn string `json:"description_en"`
	Price         int64  `json:"price" validate:"gte=0"`
	Duration      string `json:"duration" validate:"max=64"`
	Active        *bool  `json:"active,omitempty"`
}

// UpdateOfferingInput defines a partial service offering update.
type UpdateOfferingInput struct {
	TitlePt       *string `json:"title_pt,omitempty" validate:"omitempty,max=255"`
	TitleEn       *string `json:"title_en,omitempty" validate:"omitempty,max=255"`
	DescriptionPt *string `json:"description_pt,omitempty"`
	DescriptionEn *string `json:"description_en,omitempty"`
	Price         *int64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Duration      *string `json:"duration,omitempty" validate:"omitempty,max=64"`
	Active        *bool   `json:"active,omitempty"`
}

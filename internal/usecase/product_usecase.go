package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
)

// ProductUsecase defines the interface for catalog business operations.
type ProductUsecase interface {
	// List returns catalog products. Inactive products are included only
	// when the caller is an admin.
	List(ctx context.Context, isAdmin bool) ([]*entity.Product, error)

	// Get returns one product together with its review aggregate.
	Get(ctx context.Context, id uint) (*ProductDetail, error)

	Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// Update applies a partial update; nil fields are left untouched.
	Update(ctx context.Context, id uint, input *UpdateProductInput) error

	Delete(ctx context.Context, id uint) error
}

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	NamePt              string `json:"name_pt" validate:"required,max=255"`
	NameEn              string `json:"name_en" validate:"required,max=255"`
	DescriptionPt       string `json:"description_pt"`
	DescriptionEn       string `json:"description_en"`
	Price               int64  `json:"price" validate:"gte=0"`
	Stock               int    `json:"stock" validate:"gte=0"`
	SustainabilityScore int    `json:"sustainability_score" validate:"gte=0,lte=100"`
	Category            string `json:"category" validate:"max=64"`
	ImageURL            string `json:"image_url" validate:"omitempty,url"`
	Featured            bool   `json:"featured"`
	Active              *bool  `json:"active,omitempty"`
}

// UpdateProductInput defines a partial catalog update.
type UpdateProductInput struct {
	NamePt              *string `json:"name_pt,omitempty" validate:"omitempty,max=255"`
	NameEn              *string `json:"name_en,omitempty" validate:"omitempty,max=255"`
	DescriptionPt       *string `json:"description_pt,omitempty"`
	DescriptionEn       *string `json:"description_en,omitempty"`
	Price               *int64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock               *int    `json:"stock,omitempty" validate:"omitempty,gte=0"`
	SustainabilityScore *int    `json:"sustainability_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	Category            *string `json:"category,omitempty" validate:"omitempty,max=64"`
	ImageURL            *string `json:"image_url,omitempty" validate:"omitempty,url"`
	Featured            *bool   `json:"featured,omitempty"`
	Active              *bool   `json:"active,omitempty"`
}

// --- Output DTOs ---

// ProductDetail pairs a product with its on-read review aggregate.
type ProductDetail struct {
	Product *entity.Product           `json:"product"`
	Rating  *repository.ProductRating `json:"rating"`
}

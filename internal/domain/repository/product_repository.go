package repository

import (
	"context"
	"errors"

	"terraverde/internal/domain/entity"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product by ID.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)

	// List returns products, newest first. When includeInactive is false
	// only active products are returned.
	List(ctx context.Context, includeInactive bool) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update writes the supplied fields only; omitted fields retain their
	// prior values. Returns ErrProductNotFound when no row matches.
	Update(ctx context.Context, id uint, fields map[string]any) error

	// Delete hard-deletes the product. Returns ErrProductNotFound when no
	// row was affected.
	Delete(ctx context.Context, id uint) error

	// Search returns active products whose bilingual name or description
	// matches the query, case-insensitively.
	Search(ctx context.Context, query string) ([]*entity.Product, error)
}

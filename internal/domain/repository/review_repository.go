package repository

import (
	"context"
	"errors"

	"terraverde/internal/domain/entity"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ProductRating is the on-read aggregate over a product's review set.
type ProductRating struct {
	Average float64
	Count   int64
}

// ReviewRepository defines the operations for review persistence.
type ReviewRepository interface {
	ListByProduct(ctx context.Context, productID uint) ([]*entity.Review, error)
	FindByID(ctx context.Context, id uint) (*entity.Review, error)
	Create(ctx context.Context, review *entity.Review) error

	// Delete removes the review. Returns ErrReviewNotFound when no row was
	// affected.
	Delete(ctx context.Context, id uint) error

	// RatingForProduct computes the arithmetic mean over the live review
	// set. A product with zero reviews yields {Average: 0, Count: 0}.
	RatingForProduct(ctx context.Context, productID uint) (*ProductRating, error)
}

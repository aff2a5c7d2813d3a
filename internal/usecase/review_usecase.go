package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
)

// ReviewUsecase defines the interface for product reviews.
type ReviewUsecase interface {
	// ListForProduct returns a product's reviews with the on-read aggregate.
	ListForProduct(ctx context.Context, productID uint) (*ProductReviews, error)

	// Create adds a review for an existing product. Rating is 1-5.
	Create(ctx context.Context, userID uint, input *CreateReviewInput) (*entity.Review, error)

	// Delete removes a review. Owners delete their own; admins delete any.
	Delete(ctx context.Context, reviewID, callerID uint, callerIsAdmin bool) error
}

// --- Input DTOs ---

// CreateReviewInput defines the data required to create a review.
type CreateReviewInput struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}

// --- Output DTOs ---

// ProductReviews pairs the review list with the aggregate rating.
type ProductReviews struct {
	Reviews []*entity.Review          `json:"reviews"`
	Rating  *repository.ProductRating `json:"rating"`
}

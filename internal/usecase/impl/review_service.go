package impl

import (
	"context"
	"log/slog"

	"terraverde/internal/domain/entity"
	domainerrors "terraverde/internal/domain/errors"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/usecase"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(
	reviewRepo repository.ReviewRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListForProduct returns the review list with the on-read aggregate.
func (srv *reviewService) ListForProduct(ctx context.Context, productID uint) (*usecase.ProductReviews, error) {
	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list reviews")
	}

	rating, err := srv.reviewRepo.RatingForProduct(ctx, productID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to compute product rating")
	}

	return &usecase.ProductReviews{Reviews: reviews, Rating: rating}, nil
}

// Create adds a review for an existing product.
func (srv *reviewService) Create(ctx context.Context, userID uint, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.NewValidationError("rating must be between 1 and 5")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("reviewed product does not exist")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load reviewed product")
	}

	review := &entity.Review{
		UserID:    userID,
		ProductID: input.ProductID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}
	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	srv.logger.Info("review created", "reviewID", review.ID, "productID", input.ProductID)

	return review, nil
}

// Delete removes a review, enforcing ownership for non-admin callers.
func (srv *reviewService) Delete(ctx context.Context, reviewID, callerID uint, callerIsAdmin bool) error {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("review not found")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to load review")
	}

	if !callerIsAdmin && review.UserID != callerID {
		return domainerrors.ErrForbidden.WrapMessage("review belongs to another user")
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("review delete failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete review")
	}

	return nil
}

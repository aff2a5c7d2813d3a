package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"terraverde/internal/domain/entity"
	domainerrors "terraverde/internal/domain/errors"
	"terraverde/internal/domain/repository"
	mockRepo "terraverde/internal/mocks/repository"
	"terraverde/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service     usecase.ReviewUsecase
	reviewRepo  *mockRepo.MockReviewRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewReviewService(reviewRepo, productRepo, logger)

	return reviewServiceFixtures{
		service:     service,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
	}
}

func TestReviewService_ListForProduct_AveragesLiveReviews(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviews := []*entity.Review{
		{ID: 1, ProductID: 3, Rating: 5},
		{ID: 2, ProductID: 3, Rating: 4},
		{ID: 3, ProductID: 3, Rating: 3},
	}

	fx.reviewRepo.EXPECT().ListByProduct(ctx, uint(3)).Return(reviews, nil)
	fx.reviewRepo.EXPECT().RatingForProduct(ctx, uint(3)).
		Return(&repository.ProductRating{Average: 4.0, Count: 3}, nil)

	result, err := fx.service.ListForProduct(ctx, 3)

	require.NoError(t, err)
	assert.Len(t, result.Reviews, 3)
	assert.InDelta(t, 4.0, result.Rating.Average, 0.001)
	assert.Equal(t, int64(3), result.Rating.Count)
}

func TestReviewService_ListForProduct_NoReviews(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	fx.reviewRepo.EXPECT().ListByProduct(ctx, uint(3)).Return([]*entity.Review{}, nil)
	fx.reviewRepo.EXPECT().RatingForProduct(ctx, uint(3)).
		Return(&repository.ProductRating{Average: 0, Count: 0}, nil)

	result, err := fx.service.ListForProduct(ctx, 3)

	require.NoError(t, err)
	assert.Empty(t, result.Reviews)
	assert.Zero(t, result.Rating.Average)
	assert.Zero(t, result.Rating.Count)
}

func TestReviewService_Create_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	input := &usecase.CreateReviewInput{ProductID: 3, Rating: 5, Comment: "Excelente qualidade"}

	fx.productRepo.EXPECT().FindByID(ctx, uint(3)).
		Return(&entity.Product{ID: 3, Active: true}, nil)
	fx.reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).
		Run(func(ctx context.Context, review *entity.Review) {
			review.ID = 11
		}).
		Return(nil)

	review, err := fx.service.Create(ctx, 7, input)

	require.NoError(t, err)
	assert.Equal(t, uint(11), review.ID)
	assert.Equal(t, uint(7), review.UserID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_Create_RatingOutOfBounds(t *testing.T) {
	fx := createTestReviewService(t)

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.service.Create(context.Background(), 7, &usecase.CreateReviewInput{
			ProductID: 3,
			Rating:    rating,
		})

		require.Error(t, err)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	}
}

func TestReviewService_Create_UnknownProduct(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.Create(ctx, 7, &usecase.CreateReviewInput{ProductID: 99, Rating: 4})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestReviewService_Delete_Owner(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	fx.reviewRepo.EXPECT().FindByID(ctx, uint(11)).
		Return(&entity.Review{ID: 11, UserID: 7}, nil)
	fx.reviewRepo.EXPECT().Delete(ctx, uint(11)).Return(nil)

	err := fx.service.Delete(ctx, 11, 7, false)

	require.NoError(t, err)
}

func TestReviewService_Delete_ForbiddenForOtherUser(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	fx.reviewRepo.EXPECT().FindByID(ctx, uint(11)).
		Return(&entity.Review{ID: 11, UserID: 7}, nil)

	err := fx.service.Delete(ctx, 11, 8, false)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestReviewService_Delete_AdminBypassesOwnership(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	fx.reviewRepo.EXPECT().FindByID(ctx, uint(11)).
		Return(&entity.Review{ID: 11, UserID: 7}, nil)
	fx.reviewRepo.EXPECT().Delete(ctx, uint(11)).Return(nil)

	err := fx.service.Delete(ctx, 11, 99, true)

	require.NoError(t, err)
}

func TestReviewService_Delete_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	fx.reviewRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrReviewNotFound)

	err := fx.service.Delete(ctx, 404, 7, false)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONTENT_NOT_FOUND", appErr.ErrorCode())
}

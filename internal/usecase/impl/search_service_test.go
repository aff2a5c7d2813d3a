package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"terraverde/internal/domain/entity"
	domainerrors "terraverde/internal/domain/errors"
	mockRepo "terraverde/internal/mocks/repository"
	"terraverde/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// searchServiceFixtures holds all test dependencies for search service tests.
type searchServiceFixtures struct {
	service     usecase.SearchUsecase
	productRepo *mockRepo.MockProductRepository
	blogRepo    *mockRepo.MockBlogRepository
	serviceRepo *mockRepo.MockServiceRepository
}

func createTestSearchService(t *testing.T) searchServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	blogRepo := mockRepo.NewMockBlogRepository(t)
	serviceRepo := mockRepo.NewMockServiceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewSearchService(productRepo, blogRepo, serviceRepo, logger)

	return searchServiceFixtures{
		service:     service,
		productRepo: productRepo,
		blogRepo:    blogRepo,
		serviceRepo: serviceRepo,
	}
}

func TestSearchService_Global_FansOutToAllFamilies(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().Search(ctx, "milho").
		Return([]*entity.Product{{ID: 1, NamePt: "Milho Orgânico"}}, nil)
	fx.blogRepo.EXPECT().Search(ctx, "milho").
		Return([]*entity.BlogPost{{ID: 2, TitlePt: "Plantio de milho"}}, nil)
	fx.serviceRepo.EXPECT().Search(ctx, "milho").
		Return([]*entity.ServiceOffering{}, nil)

	results, err := fx.service.Global(ctx, "milho")

	require.NoError(t, err)
	assert.Len(t, results.Products, 1)
	assert.Len(t, results.BlogPosts, 1)
	assert.Empty(t, results.Offerings)
}

func TestSearchService_Global_TrimsQuery(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().Search(ctx, "soja").Return([]*entity.Product{}, nil)
	fx.blogRepo.EXPECT().Search(ctx, "soja").Return([]*entity.BlogPost{}, nil)
	fx.serviceRepo.EXPECT().Search(ctx, "soja").Return([]*entity.ServiceOffering{}, nil)

	_, err := fx.service.Global(ctx, "  soja  ")

	require.NoError(t, err)
}

func TestSearchService_Global_RejectsEmptyQuery(t *testing.T) {
	fx := createTestSearchService(t)

	for _, query := range []string{"", "   "} {
		_, err := fx.service.Global(context.Background(), query)

		require.Error(t, err)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
	}
}

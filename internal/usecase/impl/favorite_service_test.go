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

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	favoriteRepo *mockRepo.MockFavoriteRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewFavoriteService(favoriteRepo, logger)

	return favoriteServiceFixtures{
		service:      service,
		favoriteRepo: favoriteRepo,
	}
}

func TestFavoriteService_Add_NewTuple(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	fx.favoriteRepo.EXPECT().Find(ctx, uint(7), entity.FavoriteItemProduct, uint(3)).
		Return(nil, repository.ErrFavoriteNotFound)
	fx.favoriteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Favorite")).
		Run(func(ctx context.Context, favorite *entity.Favorite) {
			favorite.ID = 31
		}).
		Return(nil)

	favorite, err := fx.service.Add(ctx, 7, &usecase.FavoriteInput{ItemType: "product", ItemID: 3})

	require.NoError(t, err)
	assert.Equal(t, uint(31), favorite.ID)
	assert.Equal(t, entity.FavoriteItemProduct, favorite.ItemType)
}

func TestFavoriteService_Add_IsIdempotent(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	existing := &entity.Favorite{ID: 31, UserID: 7, ItemType: entity.FavoriteItemBlog, ItemID: 3}

	fx.favoriteRepo.EXPECT().Find(ctx, uint(7), entity.FavoriteItemBlog, uint(3)).
		Return(existing, nil)

	favorite, err := fx.service.Add(ctx, 7, &usecase.FavoriteInput{ItemType: "blog", ItemID: 3})

	require.NoError(t, err)
	assert.Equal(t, existing, favorite)
}

func TestFavoriteService_Add_RejectsUnknownItemType(t *testing.T) {
	fx := createTestFavoriteService(t)

	_, err := fx.service.Add(context.Background(), 7, &usecase.FavoriteInput{ItemType: "event", ItemID: 3})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestFavoriteService_Remove_MissingTuple(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	fx.favoriteRepo.EXPECT().Delete(ctx, uint(7), entity.FavoriteItemProduct, uint(3)).
		Return(repository.ErrFavoriteNotFound)

	err := fx.service.Remove(ctx, 7, &usecase.FavoriteInput{ItemType: "product", ItemID: 3})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONTENT_NOT_FOUND", appErr.ErrorCode())
}

func TestFavoriteService_List(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	expected := []*entity.Favorite{
		{ID: 1, UserID: 7, ItemType: entity.FavoriteItemProduct, ItemID: 3},
		{ID: 2, UserID: 7, ItemType: entity.FavoriteItemBlog, ItemID: 5},
	}

	fx.favoriteRepo.EXPECT().ListByUser(ctx, uint(7)).Return(expected, nil)

	favorites, err := fx.service.List(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, favorites)
}

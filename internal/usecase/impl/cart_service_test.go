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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCartService(cartRepo, productRepo, logger)

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func TestCartService_AddItem_NewRow(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().FindByID(ctx, uint(3)).
		Return(&entity.Product{ID: 3, Active: true}, nil)
	fx.cartRepo.EXPECT().Find(ctx, uint(7), uint(3)).
		Return(nil, repository.ErrCartItemNotFound)
	fx.cartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CartItem")).
		Run(func(ctx context.Context, item *entity.CartItem) {
			item.ID = 21
		}).
		Return(nil)

	item, err := fx.service.AddItem(ctx, 7, &usecase.CartItemInput{ProductID: 3, Quantity: 2})

	require.NoError(t, err)
	assert.Equal(t, uint(21), item.ID)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartService_AddItem_SumsExistingQuantity(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().FindByID(ctx, uint(3)).
		Return(&entity.Product{ID: 3, Active: true}, nil)
	fx.cartRepo.EXPECT().Find(ctx, uint(7), uint(3)).
		Return(&entity.CartItem{ID: 21, UserID: 7, ProductID: 3, Quantity: 2}, nil)
	fx.cartRepo.EXPECT().UpdateQuantity(ctx, uint(21), 5).Return(nil)

	item, err := fx.service.AddItem(ctx, 7, &usecase.CartItemInput{ProductID: 3, Quantity: 3})

	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)
}

func TestCartService_AddItem_RejectsNonPositiveQuantity(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddItem(context.Background(), 7, &usecase.CartItemInput{ProductID: 3, Quantity: 0})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestCartService_AddItem_RejectsInactiveProduct(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().FindByID(ctx, uint(3)).
		Return(&entity.Product{ID: 3, Active: false}, nil)

	_, err := fx.service.AddItem(ctx, 7, &usecase.CartItemInput{ProductID: 3, Quantity: 1})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestCartService_SetItemQuantity_Overwrites(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().Find(ctx, uint(7), uint(3)).
		Return(&entity.CartItem{ID: 21, UserID: 7, ProductID: 3, Quantity: 2}, nil)
	fx.cartRepo.EXPECT().UpdateQuantity(ctx, uint(21), 9).Return(nil)

	err := fx.service.SetItemQuantity(ctx, 7, &usecase.CartItemInput{ProductID: 3, Quantity: 9})

	require.NoError(t, err)
}

func TestCartService_SetItemQuantity_ZeroRemovesRow(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().Delete(ctx, uint(7), uint(3)).Return(nil)

	err := fx.service.SetItemQuantity(ctx, 7, &usecase.CartItemInput{ProductID: 3, Quantity: 0})

	require.NoError(t, err)
}

func TestCartService_SetItemQuantity_MissingRow(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().Find(ctx, uint(7), uint(3)).
		Return(nil, repository.ErrCartItemNotFound)

	err := fx.service.SetItemQuantity(ctx, 7, &usecase.CartItemInput{ProductID: 3, Quantity: 4})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONTENT_NOT_FOUND", appErr.ErrorCode())
}

func TestCartService_RemoveItem_MissingRow(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().Delete(ctx, uint(7), uint(3)).
		Return(repository.ErrCartItemNotFound)

	err := fx.service.RemoveItem(ctx, 7, 3)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONTENT_NOT_FOUND", appErr.ErrorCode())
}

func TestCartService_Get(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	expected := []*entity.CartItem{{ID: 1, UserID: 7, ProductID: 3, Quantity: 2}}

	fx.cartRepo.EXPECT().ListByUser(ctx, uint(7)).Return(expected, nil)

	items, err := fx.service.Get(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestCartService_Clear(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().Clear(ctx, uint(7)).Return(nil)

	err := fx.service.Clear(ctx, 7)

	require.NoError(t, err)
}

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

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewOrderService(txManager, orderRepo, logger)

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
	}
}

func TestOrderService_Create_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	userID := uint(7)
	input := &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
		DeliveryAddress: "Av. Julius Nyerere 100",
		DeliveryCity:    "Maputo",
		DeliveryPhone:   "+258 84 000 0000",
		PaymentMethod:   "mpesa",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)
			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)

			mockProductRepo.EXPECT().FindByID(ctx, uint(1)).Return(&entity.Product{
				ID: 1, NamePt: "Milho Orgânico", NameEn: "Organic Maize", Price: 250, Active: true,
			}, nil)
			mockProductRepo.EXPECT().FindByID(ctx, uint(2)).Return(&entity.Product{
				ID: 2, NamePt: "Feijão Manteiga", NameEn: "Butter Beans", Price: 180, Active: true,
			}, nil)

			mockOrderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
				Run(func(ctx context.Context, order *entity.Order) {
					order.ID = 42
				}).
				Return(nil)
			mockCartRepo.EXPECT().Clear(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	order, err := fx.service.Create(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	// 2 x 250 + 1 x 180, re-derived from the catalog rather than trusted
	// from the client.
	assert.Equal(t, int64(680), order.TotalAmount)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "Milho Orgânico", order.Items[0].ProductName)
	assert.Equal(t, int64(250), order.Items[0].Price)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestOrderService_Create_EmptyItems(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.Create(context.Background(), 7, &usecase.CreateOrderInput{})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestOrderService_Create_NonPositiveQuantity(t *testing.T) {
	fx := createTestOrderService(t)

	input := &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 0}},
	}

	_, err := fx.service.Create(context.Background(), 7, input)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestOrderService_Create_UnknownProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 99, Quantity: 1}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrProductNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.Create(ctx, 7, input)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_Create_InactiveProduct(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 3, Quantity: 1}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockProductRepo.EXPECT().FindByID(ctx, uint(3)).Return(&entity.Product{
				ID: 3, NamePt: "Descontinuado", Price: 100, Active: false,
			}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Create(ctx, 7, input)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestOrderService_Create_TransactionFailure(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{{ProductID: 1, Quantity: 1}},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset"))

	_, err := fx.service.Create(ctx, 7, input)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INTERNAL_ERROR", appErr.ErrorCode())
}

func TestOrderService_Get_Owner(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	expected := &entity.Order{ID: 5, UserID: 7, Status: entity.OrderStatusPending}

	fx.orderRepo.EXPECT().FindByID(ctx, uint(5)).Return(expected, nil)

	order, err := fx.service.Get(ctx, 5, 7, false)

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderService_Get_ForbiddenForOtherUser(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().FindByID(ctx, uint(5)).
		Return(&entity.Order{ID: 5, UserID: 7}, nil)

	_, err := fx.service.Get(ctx, 5, 8, false)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestOrderService_Get_AdminBypassesOwnership(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	expected := &entity.Order{ID: 5, UserID: 7}

	fx.orderRepo.EXPECT().FindByID(ctx, uint(5)).Return(expected, nil)

	order, err := fx.service.Get(ctx, 5, 99, true)

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().FindByID(ctx, uint(404)).Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.Get(ctx, 404, 7, false)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_AcceptsEveryEnumValue(t *testing.T) {
	statuses := []entity.OrderStatus{
		entity.OrderStatusPending,
		entity.OrderStatusProcessing,
		entity.OrderStatusShipped,
		entity.OrderStatusDelivered,
		entity.OrderStatusCancelled,
	}

	for _, status := range statuses {
		t.Run(status.String(), func(t *testing.T) {
			fx := createTestOrderService(t)

			ctx := context.Background()
			fx.orderRepo.EXPECT().UpdateStatus(ctx, uint(5), status).Return(nil)

			err := fx.service.UpdateStatus(ctx, 5, &usecase.UpdateOrderStatusInput{Status: status.String()})

			require.NoError(t, err)
		})
	}
}

func TestOrderService_UpdateStatus_RejectsUnknownValue(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.UpdateStatus(context.Background(), 5, &usecase.UpdateOrderStatusInput{Status: "returned"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().UpdateStatus(ctx, uint(404), entity.OrderStatusShipped).
		Return(repository.ErrOrderNotFound)

	err := fx.service.UpdateStatus(ctx, 404, &usecase.UpdateOrderStatusInput{Status: "shipped"})

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ORDER_NOT_FOUND", appErr.ErrorCode())
}

func TestOrderService_ListMine(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	expected := []*entity.Order{{ID: 2, UserID: 7}, {ID: 1, UserID: 7}}

	fx.orderRepo.EXPECT().ListByUser(ctx, uint(7)).Return(expected, nil)

	orders, err := fx.service.ListMine(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

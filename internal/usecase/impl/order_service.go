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

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// Create places an order. Line-item names and prices are snapshotted from
// the live catalog inside one transaction; the client only supplies product
// references and quantities. The server cart is cleared in the same
// transaction so a failed order leaves the cart intact.
func (srv *orderService) Create(ctx context.Context, userID uint, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.NewValidationError("order must contain at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.NewValidationError("item quantity must be positive")
		}
	}

	order := &entity.Order{
		UserID:          userID,
		Status:          entity.OrderStatusPending,
		DeliveryAddress: input.DeliveryAddress,
		DeliveryCity:    input.DeliveryCity,
		DeliveryPhone:   input.DeliveryPhone,
		PaymentMethod:   input.PaymentMethod,
		Notes:           input.Notes,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		var total int64
		items := make([]entity.OrderItem, 0, len(input.Items))
		for _, requested := range input.Items {
			product, err := productRepo.FindByID(ctx, requested.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound.WrapMessage("ordered product does not exist")
				}

				return errors.Wrap(err, "failed to load ordered product")
			}
			if !product.Active {
				return domainerrors.NewValidationError("ordered product is not available")
			}

			items = append(items, entity.OrderItem{
				ProductID:   product.ID,
				ProductName: product.NamePt,
				Price:       product.Price,
				Quantity:    requested.Quantity,
			})
			total += product.Price * int64(requested.Quantity)
		}

		order.Items = items
		order.TotalAmount = total

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := repoFactory.NewCartRepository().Clear(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to clear cart after checkout")
		}

		return nil
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to place order")
	}

	srv.logger.Info("order placed",
		"orderID", order.ID,
		"userID", userID,
		"items", len(order.Items),
		"totalAmount", order.TotalAmount,
	)

	return order, nil
}

// ListMine returns the caller's orders, newest first.
func (srv *orderService) ListMine(ctx context.Context, userID uint) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	return orders, nil
}

// Get returns one order, enforcing ownership for non-admin callers.
func (srv *orderService) Get(ctx context.Context, orderID, callerID uint, callerIsAdmin bool) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WrapMessage("order lookup failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load order")
	}

	if !callerIsAdmin && order.UserID != callerID {
		return nil, domainerrors.ErrForbidden.WrapMessage("order belongs to another user")
	}

	return order, nil
}

// ListAll returns every order system-wide.
func (srv *orderService) ListAll(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list all orders")
	}

	return orders, nil
}

// UpdateStatus sets the order lifecycle state. Any of the five enum values
// is accepted as a target state.
func (srv *orderService) UpdateStatus(ctx context.Context, orderID uint, input *usecase.UpdateOrderStatusInput) error {
	status := entity.OrderStatus(input.Status)
	if !status.IsValid() {
		return domainerrors.NewValidationError("status must be one of: pending, processing, shipped, delivered, cancelled")
	}

	if err := srv.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound.WrapMessage("status update failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update order status")
	}

	srv.logger.Info("order status updated", "orderID", orderID, "status", status.String())

	return nil
}

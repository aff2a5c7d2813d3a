package postgres

import (
	"context"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new instance of orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderModel := toOrderModel(order)

	// A single Create persists the order row and its items via the
	// association; atomicity across both comes from the surrounding
	// transaction when run through the TransactionManager.
	if err := r.db.WithContext(ctx).Create(orderModel).Error; err != nil {
		return errors.Wrap(err, "failed to create order")
	}

	*order = *toOrderEntity(orderModel)

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uint) (*entity.Order, error) {
	var orderModel model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&orderModel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderEntity(&orderModel), nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return toOrderEntities(orderModels), nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return toOrderEntities(orderModels), nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status entity.OrderStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderEntities(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderModel := range models {
		orders = append(orders, toOrderEntity(orderModel))
	}

	return orders
}

func toOrderEntity(m *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(m.Items))
	for _, itemModel := range m.Items {
		items = append(items, entity.OrderItem{
			ID:          itemModel.ID,
			OrderID:     itemModel.OrderID,
			ProductID:   itemModel.ProductID,
			ProductName: itemModel.ProductName,
			Price:       itemModel.Price,
			Quantity:    itemModel.Quantity,
			CreatedAt:   itemModel.CreatedAt,
		})
	}

	return &entity.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		Status:          entity.OrderStatus(m.Status),
		DeliveryAddress: m.DeliveryAddress,
		DeliveryCity:    m.DeliveryCity,
		DeliveryPhone:   m.DeliveryPhone,
		PaymentMethod:   m.PaymentMethod,
		Notes:           m.Notes,
		TotalAmount:     m.TotalAmount,
		Items:           items,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toOrderModel(e *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(e.Items))
	for _, item := range e.Items {
		items = append(items, model.OrderItemModel{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return &model.OrderModel{
		UserID:          e.UserID,
		Status:          e.Status.String(),
		DeliveryAddress: e.DeliveryAddress,
		DeliveryCity:    e.DeliveryCity,
		DeliveryPhone:   e.DeliveryPhone,
		PaymentMethod:   e.PaymentMethod,
		Notes:           e.Notes,
		TotalAmount:     e.TotalAmount,
		Items:           items,
	}
}

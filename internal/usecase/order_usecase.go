package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
)

// OrderUsecase defines the interface for order workflow business operations.
type OrderUsecase interface {
	// Create places an order for the user. Prices are re-derived from the
	// live catalog server-side; client-supplied amounts are never trusted.
	// The user's server cart is cleared in the same transaction.
	Create(ctx context.Context, userID uint, input *CreateOrderInput) (*entity.Order, error)

	// ListMine returns the caller's orders, newest first.
	ListMine(ctx context.Context, userID uint) ([]*entity.Order, error)

	// Get returns one order. Non-admin callers may only read their own.
	Get(ctx context.Context, orderID, callerID uint, callerIsAdmin bool) (*entity.Order, error)

	// ListAll returns every order system-wide. Admin only.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus sets the order lifecycle state. Admin only.
	UpdateStatus(ctx context.Context, orderID uint, input *UpdateOrderStatusInput) error
}

// --- Input DTOs ---

// CreateOrderInput defines the data required to place an order.
type CreateOrderInput struct {
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress string           `json:"delivery_address" validate:"required"`
	DeliveryCity    string           `json:"delivery_city" validate:"required,max=100"`
	DeliveryPhone   string           `json:"delivery_phone" validate:"required,max=32"`
	PaymentMethod   string           `json:"payment_method" validate:"required,max=64"`
	Notes           string           `json:"notes"`
}

// OrderItemInput is one requested line item. Only the product reference and
// quantity are accepted; name and price come from the catalog.
type OrderItemInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,gt=0"`
}

// UpdateOrderStatusInput defines the data required to move an order through
// its lifecycle.
type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

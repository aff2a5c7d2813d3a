package repository

import (
	"context"
	"errors"

	"terraverde/internal/domain/entity"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the operations for order persistence.
type OrderRepository interface {
	// Create persists the order together with its line items. Callers that
	// need atomicity run it through the TransactionManager so the order
	// insert and the item inserts commit or roll back as one unit.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its items.
	FindByID(ctx context.Context, id uint) (*entity.Order, error)

	// ListByUser returns all orders owned by a user, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*entity.Order, error)

	// ListAll returns every order system-wide, newest first.
	ListAll(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus sets the order status. Returns ErrOrderNotFound when no
	// row was affected.
	UpdateStatus(ctx context.Context, id uint, status entity.OrderStatus) error
}

package repository

import (
	"context"
	"errors"

	"terraverde/internal/domain/entity"
)

// ErrCartItemNotFound is returned when a cart item is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the operations for the server-persisted cart.
type CartRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]*entity.CartItem, error)

	// Find retrieves the cart row for a (user, product) pair.
	Find(ctx context.Context, userID, productID uint) (*entity.CartItem, error)

	Create(ctx context.Context, item *entity.CartItem) error

	// UpdateQuantity sets the quantity on an existing row.
	UpdateQuantity(ctx context.Context, id uint, quantity int) error

	// Delete removes one (user, product) row. Returns ErrCartItemNotFound
	// when no row was affected.
	Delete(ctx context.Context, userID, productID uint) error

	// Clear removes every cart row owned by the user.
	Clear(ctx context.Context, userID uint) error
}

package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
)

// CartUsecase defines the interface for the server-persisted cart. The
// server cart is authoritative; client-side drafts reconcile into it.
type CartUsecase interface {
	// Get returns the caller's cart items.
	Get(ctx context.Context, userID uint) ([]*entity.CartItem, error)

	// AddItem adds a product to the cart, summing quantities when the
	// product is already present.
	AddItem(ctx context.Context, userID uint, input *CartItemInput) (*entity.CartItem, error)

	// SetItemQuantity overwrites the quantity of one cart row. A quantity
	// of zero removes the row.
	SetItemQuantity(ctx context.Context, userID uint, input *CartItemInput) error

	// RemoveItem removes one product from the cart.
	RemoveItem(ctx context.Context, userID, productID uint) error

	// Clear empties the cart.
	Clear(ctx context.Context, userID uint) error
}

// --- Input DTOs ---

// CartItemInput identifies a product and a quantity.
type CartItemInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"gte=0"`
}

package entity

import "time"

// CartItem is the server-persisted cart, keyed by (UserID, ProductID).
// It is the authoritative cart; client-side drafts reconcile into it and
// checkout clears it after the order is created.
type CartItem struct {
	ID        uint
	UserID    uint
	ProductID uint
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

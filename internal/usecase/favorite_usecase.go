package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
)

// FavoriteUsecase defines the interface for per-user favorites.
type FavoriteUsecase interface {
	// List returns the caller's favorites, newest first.
	List(ctx context.Context, userID uint) ([]*entity.Favorite, error)

	// Add marks an item as favorite. Adding an existing favorite is a no-op
	// returning the stored tuple.
	Add(ctx context.Context, userID uint, input *FavoriteInput) (*entity.Favorite, error)

	// Remove deletes the tuple.
	Remove(ctx context.Context, userID uint, input *FavoriteInput) error
}

// --- Input DTOs ---

// FavoriteInput identifies the item a favorite points at.
type FavoriteInput struct {
	ItemType string `json:"item_type" validate:"required,oneof=product blog"`
	ItemID   uint   `json:"item_id" validate:"required"`
}

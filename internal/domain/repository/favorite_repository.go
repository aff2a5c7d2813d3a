package repository

import (
	"context"
	"errors"

	"terraverde/internal/domain/entity"
)

// ErrFavoriteNotFound is returned when a favorite tuple is not found.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the operations for favorite persistence.
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]*entity.Favorite, error)

	// Find retrieves the favorite for a (user, itemType, itemID) tuple.
	Find(ctx context.Context, userID uint, itemType entity.FavoriteItemType, itemID uint) (*entity.Favorite, error)

	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the tuple. Returns ErrFavoriteNotFound when no row
	// was affected.
	Delete(ctx context.Context, userID uint, itemType entity.FavoriteItemType, itemID uint) error
}

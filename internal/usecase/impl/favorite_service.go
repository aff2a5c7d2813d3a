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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	logger *slog.Logger,
) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// List returns the caller's favorites.
func (srv *favoriteService) List(ctx context.Context, userID uint) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list favorites")
	}

	return favorites, nil
}

// Add marks an item as favorite. Adding an already-favorited item returns
// the stored tuple unchanged.
func (srv *favoriteService) Add(ctx context.Context, userID uint, input *usecase.FavoriteInput) (*entity.Favorite, error) {
	itemType := entity.FavoriteItemType(input.ItemType)
	if !itemType.IsValid() {
		return nil, domainerrors.NewValidationError("item_type must be one of: product, blog")
	}

	existing, err := srv.favoriteRepo.Find(ctx, userID, itemType, input.ItemID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrFavoriteNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to check existing favorite")
	}

	favorite := &entity.Favorite{
		UserID:   userID,
		ItemType: itemType,
		ItemID:   input.ItemID,
	}
	if err := srv.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	srv.logger.Debug("favorite added", "userID", userID, "itemType", input.ItemType, "itemID", input.ItemID)

	return favorite, nil
}

// Remove deletes the favorite tuple.
func (srv *favoriteService) Remove(ctx context.Context, userID uint, input *usecase.FavoriteInput) error {
	itemType := entity.FavoriteItemType(input.ItemType)
	if !itemType.IsValid() {
		return domainerrors.NewValidationError("item_type must be one of: product, blog")
	}

	if err := srv.favoriteRepo.Delete(ctx, userID, itemType, input.ItemID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("favorite not found")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete favorite")
	}

	return nil
}

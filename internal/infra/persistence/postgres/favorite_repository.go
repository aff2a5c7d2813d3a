package postgres

import (
	"context"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new instance of favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favoriteModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites by user")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteModel := range favoriteModels {
		favorites = append(favorites, toFavoriteEntity(favoriteModel))
	}

	return favorites, nil
}

func (r *favoriteRepository) Find(ctx context.Context, userID uint, itemType entity.FavoriteItemType, itemID uint) (*entity.Favorite, error) {
	var favoriteModel model.FavoriteModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, string(itemType), itemID).
		First(&favoriteModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite")
	}

	return toFavoriteEntity(&favoriteModel), nil
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteModel := &model.FavoriteModel{
		UserID:   favorite.UserID,
		ItemType: string(favorite.ItemType),
		ItemID:   favorite.ItemID,
	}
	if err := r.db.WithContext(ctx).Create(favoriteModel).Error; err != nil {
		return errors.Wrap(err, "failed to create favorite")
	}

	favorite.ID = favoriteModel.ID
	favorite.CreatedAt = favoriteModel.CreatedAt

	return nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID uint, itemType entity.FavoriteItemType, itemID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, string(itemType), itemID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

func toFavoriteEntity(m *model.FavoriteModel) *entity.Favorite {
	return &entity.Favorite{
		ID:        m.ID,
		UserID:    m.UserID,
		ItemType:  entity.FavoriteItemType(m.ItemType),
		ItemID:    m.ItemID,
		CreatedAt: m.CreatedAt,
	}
}

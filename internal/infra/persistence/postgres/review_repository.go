package postgres

import (
	"context"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new instance of reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID uint) ([]*entity.Review, error) {
	var reviewModels []*model.ReviewModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviewModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by product")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewModel := range reviewModels {
		reviews = append(reviews, toReviewEntity(reviewModel))
	}

	return reviews, nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*entity.Review, error) {
	var reviewModel model.ReviewModel
	if err := r.db.WithContext(ctx).First(&reviewModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewEntity(&reviewModel), nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewModel := &model.ReviewModel{
		UserID:    review.UserID,
		ProductID: review.ProductID,
		Rating:    review.Rating,
		Comment:   review.Comment,
	}
	if err := r.db.WithContext(ctx).Create(reviewModel).Error; err != nil {
		return errors.Wrap(err, "failed to create review")
	}

	review.ID = reviewModel.ID
	review.CreatedAt = reviewModel.CreatedAt
	review.UpdatedAt = reviewModel.UpdatedAt

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.ReviewModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

func (r *reviewRepository) RatingForProduct(ctx context.Context, productID uint) (*repository.ProductRating, error) {
	// COALESCE keeps the zero-review case at average 0 instead of NULL.
	var rating repository.ProductRating
	err := r.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&rating).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute product rating")
	}

	return &rating, nil
}

func toReviewEntity(m *model.ReviewModel) *entity.Review {
	return &entity.Review{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Rating:    m.Rating,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

package postgres

import (
	"context"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new instance of newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

func (r *newsRepository) FindByID(ctx context.Context, id uint) (*entity.News, error) {
	var newsModel model.NewsModel
	if err := r.db.WithContext(ctx).First(&newsModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find news by ID")
	}

	return toNewsEntity(&newsModel), nil
}

func (r *newsRepository) List(ctx context.Context, includeUnpublished bool) ([]*entity.News, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}

	var newsModels []*model.NewsModel
	if err := query.Find(&newsModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list news")
	}

	entries := make([]*entity.News, 0, len(newsModels))
	for _, newsModel := range newsModels {
		entries = append(entries, toNewsEntity(newsModel))
	}

	return entries, nil
}

func (r *newsRepository) Create(ctx context.Context, news *entity.News) error {
	newsModel := toNewsModel(news)
	if err := r.db.WithContext(ctx).Create(newsModel).Error; err != nil {
		return errors.Wrap(err, "failed to create news")
	}

	news.ID = newsModel.ID
	news.CreatedAt = newsModel.CreatedAt
	news.UpdatedAt = newsModel.UpdatedAt

	return nil
}

func (r *newsRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.NewsModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update news")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

func (r *newsRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.NewsModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete news")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

func toNewsEntity(m *model.NewsModel) *entity.News {
	return &entity.News{
		ID:        m.ID,
		TitlePt:   m.TitlePt,
		TitleEn:   m.TitleEn,
		ExcerptPt: m.ExcerptPt,
		ExcerptEn: m.ExcerptEn,
		ContentPt: m.ContentPt,
		ContentEn: m.ContentEn,
		Published: m.Published,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toNewsModel(e *entity.News) *model.NewsModel {
	return &model.NewsModel{
		ID:        e.ID,
		TitlePt:   e.TitlePt,
		TitleEn:   e.TitleEn,
		ExcerptPt: e.ExcerptPt,
		ExcerptEn: e.ExcerptEn,
		ContentPt: e.ContentPt,
		ContentEn: e.ContentEn,
		Published: e.Published,
	}
}

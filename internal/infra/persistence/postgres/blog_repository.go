package postgres

import (
	"context"

	"terraverde/internal/domain/entity"
	"terraverde/internal/domain/repository"
	"terraverde/internal/errors"
	"terraverde/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new instance of blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) FindByID(ctx context.Context, id uint) (*entity.BlogPost, error) {
	var postModel model.BlogPostModel
	if err := r.db.WithContext(ctx).First(&postModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog post by ID")
	}

	return toBlogPostEntity(&postModel), nil
}

func (r *blogRepository) List(ctx context.Context, includeUnpublished bool) ([]*entity.BlogPost, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}

	var postModels []*model.BlogPostModel
	if err := query.Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blog posts")
	}

	return toBlogPostEntities(postModels), nil
}

func (r *blogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	postModel := toBlogPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		return errors.Wrap(err, "failed to create blog post")
	}

	post.ID = postModel.ID
	post.CreatedAt = postModel.CreatedAt
	post.UpdatedAt = postModel.UpdatedAt

	return nil
}

func (r *blogRepository) Update(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).
		Model(&model.BlogPostModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update blog post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.BlogPostModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete blog post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContentNotFound
	}

	return nil
}

func (r *blogRepository) Search(ctx context.Context, query string) ([]*entity.BlogPost, error) {
	pattern := "%" + query + "%"

	var postModels []*model.BlogPostModel
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Where(
			"title_pt ILIKE ? OR title_en ILIKE ? OR content_pt ILIKE ? OR content_en ILIKE ?",
			pattern, pattern, pattern, pattern,
		).
		Order("created_at DESC").
		Find(&postModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search blog posts")
	}

	return toBlogPostEntities(postModels), nil
}

func toBlogPostEntities(models []*model.BlogPostModel) []*entity.BlogPost {
	posts := make([]*entity.BlogPost, 0, len(models))
	for _, postModel := range models {
		posts = append(posts, toBlogPostEntity(postModel))
	}

	return posts
}

func toBlogPostEntity(m *model.BlogPostModel) *entity.BlogPost {
	return &entity.BlogPost{
		ID:            m.ID,
		TitlePt:       m.TitlePt,
		TitleEn:       m.TitleEn,
		ExcerptPt:     m.ExcerptPt,
		ExcerptEn:     m.ExcerptEn,
		ContentPt:     m.ContentPt,
		ContentEn:     m.ContentEn,
		Category:      m.Category,
		CoverImageURL: m.CoverImageURL,
		Published:     m.Published,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toBlogPostModel(e *entity.BlogPost) *model.BlogPostModel {
	return &model.BlogPostModel{
		ID:            e.ID,
		TitlePt:       e.TitlePt,
		TitleEn:       e.TitleEn,
		ExcerptPt:     e.ExcerptPt,
		ExcerptEn:     e.ExcerptEn,
		ContentPt:     e.ContentPt,
		ContentEn:     e.ContentEn,
		Category:      e.Category,
		CoverImageURL: e.CoverImageURL,
		Published:     e.Published,
	}
}

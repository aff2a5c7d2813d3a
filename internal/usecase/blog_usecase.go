package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
)

// BlogUsecase defines the interface for knowledge-center articles.
type BlogUsecase interface {
	// List returns posts. Unpublished drafts are included only for admins.
	List(ctx context.Context, isAdmin bool) ([]*entity.BlogPost, error)

	// Get returns one post. Unpublished drafts are readable by admins only.
	Get(ctx context.Context, id uint, isAdmin bool) (*entity.BlogPost, error)

	Create(ctx context.Context, input *CreateBlogPostInput) (*entity.BlogPost, error)
	Update(ctx context.Context, id uint, input *UpdateBlogPostInput) error
	Delete(ctx context.Context, id uint) error
}

// --- Input DTOs ---

// CreateBlogPostInput defines the data required to create a blog post.
type CreateBlogPostInput struct {
	TitlePt       string `json:"title_pt" validate:"required,max=255"`
	TitleEn       string `json:"title_en" validate:"required,max=255"`
	ExcerptPt     string `json:"excerpt_pt"`
	ExcerptEn     string `json:"excerpt_en"`
	ContentPt     string `json:"content_pt"`
	ContentEn     string `json:"content_en"`
	Category      string `json:"category" validate:"max=64"`
	CoverImageURL string `json:"cover_image_url" validate:"omitempty,url"`
	Published     bool   `json:"published"`
}

// UpdateBlogPostInput defines a partial blog post update.
type UpdateBlogPostInput struct {
	TitlePt       *string `json:"title_pt,omitempty" validate:"omitempty,max=255"`
	TitleEn       *string `json:"title_en,omitempty" validate:"omitempty,max=255"`
	ExcerptPt     *string `json:"excerpt_pt,omitempty"`
	ExcerptEn     *string `json:"excerpt_en,omitempty"`
	ContentPt     *string `json:"content_pt,omitempty"`
	ContentEn     *string `json:"content_en,omitempty"`
	Category      *string `json:"category,omitempty" validate:"omitempty,max=64"`
	CoverImageURL *string `json:"cover_image_url,omitempty" validate:"omitempty,url"`
	Published     *bool   `json:"published,omitempty"`
}

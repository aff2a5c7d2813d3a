package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
)

// NewsUsecase defines the interface for news entries.
type NewsUsecase interface {
	List(ctx context.Context, isAdmin bool) ([]*entity.News, error)
	Get(ctx context.Context, id uint, isAdmin bool) (*entity.News, error)
	Create(ctx context.Context, input *CreateNewsInput) (*entity.News, error)
	Update(ctx context.Context, id uint, input *UpdateNewsInput) error
	Delete(ctx context.Context, id uint) error
}

// --- Input DTOs ---

// CreateNewsInput defines the data required to create a news entry.
type CreateNewsInput struct {
	TitlePt   string `json:"title_pt" validate:"required,max=255"`
	TitleEn   string `json:"title_en" validate:"required,max=255"`
	ExcerptPt string `json:"excerpt_pt"`
	ExcerptEn string `json:"excerpt_en"`
	ContentPt string `json:"content_pt"`
	ContentEn string `json:"content_en"`
	Published bool   `json:"published"`
}

// UpdateNewsInput defines a partial news update.
type UpdateNewsInput struct {
	TitlePt   *string `json:"title_pt,omitempty" validate:"omitempty,max=255"`
	TitleEn   *string `json:"title_en,omitempty" validate:"omitempty,max=255"`
	ExcerptPt *string `json:"excerpt_pt,omitempty"`
	ExcerptEn *string `json:"excerpt_en,omitempty"`
	ContentPt *string `json:"content_pt,omitempty"`
	ContentEn *string `json:"content_en,omitempty"`
	Published *bool   `json:"published,omitempty"`
}

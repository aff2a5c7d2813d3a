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

// newsService implements the NewsUsecase interface.
type newsService struct {
	newsRepo repository.NewsRepository
	logger   *slog.Logger
}

// NewNewsService is the constructor for newsService.
func NewNewsService(
	newsRepo repository.NewsRepository,
	logger *slog.Logger,
) usecase.NewsUsecase {
	return &newsService{
		newsRepo: newsRepo,
		logger:   logger,
	}
}

// List returns news entries; unpublished ones only for admins.
func (srv *newsService) List(ctx context.Context, isAdmin bool) ([]*entity.News, error) {
	entries, err := srv.newsRepo.List(ctx, isAdmin)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list news")
	}

	return entries, nil
}

// Get returns one news entry; unpublished ones only for admins.
func (srv *newsService) Get(ctx context.Context, id uint, isAdmin bool) (*entity.News, error) {
	news, err := srv.newsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound.WrapMessage("news lookup failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load news")
	}

	if !news.Published && !isAdmin {
		return nil, domainerrors.ErrContentNotFound.WrapMessage("news entry is not published")
	}

	return news, nil
}

// Create persists a new news entry.
func (srv *newsService) Create(ctx context.Context, input *usecase.CreateNewsInput) (*entity.News, error) {
	news := &entity.News{
		TitlePt:   input.TitlePt,
		TitleEn:   input.TitleEn,
		ExcerptPt: input.ExcerptPt,
		ExcerptEn: input.ExcerptEn,
		ContentPt: input.ContentPt,
		ContentEn: input.ContentEn,
		Published: input.Published,
	}
	if err := srv.newsRepo.Create(ctx, news); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create news")
	}

	srv.logger.Info("news created", "newsID", news.ID)

	return news, nil
}

// Update applies a partial news update.
func (srv *newsService) Update(ctx context.Context, id uint, input *usecase.UpdateNewsInput) error {
	fields := map[string]any{}
	if input.TitlePt != nil {
		fields["title_pt"] = *input.TitlePt
	}
	if input.TitleEn != nil {
		fields["title_en"] = *input.TitleEn
	}
	if input.ExcerptPt != nil {
		fields["excerpt_pt"] = *input.ExcerptPt
	}
	if input.ExcerptEn != nil {
		fields["excerpt_en"] = *input.ExcerptEn
	}
	if input.ContentPt != nil {
		fields["content_pt"] = *input.ContentPt
	}
	if input.ContentEn != nil {
		fields["content_en"] = *input.ContentEn
	}
	if input.Published != nil {
		fields["published"] = *input.Published
	}
	if len(fields) == 0 {
		return domainerrors.NewValidationError("no news fields provided")
	}

	if err := srv.newsRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("news update failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update news")
	}

	return nil
}

// Delete hard-deletes a news entry.
func (srv *newsService) Delete(ctx context.Context, id uint) error {
	if err := srv.newsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("news delete failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete news")
	}

	srv.logger.Info("news deleted", "newsID", id)

	return nil
}

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

// blogService implements the BlogUsecase interface.
type blogService struct {
	blogRepo repository.BlogRepository
	logger   *slog.Logger
}

// NewBlogService is the constructor for blogService.
func NewBlogService(
	blogRepo repository.BlogRepository,
	logger *slog.Logger,
) usecase.BlogUsecase {
	return &blogService{
		blogRepo: blogRepo,
		logger:   logger,
	}
}

// List returns posts; drafts only for admins.
func (srv *blogService) List(ctx context.Context, isAdmin bool) ([]*entity.BlogPost, error) {
	posts, err := srv.blogRepo.List(ctx, isAdmin)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list blog posts")
	}

	return posts, nil
}

// Get returns one post. Drafts are readable by admins only; to a regular
// reader an unpublished post does not exist.
func (srv *blogService) Get(ctx context.Context, id uint, isAdmin bool) (*entity.BlogPost, error) {
	post, err := srv.blogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound.WrapMessage("blog post lookup failed")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load blog post")
	}

	if !post.Published && !isAdmin {
		return nil, domainerrors.ErrContentNotFound.WrapMessage("blog post is not published")
	}

	return post, nil
}

// Create persists a new blog post.
func (srv *blogService) Create(ctx context.Context, input *usecase.CreateBlogPostInput) (*entity.BlogPost, error) {
	post := &entity.BlogPost{
		TitlePt:       input.TitlePt,
		TitleEn:       input.TitleEn,
		ExcerptPt:     input.ExcerptPt,
		ExcerptEn:     input.ExcerptEn,
		ContentPt:     input.ContentPt,
		ContentEn:     input.ContentEn,
		Category:      input.Category,
		CoverImageURL: input.CoverImageURL,
		Published:     input.Published,
	}
	if err := srv.blogRepo.Create(ctx, post); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create blog post")
	}

	srv.logger.Info("blog post created", "postID", post.ID)

	return post, nil
}

// Update applies a partial blog post update.
func (srv *blogService) Update(ctx context.Context, id uint, input *usecase.UpdateBlogPostInput) error {
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
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.CoverImageURL != nil {
		fields["cover_image_url"] = *input.CoverImageURL
	}
	if input.Published != nil {
		fields["published"] = *input.Published
	}
	if len(fields) == 0 {
		return domainerrors.NewValidationError("no blog post fields provided")
	}

	if err := srv.blogRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("blog post update failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update blog post")
	}

	return nil
}

// Delete hard-deletes a blog post.
func (srv *blogService) Delete(ctx context.Context, id uint) error {
	if err := srv.blogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return domainerrors.ErrContentNotFound.WrapMessage("blog post delete failed")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to delete blog post")
	}

	srv.logger.Info("blog post deleted", "postID", id)

	return nil
}

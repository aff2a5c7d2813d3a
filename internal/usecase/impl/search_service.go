package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "terraverde/internal/domain/errors"
	"terraverde/internal/domain/repository"
	"terraverde/internal/usecase"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	productRepo repository.ProductRepository
	blogRepo    repository.BlogRepository
	serviceRepo repository.ServiceRepository
	logger      *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(
	productRepo repository.ProductRepository,
	blogRepo repository.BlogRepository,
	serviceRepo repository.ServiceRepository,
	logger *slog.Logger,
) usecase.SearchUsecase {
	return &searchService{
		productRepo: productRepo,
		blogRepo:    blogRepo,
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// Global fans one query out across products, blog posts and offerings.
// Only publicly visible rows are searched.
func (srv *searchService) Global(ctx context.Context, query string) (*usecase.SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.NewValidationError("search query must not be empty")
	}

	products, err := srv.productRepo.Search(ctx, query)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search products")
	}

	posts, err := srv.blogRepo.Search(ctx, query)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search blog posts")
	}

	offerings, err := srv.serviceRepo.Search(ctx, query)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to search service offerings")
	}

	srv.logger.Debug("global search",
		"query", query,
		"products", len(products),
		"posts", len(posts),
		"offerings", len(offerings),
	)

	return &usecase.SearchResults{
		Products:  products,
		BlogPosts: posts,
		Offerings: offerings,
	}, nil
}

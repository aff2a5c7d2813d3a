package usecase

import (
	"context"

	"terraverde/internal/domain/entity"
)

// SearchUsecase defines the interface for cross-entity search.
type SearchUsecase interface {
	// Global searches products, blog posts and service offerings with one
	// query, matching either language case-insensitively. Only publicly
	// visible rows are searched.
	Global(ctx context.Context, query string) (*SearchResults, error)
}

// --- Output DTOs ---

// SearchResults groups per-entity hits of a global search.
type SearchResults struct {
	Products  []*entity.Product         `json:"products"`
	BlogPosts []*entity.BlogPost        `json:"blog_posts"`
	Offerings []*entity.ServiceOffering `json:"offerings"`
}

package repository

import (
	"context"
	"errors"

	"terraverde/internal/domain/entity"
)

// ErrContentNotFound is returned when a content entity (blog post, service
// offering, event, news) is not found.
var ErrContentNotFound = errors.New("content not found")

// BlogRepository defines the operations for blog post persistence.
type BlogRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.BlogPost, error)

	// List returns posts, newest first. When includeUnpublished is false
	// only published posts are returned.
	List(ctx context.Context, includeUnpublished bool) ([]*entity.BlogPost, error)

	Create(ctx context.Context, post *entity.BlogPost) error

	// Update writes the supplied fields only. Returns ErrContentNotFound
	// when no row matches.
	Update(ctx context.Context, id uint, fields map[string]any) error

	// Delete hard-deletes the post. Returns ErrContentNotFound when no row
	// was affected.
	Delete(ctx context.Context, id uint) error

	// Search returns published posts matching the query in either language.
	Search(ctx context.Context, query string) ([]*entity.BlogPost, error)
}

// ServiceRepository defines the operations for service offering persistence.
type ServiceRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.ServiceOffering, error)
	List(ctx context.Context, includeInactive bool) ([]*entity.ServiceOffering, error)
	Create(ctx context.Context, offering *entity.ServiceOffering) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, query string) ([]*entity.ServiceOffering, error)
}

// EventRepository defines the operations for event persistence.
type EventRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Event, error)

	// List returns events ordered by start time. When includeAll is false
	// cancelled events are omitted.
	List(ctx context.Context, includeAll bool) ([]*entity.Event, error)

	Create(ctx context.Context, event *entity.Event) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

// NewsRepository defines the operations for news persistence.
type NewsRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.News, error)
	List(ctx context.Context, includeUnpublished bool) ([]*entity.News, error)
	Create(ctx context.Context, news *entity.News) error
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"terraverde/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their internal ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByOpenID retrieves a single user by the identity provider's
	// opaque ID.
	FindByOpenID(ctx context.Context, openID string) (*entity.User, error)

	// Upsert inserts the user keyed by OpenID, or refreshes
	// Name/Email/LoginMethod/LastSignedIn when the row already exists.
	// The entity is updated with the persisted state.
	Upsert(ctx context.Context, user *entity.User) error

	// Update writes the supplied fields on the user row. Omitted fields
	// retain their prior values.
	Update(ctx context.Context, id uint, fields map[string]any) error

	// List returns every user, newest first.
	List(ctx context.Context) ([]*entity.User, error)
}

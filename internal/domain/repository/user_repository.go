// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/Akashi23/anime-quote/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. The input must not carry an ID; the store
	// assigns one and fills it in, along with both timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Update modifies an existing user and refreshes its UpdatedAt. Returns
	// ErrUserNotFound if the row no longer exists.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID. Quotes owned by the user are removed with
	// it (ON DELETE CASCADE). Returns ErrUserNotFound if the row is gone.
	Delete(ctx context.Context, id int64) error

	// ListAll returns every user in the store.
	ListAll(ctx context.Context) ([]*entity.User, error)
}

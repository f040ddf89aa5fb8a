package repository

import (
	"context"
	"errors"

	"github.com/Akashi23/anime-quote/internal/domain/entity"
)

// ErrQuoteNotFound is a domain-specific error returned when a quote is not found.
var ErrQuoteNotFound = errors.New("quote not found")

// QuoteRepository defines the standard operations for quote persistence.
// Ownership checks live in the application layer; this interface is pure CRUD.
type QuoteRepository interface {
	// Create persists a new quote. The input must not carry an ID. Returns
	// ErrUserNotFound if quote.UserID does not reference an existing user.
	Create(ctx context.Context, quote *entity.Quote) error

	// FindByID retrieves a single quote by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Quote, error)

	// FindByOwner retrieves all quotes owned by the given user.
	FindByOwner(ctx context.Context, userID int64) ([]*entity.Quote, error)

	// Update modifies the text fields of an existing quote and refreshes its
	// UpdatedAt. Returns ErrQuoteNotFound if the row no longer exists.
	Update(ctx context.Context, quote *entity.Quote) error

	// Delete removes a quote by ID. Returns ErrQuoteNotFound if the row is gone.
	Delete(ctx context.Context, id int64) error

	// ListAll returns every quote in the store.
	ListAll(ctx context.Context) ([]*entity.Quote, error)
}

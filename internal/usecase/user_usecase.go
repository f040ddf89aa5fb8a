// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/Akashi23/anime-quote/internal/domain/entity"
	"github.com/Akashi23/anime-quote/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user after a successful registration
// or login. The caller must project it to a password-free shape before
// sending it to a client.
type AuthOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for credential and session-authentication
// operations. This is the contract the delivery layer depends on.
type UserUsecase interface {
	// Register creates an account and binds the session to the new user's
	// ID before returning. On any failure no session state is touched.
	Register(ctx context.Context, sess service.Session, input *RegisterInput) (*AuthOutput, error)

	// Login authenticates a username/password pair and binds the session to
	// the user's ID before returning. An unknown username and a wrong
	// password produce the same error.
	Login(ctx context.Context, sess service.Session, input *LoginInput) (*AuthOutput, error)

	// Logout destroys the session's server-side state. Idempotent.
	Logout(ctx context.Context, sess service.Session) error
}

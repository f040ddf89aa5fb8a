// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/Akashi23/anime-quote/internal/domain/entity"
	domainerrors "github.com/Akashi23/anime-quote/internal/domain/errors"
	"github.com/Akashi23/anime-quote/internal/domain/repository"
	"github.com/Akashi23/anime-quote/internal/domain/service"
	"github.com/Akashi23/anime-quote/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

// Register creates an account from a username/password pair. The password is
// hashed before the transaction opens; the session is bound to the new ID
// only after the transaction committed, so no response can claim success
// while the session is still anonymous and no session binds for a user that
// was never stored.
func (srv *userService) Register(ctx context.Context, sess service.Session, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password must not be empty")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		// Hashing failure is internal; it must never look like bad credentials.
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		srv.logger.Warn("Failed to register user", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register user")
	}

	sess.Set(service.SessionKeyUserID, user.ID)

	srv.logger.Info("User registered", slog.Int64("userID", user.ID), slog.String("username", username))

	return &usecase.AuthOutput{User: user}, nil
}

// Login authenticates a username/password pair and binds the session. An
// unknown username and a wrong password both return ErrInvalidCredentials,
// so a client cannot probe which usernames exist.
func (srv *userService) Login(ctx context.Context, sess service.Session, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("username and password must not be empty")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		srv.logger.Error("Failed to look up user during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	match, err := srv.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		// A stored hash that no longer decodes means the row was corrupted.
		// Treat it as a non-match but make sure it reaches the logs.
		srv.logger.Error("Stored password hash is malformed",
			slog.Int64("userID", user.ID),
			slog.Any("error", err),
		)
	}
	if !match {
		return nil, domainerrors.ErrInvalidCredentials
	}

	sess.Set(service.SessionKeyUserID, user.ID)

	srv.logger.Info("User logged in", slog.Int64("userID", user.ID))

	return &usecase.AuthOutput{User: user}, nil
}

// Logout destroys the session's server-side state. Logging out twice is not
// an error.
func (srv *userService) Logout(_ context.Context, sess service.Session) error {
	if sess == nil {
		return nil
	}

	sess.Destroy()

	return nil
}

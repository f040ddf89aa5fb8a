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

// quoteService implements the QuoteUsecase interface.
type quoteService struct {
	txManager repository.TransactionManager
	quoteRepo repository.QuoteRepository
	logger    *slog.Logger
}

// NewQuoteService is the constructor for quoteService.
func NewQuoteService(
	txManager repository.TransactionManager,
	quoteRepo repository.QuoteRepository,
	logger *slog.Logger,
) usecase.QuoteUsecase {
	return &quoteService{
		txManager: txManager,
		quoteRepo: quoteRepo,
		logger:    logger,
	}
}

// CreateQuote stores a new quote owned by the session's bound user.
func (srv *quoteService) CreateQuote(ctx context.Context, sess service.Session, input *usecase.QuoteInput) (*entity.Quote, error) {
	userID := usecase.BoundUserID(sess)
	if userID == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	if strings.TrimSpace(input.Quote) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quote text must not be empty")
	}

	quote := &entity.Quote{
		UserID:    *userID,
		Quote:     input.Quote,
		Anime:     input.Anime,
		Character: input.Character,
	}

	if err := srv.quoteRepo.Create(ctx, quote); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The session references an account that no longer exists.
			return nil, domainerrors.ErrUserNotFound
		}

		srv.logger.Error("Failed to create quote", slog.Int64("userID", *userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create quote")
	}

	srv.logger.Debug("Quote created", slog.Int64("quoteID", quote.ID), slog.Int64("userID", *userID))

	return quote, nil
}

// GetQuote returns a quote by ID after checking that the session's bound
// user owns it. A non-owner gets an authorization error, never the contents.
func (srv *quoteService) GetQuote(ctx context.Context, sess service.Session, id int64) (*entity.Quote, error) {
	userID := usecase.BoundUserID(sess)
	if userID == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	quote, err := srv.findQuote(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := service.Authorize(userID, quote.UserID); err != nil {
		return nil, err
	}

	return quote, nil
}

// ListQuotes returns all quotes owned by the session's bound user.
func (srv *quoteService) ListQuotes(ctx context.Context, sess service.Session) ([]*entity.Quote, error) {
	userID := usecase.BoundUserID(sess)
	if userID == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	quotes, err := srv.quoteRepo.FindByOwner(ctx, *userID)
	if err != nil {
		srv.logger.Error("Failed to list quotes", slog.Int64("userID", *userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list quotes")
	}

	return quotes, nil
}

// UpdateQuote rewrites the text fields of a quote the session's bound user
// owns. Fetch, ownership check, and write share one transaction so a
// concurrent delete cannot slip between them.
func (srv *quoteService) UpdateQuote(ctx context.Context, sess service.Session, id int64, input *usecase.QuoteInput) (*entity.Quote, error) {
	userID := usecase.BoundUserID(sess)
	if userID == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	if strings.TrimSpace(input.Quote) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("quote text must not be empty")
	}

	var updated *entity.Quote
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		quoteRepo := repoFactory.QuoteRepo()

		quote, err := quoteRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrQuoteNotFound) {
				return domainerrors.ErrQuoteNotFound
			}

			return errors.Wrap(err, "failed to find quote")
		}

		if err := service.Authorize(userID, quote.UserID); err != nil {
			return err
		}

		quote.Quote = input.Quote
		quote.Anime = input.Anime
		quote.Character = input.Character

		if err := quoteRepo.Update(ctx, quote); err != nil {
			if errors.Is(err, repository.ErrQuoteNotFound) {
				return domainerrors.ErrQuoteNotFound
			}

			return errors.Wrap(err, "failed to update quote")
		}

		updated = quote

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Debug("Quote updated", slog.Int64("quoteID", id), slog.Int64("userID", *userID))

	return updated, nil
}

// DeleteQuote removes a quote the session's bound user owns.
func (srv *quoteService) DeleteQuote(ctx context.Context, sess service.Session, id int64) error {
	userID := usecase.BoundUserID(sess)
	if userID == nil {
		return domainerrors.ErrUnauthenticated
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		quoteRepo := repoFactory.QuoteRepo()

		quote, err := quoteRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrQuoteNotFound) {
				return domainerrors.ErrQuoteNotFound
			}

			return errors.Wrap(err, "failed to find quote")
		}

		if err := service.Authorize(userID, quote.UserID); err != nil {
			return err
		}

		if err := quoteRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrQuoteNotFound) {
				return domainerrors.ErrQuoteNotFound
			}

			return errors.Wrap(err, "failed to delete quote")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Debug("Quote deleted", slog.Int64("quoteID", id), slog.Int64("userID", *userID))

	return nil
}

func (srv *quoteService) findQuote(ctx context.Context, id int64) (*entity.Quote, error) {
	quote, err := srv.quoteRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuoteNotFound) {
			return nil, domainerrors.ErrQuoteNotFound
		}

		srv.logger.Error("Failed to find quote", slog.Int64("quoteID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find quote")
	}

	return quote, nil
}

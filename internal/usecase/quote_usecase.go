package usecase

import (
	"context"

	"github.com/Akashi23/anime-quote/internal/domain/entity"
	"github.com/Akashi23/anime-quote/internal/domain/service"
)

// QuoteInput defines the writable fields of a quote. Ownership is never an
// input; it always comes from the session.
type QuoteInput struct {
	Quote     string
	Anime     string
	Character string
}

// QuoteUsecase defines the interface for quote operations. Every operation
// requires an authenticated session, and every operation that touches an
// existing quote checks ownership before revealing anything about it.
type QuoteUsecase interface {
	CreateQuote(ctx context.Context, sess service.Session, input *QuoteInput) (*entity.Quote, error)
	GetQuote(ctx context.Context, sess service.Session, id int64) (*entity.Quote, error)
	ListQuotes(ctx context.Context, sess service.Session) ([]*entity.Quote, error)
	UpdateQuote(ctx context.Context, sess service.Session, id int64, input *QuoteInput) (*entity.Quote, error)
	DeleteQuote(ctx context.Context, sess service.Session, id int64) error
}

package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Akashi23/anime-quote/internal/domain/entity"
	domainerrors "github.com/Akashi23/anime-quote/internal/domain/errors"
	"github.com/Akashi23/anime-quote/internal/domain/repository"
	"github.com/Akashi23/anime-quote/internal/domain/service"
	mockRepo "github.com/Akashi23/anime-quote/internal/mocks/repository"
	"github.com/Akashi23/anime-quote/internal/usecase"
)

// quoteServiceFixtures holds all test dependencies for quote service tests.
type quoteServiceFixtures struct {
	service   usecase.QuoteUsecase
	txManager *mockRepo.MockTransactionManager
	quoteRepo *mockRepo.MockQuoteRepository
}

func createTestQuoteService(t *testing.T) quoteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	quoteRepo := mockRepo.NewMockQuoteRepository(t)

	svc := NewQuoteService(txManager, quoteRepo, newDiscardLogger())

	return quoteServiceFixtures{
		service:   svc,
		txManager: txManager,
		quoteRepo: quoteRepo,
	}
}

func newBoundSession(userID int64) service.Session {
	sess := newTestSession()
	sess.Set(service.SessionKeyUserID, userID)

	return sess
}

func testQuoteInput() *usecase.QuoteInput {
	return &usecase.QuoteInput{
		Quote:     "If you win, you live. If you lose, you die.",
		Anime:     "Attack on Titan",
		Character: "Eren Yeager",
	}
}

func TestQuoteService_CreateQuote_Success(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()
	sess := newBoundSession(42)
	input := testQuoteInput()

	fx.quoteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Quote")).
		Run(func(ctx context.Context, quote *entity.Quote) {
			quote.ID = 7
		}).
		Return(nil)

	quote, err := fx.service.CreateQuote(ctx, sess, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), quote.ID)
	assert.Equal(t, int64(42), quote.UserID, "ownership must come from the session, not the input")
	assert.Equal(t, input.Quote, quote.Quote)
	assert.Equal(t, input.Anime, quote.Anime)
	assert.Equal(t, input.Character, quote.Character)
}

func TestQuoteService_CreateQuote_Unauthenticated(t *testing.T) {
	fx := createTestQuoteService(t)

	quote, err := fx.service.CreateQuote(context.Background(), newTestSession(), testQuoteInput())

	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestQuoteService_CreateQuote_AfterLogout(t *testing.T) {
	fx := createTestQuoteService(t)

	sess := newBoundSession(42)
	sess.Destroy()

	quote, err := fx.service.CreateQuote(context.Background(), sess, testQuoteInput())

	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestQuoteService_CreateQuote_EmptyText(t *testing.T) {
	fx := createTestQuoteService(t)

	quote, err := fx.service.CreateQuote(context.Background(), newBoundSession(42), &usecase.QuoteInput{
		Quote: "   ",
		Anime: "Attack on Titan",
	})

	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestQuoteService_CreateQuote_OwnerRowGone(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()

	fx.quoteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Quote")).
		Return(repository.ErrUserNotFound)

	quote, err := fx.service.CreateQuote(ctx, newBoundSession(42), testQuoteInput())

	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestQuoteService_GetQuote_OwnerReadsOwnQuote(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()
	stored := &entity.Quote{
		ID:        7,
		UserID:    42,
		Quote:     "If you win, you live.",
		Anime:     "Attack on Titan",
		Character: "Eren Yeager",
	}

	fx.quoteRepo.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)

	quote, err := fx.service.GetQuote(ctx, newBoundSession(42), 7)

	require.NoError(t, err)
	assert.Equal(t, stored, quote)
}

func TestQuoteService_GetQuote_OtherOwnerForbidden(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()
	stored := &entity.Quote{ID: 7, UserID: 42, Quote: "If you win, you live."}

	fx.quoteRepo.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)

	quote, err := fx.service.GetQuote(ctx, newBoundSession(99), 7)

	assert.Nil(t, quote, "a non-owner must never receive the contents")
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestQuoteService_GetQuote_NotFound(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()

	fx.quoteRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrQuoteNotFound)

	quote, err := fx.service.GetQuote(ctx, newBoundSession(42), 404)

	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrQuoteNotFound))
}

func TestQuoteService_GetQuote_Unauthenticated(t *testing.T) {
	fx := createTestQuoteService(t)

	quote, err := fx.service.GetQuote(context.Background(), newTestSession(), 7)

	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestQuoteService_ListQuotes_OnlyOwnQuotes(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()
	owned := []*entity.Quote{
		{ID: 1, UserID: 42, Quote: "first"},
		{ID: 3, UserID: 42, Quote: "third"},
	}

	fx.quoteRepo.EXPECT().FindByOwner(ctx, int64(42)).Return(owned, nil)

	quotes, err := fx.service.ListQuotes(ctx, newBoundSession(42))

	require.NoError(t, err)
	assert.Equal(t, owned, quotes)
}

func TestQuoteService_ListQuotes_Unauthenticated(t *testing.T) {
	fx := createTestQuoteService(t)

	quotes, err := fx.service.ListQuotes(context.Background(), newTestSession())

	assert.Nil(t, quotes)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestQuoteService_UpdateQuote_Success(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()
	input := &usecase.QuoteInput{
		Quote:     "The world is merciless.",
		Anime:     "Attack on Titan",
		Character: "Mikasa Ackerman",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockQuoteRepo := mockRepo.NewMockQuoteRepository(t)

			mockFactory.EXPECT().QuoteRepo().Return(mockQuoteRepo)

			mockQuoteRepo.EXPECT().
				FindByID(ctx, int64(7)).
				Return(&entity.Quote{ID: 7, UserID: 42, Quote: "old text"}, nil)

			mockQuoteRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Quote")).
				Run(func(ctx context.Context, quote *entity.Quote) {
					assert.Equal(t, "The world is merciless.", quote.Quote)
					assert.Equal(t, "Mikasa Ackerman", quote.Character)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	quote, err := fx.service.UpdateQuote(ctx, newBoundSession(42), 7, input)

	require.NoError(t, err)
	assert.Equal(t, input.Quote, quote.Quote)
	assert.Equal(t, int64(42), quote.UserID)
}

func TestQuoteService_UpdateQuote_OtherOwnerForbidden(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockQuoteRepo := mockRepo.NewMockQuoteRepository(t)

			mockFactory.EXPECT().QuoteRepo().Return(mockQuoteRepo)
			mockQuoteRepo.EXPECT().
				FindByID(ctx, int64(7)).
				Return(&entity.Quote{ID: 7, UserID: 42}, nil)

			return fn(mockFactory)
		})

	quote, err := fx.service.UpdateQuote(ctx, newBoundSession(99), 7, testQuoteInput())

	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestQuoteService_UpdateQuote_NotFound(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockQuoteRepo := mockRepo.NewMockQuoteRepository(t)

			mockFactory.EXPECT().QuoteRepo().Return(mockQuoteRepo)
			mockQuoteRepo.EXPECT().
				FindByID(ctx, int64(404)).
				Return(nil, repository.ErrQuoteNotFound)

			return fn(mockFactory)
		})

	quote, err := fx.service.UpdateQuote(ctx, newBoundSession(42), 404, testQuoteInput())

	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrQuoteNotFound))
}

func TestQuoteService_UpdateQuote_EmptyText(t *testing.T) {
	fx := createTestQuoteService(t)

	quote, err := fx.service.UpdateQuote(context.Background(), newBoundSession(42), 7, &usecase.QuoteInput{
		Quote: "",
	})

	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestQuoteService_DeleteQuote_Success(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockQuoteRepo := mockRepo.NewMockQuoteRepository(t)

			mockFactory.EXPECT().QuoteRepo().Return(mockQuoteRepo)
			mockQuoteRepo.EXPECT().
				FindByID(ctx, int64(7)).
				Return(&entity.Quote{ID: 7, UserID: 42}, nil)
			mockQuoteRepo.EXPECT().Delete(ctx, int64(7)).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteQuote(ctx, newBoundSession(42), 7)

	require.NoError(t, err)
}

func TestQuoteService_DeleteQuote_OtherOwnerForbidden(t *testing.T) {
	fx := createTestQuoteService(t)

	ctx := context.Background()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockQuoteRepo := mockRepo.NewMockQuoteRepository(t)

			mockFactory.EXPECT().QuoteRepo().Return(mockQuoteRepo)
			mockQuoteRepo.EXPECT().
				FindByID(ctx, int64(7)).
				Return(&entity.Quote{ID: 7, UserID: 42}, nil)

			return fn(mockFactory)
		})

	err := fx.service.DeleteQuote(ctx, newBoundSession(99), 7)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestQuoteService_DeleteQuote_Unauthenticated(t *testing.T) {
	fx := createTestQuoteService(t)

	err := fx.service.DeleteQuote(context.Background(), newTestSession(), 7)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

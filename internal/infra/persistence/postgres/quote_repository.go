package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/Akashi23/anime-quote/internal/domain/entity"
	domainerrors "github.com/Akashi23/anime-quote/internal/domain/errors"
	"github.com/Akashi23/anime-quote/internal/domain/repository"
	"github.com/Akashi23/anime-quote/internal/infra/persistence/model"
)

// quoteRepository implements the domain's QuoteRepository interface using GORM.
type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository is the constructor for quoteRepository.
func NewQuoteRepository(db *gorm.DB) repository.QuoteRepository {
	return &quoteRepository{db: db}
}

// Create persists a new quote. A UserID that references no existing user
// trips the foreign key and is reported as ErrUserNotFound.
func (repo *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	quoteM := fromQuoteDomain(quote)

	if err := repo.db.WithContext(ctx).Create(quoteM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required quote fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create quote")
	}

	quote.ID = quoteM.ID
	quote.CreatedAt = quoteM.CreatedAt
	quote.UpdatedAt = quoteM.UpdatedAt

	return nil
}

// FindByID retrieves a single quote by its unique ID.
func (repo *quoteRepository) FindByID(ctx context.Context, id int64) (*entity.Quote, error) {
	var quoteM model.QuoteModel
	if err := repo.db.WithContext(ctx).First(&quoteM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find quote by id")
	}

	return toQuoteDomain(&quoteM), nil
}

// FindByOwner retrieves all quotes owned by the given user, oldest first.
func (repo *quoteRepository) FindByOwner(ctx context.Context, userID int64) ([]*entity.Quote, error) {
	var quoteMs []model.QuoteModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&quoteMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find quotes by owner")
	}

	return toQuoteDomainSlice(quoteMs), nil
}

// Update modifies the text fields of an existing quote. Ownership never
// changes through this path. A vanished row is reported as ErrQuoteNotFound.
func (repo *quoteRepository) Update(ctx context.Context, quote *entity.Quote) error {
	result := repo.db.WithContext(ctx).
		Model(&model.QuoteModel{}).
		Where("id = ?", quote.ID).
		Updates(map[string]any{
			"quote":     quote.Quote,
			"anime":     quote.Anime,
			"character": quote.Character,
		})

	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update quote")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

// Delete removes a quote by ID.
func (repo *quoteRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.QuoteModel{}, id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete quote")
	}
	if result.RowsAffected == 0 {
		return repository.ErrQuoteNotFound
	}

	return nil
}

// ListAll returns every quote in the store.
func (repo *quoteRepository) ListAll(ctx context.Context) ([]*entity.Quote, error) {
	var quoteMs []model.QuoteModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&quoteMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list quotes")
	}

	return toQuoteDomainSlice(quoteMs), nil
}

// --- Mapper Functions ---

func toQuoteDomain(data *model.QuoteModel) *entity.Quote {
	if data == nil {
		return nil
	}

	return &entity.Quote{
		ID:        data.ID,
		UserID:    data.UserID,
		Quote:     data.Quote,
		Anime:     data.Anime,
		Character: data.Character,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toQuoteDomainSlice(data []model.QuoteModel) []*entity.Quote {
	quotes := make([]*entity.Quote, 0, len(data))
	for i := range data {
		quotes = append(quotes, toQuoteDomain(&data[i]))
	}

	return quotes
}

func fromQuoteDomain(data *entity.Quote) *model.QuoteModel {
	if data == nil {
		return nil
	}

	return &model.QuoteModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Quote:     data.Quote,
		Anime:     data.Anime,
		Character: data.Character,
	}
}

package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Akashi23/anime-quote/internal/delivery/http/middleware"
	"github.com/Akashi23/anime-quote/internal/delivery/http/response"
	"github.com/Akashi23/anime-quote/internal/domain/entity"
	domainerrors "github.com/Akashi23/anime-quote/internal/domain/errors"
	"github.com/Akashi23/anime-quote/internal/usecase"
)

// QuoteRequest is the request body for creating or updating a quote.
type QuoteRequest struct {
	Quote     string `json:"quote" validate:"required"`
	Anime     string `json:"anime"`
	Character string `json:"character"`
}

// QuoteResponse is the client-facing shape of a quote.
type QuoteResponse struct {
	ID        int64  `json:"id"`
	Quote     string `json:"quote"`
	Anime     string `json:"anime"`
	Character string `json:"character"`
}

func toQuoteResponse(quote *entity.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:        quote.ID,
		Quote:     quote.Quote,
		Anime:     quote.Anime,
		Character: quote.Character,
	}
}

func toQuoteResponseSlice(quotes []*entity.Quote) []*QuoteResponse {
	out := make([]*QuoteResponse, 0, len(quotes))
	for _, quote := range quotes {
		out = append(out, toQuoteResponse(quote))
	}

	return out
}

// QuoteHandler holds dependencies for quote-related handlers.
type QuoteHandler struct {
	uc     usecase.QuoteUsecase
	logger *slog.Logger
}

// NewQuoteHandler is the constructor for QuoteHandler, injected by Fx.
func NewQuoteHandler(uc usecase.QuoteUsecase, logger *slog.Logger) *QuoteHandler {
	return &QuoteHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateQuote handles the quote creation request. The quote's owner is the
// session's bound user, never a client-supplied field.
func (h *QuoteHandler) CreateQuote(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NO_SESSION", "No session on request")
	}

	quote, err := h.uc.CreateQuote(c.Request().Context(), sess, &usecase.QuoteInput{
		Quote:     req.Quote,
		Anime:     req.Anime,
		Character: req.Character,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toQuoteResponse(quote), "Quote created successfully")
}

// ListQuotes handles listing the session user's own quotes.
func (h *QuoteHandler) ListQuotes(c echo.Context) error {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NO_SESSION", "No session on request")
	}

	quotes, err := h.uc.ListQuotes(c.Request().Context(), sess)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuoteResponseSlice(quotes), "Quotes retrieved successfully")
}

// GetQuote handles reading a single quote by ID.
func (h *QuoteHandler) GetQuote(c echo.Context) error {
	id, err := quoteID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NO_SESSION", "No session on request")
	}

	quote, err := h.uc.GetQuote(c.Request().Context(), sess, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuoteResponse(quote), "Quote retrieved successfully")
}

// UpdateQuote handles rewriting a quote's text fields.
func (h *QuoteHandler) UpdateQuote(c echo.Context) error {
	id, err := quoteID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quote input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NO_SESSION", "No session on request")
	}

	quote, err := h.uc.UpdateQuote(c.Request().Context(), sess, id, &usecase.QuoteInput{
		Quote:     req.Quote,
		Anime:     req.Anime,
		Character: req.Character,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toQuoteResponse(quote), "Quote updated successfully")
}

// DeleteQuote handles removing a quote.
func (h *QuoteHandler) DeleteQuote(c echo.Context) error {
	id, err := quoteID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NO_SESSION", "No session on request")
	}

	if err := h.uc.DeleteQuote(c.Request().Context(), sess, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Quote deleted"}, "Quote deleted successfully")
}

func quoteID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("quote id must be an integer")
	}

	return id, nil
}

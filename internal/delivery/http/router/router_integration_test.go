package router

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akashi23/anime-quote/config"
	"github.com/Akashi23/anime-quote/internal/delivery/http/middleware"
	"github.com/Akashi23/anime-quote/internal/delivery/http/router/handler"
	"github.com/Akashi23/anime-quote/internal/delivery/http/validator"
	"github.com/Akashi23/anime-quote/internal/domain/entity"
	domainerrors "github.com/Akashi23/anime-quote/internal/domain/errors"
	"github.com/Akashi23/anime-quote/internal/domain/repository"
	"github.com/Akashi23/anime-quote/internal/infra/auth"
	"github.com/Akashi23/anime-quote/internal/infra/session"
	"github.com/Akashi23/anime-quote/internal/usecase/impl"
)

// fakeStore is an in-memory stand-in for the Postgres repositories so the
// full HTTP pipeline can run without a database. Error mapping mirrors the
// real repositories.
type fakeStore struct {
	users      map[int64]*entity.User
	quotes     map[int64]*entity.Quote
	nextUserID int64
	nextQuote  int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[int64]*entity.User),
		quotes: make(map[int64]*entity.Quote),
	}
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	for _, existing := range r.store.users {
		if existing.Username == user.Username {
			return domainerrors.ErrUserAlreadyExists
		}
	}

	r.store.nextUserID++
	user.ID = r.store.nextUserID
	copied := *user
	r.store.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.Username == username {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.store.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	copied := *user
	r.store.users[user.ID] = &copied

	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.store.users, id)
	for quoteID, quote := range r.store.quotes {
		if quote.UserID == id {
			delete(r.store.quotes, quoteID)
		}
	}

	return nil
}

func (r *fakeUserRepo) ListAll(_ context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		copied := *user
		out = append(out, &copied)
	}

	return out, nil
}

type fakeQuoteRepo struct{ store *fakeStore }

func (r *fakeQuoteRepo) Create(_ context.Context, quote *entity.Quote) error {
	if _, ok := r.store.users[quote.UserID]; !ok {
		return repository.ErrUserNotFound
	}

	r.store.nextQuote++
	quote.ID = r.store.nextQuote
	copied := *quote
	r.store.quotes[quote.ID] = &copied

	return nil
}

func (r *fakeQuoteRepo) FindByID(_ context.Context, id int64) (*entity.Quote, error) {
	quote, ok := r.store.quotes[id]
	if !ok {
		return nil, repository.ErrQuoteNotFound
	}
	copied := *quote

	return &copied, nil
}

func (r *fakeQuoteRepo) FindByOwner(_ context.Context, userID int64) ([]*entity.Quote, error) {
	out := make([]*entity.Quote, 0)
	for _, quote := range r.store.quotes {
		if quote.UserID == userID {
			copied := *quote
			out = append(out, &copied)
		}
	}

	return out, nil
}

func (r *fakeQuoteRepo) Update(_ context.Context, quote *entity.Quote) error {
	if _, ok := r.store.quotes[quote.ID]; !ok {
		return repository.ErrQuoteNotFound
	}
	copied := *quote
	r.store.quotes[quote.ID] = &copied

	return nil
}

func (r *fakeQuoteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.quotes[id]; !ok {
		return repository.ErrQuoteNotFound
	}
	delete(r.store.quotes, id)

	return nil
}

func (r *fakeQuoteRepo) ListAll(_ context.Context) ([]*entity.Quote, error) {
	out := make([]*entity.Quote, 0, len(r.store.quotes))
	for _, quote := range r.store.quotes {
		copied := *quote
		out = append(out, &copied)
	}

	return out, nil
}

// fakeTxManager runs the transactional function directly against the fakes.
type fakeTxManager struct{ store *fakeStore }

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeFactory{store: m.store})
}

type fakeFactory struct{ store *fakeStore }

func (f *fakeFactory) UserRepo() repository.UserRepository {
	return &fakeUserRepo{store: f.store}
}

func (f *fakeFactory) QuoteRepo() repository.QuoteRepository {
	return &fakeQuoteRepo{store: f.store}
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := newFakeStore()

	userRepo := &fakeUserRepo{store: store}
	quoteRepo := &fakeQuoteRepo{store: store}
	txManager := &fakeTxManager{store: store}

	// Low argon2 cost keeps the hashing path real without slowing the suite.
	hasher := auth.NewArgon2HasherWithParams(1, 8*1024, 1, 32)

	userUsecase := impl.NewUserService(txManager, userRepo, hasher, logger)
	quoteUsecase := impl.NewQuoteService(txManager, quoteRepo, logger)

	cfg := &config.Config{Session: &config.SessionConfig{CookieName: "anime_quote_session"}}
	sessionMiddleware := middleware.NewSessionMiddleware(session.NewMemoryStore(), cfg)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		UserHandler:       handler.NewUserHandler(userUsecase, logger),
		QuoteHandler:      handler.NewQuoteHandler(quoteUsecase, logger),
		SessionMiddleware: sessionMiddleware,
	})
	r.RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "anime_quote_session" {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")

	return nil
}

func registerUser(t *testing.T, e *echo.Echo, username, password string) *http.Cookie {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"`+username+`","password":"`+password+`"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return sessionCookie(t, rec)
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRouter_HealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestRouter_Register_SetsCookieAndHidesPassword(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"levi","password":"Password123!"}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	cookie := sessionCookie(t, rec)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Contains(t, string(env.Data), `"levi"`)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "argon2")
}

func TestRouter_Register_DuplicateUsername(t *testing.T) {
	e := newTestServer(t)

	registerUser(t, e, "levi", "Password123!")

	rec := doJSON(e, http.MethodPost, "/auth/register",
		`{"username":"levi","password":"OtherPass456!"}`, nil)

	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())

	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
}

func TestRouter_Register_MissingFields(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodPost, "/auth/register", `{"username":"levi"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestRouter_Login_FailuresAreUniform(t *testing.T) {
	e := newTestServer(t)

	registerUser(t, e, "levi", "Password123!")

	wrongPassword := doJSON(e, http.MethodPost, "/auth/login",
		`{"username":"levi","password":"nope"}`, nil)
	unknownUser := doJSON(e, http.MethodPost, "/auth/login",
		`{"username":"ghost","password":"nope"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)

	// Identical envelopes keep username probing blind.
	wrongEnv := decodeEnvelope(t, wrongPassword)
	unknownEnv := decodeEnvelope(t, unknownUser)
	assert.Equal(t, wrongEnv.Message, unknownEnv.Message)
	assert.Equal(t, wrongEnv.Error.Code, unknownEnv.Error.Code)
}

func TestRouter_Login_BindsSession(t *testing.T) {
	e := newTestServer(t)

	registerUser(t, e, "levi", "Password123!")

	rec := doJSON(e, http.MethodPost, "/auth/login",
		`{"username":"levi","password":"Password123!"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cookie := sessionCookie(t, rec)

	created := doJSON(e, http.MethodPost, "/quotes",
		`{"quote":"Shinzou wo sasageyo","anime":"Attack on Titan","character":"Erwin Smith"}`, cookie)
	assert.Equal(t, http.StatusCreated, created.Code, created.Body.String())
}

func TestRouter_Quotes_RequireAuthentication(t *testing.T) {
	e := newTestServer(t)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/quotes", `{"quote":"text"}`},
		{http.MethodGet, "/quotes", ""},
		{http.MethodGet, "/quotes/1", ""},
		{http.MethodPatch, "/quotes/1", `{"quote":"text"}`},
		{http.MethodDelete, "/quotes/1", ""},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := doJSON(e, tc.method, tc.path, tc.body, nil)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())
		})
	}
}

func TestRouter_Quotes_OwnershipEnforced(t *testing.T) {
	e := newTestServer(t)

	levi := registerUser(t, e, "levi", "Password123!")
	mikasa := registerUser(t, e, "mikasa", "Password456!")

	created := doJSON(e, http.MethodPost, "/quotes",
		`{"quote":"If you win, you live.","anime":"Attack on Titan","character":"Eren Yeager"}`, levi)
	require.Equal(t, http.StatusCreated, created.Code, created.Body.String())

	var quote struct {
		ID int64 `json:"id"`
	}
	env := decodeEnvelope(t, created)
	require.NoError(t, json.Unmarshal(env.Data, &quote))
	require.NotZero(t, quote.ID)

	quotePath := "/quotes/" + itoa(quote.ID)

	ownRead := doJSON(e, http.MethodGet, quotePath, "", levi)
	assert.Equal(t, http.StatusOK, ownRead.Code)

	strangerRead := doJSON(e, http.MethodGet, quotePath, "", mikasa)
	assert.Equal(t, http.StatusForbidden, strangerRead.Code)
	assert.NotContains(t, strangerRead.Body.String(), "If you win")

	strangerUpdate := doJSON(e, http.MethodPatch, quotePath, `{"quote":"hijacked"}`, mikasa)
	assert.Equal(t, http.StatusForbidden, strangerUpdate.Code)

	strangerDelete := doJSON(e, http.MethodDelete, quotePath, "", mikasa)
	assert.Equal(t, http.StatusForbidden, strangerDelete.Code)

	// The owner's quote is untouched.
	afterRead := doJSON(e, http.MethodGet, quotePath, "", levi)
	assert.Equal(t, http.StatusOK, afterRead.Code)
	assert.Contains(t, afterRead.Body.String(), "If you win")
}

func TestRouter_Quotes_ListShowsOnlyOwn(t *testing.T) {
	e := newTestServer(t)

	levi := registerUser(t, e, "levi", "Password123!")
	mikasa := registerUser(t, e, "mikasa", "Password456!")

	require.Equal(t, http.StatusCreated,
		doJSON(e, http.MethodPost, "/quotes", `{"quote":"first","anime":"a"}`, levi).Code)
	require.Equal(t, http.StatusCreated,
		doJSON(e, http.MethodPost, "/quotes", `{"quote":"second","anime":"b"}`, mikasa).Code)

	rec := doJSON(e, http.MethodGet, "/quotes", "", levi)
	require.Equal(t, http.StatusOK, rec.Code)

	env := decodeEnvelope(t, rec)
	var quotes []struct {
		Quote string `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quotes))
	require.Len(t, quotes, 1)
	assert.Equal(t, "first", quotes[0].Quote)
}

func TestRouter_Quotes_UpdateAndDeleteRoundTrip(t *testing.T) {
	e := newTestServer(t)

	levi := registerUser(t, e, "levi", "Password123!")

	created := doJSON(e, http.MethodPost, "/quotes",
		`{"quote":"old text","anime":"Attack on Titan","character":"Levi"}`, levi)
	require.Equal(t, http.StatusCreated, created.Code)

	env := decodeEnvelope(t, created)
	var quote struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quote))
	quotePath := "/quotes/" + itoa(quote.ID)

	updated := doJSON(e, http.MethodPatch, quotePath,
		`{"quote":"new text","anime":"Attack on Titan","character":"Levi"}`, levi)
	require.Equal(t, http.StatusOK, updated.Code, updated.Body.String())
	assert.Contains(t, updated.Body.String(), "new text")

	deleted := doJSON(e, http.MethodDelete, quotePath, "", levi)
	require.Equal(t, http.StatusOK, deleted.Code)

	gone := doJSON(e, http.MethodGet, quotePath, "", levi)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestRouter_Quotes_InvalidID(t *testing.T) {
	e := newTestServer(t)

	levi := registerUser(t, e, "levi", "Password123!")

	rec := doJSON(e, http.MethodGet, "/quotes/abc", "", levi)

	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
}

func TestRouter_Logout_InvalidatesSession(t *testing.T) {
	e := newTestServer(t)

	levi := registerUser(t, e, "levi", "Password123!")

	first := doJSON(e, http.MethodGet, "/auth/logout", "", levi)
	assert.Equal(t, http.StatusOK, first.Code)

	// The old cookie no longer maps to a bound session.
	rec := doJSON(e, http.MethodPost, "/quotes", `{"quote":"text"}`, levi)
	assert.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())

	second := doJSON(e, http.MethodGet, "/auth/logout", "", levi)
	assert.Equal(t, http.StatusOK, second.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

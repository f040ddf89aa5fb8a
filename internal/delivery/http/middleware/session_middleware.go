// Package middleware contains the HTTP middleware for the application.
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Akashi23/anime-quote/config"
	"github.com/Akashi23/anime-quote/internal/domain/service"
)

// sessionContextKey is the echo context key under which the per-request
// session handle is stored.
const sessionContextKey = "session"

// SessionMiddleware attaches a server-side session to every request. A
// client without a valid session cookie gets a fresh session and cookie; the
// handle is exposed to handlers through the echo context.
type SessionMiddleware struct {
	store      service.SessionStore
	cookieName string
	secure     bool
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(store service.SessionStore, cfg *config.Config) *SessionMiddleware {
	secure := false
	if cfg.Session != nil {
		secure = cfg.Session.Secure
	}

	return &SessionMiddleware{
		store:      store,
		cookieName: cfg.Session.CookieNameOrDefault(),
		secure:     secure,
	}
}

// Attach resolves the request's session, creating one when the cookie is
// missing or refers to a destroyed session.
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var sess service.Session

		if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
			if existing, ok := m.store.Find(cookie.Value); ok {
				sess = existing
			}
		}

		if sess == nil {
			sess = m.store.New()
			c.SetCookie(&http.Cookie{
				Name:     m.cookieName,
				Value:    sess.ID(),
				Path:     "/",
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(sessionContextKey, sess)

		return next(c)
	}
}

// SessionFromContext returns the session attached to the request, if any.
func SessionFromContext(c echo.Context) (service.Session, bool) {
	sess, ok := c.Get(sessionContextKey).(service.Session)

	return sess, ok
}

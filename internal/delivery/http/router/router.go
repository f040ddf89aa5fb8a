// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/Akashi23/anime-quote/internal/delivery/http/middleware"
	"github.com/Akashi23/anime-quote/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	QuoteHandler      *handler.QuoteHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	quoteHandler      *handler.QuoteHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		quoteHandler:      params.QuoteHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Every route
// runs behind the session middleware; the usecases decide per operation
// whether the session must already be bound to a user.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.sessionMiddleware.Attach)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.GET("/logout", r.userHandler.Logout)
	}

	// Quote routes; ownership checks happen in the quote usecase.
	quoteGroup := e.Group("/quotes")
	{
		quoteGroup.POST("", r.quoteHandler.CreateQuote)
		quoteGroup.GET("", r.quoteHandler.ListQuotes)
		quoteGroup.GET("/:id", r.quoteHandler.GetQuote)
		quoteGroup.PATCH("/:id", r.quoteHandler.UpdateQuote)
		quoteGroup.DELETE("/:id", r.quoteHandler.DeleteQuote)
	}
}

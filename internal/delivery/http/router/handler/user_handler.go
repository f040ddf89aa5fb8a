// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Akashi23/anime-quote/internal/delivery/http/middleware"
	"github.com/Akashi23/anime-quote/internal/delivery/http/response"
	"github.com/Akashi23/anime-quote/internal/domain/entity"
	"github.com/Akashi23/anime-quote/internal/usecase"
)

// AuthRequest is the request body for both registration and login.
type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the password-free projection of a user returned by auth
// endpoints. The stored hash never leaves the server.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func toUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}

// UserHandler holds dependencies for auth-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req AuthRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NO_SESSION", "No session on request")
	}

	output, err := h.uc.Register(c.Request().Context(), sess, &usecase.RegisterInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req AuthRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return response.Unauthorized(c, "NO_SESSION", "No session on request")
	}

	output, err := h.uc.Login(c.Request().Context(), sess, &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(output.User), "Login successful")
}

// Logout handles the user logout request. Logging out twice succeeds both times.
func (h *UserHandler) Logout(c echo.Context) error {
	sess, _ := middleware.SessionFromContext(c)

	if err := h.uc.Logout(c.Request().Context(), sess); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"}, "Logout successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

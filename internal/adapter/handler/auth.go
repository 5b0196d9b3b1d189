package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/content-studio-team/content-studio/errors"
	authDTO "github.com/content-studio-team/content-studio/internal/adapter/dto/auth"
	"github.com/content-studio-team/content-studio/internal/adapter/presenter"
	"github.com/content-studio-team/content-studio/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Register creates a new account
// POST /v1/auth/register
func (h *Auth) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err))
	}

	user, err := h.authService.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		return HandleError(h.logger, c, mapDomainError(c, err))
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToUserResponse(user))
}

// Login authenticates with email and password
// POST /v1/auth/login
func (h *Auth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err))
	}

	user, pair, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidCredentials())
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAuthResponse(user, pair))
}

// RefreshToken exchanges a refresh token for a fresh pair
// POST /v1/auth/refresh
func (h *Auth) RefreshToken(c echo.Context) error {
	ctx := c.Request().Context()

	var req authDTO.RefreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrValidation(err))
	}

	pair, err := h.authService.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidToken())
	}

	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAuthResponse(nil, pair))
}

package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/daanseva/donation_backend/internal/apperrors"
	portssvc "github.com/daanseva/donation_backend/internal/core/ports/services"
	"github.com/daanseva/donation_backend/internal/dto"
	"github.com/daanseva/donation_backend/internal/middleware"
	"github.com/daanseva/donation_backend/internal/platform/config"
	"github.com/daanseva/donation_backend/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// authService authenticates the single configured administrator account and
// issues short-lived bearer tokens for the admin API.
type authService struct {
	cfg *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the administrator credentials and returns a signed JWT.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) == 1
	passwordOK := utils.CheckPasswordHash(req.Password, s.cfg.AdminPasswordHash)
	if !usernameOK || !passwordOK {
		logger.Warn("Failed login attempt", "username", req.Username)
		return nil, fmt.Errorf("%w: %s", apperrors.ErrForbidden, ErrInvalidCredentials)
	}

	token, expiresAt, err := utils.GenerateJWT(s.cfg.AdminUsername, s.cfg.JWTIssuer, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	logger.Info("Administrator logged in", "username", req.Username)
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

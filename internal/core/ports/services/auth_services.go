package services

import (
	"context"

	"github.com/daanseva/donation_backend/internal/dto"
)

// AuthSvcFacade authenticates the administrator and issues API tokens.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

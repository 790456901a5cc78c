package services

import (
	"context"

	"github.com/daanseva/donation_backend/internal/core/domain"
	"github.com/daanseva/donation_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// FundSvcFacade defines fund campaign management and resolution operations.
type FundSvcFacade interface {
	CreateFund(ctx context.Context, req dto.CreateFundRequest, creatorUserID string) (*domain.Fund, error)
	GetFundByID(ctx context.Context, fundID string) (*domain.Fund, error)
	ListFunds(ctx context.Context, limit int, offset int) ([]domain.Fund, error)
	UpdateFund(ctx context.Context, fundID string, req dto.UpdateFundRequest, userID string) (*domain.Fund, error)
	DeleteFund(ctx context.Context, fundID string, userID string) error
	ActivateFund(ctx context.Context, fundID string, userID string) (*domain.Fund, error)

	// EnsureActiveFund returns the currently active fund, creating a default
	// one when no campaign is open so donations never fail for lack of an
	// administrative action.
	EnsureActiveFund(ctx context.Context, userID string) (*domain.Fund, error)

	// ApplyAmount delegates the atomic increment-and-maybe-complete to storage.
	ApplyAmount(ctx context.Context, fundID string, amount decimal.Decimal, userID string) (*domain.ApplyResult, error)
}

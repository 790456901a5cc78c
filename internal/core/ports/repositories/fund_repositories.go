package repositories

import (
	"context"
	"time"

	"github.com/daanseva/donation_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FundWriter defines write operations for funds.
type FundWriter interface {
	// SaveFund inserts a new fund. Saving a second ACTIVE fund fails with
	// ErrDuplicate (partial unique index).
	SaveFund(ctx context.Context, fund domain.Fund) error

	// UpdateFund updates the editable fields of a fund.
	UpdateFund(ctx context.Context, fund domain.Fund) error

	// ActivateFund promotes a PENDING fund to ACTIVE. Fails with ErrDuplicate
	// if another fund is already active, ErrConflict if the fund is not
	// pending.
	ActivateFund(ctx context.Context, fundID string, userID string, now time.Time) (*domain.Fund, error)

	// ApplyAmount atomically increments the fund's current amount and, in the
	// same statement, transitions the fund to COMPLETED when the new total
	// reaches the target. Implemented as a single conditional update so
	// concurrent applications never lose increments.
	ApplyAmount(ctx context.Context, fundID string, amount decimal.Decimal, userID string, now time.Time) (*domain.ApplyResult, error)

	// DeleteFund removes a fund. Fails with ErrConflict if the fund still
	// holds a non-zero balance or has recorded donations.
	DeleteFund(ctx context.Context, fundID string) error
}

// FundReader defines read operations for funds.
type FundReader interface {
	// FindFundByID retrieves a fund by its identifier.
	FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error)

	// FindActiveFund retrieves the single ACTIVE fund, or ErrNotFound when no
	// campaign is currently open.
	FindActiveFund(ctx context.Context) (*domain.Fund, error)

	// ListFunds retrieves funds ordered by start date descending.
	ListFunds(ctx context.Context, limit int, offset int) ([]domain.Fund, error)
}

// FundRepositoryFacade combines all fund repository interfaces.
type FundRepositoryFacade interface {
	FundWriter
	FundReader
}

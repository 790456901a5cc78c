package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daanseva/donation_backend/internal/apperrors"
	"github.com/daanseva/donation_backend/internal/core/domain"
	portsrepo "github.com/daanseva/donation_backend/internal/core/ports/repositories"
	portssvc "github.com/daanseva/donation_backend/internal/core/ports/services"
	"github.com/daanseva/donation_backend/internal/dto"
	"github.com/daanseva/donation_backend/internal/middleware"
	"github.com/daanseva/donation_backend/internal/platform/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDateRange = errors.New("fund end date must be after start date")
	ErrFundHasBalance   = errors.New("fund holds a non-zero balance and cannot be deleted")
	ErrActiveFundExists = errors.New("another fund is already active")
	ErrFundNotEditable  = errors.New("only pending funds may change their target")
)

// fundService provides fund campaign management and resolution of the
// currently active fund.
type fundService struct {
	fundRepo portsrepo.FundRepositoryFacade
	defaults fundDefaults
}

type fundDefaults struct {
	name        string
	description string
	target      decimal.Decimal
}

// NewFundService creates a new FundService.
func NewFundService(fundRepo portsrepo.FundRepositoryFacade, cfg *config.Config) portssvc.FundSvcFacade {
	return &fundService{
		fundRepo: fundRepo,
		defaults: fundDefaults{
			name:        cfg.DefaultFundName,
			description: cfg.DefaultFundDescription,
			target:      cfg.DefaultFundTarget,
		},
	}
}

var _ portssvc.FundSvcFacade = (*fundService)(nil)

// CreateFund creates a new PENDING fund after validating its date range.
func (s *fundService) CreateFund(ctx context.Context, req dto.CreateFundRequest, creatorUserID string) (*domain.Fund, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: start %s, end %s", ErrInvalidDateRange, req.StartDate.Format(time.RFC3339), req.EndDate.Format(time.RFC3339))
	}
	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	fund := domain.Fund{
		FundID:        uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Status:        domain.FundPending,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.fundRepo.SaveFund(ctx, fund); err != nil {
		logger.Error("Failed to save fund", "error", err)
		return nil, fmt.Errorf("failed to save fund: %w", err)
	}

	logger.Info("Fund created", "fund_id", fund.FundID, "target", fund.TargetAmount.String())
	return &fund, nil
}

// GetFundByID retrieves a fund by its ID.
func (s *fundService) GetFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	fund, err := s.fundRepo.FindFundByID(ctx, fundID)
	if err != nil {
		return nil, fmt.Errorf("failed to find fund %s: %w", fundID, err)
	}
	return fund, nil
}

// ListFunds retrieves funds ordered by start date descending.
func (s *fundService) ListFunds(ctx context.Context, limit int, offset int) ([]domain.Fund, error) {
	funds, err := s.fundRepo.ListFunds(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list funds: %w", err)
	}
	return funds, nil
}

// UpdateFund applies a partial update to a fund after re-validating the
// resulting date range.
func (s *fundService) UpdateFund(ctx context.Context, fundID string, req dto.UpdateFundRequest, userID string) (*domain.Fund, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fund, err := s.fundRepo.FindFundByID(ctx, fundID)
	if err != nil {
		return nil, err
	}

	updated := false
	if req.Name != nil {
		fund.Name = *req.Name
		updated = true
	}
	if req.Description != nil {
		fund.Description = *req.Description
		updated = true
	}
	if req.TargetAmount != nil {
		if fund.Status != domain.FundPending {
			return nil, ErrFundNotEditable
		}
		if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: target amount must be positive", apperrors.ErrValidation)
		}
		fund.TargetAmount = *req.TargetAmount
		updated = true
	}
	if req.StartDate != nil {
		fund.StartDate = *req.StartDate
		updated = true
	}
	if req.EndDate != nil {
		fund.EndDate = *req.EndDate
		updated = true
	}

	if !updated {
		return fund, nil
	}

	if !fund.EndDate.After(fund.StartDate) {
		return nil, fmt.Errorf("%w: start %s, end %s", ErrInvalidDateRange, fund.StartDate.Format(time.RFC3339), fund.EndDate.Format(time.RFC3339))
	}

	fund.LastUpdatedAt = time.Now().UTC()
	fund.LastUpdatedBy = userID

	if err := s.fundRepo.UpdateFund(ctx, *fund); err != nil {
		logger.Error("Failed to update fund", "error", err, "fund_id", fundID)
		return nil, fmt.Errorf("failed to update fund: %w", err)
	}

	logger.Info("Fund updated", "fund_id", fundID)
	return fund, nil
}

// DeleteFund removes a fund. A fund that has received money is never deleted.
func (s *fundService) DeleteFund(ctx context.Context, fundID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.fundRepo.DeleteFund(ctx, fundID); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Refused to delete fund with recorded money", "fund_id", fundID)
			return fmt.Errorf("%w: %v", ErrFundHasBalance, err)
		}
		return err
	}

	logger.Info("Fund deleted", "fund_id", fundID, "deleted_by", userID)
	return nil
}

// ActivateFund promotes a pending fund to active.
func (s *fundService) ActivateFund(ctx context.Context, fundID string, userID string) (*domain.Fund, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fund, err := s.fundRepo.ActivateFund(ctx, fundID, userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, ErrActiveFundExists
		}
		return nil, err
	}

	logger.Info("Fund activated", "fund_id", fundID, "activated_by", userID)
	return fund, nil
}

// EnsureActiveFund returns the active fund, creating a default one when no
// campaign is open. Two concurrent creators race on the partial unique index;
// the loser re-reads the winner's fund.
func (s *fundService) EnsureActiveFund(ctx context.Context, userID string) (*domain.Fund, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fund, err := s.fundRepo.FindActiveFund(ctx)
	if err == nil {
		return fund, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve active fund: %w", err)
	}

	now := time.Now().UTC()
	created := domain.Fund{
		FundID:        uuid.NewString(),
		Name:          s.defaults.name,
		Description:   s.defaults.description,
		TargetAmount:  s.defaults.target,
		CurrentAmount: decimal.Zero,
		Status:        domain.FundActive,
		StartDate:     now,
		EndDate:       now.AddDate(1, 0, 0),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.fundRepo.SaveFund(ctx, created); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Lost the race; another caller provisioned the fund first.
			return s.fundRepo.FindActiveFund(ctx)
		}
		return nil, fmt.Errorf("failed to auto-provision active fund: %w", err)
	}

	logger.Info("Auto-provisioned default active fund", "fund_id", created.FundID)
	return &created, nil
}

// ApplyAmount delegates the atomic increment-and-maybe-complete to storage.
func (s *fundService) ApplyAmount(ctx context.Context, fundID string, amount decimal.Decimal, userID string) (*domain.ApplyResult, error) {
	result, err := s.fundRepo.ApplyAmount(ctx, fundID, amount, userID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if result.CompletedNow {
		middleware.GetLoggerFromCtx(ctx).Info("Fund reached its target",
			"fund_id", fundID,
			"current_amount", result.Fund.CurrentAmount.String(),
			"target_amount", result.Fund.TargetAmount.String(),
		)
	}
	return result, nil
}

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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidClaim = errors.New("donation claim is invalid")
	ErrFundNotFound = errors.New("target fund not found")
)

// applyMaxAttempts bounds the retry loop around the fund application step.
// Retrying is safe: the ledger insert has already deduplicated the claim.
const applyMaxAttempts = 3

// applyBackoff is the base delay between apply retries; attempt n waits n times this.
const applyBackoff = 100 * time.Millisecond

// systemUserID is recorded as the actor for writes triggered by public
// donation verification, where no authenticated user exists.
const systemUserID = "system"

// donationService reconciles verified donation claims: it records each claim
// at most once in the ledger and applies its amount to the target fund
// exactly once.
type donationService struct {
	donationRepo portsrepo.DonationRepositoryFacade
	fundSvc      portssvc.FundSvcFacade
}

// NewDonationService creates a new DonationService.
func NewDonationService(donationRepo portsrepo.DonationRepositoryFacade, fundSvc portssvc.FundSvcFacade) portssvc.DonationSvcFacade {
	return &donationService{
		donationRepo: donationRepo,
		fundSvc:      fundSvc,
	}
}

var _ portssvc.DonationSvcFacade = (*donationService)(nil)

// RecordAndApply is the reconciliation entry point.
//
// The ledger insert is the single synchronization point: the unique index on
// the transaction reference decides which of any concurrent identical claims
// wins. Only the winner applies the amount; everyone else gets the winner's
// record back, so a fund is never credited twice for one payment.
func (s *donationService) RecordAndApply(ctx context.Context, claim domain.DonationClaim) (*domain.DonationOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if claim.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be greater than zero", ErrInvalidClaim)
	}
	if claim.TransactionRef == "" {
		return nil, fmt.Errorf("%w: transaction reference is required", ErrInvalidClaim)
	}

	// A replayed claim must leave no trace, so known references answer before
	// the target fund is resolved; otherwise a duplicate arriving while no
	// fund is active would auto-provision a fresh one as a side effect. The
	// unique index on the insert below still decides claims racing past this
	// check.
	if existing, err := s.donationRepo.FindDonationByTransactionRef(ctx, claim.TransactionRef); err == nil {
		logger.Info("Duplicate donation claim ignored", "transaction_ref", claim.TransactionRef, "donation_id", existing.DonationID)
		return s.recordedOutcome(ctx, existing)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check donation claim %s: %w", claim.TransactionRef, err)
	}

	// Resolve the target fund up front so the ledger entry can carry an
	// explicit fund link. "Currently active fund" is only the default policy.
	fund, err := s.resolveTargetFund(ctx, claim.FundID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	donation := domain.Donation{
		DonationID:     uuid.NewString(),
		FundID:         fund.FundID,
		Amount:         claim.Amount,
		TransactionRef: claim.TransactionRef,
		DonorName:      claim.DonorName,
		DonorEmail:     claim.DonorEmail,
		DonorPhone:     claim.DonorPhone,
		Purpose:        claim.Purpose,
		// A verified claim is recorded as already completed; there is no
		// pending window exposed to the verification caller.
		Status: domain.DonationCompleted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     systemUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: systemUserID,
		},
	}
	if donation.DonorName == "" {
		donation.DonorName = domain.AnonymousDonor
	}
	if donation.Purpose == "" {
		donation.Purpose = domain.DefaultPurpose
	}

	record, inserted, err := s.donationRepo.InsertDonation(ctx, donation)
	if err != nil {
		logger.Error("Failed to insert donation", "error", err, "transaction_ref", claim.TransactionRef)
		return nil, fmt.Errorf("failed to record donation: %w", err)
	}

	if !inserted {
		// A racing claim won the unique index: return the winner, touch no balance.
		logger.Info("Duplicate donation claim ignored", "transaction_ref", claim.TransactionRef, "donation_id", record.DonationID)
		return s.recordedOutcome(ctx, record)
	}

	result, err := s.applyWithRetry(ctx, record.FundID, record.Amount)
	if err != nil {
		// The ledger entry is durable but the balance was not credited.
		// Surface the failure and leave a loud trail for manual reconciliation.
		logger.Error("Donation recorded but not applied to fund; manual reconciliation required",
			"donation_id", record.DonationID,
			"fund_id", record.FundID,
			"amount", record.Amount.String(),
			"error", err,
		)
		return nil, fmt.Errorf("donation %s recorded but fund application failed: %w", record.DonationID, err)
	}

	logger.Info("Donation recorded and applied",
		"donation_id", record.DonationID,
		"fund_id", result.Fund.FundID,
		"amount", record.Amount.String(),
		"fund_completed", result.CompletedNow,
	)
	return &domain.DonationOutcome{Donation: *record, Fund: result.Fund, Recorded: true}, nil
}

// recordedOutcome pairs an already-recorded donation with its fund for the
// duplicate-claim response.
func (s *donationService) recordedOutcome(ctx context.Context, record *domain.Donation) (*domain.DonationOutcome, error) {
	fund, err := s.fundSvc.GetFundByID(ctx, record.FundID)
	if err != nil {
		return nil, fmt.Errorf("failed to load fund for existing donation %s: %w", record.DonationID, err)
	}
	return &domain.DonationOutcome{Donation: *record, Fund: *fund, Recorded: false}, nil
}

// resolveTargetFund returns the explicitly named fund, or the active fund
// (auto-provisioned when missing) as the default.
func (s *donationService) resolveTargetFund(ctx context.Context, fundID string) (*domain.Fund, error) {
	if fundID == "" {
		return s.fundSvc.EnsureActiveFund(ctx, systemUserID)
	}
	fund, err := s.fundSvc.GetFundByID(ctx, fundID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrFundNotFound, fundID)
		}
		return nil, err
	}
	return fund, nil
}

// applyWithRetry retries the atomic fund application on transient storage
// failures with bounded linear backoff.
func (s *donationService) applyWithRetry(ctx context.Context, fundID string, amount decimal.Decimal) (*domain.ApplyResult, error) {
	var lastErr error
	for attempt := 1; attempt <= applyMaxAttempts; attempt++ {
		result, err := s.fundSvc.ApplyAmount(ctx, fundID, amount, systemUserID)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !errors.Is(err, apperrors.ErrUnavailable) {
			return nil, err
		}
		if attempt < applyMaxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * applyBackoff):
			}
		}
	}
	return nil, lastErr
}

// MarkDonationCompleted settles a pending donation as completed and applies
// its amount to its fund. Settling an already-settled donation is a no-op.
func (s *donationService) MarkDonationCompleted(ctx context.Context, donationID string, userID string) (*domain.Donation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, transitioned, err := s.donationRepo.SettleDonation(ctx, donationID, domain.DonationCompleted, userID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if !transitioned {
		logger.Info("Donation already settled", "donation_id", donationID, "status", record.Status)
		return record, nil
	}

	// The pending->completed transition is what credits the fund.
	if _, err := s.applyWithRetry(ctx, record.FundID, record.Amount); err != nil {
		logger.Error("Completed donation not applied to fund; manual reconciliation required",
			"donation_id", donationID,
			"fund_id", record.FundID,
			"error", err,
		)
		return nil, fmt.Errorf("donation %s completed but fund application failed: %w", donationID, err)
	}

	logger.Info("Donation marked completed", "donation_id", donationID, "completed_by", userID)
	return record, nil
}

// MarkDonationFailed settles a pending donation as failed. No fund effect.
// Settling an already-settled donation is a no-op.
func (s *donationService) MarkDonationFailed(ctx context.Context, donationID string, userID string) (*domain.Donation, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record, transitioned, err := s.donationRepo.SettleDonation(ctx, donationID, domain.DonationFailed, userID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if transitioned {
		logger.Info("Donation marked failed", "donation_id", donationID, "failed_by", userID)
	} else {
		logger.Info("Donation already settled", "donation_id", donationID, "status", record.Status)
	}
	return record, nil
}

// GetDonationByID retrieves a donation by its ID.
func (s *donationService) GetDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	return s.donationRepo.FindDonationByID(ctx, donationID)
}

// ListDonations retrieves a page of donation records for reporting.
func (s *donationService) ListDonations(ctx context.Context, params dto.ListDonationsParams) (*dto.ListDonationsResponse, error) {
	donations, nextToken, err := s.donationRepo.ListDonations(ctx, params.Status, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve donations: %w", err)
	}
	return &dto.ListDonationsResponse{
		Donations: dto.ToDonationResponses(donations),
		NextToken: nextToken,
	}, nil
}

package services

import (
	"context"

	"github.com/daanseva/donation_backend/internal/core/domain"
	"github.com/daanseva/donation_backend/internal/dto"
)

// DonationReconciler records verified donation claims and applies their
// amounts to the appropriate fund exactly once.
type DonationReconciler interface {
	// RecordAndApply records the claim's donation at most once (keyed by
	// transaction reference) and, for a fresh record, atomically applies the
	// amount to the target fund, auto-provisioning a default active fund when
	// none exists. Re-submitting a claim returns the original outcome without
	// touching any balance.
	RecordAndApply(ctx context.Context, claim domain.DonationClaim) (*domain.DonationOutcome, error)
}

// DonationSettler exposes the administrative settlement transitions.
type DonationSettler interface {
	// MarkDonationCompleted settles a PENDING donation as COMPLETED, applying
	// its amount to its fund. Calling it again is a no-op.
	MarkDonationCompleted(ctx context.Context, donationID string, userID string) (*domain.Donation, error)

	// MarkDonationFailed settles a PENDING donation as FAILED with no fund
	// effect. Calling it again is a no-op.
	MarkDonationFailed(ctx context.Context, donationID string, userID string) (*domain.Donation, error)
}

// DonationReader exposes reporting reads over the donation ledger.
type DonationReader interface {
	GetDonationByID(ctx context.Context, donationID string) (*domain.Donation, error)
	ListDonations(ctx context.Context, params dto.ListDonationsParams) (*dto.ListDonationsResponse, error)
}

// DonationSvcFacade combines all donation service interfaces.
type DonationSvcFacade interface {
	DonationReconciler
	DonationSettler
	DonationReader
}

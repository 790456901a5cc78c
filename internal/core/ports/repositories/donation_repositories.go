package repositories

import (
	"context"
	"time"

	"github.com/daanseva/donation_backend/internal/core/domain"
)

// DonationWriter defines write operations for donation records.
type DonationWriter interface {
	// InsertDonation attempts to insert a donation. The unique constraint on
	// the transaction reference is the synchronization point: exactly one
	// concurrent insert per reference wins. When a record with the same
	// reference already exists, that record is returned with inserted=false
	// and nothing is written.
	InsertDonation(ctx context.Context, donation domain.Donation) (record *domain.Donation, inserted bool, err error)

	// SettleDonation moves a PENDING donation to the given terminal status.
	// If the donation is already settled, the stored record is returned
	// unchanged (no-op), so retried external callbacks are harmless.
	SettleDonation(ctx context.Context, donationID string, status domain.DonationStatus, userID string, now time.Time) (record *domain.Donation, transitioned bool, err error)
}

// DonationReader defines read operations for donation records.
type DonationReader interface {
	// FindDonationByID retrieves a donation by its identifier.
	FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error)

	// FindDonationByTransactionRef retrieves a donation by its external
	// transaction reference.
	FindDonationByTransactionRef(ctx context.Context, transactionRef string) (*domain.Donation, error)

	// ListDonations retrieves donations ordered by creation time descending
	// (ties broken by donation ID), optionally filtered by status, using
	// token-based pagination.
	ListDonations(ctx context.Context, status *domain.DonationStatus, limit int, nextToken *string) ([]domain.Donation, *string, error)
}

// DonationRepositoryFacade combines all donation repository interfaces.
type DonationRepositoryFacade interface {
	DonationWriter
	DonationReader
}

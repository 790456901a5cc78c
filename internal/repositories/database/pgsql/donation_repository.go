package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/daanseva/donation_backend/internal/apperrors"
	"github.com/daanseva/donation_backend/internal/core/domain"
	portsrepo "github.com/daanseva/donation_backend/internal/core/ports/repositories"
	"github.com/daanseva/donation_backend/internal/models"
	"github.com/daanseva/donation_backend/internal/utils/mapping"
	"github.com/daanseva/donation_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const donationColumns = `donation_id, fund_id, amount, transaction_ref, donor_name, donor_email, donor_phone, purpose, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxDonationRepository struct {
	BaseRepository
}

// newPgxDonationRepository creates a new repository for donation ledger data.
func newPgxDonationRepository(pool *pgxpool.Pool) portsrepo.DonationRepositoryFacade {
	return &PgxDonationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDonationRepository implements portsrepo.DonationRepositoryFacade
var _ portsrepo.DonationRepositoryFacade = (*PgxDonationRepository)(nil)

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var m models.Donation
	err := row.Scan(
		&m.DonationID,
		&m.FundID,
		&m.Amount,
		&m.TransactionRef,
		&m.DonorName,
		&m.DonorEmail,
		&m.DonorPhone,
		&m.Purpose,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainDonation(m)
	return &d, nil
}

// InsertDonation attempts to insert a donation record. The unique index on
// transaction_ref is the only synchronization point: when a concurrent or
// earlier insert with the same reference already won, the existing record is
// re-read and returned with inserted=false.
func (r *PgxDonationRepository) InsertDonation(ctx context.Context, donation domain.Donation) (*domain.Donation, bool, error) {
	m := mapping.ToModelDonation(donation)

	query := `
		INSERT INTO donations (` + donationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DonationID,
		m.FundID,
		m.Amount,
		m.TransactionRef,
		m.DonorName,
		m.DonorEmail,
		m.DonorPhone,
		m.Purpose,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err == nil {
		inserted := donation
		return &inserted, true, nil
	}

	if isUniqueViolation(err, "donations_transaction_ref_key") {
		existing, findErr := r.FindDonationByTransactionRef(ctx, donation.TransactionRef)
		if findErr != nil {
			return nil, false, fmt.Errorf("donation %s already exists but could not be re-read: %w", donation.TransactionRef, findErr)
		}
		return existing, false, nil
	}
	if isUniqueViolation(err, "") {
		// Primary key collision would mean a repeated UUID; treat as duplicate.
		return nil, false, fmt.Errorf("%w: donation %s", apperrors.ErrDuplicate, m.DonationID)
	}
	return nil, false, wrapStorageErr(err, "failed to insert donation "+m.DonationID)
}

// SettleDonation transitions a PENDING donation to the given terminal status.
// If the donation is already settled the stored record is returned unchanged,
// so retried callbacks observe the original outcome instead of an error.
func (r *PgxDonationRepository) SettleDonation(ctx context.Context, donationID string, status domain.DonationStatus, userID string, now time.Time) (*domain.Donation, bool, error) {
	query := `
		UPDATE donations
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE donation_id = $1 AND status = 'PENDING'
		RETURNING ` + donationColumns + `;
	`
	record, err := scanDonation(r.Pool.QueryRow(ctx, query, donationID, models.DonationStatus(status), now, userID))
	if err == nil {
		return record, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, wrapStorageErr(err, "failed to settle donation "+donationID)
	}

	// Zero rows: either the donation does not exist or it is already settled.
	existing, findErr := r.FindDonationByID(ctx, donationID)
	if findErr != nil {
		return nil, false, findErr
	}
	return existing, false, nil
}

// FindDonationByID retrieves a donation by its ID.
func (r *PgxDonationRepository) FindDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE donation_id = $1;`
	record, err := scanDonation(r.Pool.QueryRow(ctx, query, donationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorageErr(err, "failed to find donation by ID "+donationID)
	}
	return record, nil
}

// FindDonationByTransactionRef retrieves a donation by its external
// transaction reference.
func (r *PgxDonationRepository) FindDonationByTransactionRef(ctx context.Context, transactionRef string) (*domain.Donation, error) {
	query := `SELECT ` + donationColumns + ` FROM donations WHERE transaction_ref = $1;`
	record, err := scanDonation(r.Pool.QueryRow(ctx, query, transactionRef))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorageErr(err, "failed to find donation by transaction ref")
	}
	return record, nil
}

// ListDonations retrieves a page of donations ordered by created_at
// descending with donation_id as tie-break, optionally filtered by status.
func (r *PgxDonationRepository) ListDonations(ctx context.Context, status *domain.DonationStatus, limit int, nextToken *string) ([]domain.Donation, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + donationColumns + ` FROM donations`
	conditions := ""
	args := []interface{}{}

	if status != nil {
		args = append(args, models.DonationStatus(*status))
		conditions = fmt.Sprintf(" WHERE status = $%d", len(args))
	}

	if nextToken != nil && *nextToken != "" {
		createdAt, donationID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, createdAt, donationID)
		clause := fmt.Sprintf("(created_at, donation_id) < ($%d, $%d)", len(args)-1, len(args))
		if conditions == "" {
			conditions = " WHERE " + clause
		} else {
			conditions += " AND " + clause
		}
	}

	args = append(args, limit+1) // fetch one extra row to detect the next page
	query += conditions + fmt.Sprintf(" ORDER BY created_at DESC, donation_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, wrapStorageErr(err, "failed to query donations")
	}
	defer rows.Close()

	donations := []domain.Donation{}
	for rows.Next() {
		record, err := scanDonation(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan donation row: %w", err)
		}
		donations = append(donations, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, wrapStorageErr(err, "error iterating donation rows")
	}

	var token *string
	if len(donations) > limit {
		donations = donations[:limit]
		last := donations[len(donations)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.DonationID)
		token = &t
	}
	return donations, token, nil
}

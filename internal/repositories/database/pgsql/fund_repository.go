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
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const fundColumns = `fund_id, name, description, target_amount, current_amount, status, start_date, end_date, created_at, created_by, last_updated_at, last_updated_by`

// fundsSingleActiveIdx is the partial unique index enforcing that at most one
// fund row has status = 'ACTIVE'.
const fundsSingleActiveIdx = "funds_single_active_idx"

type PgxFundRepository struct {
	BaseRepository
}

// newPgxFundRepository creates a new repository for fund data.
func newPgxFundRepository(pool *pgxpool.Pool) portsrepo.FundRepositoryFacade {
	return &PgxFundRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxFundRepository implements portsrepo.FundRepositoryFacade
var _ portsrepo.FundRepositoryFacade = (*PgxFundRepository)(nil)

func scanFund(row pgx.Row) (*domain.Fund, error) {
	var m models.Fund
	err := row.Scan(
		&m.FundID,
		&m.Name,
		&m.Description,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	f := mapping.ToDomainFund(m)
	return &f, nil
}

// SaveFund inserts a new fund. Inserting a second ACTIVE fund violates the
// partial unique index and is reported as ErrDuplicate so callers can re-read
// the winner of the race.
func (r *PgxFundRepository) SaveFund(ctx context.Context, fund domain.Fund) error {
	m := mapping.ToModelFund(fund)

	query := `
		INSERT INTO funds (` + fundColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FundID,
		m.Name,
		m.Description,
		m.TargetAmount,
		m.CurrentAmount,
		m.Status,
		m.StartDate,
		m.EndDate,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, fundsSingleActiveIdx) {
			return fmt.Errorf("%w: another fund is already active", apperrors.ErrDuplicate)
		}
		if isUniqueViolation(err, "") {
			return fmt.Errorf("%w: fund with ID %s already exists", apperrors.ErrDuplicate, m.FundID)
		}
		return wrapStorageErr(err, "failed to save fund "+m.FundID)
	}
	return nil
}

// FindFundByID retrieves a fund by its ID.
func (r *PgxFundRepository) FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM funds WHERE fund_id = $1;`
	fund, err := scanFund(r.Pool.QueryRow(ctx, query, fundID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorageErr(err, "failed to find fund by ID "+fundID)
	}
	return fund, nil
}

// FindActiveFund retrieves the single ACTIVE fund.
func (r *PgxFundRepository) FindActiveFund(ctx context.Context) (*domain.Fund, error) {
	query := `SELECT ` + fundColumns + ` FROM funds WHERE status = 'ACTIVE';`
	fund, err := scanFund(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorageErr(err, "failed to find active fund")
	}
	return fund, nil
}

// ListFunds retrieves funds ordered by start date descending.
func (r *PgxFundRepository) ListFunds(ctx context.Context, limit int, offset int) ([]domain.Fund, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + fundColumns + ` FROM funds ORDER BY start_date DESC, fund_id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, wrapStorageErr(err, "failed to query funds")
	}
	defer rows.Close()

	funds := []domain.Fund{}
	for rows.Next() {
		fund, err := scanFund(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund row: %w", err)
		}
		funds = append(funds, *fund)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorageErr(err, "error iterating fund rows")
	}
	return funds, nil
}

// UpdateFund updates the editable fields of a fund.
func (r *PgxFundRepository) UpdateFund(ctx context.Context, fund domain.Fund) error {
	m := mapping.ToModelFund(fund)

	query := `
		UPDATE funds
		SET name = $2, description = $3, target_amount = $4, start_date = $5, end_date = $6, last_updated_at = $7, last_updated_by = $8
		WHERE fund_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.FundID,
		m.Name,
		m.Description,
		m.TargetAmount,
		m.StartDate,
		m.EndDate,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapStorageErr(err, "failed to update fund "+m.FundID)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ActivateFund promotes a PENDING fund to ACTIVE. The partial unique index
// rejects the promotion while another fund is active.
func (r *PgxFundRepository) ActivateFund(ctx context.Context, fundID string, userID string, now time.Time) (*domain.Fund, error) {
	query := `
		UPDATE funds
		SET status = 'ACTIVE', last_updated_at = $2, last_updated_by = $3
		WHERE fund_id = $1 AND status = 'PENDING'
		RETURNING ` + fundColumns + `;
	`
	fund, err := scanFund(r.Pool.QueryRow(ctx, query, fundID, now, userID))
	if err == nil {
		return fund, nil
	}
	if isUniqueViolation(err, fundsSingleActiveIdx) {
		return nil, fmt.Errorf("%w: another fund is already active", apperrors.ErrDuplicate)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, wrapStorageErr(err, "failed to activate fund "+fundID)
	}

	// Zero rows: the fund is missing or not pending.
	if _, findErr := r.FindFundByID(ctx, fundID); findErr != nil {
		return nil, findErr
	}
	return nil, fmt.Errorf("%w: fund %s is not pending", apperrors.ErrConflict, fundID)
}

// ApplyAmount increments the fund balance and completes the fund when the new
// total reaches the target, all in one conditional update. Concurrent
// applications serialize on the row; none is lost to a read-modify-write race.
// The returned result reports whether this call crossed the threshold.
func (r *PgxFundRepository) ApplyAmount(ctx context.Context, fundID string, amount decimal.Decimal, userID string, now time.Time) (*domain.ApplyResult, error) {
	query := `
		UPDATE funds
		SET current_amount = current_amount + $2,
		    status = CASE WHEN current_amount + $2 >= target_amount THEN 'COMPLETED' ELSE status END,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE fund_id = $1
		RETURNING ` + fundColumns + `, (current_amount >= target_amount AND current_amount - $2 < target_amount);
	`

	var m models.Fund
	var crossed bool
	err := r.Pool.QueryRow(ctx, query, fundID, amount, now, userID).Scan(
		&m.FundID,
		&m.Name,
		&m.Description,
		&m.TargetAmount,
		&m.CurrentAmount,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&crossed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, wrapStorageErr(err, "failed to apply amount to fund "+fundID)
	}

	return &domain.ApplyResult{Fund: mapping.ToDomainFund(m), CompletedNow: crossed}, nil
}

// DeleteFund removes a fund only while its balance is zero. Recorded money is
// never discarded silently.
func (r *PgxFundRepository) DeleteFund(ctx context.Context, fundID string) error {
	query := `DELETE FROM funds WHERE fund_id = $1 AND current_amount = 0;`

	cmdTag, err := r.Pool.Exec(ctx, query, fundID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: fund %s has recorded donations", apperrors.ErrConflict, fundID)
		}
		return wrapStorageErr(err, "failed to delete fund "+fundID)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the fund does not exist or it still holds a balance.
		if _, findErr := r.FindFundByID(ctx, fundID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("%w: fund %s has a non-zero balance", apperrors.ErrConflict, fundID)
	}
	return nil
}

package pgsql

import (
	portsrepo "github.com/daanseva/donation_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DonationRepo: newPgxDonationRepository(dbPool),
		FundRepo:     newPgxFundRepository(dbPool),
	}
}

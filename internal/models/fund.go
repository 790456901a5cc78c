package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundStatus mirrors the domain status values as stored in the DB.
type FundStatus string

const (
	FundPending   FundStatus = "PENDING"
	FundActive    FundStatus = "ACTIVE"
	FundCompleted FundStatus = "COMPLETED"
)

// Fund is the database representation of a fundraising campaign.
// A partial unique index on (status) WHERE status = 'ACTIVE' enforces the
// single-active-fund invariant at the storage layer.
type Fund struct {
	FundID        string          `db:"fund_id"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Status        FundStatus      `db:"status"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       time.Time       `db:"end_date"`
	AuditFields
}

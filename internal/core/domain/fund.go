package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundStatus indicates the lifecycle state of a fundraising campaign.
type FundStatus string

const (
	FundPending   FundStatus = "PENDING"
	FundActive    FundStatus = "ACTIVE"
	FundCompleted FundStatus = "COMPLETED"
)

// Fund represents one fundraising campaign with a target and running balance.
// At most one fund is ACTIVE at any time; donations without an explicit target
// are applied to it. A fund transitions to COMPLETED automatically once
// CurrentAmount reaches TargetAmount and never returns to ACTIVE.
type Fund struct {
	FundID        string          `json:"fundID"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Status        FundStatus      `json:"status"`
	StartDate     time.Time       `json:"startDate"`
	EndDate       time.Time       `json:"endDate"`
	AuditFields
}

// ApplyResult reports an atomic balance application. CompletedNow is true only
// for the call whose increment carried CurrentAmount across TargetAmount.
type ApplyResult struct {
	Fund         Fund
	CompletedNow bool
}

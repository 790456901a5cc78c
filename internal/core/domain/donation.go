package domain

import (
	"github.com/shopspring/decimal"
)

// DonationStatus indicates the settlement state of a donation record.
type DonationStatus string

const (
	DonationPending   DonationStatus = "PENDING"
	DonationCompleted DonationStatus = "COMPLETED"
	DonationFailed    DonationStatus = "FAILED"
)

// Default values applied when a claim omits the optional fields.
const (
	AnonymousDonor = "Anonymous"
	DefaultPurpose = "General"
)

// Donation is one recorded donation attempt. TransactionRef is the external
// payment reference (UPI UTR) and is unique across all donations: it is the
// idempotency key that makes repeated verification calls safe.
type Donation struct {
	DonationID     string          `json:"donationID"`
	FundID         string          `json:"fundID"` // fund the amount was applied to
	Amount         decimal.Decimal `json:"amount"`
	TransactionRef string          `json:"transactionRef"`
	DonorName      string          `json:"donorName"`
	DonorEmail     string          `json:"donorEmail"`
	DonorPhone     string          `json:"donorPhone"`
	Purpose        string          `json:"purpose"`
	Status         DonationStatus  `json:"status"`
	AuditFields
}

// DonationClaim is an assertion, already believed true by the caller, that an
// external payment of the given amount and transaction reference succeeded.
// FundID optionally names the target fund; when empty, the currently active
// fund is used.
type DonationClaim struct {
	Amount         decimal.Decimal
	TransactionRef string
	FundID         string
	DonorName      string
	DonorEmail     string
	DonorPhone     string
	Purpose        string
}

// DonationOutcome is the result of reconciling a claim: the donation record
// (newly inserted or pre-existing) and the fund it is attributed to.
type DonationOutcome struct {
	Donation Donation
	Fund     Fund
	// Recorded is true when this call inserted the record; false when an
	// earlier call with the same transaction reference already had.
	Recorded bool
}

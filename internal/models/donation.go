package models

import (
	"github.com/shopspring/decimal"
)

// DonationStatus mirrors the domain status values as stored in the DB.
type DonationStatus string

const (
	DonationPending   DonationStatus = "PENDING"
	DonationCompleted DonationStatus = "COMPLETED"
	DonationFailed    DonationStatus = "FAILED"
)

// Donation is the database representation of a donation record.
// transaction_ref carries a unique index; it is the dedup key.
type Donation struct {
	DonationID     string          `db:"donation_id"`
	FundID         string          `db:"fund_id"`
	Amount         decimal.Decimal `db:"amount"`
	TransactionRef string          `db:"transaction_ref"`
	DonorName      string          `db:"donor_name"`
	DonorEmail     string          `db:"donor_email"`
	DonorPhone     string          `db:"donor_phone"`
	Purpose        string          `db:"purpose"`
	Status         DonationStatus  `db:"status"`
	AuditFields
}

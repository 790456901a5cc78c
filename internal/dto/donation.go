package dto

import (
	"time"

	"github.com/daanseva/donation_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VerifyDonationRequest carries a donation claim: the caller asserts that an
// external payment with this transaction reference has already succeeded.
type VerifyDonationRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required,gt=0"`
	TransactionRef string          `json:"transactionRef" binding:"required"`
	FundID         *string         `json:"fundID"` // optional explicit target fund
	DonorName      string          `json:"donorName"`
	DonorEmail     string          `json:"donorEmail" binding:"omitempty,email"`
	DonorPhone     string          `json:"donorPhone"`
	Purpose        string          `json:"purpose"`
}

// ToClaim converts the request into a domain claim.
func (r VerifyDonationRequest) ToClaim() domain.DonationClaim {
	claim := domain.DonationClaim{
		Amount:         r.Amount,
		TransactionRef: r.TransactionRef,
		DonorName:      r.DonorName,
		DonorEmail:     r.DonorEmail,
		DonorPhone:     r.DonorPhone,
		Purpose:        r.Purpose,
	}
	if r.FundID != nil {
		claim.FundID = *r.FundID
	}
	return claim
}

// DonationResponse defines the data returned for a donation record.
type DonationResponse struct {
	DonationID     string                `json:"donationID"`
	FundID         string                `json:"fundID"`
	Amount         decimal.Decimal       `json:"amount"`
	TransactionRef string                `json:"transactionRef"`
	DonorName      string                `json:"donorName"`
	Purpose        string                `json:"purpose"`
	Status         domain.DonationStatus `json:"status"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// DonationOutcomeResponse is returned by the verification endpoint.
type DonationOutcomeResponse struct {
	Donation DonationResponse `json:"donation"`
	Fund     FundResponse     `json:"fund"`
	Recorded bool             `json:"recorded"`
}

// ListDonationsParams holds query parameters for listing donations.
type ListDonationsParams struct {
	Status    *domain.DonationStatus `form:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED"`
	Limit     int                    `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	NextToken *string                `form:"nextToken"`
}

// ListDonationsResponse is a page of donation records.
type ListDonationsResponse struct {
	Donations []DonationResponse `json:"donations"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToDonationResponse converts a domain.Donation to its response DTO.
func ToDonationResponse(d *domain.Donation) DonationResponse {
	return DonationResponse{
		DonationID:     d.DonationID,
		FundID:         d.FundID,
		Amount:         d.Amount,
		TransactionRef: d.TransactionRef,
		DonorName:      d.DonorName,
		Purpose:        d.Purpose,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDonationResponses converts a slice of domain donations.
func ToDonationResponses(donations []domain.Donation) []DonationResponse {
	out := make([]DonationResponse, len(donations))
	for i := range donations {
		out[i] = ToDonationResponse(&donations[i])
	}
	return out
}

// ToDonationOutcomeResponse converts a reconciliation outcome.
func ToDonationOutcomeResponse(outcome *domain.DonationOutcome) DonationOutcomeResponse {
	return DonationOutcomeResponse{
		Donation: ToDonationResponse(&outcome.Donation),
		Fund:     ToFundResponse(&outcome.Fund),
		Recorded: outcome.Recorded,
	}
}

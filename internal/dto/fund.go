package dto

import (
	"time"

	"github.com/daanseva/donation_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFundRequest defines the data needed to create a new fund campaign.
type CreateFundRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required,gt=0"`
	StartDate    time.Time       `json:"startDate" binding:"required"`
	EndDate      time.Time       `json:"endDate" binding:"required"`
}

// UpdateFundRequest defines the data allowed for updating a fund.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateFundRequest struct {
	Name         *string          `json:"name"`
	Description  *string          `json:"description"`
	TargetAmount *decimal.Decimal `json:"targetAmount" binding:"omitempty,gt=0"`
	StartDate    *time.Time       `json:"startDate"`
	EndDate      *time.Time       `json:"endDate"`
}

// FundResponse defines the data returned for a fund.
type FundResponse struct {
	FundID        string            `json:"fundID"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	TargetAmount  decimal.Decimal   `json:"targetAmount"`
	CurrentAmount decimal.Decimal   `json:"currentAmount"`
	Status        domain.FundStatus `json:"status"`
	StartDate     time.Time         `json:"startDate"`
	EndDate       time.Time         `json:"endDate"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ListFundsParams holds query parameters for listing funds.
type ListFundsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,gt=0,lte=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// ListFundsResponse is a list of funds.
type ListFundsResponse struct {
	Funds []FundResponse `json:"funds"`
}

// ToFundResponse converts a domain.Fund to its response DTO.
func ToFundResponse(f *domain.Fund) FundResponse {
	return FundResponse{
		FundID:        f.FundID,
		Name:          f.Name,
		Description:   f.Description,
		TargetAmount:  f.TargetAmount,
		CurrentAmount: f.CurrentAmount,
		Status:        f.Status,
		StartDate:     f.StartDate,
		EndDate:       f.EndDate,
		CreatedAt:     f.CreatedAt,
		LastUpdatedAt: f.LastUpdatedAt,
	}
}

// ToFundResponses converts a slice of domain funds.
func ToFundResponses(funds []domain.Fund) []FundResponse {
	out := make([]FundResponse, len(funds))
	for i := range funds {
		out[i] = ToFundResponse(&funds[i])
	}
	return out
}

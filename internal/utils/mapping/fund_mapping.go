package mapping

import (
	"github.com/daanseva/donation_backend/internal/core/domain"
	"github.com/daanseva/donation_backend/internal/models"
)

// ToModelFund converts a domain.Fund to its DB model.
func ToModelFund(f domain.Fund) models.Fund {
	return models.Fund{
		FundID:        f.FundID,
		Name:          f.Name,
		Description:   f.Description,
		TargetAmount:  f.TargetAmount,
		CurrentAmount: f.CurrentAmount,
		Status:        models.FundStatus(f.Status),
		StartDate:     f.StartDate,
		EndDate:       f.EndDate,
		AuditFields:   ToModelAuditFields(f.AuditFields),
	}
}

// ToDomainFund converts a models.Fund to its domain representation.
func ToDomainFund(m models.Fund) domain.Fund {
	return domain.Fund{
		FundID:        m.FundID,
		Name:          m.Name,
		Description:   m.Description,
		TargetAmount:  m.TargetAmount,
		CurrentAmount: m.CurrentAmount,
		Status:        domain.FundStatus(m.Status),
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

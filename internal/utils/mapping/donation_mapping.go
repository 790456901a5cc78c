package mapping

import (
	"github.com/daanseva/donation_backend/internal/core/domain"
	"github.com/daanseva/donation_backend/internal/models"
)

// ToModelDonation converts a domain.Donation to its DB model.
func ToModelDonation(d domain.Donation) models.Donation {
	return models.Donation{
		DonationID:     d.DonationID,
		FundID:         d.FundID,
		Amount:         d.Amount,
		TransactionRef: d.TransactionRef,
		DonorName:      d.DonorName,
		DonorEmail:     d.DonorEmail,
		DonorPhone:     d.DonorPhone,
		Purpose:        d.Purpose,
		Status:         models.DonationStatus(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDonation converts a models.Donation to its domain representation.
func ToDomainDonation(m models.Donation) domain.Donation {
	return domain.Donation{
		DonationID:     m.DonationID,
		FundID:         m.FundID,
		Amount:         m.Amount,
		TransactionRef: m.TransactionRef,
		DonorName:      m.DonorName,
		DonorEmail:     m.DonorEmail,
		DonorPhone:     m.DonorPhone,
		Purpose:        m.Purpose,
		Status:         domain.DonationStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

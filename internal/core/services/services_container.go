package services

import (
	portsrepo "github.com/daanseva/donation_backend/internal/core/ports/repositories"
	portssvc "github.com/daanseva/donation_backend/internal/core/ports/services"
	"github.com/daanseva/donation_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Fund service first since donation reconciliation depends on it
	container.Fund = NewFundService(repos.FundRepo, cfg)
	container.Donation = NewDonationService(repos.DonationRepo, container.Fund)
	container.Payment = NewPaymentService(cfg)
	container.Auth = NewAuthService(cfg)

	return container
}

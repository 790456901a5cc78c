package repositories

// RepositoryProvider bundles all repository implementations for service wiring.
type RepositoryProvider struct {
	DonationRepo DonationRepositoryFacade
	FundRepo     FundRepositoryFacade
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/daanseva/donation_backend/internal/apperrors"
	"github.com/daanseva/donation_backend/internal/core/domain"
	portsrepo "github.com/daanseva/donation_backend/internal/core/ports/repositories"
	portssvc "github.com/daanseva/donation_backend/internal/core/ports/services"
	"github.com/daanseva/donation_backend/internal/core/services"
	"github.com/daanseva/donation_backend/internal/dto"
	"github.com/daanseva/donation_backend/internal/platform/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FundRepository ---
type MockFundRepository struct {
	mock.Mock
}

// Ensure MockFundRepository implements portsrepo.FundRepositoryFacade
var _ portsrepo.FundRepositoryFacade = (*MockFundRepository)(nil)

func (m *MockFundRepository) SaveFund(ctx context.Context, fund domain.Fund) error {
	args := m.Called(ctx, fund)
	return args.Error(0)
}

func (m *MockFundRepository) UpdateFund(ctx context.Context, fund domain.Fund) error {
	args := m.Called(ctx, fund)
	return args.Error(0)
}

func (m *MockFundRepository) ActivateFund(ctx context.Context, fundID string, userID string, now time.Time) (*domain.Fund, error) {
	args := m.Called(ctx, fundID, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundRepository) ApplyAmount(ctx context.Context, fundID string, amount decimal.Decimal, userID string, now time.Time) (*domain.ApplyResult, error) {
	args := m.Called(ctx, fundID, amount, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplyResult), args.Error(1)
}

func (m *MockFundRepository) DeleteFund(ctx context.Context, fundID string) error {
	args := m.Called(ctx, fundID)
	return args.Error(0)
}

func (m *MockFundRepository) FindFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundRepository) FindActiveFund(ctx context.Context) (*domain.Fund, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundRepository) ListFunds(ctx context.Context, limit int, offset int) ([]domain.Fund, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fund), args.Error(1)
}

// --- Test Suite Setup ---
type FundServiceTestSuite struct {
	suite.Suite
	mockFundRepo *MockFundRepository
	service      portssvc.FundSvcFacade
	userID       string
}

func (suite *FundServiceTestSuite) SetupTest() {
	suite.mockFundRepo = new(MockFundRepository)
	cfg := &config.Config{
		DefaultFundName:        "General Fund",
		DefaultFundDescription: "Default donation campaign",
		DefaultFundTarget:      decimal.NewFromInt(100000),
	}
	suite.service = services.NewFundService(suite.mockFundRepo, cfg)
	suite.userID = uuid.NewString()
}

func (suite *FundServiceTestSuite) pendingFund(target int64) *domain.Fund {
	now := time.Now().UTC()
	return &domain.Fund{
		FundID:        uuid.NewString(),
		Name:          "Renovation",
		Description:   "Hall renovation drive",
		TargetAmount:  decimal.NewFromInt(target),
		CurrentAmount: decimal.Zero,
		Status:        domain.FundPending,
		StartDate:     now,
		EndDate:       now.AddDate(0, 3, 0),
	}
}

// --- Test Cases ---

func (suite *FundServiceTestSuite) TestCreateFund_Success() {
	ctx := context.Background()
	start := time.Now().UTC()
	req := dto.CreateFundRequest{
		Name:         "Annual Drive",
		Description:  "Yearly fundraiser",
		TargetAmount: decimal.NewFromInt(50000),
		StartDate:    start,
		EndDate:      start.AddDate(0, 6, 0),
	}

	suite.mockFundRepo.On("SaveFund", ctx, mock.AnythingOfType("domain.Fund")).Return(nil).Once()

	created, err := suite.service.CreateFund(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.FundID)
	suite.Equal(domain.FundPending, created.Status)
	suite.True(created.CurrentAmount.IsZero())
	suite.Equal(suite.userID, created.CreatedBy)
	suite.mockFundRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestCreateFund_InvalidDateRange() {
	ctx := context.Background()
	start := time.Now().UTC()
	req := dto.CreateFundRequest{
		Name:         "Backwards",
		TargetAmount: decimal.NewFromInt(1000),
		StartDate:    start,
		EndDate:      start.Add(-time.Hour),
	}

	created, err := suite.service.CreateFund(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidDateRange)
	suite.Nil(created)
	suite.mockFundRepo.AssertNotCalled(suite.T(), "SaveFund", mock.Anything, mock.Anything)
}

func (suite *FundServiceTestSuite) TestCreateFund_NonPositiveTarget() {
	ctx := context.Background()
	start := time.Now().UTC()
	req := dto.CreateFundRequest{
		Name:         "Zero",
		TargetAmount: decimal.Zero,
		StartDate:    start,
		EndDate:      start.AddDate(0, 1, 0),
	}

	_, err := suite.service.CreateFund(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FundServiceTestSuite) TestUpdateFund_PartialNameOnly() {
	ctx := context.Background()
	fund := suite.pendingFund(1000)
	newName := "Renamed Drive"

	suite.mockFundRepo.On("FindFundByID", ctx, fund.FundID).Return(fund, nil).Once()
	suite.mockFundRepo.On("UpdateFund", ctx, mock.AnythingOfType("domain.Fund")).Return(nil).Once()

	updated, err := suite.service.UpdateFund(ctx, fund.FundID, dto.UpdateFundRequest{Name: &newName}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockFundRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestUpdateFund_TargetLockedAfterActivation() {
	ctx := context.Background()
	fund := suite.pendingFund(1000)
	fund.Status = domain.FundActive
	newTarget := decimal.NewFromInt(2000)

	suite.mockFundRepo.On("FindFundByID", ctx, fund.FundID).Return(fund, nil).Once()

	_, err := suite.service.UpdateFund(ctx, fund.FundID, dto.UpdateFundRequest{TargetAmount: &newTarget}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrFundNotEditable)
	suite.mockFundRepo.AssertNotCalled(suite.T(), "UpdateFund", mock.Anything, mock.Anything)
}

func (suite *FundServiceTestSuite) TestUpdateFund_NoFieldsIsNoop() {
	ctx := context.Background()
	fund := suite.pendingFund(1000)

	suite.mockFundRepo.On("FindFundByID", ctx, fund.FundID).Return(fund, nil).Once()

	updated, err := suite.service.UpdateFund(ctx, fund.FundID, dto.UpdateFundRequest{}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(fund.FundID, updated.FundID)
	suite.mockFundRepo.AssertNotCalled(suite.T(), "UpdateFund", mock.Anything, mock.Anything)
}

func (suite *FundServiceTestSuite) TestDeleteFund_WithBalanceRefused() {
	ctx := context.Background()
	fundID := uuid.NewString()

	suite.mockFundRepo.On("DeleteFund", ctx, fundID).Return(apperrors.ErrConflict).Once()

	err := suite.service.DeleteFund(ctx, fundID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrFundHasBalance)
	suite.mockFundRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestActivateFund_Success() {
	ctx := context.Background()
	fund := suite.pendingFund(1000)
	activated := *fund
	activated.Status = domain.FundActive

	suite.mockFundRepo.On("ActivateFund", ctx, fund.FundID, suite.userID, mock.AnythingOfType("time.Time")).Return(&activated, nil).Once()

	result, err := suite.service.ActivateFund(ctx, fund.FundID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.FundActive, result.Status)
	suite.mockFundRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestActivateFund_AnotherFundActive() {
	ctx := context.Background()
	fundID := uuid.NewString()

	suite.mockFundRepo.On("ActivateFund", ctx, fundID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrDuplicate).Once()

	result, err := suite.service.ActivateFund(ctx, fundID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrActiveFundExists)
	suite.Nil(result)
}

func (suite *FundServiceTestSuite) TestEnsureActiveFund_Existing() {
	ctx := context.Background()
	active := suite.pendingFund(1000)
	active.Status = domain.FundActive

	suite.mockFundRepo.On("FindActiveFund", ctx).Return(active, nil).Once()

	fund, err := suite.service.EnsureActiveFund(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(active.FundID, fund.FundID)
	suite.mockFundRepo.AssertNotCalled(suite.T(), "SaveFund", mock.Anything, mock.Anything)
}

func (suite *FundServiceTestSuite) TestEnsureActiveFund_AutoProvisions() {
	ctx := context.Background()

	suite.mockFundRepo.On("FindActiveFund", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFundRepo.On("SaveFund", ctx, mock.MatchedBy(func(f domain.Fund) bool {
		return f.Status == domain.FundActive && f.Name == "General Fund"
	})).Return(nil).Once()

	fund, err := suite.service.EnsureActiveFund(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.FundActive, fund.Status)
	suite.Equal("General Fund", fund.Name)
	suite.True(fund.EndDate.After(fund.StartDate))
	suite.mockFundRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestEnsureActiveFund_LostProvisionRace() {
	ctx := context.Background()
	winner := suite.pendingFund(1000)
	winner.Status = domain.FundActive

	suite.mockFundRepo.On("FindActiveFund", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockFundRepo.On("SaveFund", ctx, mock.AnythingOfType("domain.Fund")).Return(apperrors.ErrDuplicate).Once()
	suite.mockFundRepo.On("FindActiveFund", ctx).Return(winner, nil).Once()

	fund, err := suite.service.EnsureActiveFund(ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(winner.FundID, fund.FundID)
	suite.mockFundRepo.AssertExpectations(suite.T())
}

func (suite *FundServiceTestSuite) TestApplyAmount_Delegates() {
	ctx := context.Background()
	fund := suite.pendingFund(1000)
	fund.Status = domain.FundCompleted
	fund.CurrentAmount = decimal.NewFromInt(1200)
	amount := decimal.NewFromInt(600)

	suite.mockFundRepo.On("ApplyAmount", ctx, fund.FundID, amount, suite.userID, mock.AnythingOfType("time.Time")).
		Return(&domain.ApplyResult{Fund: *fund, CompletedNow: true}, nil).Once()

	result, err := suite.service.ApplyAmount(ctx, fund.FundID, amount, suite.userID)

	suite.Require().NoError(err)
	suite.True(result.CompletedNow)
	suite.Equal(domain.FundCompleted, result.Fund.Status)
	suite.mockFundRepo.AssertExpectations(suite.T())
}

func TestFundServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FundServiceTestSuite))
}

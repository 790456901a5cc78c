package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/daanseva/donation_backend/internal/apperrors"
	"github.com/daanseva/donation_backend/internal/core/domain"
	portssvc "github.com/daanseva/donation_backend/internal/core/ports/services"
	"github.com/daanseva/donation_backend/internal/core/services"
	"github.com/daanseva/donation_backend/internal/dto"
	"github.com/daanseva/donation_backend/internal/handlers"
	"github.com/daanseva/donation_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// --- Mock DonationService ---
type MockDonationService struct {
	mock.Mock
}

var _ portssvc.DonationSvcFacade = (*MockDonationService)(nil)

func (m *MockDonationService) RecordAndApply(ctx context.Context, claim domain.DonationClaim) (*domain.DonationOutcome, error) {
	args := m.Called(ctx, claim)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DonationOutcome), args.Error(1)
}

func (m *MockDonationService) MarkDonationCompleted(ctx context.Context, donationID string, userID string) (*domain.Donation, error) {
	args := m.Called(ctx, donationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationService) MarkDonationFailed(ctx context.Context, donationID string, userID string) (*domain.Donation, error) {
	args := m.Called(ctx, donationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationService) GetDonationByID(ctx context.Context, donationID string) (*domain.Donation, error) {
	args := m.Called(ctx, donationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donation), args.Error(1)
}

func (m *MockDonationService) ListDonations(ctx context.Context, params dto.ListDonationsParams) (*dto.ListDonationsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListDonationsResponse), args.Error(1)
}

// --- Mock FundService (wiring only; not exercised by these tests) ---
type MockFundService struct {
	mock.Mock
}

var _ portssvc.FundSvcFacade = (*MockFundService)(nil)

func (m *MockFundService) CreateFund(ctx context.Context, req dto.CreateFundRequest, creatorUserID string) (*domain.Fund, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundService) GetFundByID(ctx context.Context, fundID string) (*domain.Fund, error) {
	args := m.Called(ctx, fundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundService) ListFunds(ctx context.Context, limit int, offset int) ([]domain.Fund, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fund), args.Error(1)
}

func (m *MockFundService) UpdateFund(ctx context.Context, fundID string, req dto.UpdateFundRequest, userID string) (*domain.Fund, error) {
	args := m.Called(ctx, fundID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundService) DeleteFund(ctx context.Context, fundID string, userID string) error {
	args := m.Called(ctx, fundID, userID)
	return args.Error(0)
}

func (m *MockFundService) ActivateFund(ctx context.Context, fundID string, userID string) (*domain.Fund, error) {
	args := m.Called(ctx, fundID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundService) EnsureActiveFund(ctx context.Context, userID string) (*domain.Fund, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fund), args.Error(1)
}

func (m *MockFundService) ApplyAmount(ctx context.Context, fundID string, amount decimal.Decimal, userID string) (*domain.ApplyResult, error) {
	args := m.Called(ctx, fundID, amount, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApplyResult), args.Error(1)
}

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

func (m *MockPaymentService) GeneratePaymentRequest(ctx context.Context, amount decimal.Decimal) (*domain.PaymentTarget, error) {
	args := m.Called(ctx, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentTarget), args.Error(1)
}

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

// --- Test Suite Setup ---
type DonationHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockDonationService *MockDonationService
	mockFundService     *MockFundService
	jwtSecret           string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *DonationHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "donation-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *DonationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterAmountValidation()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockDonationService = new(MockDonationService)
	suite.mockFundService = new(MockFundService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // no swagger routes in tests
	}
	container := &portssvc.ServiceContainer{
		Payment:  new(MockPaymentService),
		Donation: suite.mockDonationService,
		Fund:     suite.mockFundService,
		Auth:     new(MockAuthService),
	}

	rate := limiter.Rate{Period: time.Minute, Limit: 1000}
	publicLimiter := limiter.New(memory.NewStore(), rate)

	handlers.RegisterRoutes(suite.router, cfg, container, publicLimiter)
}

func (suite *DonationHandlerTestSuite) postJSON(url string, body any, token string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *DonationHandlerTestSuite) TestVerifyDonation_Created() {
	fundID := uuid.NewString()
	outcome := &domain.DonationOutcome{
		Donation: domain.Donation{
			DonationID:     uuid.NewString(),
			FundID:         fundID,
			Amount:         decimal.NewFromInt(500),
			TransactionRef: "UTR-9001",
			DonorName:      "Asha Rao",
			Status:         domain.DonationCompleted,
		},
		Fund: domain.Fund{
			FundID:        fundID,
			CurrentAmount: decimal.NewFromInt(500),
			TargetAmount:  decimal.NewFromInt(1000),
			Status:        domain.FundActive,
		},
		Recorded: true,
	}

	suite.mockDonationService.On("RecordAndApply", mock.Anything, mock.MatchedBy(func(c domain.DonationClaim) bool {
		return c.TransactionRef == "UTR-9001" && c.Amount.Equal(decimal.NewFromInt(500))
	})).Return(outcome, nil).Once()

	w := suite.postJSON("/api/v1/donations/verify", gin.H{
		"amount":         500,
		"transactionRef": "UTR-9001",
		"donorName":      "Asha Rao",
	}, "")

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.DonationOutcomeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Recorded)
	suite.Equal("UTR-9001", resp.Donation.TransactionRef)
	suite.mockDonationService.AssertExpectations(suite.T())
}

func (suite *DonationHandlerTestSuite) TestVerifyDonation_DuplicateReturnsOK() {
	outcome := &domain.DonationOutcome{
		Donation: domain.Donation{
			DonationID:     uuid.NewString(),
			TransactionRef: "UTR-9002",
			Amount:         decimal.NewFromInt(500),
			Status:         domain.DonationCompleted,
		},
		Recorded: false,
	}

	suite.mockDonationService.On("RecordAndApply", mock.Anything, mock.AnythingOfType("domain.DonationClaim")).
		Return(outcome, nil).Once()

	w := suite.postJSON("/api/v1/donations/verify", gin.H{
		"amount":         500,
		"transactionRef": "UTR-9002",
	}, "")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DonationOutcomeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Recorded)
}

func (suite *DonationHandlerTestSuite) TestVerifyDonation_MissingRefRejected() {
	w := suite.postJSON("/api/v1/donations/verify", gin.H{"amount": 500}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDonationService.AssertNotCalled(suite.T(), "RecordAndApply", mock.Anything, mock.Anything)
}

func (suite *DonationHandlerTestSuite) TestVerifyDonation_NonPositiveAmountRejected() {
	w := suite.postJSON("/api/v1/donations/verify", gin.H{
		"amount":         0,
		"transactionRef": "UTR-9003",
	}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDonationService.AssertNotCalled(suite.T(), "RecordAndApply", mock.Anything, mock.Anything)
}

func (suite *DonationHandlerTestSuite) TestVerifyDonation_UnknownFund() {
	suite.mockDonationService.On("RecordAndApply", mock.Anything, mock.AnythingOfType("domain.DonationClaim")).
		Return(nil, services.ErrFundNotFound).Once()

	fundID := uuid.NewString()
	w := suite.postJSON("/api/v1/donations/verify", gin.H{
		"amount":         500,
		"transactionRef": "UTR-9004",
		"fundID":         fundID,
	}, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *DonationHandlerTestSuite) TestListDonations_RequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/donations", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockDonationService.AssertNotCalled(suite.T(), "ListDonations", mock.Anything, mock.Anything)
}

func (suite *DonationHandlerTestSuite) TestListDonations_Success() {
	userID := uuid.NewString()
	expected := &dto.ListDonationsResponse{
		Donations: []dto.DonationResponse{
			{DonationID: uuid.NewString(), Amount: decimal.NewFromInt(100), Status: domain.DonationCompleted},
		},
	}

	suite.mockDonationService.On("ListDonations", mock.Anything, mock.MatchedBy(func(p dto.ListDonationsParams) bool {
		return p.Limit == 20 && p.Status == nil
	})).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/donations", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListDonationsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Donations, 1)
	suite.mockDonationService.AssertExpectations(suite.T())
}

func (suite *DonationHandlerTestSuite) TestCompleteDonation_Success() {
	userID := uuid.NewString()
	donation := &domain.Donation{
		DonationID: uuid.NewString(),
		Amount:     decimal.NewFromInt(250),
		Status:     domain.DonationCompleted,
	}

	suite.mockDonationService.On("MarkDonationCompleted", mock.Anything, donation.DonationID, userID).
		Return(donation, nil).Once()

	w := suite.postJSON("/api/v1/donations/"+donation.DonationID+"/complete", nil, suite.generateTestToken(userID))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.DonationResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.DonationCompleted, resp.Status)
	suite.mockDonationService.AssertExpectations(suite.T())
}

func (suite *DonationHandlerTestSuite) TestGetDonation_NotFound() {
	userID := uuid.NewString()
	donationID := uuid.NewString()

	suite.mockDonationService.On("GetDonationByID", mock.Anything, donationID).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/donations/"+donationID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestDonationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DonationHandlerTestSuite))
}

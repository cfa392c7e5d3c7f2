package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	portsrepo "github.com/hasinarv/cashpoint_backend/internal/core/ports/repositories"
	portssvc "github.com/hasinarv/cashpoint_backend/internal/core/ports/services"
	"github.com/hasinarv/cashpoint_backend/internal/core/services"
	"github.com/hasinarv/cashpoint_backend/internal/dto"
	"github.com/hasinarv/cashpoint_backend/internal/handlers"
	"github.com/hasinarv/cashpoint_backend/internal/platform/config"
)

// --- Mock SessionService ---
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) StartSession(ctx context.Context, operatorID string, opening domain.Balances) (*domain.Session, error) {
	args := m.Called(ctx, operatorID, opening)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockSessionService) CloseSession(ctx context.Context, operatorID string) (*domain.Session, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}
func (m *MockSessionService) CurrentSession(ctx context.Context, operatorID string) (*domain.Session, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Deposit(ctx context.Context, operatorID string, req dto.DepositRequest) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, operatorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionRecord), args.Error(1)
}
func (m *MockLedgerService) Withdraw(ctx context.Context, operatorID string, req dto.WithdrawRequest) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, operatorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionRecord), args.Error(1)
}
func (m *MockLedgerService) Transfer(ctx context.Context, operatorID string, req dto.TransferRequest) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, operatorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionRecord), args.Error(1)
}
func (m *MockLedgerService) ListTransactions(ctx context.Context, operatorID string, filter portsrepo.TransactionFilter) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, operatorID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) Summary(ctx context.Context, operatorID string, recentLimit int) (*domain.SessionSummary, error) {
	args := m.Called(ctx, operatorID, recentLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SessionSummary), args.Error(1)
}
func (m *MockReportingService) Balances(ctx context.Context, operatorID string) (domain.Balances, bool, error) {
	args := m.Called(ctx, operatorID)
	return args.Get(0).(domain.Balances), args.Bool(1), args.Error(2)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockSession   *MockSessionService
	mockLedger    *MockLedgerService
	mockReporting *MockReportingService
	jwtSecret     string
	operatorID    string
}

// generateTestToken creates a dummy JWT for testing.
func generateTestToken(t *testing.T, jwtSecret, operatorID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Issuer:    "cashpoint-test",
		Subject:   operatorID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.operatorID = uuid.NewString()

	suite.mockSession = new(MockSessionService)
	suite.mockLedger = new(MockLedgerService)
	suite.mockReporting = new(MockReportingService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	container := &portssvc.ServiceContainer{
		Session:   suite.mockSession,
		Ledger:    suite.mockLedger,
		Reporting: suite.mockReporting,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *TransactionHandlerTestSuite) doJSON(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.T(), suite.jwtSecret, suite.operatorID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestDeposit_Success() {
	sessionID := uuid.NewString()
	req := dto.DepositRequest{Service: "mvola", Amount: 10000, PhoneNumber: "0341234567"}
	stored := &domain.TransactionRecord{
		TransactionID: uuid.NewString(),
		SessionID:     sessionID,
		Type:          domain.Deposit,
		Service:       domain.MVola,
		Amount:        10000,
		PhoneNumber:   "0341234567",
		Status:        domain.StatusCompleted,
	}

	suite.mockLedger.On("Deposit", mock.Anything, suite.operatorID, req).Return(stored, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions/deposit", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(stored.TransactionID, resp.TransactionID)
	suite.Equal("deposit", resp.Type)
	suite.Equal("mvola", resp.Service)
	suite.Equal(int64(10000), resp.Amount)
	suite.Equal(int64(0), resp.Fees)
	suite.Equal("completed", resp.Status)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeposit_InvalidPhoneNumber() {
	req := dto.DepositRequest{Service: "mvola", Amount: 10000, PhoneNumber: "12345"}

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions/deposit", req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "Deposit")
}

func (suite *TransactionHandlerTestSuite) TestDeposit_UnknownService() {
	body := map[string]any{"service": "telma", "amount": 10000, "phoneNumber": "0341234567"}

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions/deposit", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "Deposit")
}

func (suite *TransactionHandlerTestSuite) TestDeposit_NoActiveSession() {
	req := dto.DepositRequest{Service: "mvola", Amount: 10000, PhoneNumber: "0341234567"}

	suite.mockLedger.On("Deposit", mock.Anything, suite.operatorID, req).
		Return(nil, services.ErrNoActiveSession).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions/deposit", req)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestWithdraw_InsufficientCash() {
	req := dto.WithdrawRequest{Service: "mvola", Amount: 500000, PhoneNumber: "0341234567"}

	suite.mockLedger.On("Withdraw", mock.Anything, suite.operatorID, req).
		Return(nil, domain.ErrInsufficientCashBalance).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions/withdraw", req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestTransfer_Success() {
	sessionID := uuid.NewString()
	req := dto.TransferRequest{
		Service: "orangeMoney",
		Amount:  5000,
		Recipient: dto.RecipientRequest{
			Name:  "Hanta Rakoto",
			Phone: "0321234567",
		},
	}
	stored := &domain.TransactionRecord{
		TransactionID:  uuid.NewString(),
		SessionID:      sessionID,
		Type:           domain.Transfer,
		Service:        domain.OrangeMoney,
		Amount:         5000,
		Fee:            200,
		RecipientName:  "Hanta Rakoto",
		RecipientPhone: "0321234567",
		Status:         domain.StatusCompleted,
	}

	suite.mockLedger.On("Transfer", mock.Anything, suite.operatorID, req).Return(stored, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions/transfer", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.Recipient)
	suite.Equal("Hanta Rakoto", resp.Recipient.Name)
	suite.Equal(int64(200), resp.Fees)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestTransfer_MissingRecipient() {
	body := map[string]any{"service": "orangeMoney", "amount": 5000}

	w := suite.doJSON(http.MethodPost, "/api/v1/transactions/transfer", body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedger.AssertNotCalled(suite.T(), "Transfer")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_FilterAndLimit() {
	records := []domain.TransactionRecord{
		{TransactionID: uuid.NewString(), Type: domain.Withdrawal, Service: domain.MVola, Sequence: 2},
	}

	suite.mockLedger.On("ListTransactions", mock.Anything, suite.operatorID, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.Limit == 10 &&
			f.Service != nil && *f.Service == domain.MVola &&
			f.Type != nil && *f.Type == domain.Withdrawal
	})).Return(records, nil).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/transactions?service=mvola&type=withdrawal&limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Transactions, 1)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUnauthorized_NoToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}

package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/hasinarv/cashpoint_backend/internal/apperrors"
	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	portsrepo "github.com/hasinarv/cashpoint_backend/internal/core/ports/repositories"
	portssvc "github.com/hasinarv/cashpoint_backend/internal/core/ports/services"
	"github.com/hasinarv/cashpoint_backend/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockSessionRepo   *MockSessionRepository
	mockTxnRepo       *MockTransactionRepository
	mockReportingRepo *MockReportingRepository
	service           portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockSessionRepo = new(MockSessionRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(
		suite.mockSessionRepo,
		suite.mockTxnRepo,
		suite.mockReportingRepo,
	)
}

func (suite *ReportingServiceTestSuite) TestSummary_ActiveSession() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	session := &domain.Session{
		SessionID:       uuid.NewString(),
		OperatorID:      operatorID,
		IsActive:        true,
		CurrentBalances: domain.Balances{Cash: 115000, MVola: 45000, OrangeMoney: 30000, AirtelMoney: 10000},
	}
	activity := []domain.ServiceActivityRow{
		{Service: domain.MVola, TransactionCount: 3, FeeRevenue: 900},
		{Service: domain.OrangeMoney, TransactionCount: 1, FeeRevenue: 2000},
	}
	recent := []domain.TransactionRecord{
		{TransactionID: uuid.NewString(), SessionID: session.SessionID, Sequence: 4},
		{TransactionID: uuid.NewString(), SessionID: session.SessionID, Sequence: 3},
	}

	suite.mockSessionRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(session, nil).Once()
	suite.mockReportingRepo.On("GetServiceActivity", ctx, session.SessionID).Return(activity, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsBySession", ctx, session.SessionID,
		portsrepo.TransactionFilter{Limit: 5}).Return(recent, nil).Once()

	summary, err := suite.service.Summary(ctx, operatorID, 5)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.True(summary.SessionActive)
	suite.Equal(session.SessionID, summary.SessionID)
	suite.Equal(session.CurrentBalances, summary.Balances)
	suite.Equal(int64(85000), summary.MobileMoneyTotal)
	suite.Equal(int64(200000), summary.TotalFloat)
	suite.Equal(int64(2900), summary.FeeRevenue)
	suite.Equal(int64(4), summary.TransactionCount)
	suite.Equal(recent, summary.RecentActivity)

	// every service appears, with balances from the session and activity merged in
	suite.Require().Len(summary.PerService, 3)
	suite.Equal(domain.MVola, summary.PerService[0].Service)
	suite.Equal(int64(45000), summary.PerService[0].Balance)
	suite.Equal(int64(3), summary.PerService[0].TransactionCount)
	suite.Equal(domain.OrangeMoney, summary.PerService[1].Service)
	suite.Equal(int64(2000), summary.PerService[1].FeeRevenue)
	suite.Equal(domain.AirtelMoney, summary.PerService[2].Service)
	suite.Equal(int64(10000), summary.PerService[2].Balance)
	suite.Equal(int64(0), summary.PerService[2].TransactionCount)

	suite.mockSessionRepo.AssertExpectations(suite.T())
	suite.mockReportingRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestSummary_NoActiveSession() {
	ctx := context.Background()
	operatorID := uuid.NewString()

	suite.mockSessionRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(nil, apperrors.ErrNotFound).Once()

	summary, err := suite.service.Summary(ctx, operatorID, 5)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.False(summary.SessionActive)
	suite.Empty(summary.SessionID)
	suite.Equal(domain.Balances{}, summary.Balances)
	suite.Equal(int64(0), summary.TotalFloat)
	suite.Empty(summary.RecentActivity)
	suite.Require().Len(summary.PerService, 3)
	for _, row := range summary.PerService {
		suite.Equal(int64(0), row.Balance)
		suite.Equal(int64(0), row.TransactionCount)
	}
	suite.mockReportingRepo.AssertNotCalled(suite.T(), "GetServiceActivity")
}

func (suite *ReportingServiceTestSuite) TestSummary_DefaultRecentLimit() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	session := &domain.Session{SessionID: uuid.NewString(), OperatorID: operatorID, IsActive: true}

	suite.mockSessionRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(session, nil).Once()
	suite.mockReportingRepo.On("GetServiceActivity", ctx, session.SessionID).
		Return([]domain.ServiceActivityRow{}, nil).Once()
	suite.mockTxnRepo.On("ListTransactionsBySession", ctx, session.SessionID,
		portsrepo.TransactionFilter{Limit: 5}).Return([]domain.TransactionRecord{}, nil).Once()

	summary, err := suite.service.Summary(ctx, operatorID, 0)

	suite.Require().NoError(err)
	suite.NotNil(summary.RecentActivity)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestBalances_ActiveSession() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	session := &domain.Session{
		SessionID:       uuid.NewString(),
		OperatorID:      operatorID,
		IsActive:        true,
		CurrentBalances: domain.Balances{Cash: 120000, MVola: 50000},
	}

	suite.mockSessionRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(session, nil).Once()

	balances, active, err := suite.service.Balances(ctx, operatorID)

	suite.Require().NoError(err)
	suite.True(active)
	suite.Equal(session.CurrentBalances, balances)
}

func (suite *ReportingServiceTestSuite) TestBalances_NoActiveSession() {
	ctx := context.Background()
	operatorID := uuid.NewString()

	suite.mockSessionRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(nil, apperrors.ErrNotFound).Once()

	balances, active, err := suite.service.Balances(ctx, operatorID)

	suite.Require().NoError(err)
	suite.False(active)
	suite.Equal(domain.Balances{}, balances)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

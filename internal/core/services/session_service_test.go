package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hasinarv/cashpoint_backend/internal/apperrors"
	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	"github.com/hasinarv/cashpoint_backend/internal/core/notifications"
	portssvc "github.com/hasinarv/cashpoint_backend/internal/core/ports/services"
	"github.com/hasinarv/cashpoint_backend/internal/core/services"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSessionRepository
	notifier *recordingNotifier
	service  portssvc.SessionSvcFacade
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSessionRepository)
	suite.notifier = &recordingNotifier{}
	suite.service = services.NewSessionService(suite.mockRepo, suite.notifier)
}

func (suite *SessionServiceTestSuite) TestStartSession_Success() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	opening := domain.Balances{Cash: 100000, MVola: 50000, OrangeMoney: 30000, AirtelMoney: 20000}

	suite.mockRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSession", ctx, mock.MatchedBy(func(s domain.Session) bool {
		return s.OperatorID == operatorID &&
			s.IsActive &&
			s.ClosedAt == nil &&
			s.OpeningBalances == opening &&
			s.CurrentBalances == opening &&
			s.CreatedBy == operatorID
	})).Return(nil).Once()

	session, err := suite.service.StartSession(ctx, operatorID, opening)

	suite.Require().NoError(err)
	suite.Require().NotNil(session)
	suite.NotEmpty(session.SessionID)
	suite.Equal(opening, session.CurrentBalances)
	suite.Equal(int64(200000), session.CurrentBalances.Total())

	suite.Require().Len(suite.notifier.events, 1)
	suite.Equal(notifications.EventSessionStarted, suite.notifier.events[0].Name)
	suite.Equal(session.SessionID, suite.notifier.events[0].SessionID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestStartSession_NegativeOpening() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	opening := domain.Balances{Cash: -1, MVola: 50000}

	session, err := suite.service.StartSession(ctx, operatorID, opening)

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrNegativeOpening)
	suite.Empty(suite.notifier.events)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSession")
}

func (suite *SessionServiceTestSuite) TestStartSession_ZeroOpeningAllowed() {
	ctx := context.Background()
	operatorID := uuid.NewString()

	suite.mockRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSession", ctx, mock.AnythingOfType("domain.Session")).Return(nil).Once()

	session, err := suite.service.StartSession(ctx, operatorID, domain.Balances{})

	suite.Require().NoError(err)
	suite.Equal(int64(0), session.CurrentBalances.Total())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestStartSession_AlreadyActive() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	existing := &domain.Session{SessionID: uuid.NewString(), OperatorID: operatorID, IsActive: true}

	suite.mockRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(existing, nil).Once()

	session, err := suite.service.StartSession(ctx, operatorID, domain.Balances{Cash: 1000})

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, services.ErrSessionAlreadyActive)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSession")
}

func (suite *SessionServiceTestSuite) TestStartSession_RaceLostOnInsert() {
	ctx := context.Background()
	operatorID := uuid.NewString()

	suite.mockRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveSession", ctx, mock.AnythingOfType("domain.Session")).Return(apperrors.ErrDuplicate).Once()

	session, err := suite.service.StartSession(ctx, operatorID, domain.Balances{Cash: 1000})

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, services.ErrSessionAlreadyActive)
	suite.Empty(suite.notifier.events)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestCloseSession_Success() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	active := &domain.Session{
		SessionID:       uuid.NewString(),
		OperatorID:      operatorID,
		IsActive:        true,
		CurrentBalances: domain.Balances{Cash: 115000, MVola: 45000},
	}

	suite.mockRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(active, nil).Once()
	suite.mockRepo.On("CloseSession", ctx, mock.MatchedBy(func(s domain.Session) bool {
		return s.SessionID == active.SessionID && !s.IsActive && s.ClosedAt != nil
	})).Return(nil).Once()

	closed, err := suite.service.CloseSession(ctx, operatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(closed)
	suite.False(closed.IsActive)
	suite.NotNil(closed.ClosedAt)
	// final balances survive the close untouched
	suite.Equal(domain.Balances{Cash: 115000, MVola: 45000}, closed.CurrentBalances)

	suite.Require().Len(suite.notifier.events, 1)
	suite.Equal(notifications.EventSessionClosed, suite.notifier.events[0].Name)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestCloseSession_NoActiveSession() {
	ctx := context.Background()
	operatorID := uuid.NewString()

	suite.mockRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(nil, apperrors.ErrNotFound).Once()

	closed, err := suite.service.CloseSession(ctx, operatorID)

	suite.Require().Error(err)
	suite.Nil(closed)
	suite.ErrorIs(err, services.ErrNoActiveSession)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestCurrentSession_Success() {
	ctx := context.Background()
	operatorID := uuid.NewString()
	active := &domain.Session{SessionID: uuid.NewString(), OperatorID: operatorID, IsActive: true}

	suite.mockRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(active, nil).Once()

	session, err := suite.service.CurrentSession(ctx, operatorID)

	suite.Require().NoError(err)
	suite.Equal(active, session)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SessionServiceTestSuite) TestCurrentSession_RepoError() {
	ctx := context.Background()
	operatorID := uuid.NewString()

	suite.mockRepo.On("FindActiveSessionByOperator", ctx, operatorID).Return(nil, assert.AnError).Once()

	session, err := suite.service.CurrentSession(ctx, operatorID)

	suite.Require().Error(err)
	suite.Nil(session)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

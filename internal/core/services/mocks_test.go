package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	"github.com/hasinarv/cashpoint_backend/internal/core/notifications"
	portsrepo "github.com/hasinarv/cashpoint_backend/internal/core/ports/repositories"
)

// --- Mock SessionRepository ---
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) FindActiveSessionByOperator(ctx context.Context, operatorID string) (*domain.Session, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) CloseSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) RecordOperation(ctx context.Context, operatorID string, record domain.TransactionRecord) (*domain.TransactionRecord, *domain.Session, error) {
	args := m.Called(ctx, operatorID, record)
	var stored *domain.TransactionRecord
	var session *domain.Session
	if args.Get(0) != nil {
		stored = args.Get(0).(*domain.TransactionRecord)
	}
	if args.Get(1) != nil {
		session = args.Get(1).(*domain.Session)
	}
	return stored, session, args.Error(2)
}

func (m *MockTransactionRepository) ListTransactionsBySession(ctx context.Context, sessionID string, filter portsrepo.TransactionFilter) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx, sessionID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetServiceActivity(ctx context.Context, sessionID string) ([]domain.ServiceActivityRow, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceActivityRow), args.Error(1)
}

// recordingNotifier captures emitted events for assertions.
type recordingNotifier struct {
	events []notifications.Event
}

func (n *recordingNotifier) Notify(_ context.Context, event notifications.Event) {
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Close() {}

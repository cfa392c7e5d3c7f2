package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hasinarv/cashpoint_backend/internal/apperrors"
	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	"github.com/hasinarv/cashpoint_backend/internal/core/notifications"
	portsrepo "github.com/hasinarv/cashpoint_backend/internal/core/ports/repositories"
	portssvc "github.com/hasinarv/cashpoint_backend/internal/core/ports/services"
)

var (
	ErrSessionAlreadyActive = errors.New("an active session already exists for this operator")
	ErrNoActiveSession      = errors.New("no active session for this operator")
	ErrNegativeOpening      = errors.New("opening balances must not be negative")
)

// sessionService owns the session lifecycle: a session is opened with declared
// balances, accumulates operations, and is closed exactly once.
type sessionService struct {
	BaseService
	sessionRepo portsrepo.SessionRepositoryFacade
	notifier    notifications.Notifier
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessionRepo portsrepo.SessionRepositoryFacade, notifier notifications.Notifier) portssvc.SessionSvcFacade {
	if notifier == nil {
		notifier = notifications.NopNotifier{}
	}
	return &sessionService{sessionRepo: sessionRepo, notifier: notifier}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// StartSession opens a new session seeded with the operator's counted balances.
func (s *sessionService) StartSession(ctx context.Context, operatorID string, opening domain.Balances) (*domain.Session, error) {
	if !opening.NonNegative() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNegativeOpening)
	}

	// Cheap pre-check for a clean error; the partial unique index on the
	// sessions table closes the race between concurrent starts.
	if _, err := s.sessionRepo.FindActiveSessionByOperator(ctx, operatorID); err == nil {
		return nil, ErrSessionAlreadyActive
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "failed to check for active session", slog.String("operator_id", operatorID))
		return nil, fmt.Errorf("failed to check for active session: %w", err)
	}

	now := time.Now()
	session := domain.Session{
		SessionID:       uuid.NewString(),
		OperatorID:      operatorID,
		OpenedAt:        now,
		IsActive:        true,
		OpeningBalances: opening,
		CurrentBalances: opening,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}

	if err := s.sessionRepo.SaveSession(ctx, session); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, ErrSessionAlreadyActive
		}
		s.LogError(ctx, err, "failed to save session", slog.String("operator_id", operatorID))
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.LogInfo(ctx, "session started",
		slog.String("session_id", session.SessionID),
		slog.String("operator_id", operatorID),
		slog.Int64("total_float", opening.Total()))
	s.notifier.Notify(ctx, notifications.Event{
		Name:      notifications.EventSessionStarted,
		SessionID: session.SessionID,
		Balances:  session.CurrentBalances,
	})
	return &session, nil
}

// CloseSession ends the operator's active session. The closed session keeps
// its final balances and its full transaction history.
func (s *sessionService) CloseSession(ctx context.Context, operatorID string) (*domain.Session, error) {
	session, err := s.sessionRepo.FindActiveSessionByOperator(ctx, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		s.LogError(ctx, err, "failed to find active session", slog.String("operator_id", operatorID))
		return nil, fmt.Errorf("failed to find active session: %w", err)
	}

	now := time.Now()
	session.IsActive = false
	session.ClosedAt = &now
	session.LastUpdatedAt = now
	session.LastUpdatedBy = operatorID

	if err := s.sessionRepo.CloseSession(ctx, *session); err != nil {
		s.LogError(ctx, err, "failed to close session", slog.String("session_id", session.SessionID))
		return nil, fmt.Errorf("failed to close session: %w", err)
	}

	s.LogInfo(ctx, "session closed",
		slog.String("session_id", session.SessionID),
		slog.String("operator_id", operatorID),
		slog.Int64("final_total", session.CurrentBalances.Total()))
	s.notifier.Notify(ctx, notifications.Event{
		Name:      notifications.EventSessionClosed,
		SessionID: session.SessionID,
		Balances:  session.CurrentBalances,
	})
	return session, nil
}

// CurrentSession returns the operator's active session.
func (s *sessionService) CurrentSession(ctx context.Context, operatorID string) (*domain.Session, error) {
	session, err := s.sessionRepo.FindActiveSessionByOperator(ctx, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		s.LogError(ctx, err, "failed to find active session", slog.String("operator_id", operatorID))
		return nil, fmt.Errorf("failed to find active session: %w", err)
	}
	return session, nil
}

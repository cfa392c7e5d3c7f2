package repositories

import (
	"context"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
)

// SessionRepositoryFacade defines persistence operations for operator sessions.
type SessionRepositoryFacade interface {
	// SaveSession inserts a new session. Returns apperrors.ErrDuplicate when the
	// operator already has an active session (backed by a partial unique index).
	SaveSession(ctx context.Context, session domain.Session) error

	// FindSessionByID retrieves a session by its ID, or apperrors.ErrNotFound.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)

	// FindActiveSessionByOperator retrieves the operator's single active session,
	// or apperrors.ErrNotFound when none is active.
	FindActiveSessionByOperator(ctx context.Context, operatorID string) (*domain.Session, error)

	// CloseSession marks the session inactive and stamps ClosedAt, preserving the
	// final balances and the transaction history.
	CloseSession(ctx context.Context, session domain.Session) error
}

package services

import (
	"context"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
)

// SessionSvcFacade owns the lifecycle of an operator's accounting session.
type SessionSvcFacade interface {
	// StartSession opens a new session seeded with the declared opening balances.
	// Fails with ErrSessionAlreadyActive while one is active, and with
	// apperrors.ErrValidation on a negative opening balance.
	StartSession(ctx context.Context, operatorID string, opening domain.Balances) (*domain.Session, error)

	// CloseSession closes the operator's active session. Fails with
	// ErrNoActiveSession when none is active. History and final balances survive.
	CloseSession(ctx context.Context, operatorID string) (*domain.Session, error)

	// CurrentSession returns the operator's active session, or ErrNoActiveSession.
	CurrentSession(ctx context.Context, operatorID string) (*domain.Session, error)
}

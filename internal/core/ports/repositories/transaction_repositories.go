package repositories

import (
	"context"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
)

// TransactionFilter narrows ListTransactions queries. Nil fields are ignored.
type TransactionFilter struct {
	Service *domain.ServiceKind
	Type    *domain.OperationKind
	Limit   int
}

// TransactionRepositoryFacade defines persistence operations for the ledger.
type TransactionRepositoryFacade interface {
	// RecordOperation atomically applies one operation against the operator's
	// active session and appends the ledger entry. The session row is locked for
	// the duration, the balance delta is validated and applied via
	// domain.Balances.Apply, and nothing is persisted on rejection.
	//
	// Returns the stored record (with its assigned sequence) and the updated
	// session. Errors: apperrors.ErrNotFound when no active session exists,
	// domain.ErrInsufficientCashBalance / domain.ErrInsufficientServiceBalance on
	// solvency failures, apperrors.AppError on persistence failures.
	RecordOperation(ctx context.Context, operatorID string, record domain.TransactionRecord) (*domain.TransactionRecord, *domain.Session, error)

	// ListTransactionsBySession returns the session's ledger entries sorted
	// newest first, tie-broken by insertion sequence descending.
	ListTransactionsBySession(ctx context.Context, sessionID string, filter TransactionFilter) ([]domain.TransactionRecord, error)
}

// ReportingRepositoryFacade defines the read-only aggregate queries backing reports.
type ReportingRepositoryFacade interface {
	// GetServiceActivity returns per-service transaction counts and fee revenue
	// for a session. Services with no activity are omitted; Balance is filled in
	// by the reporting service from the session's balances.
	GetServiceActivity(ctx context.Context, sessionID string) ([]domain.ServiceActivityRow, error)
}

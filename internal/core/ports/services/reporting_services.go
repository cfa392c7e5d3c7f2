package services

import (
	"context"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
)

// ReportingSvcFacade exposes read-only projections over the session and ledger.
// It never mutates state and tolerates both an empty ledger and a not-yet-started
// session (zero balances, SessionActive=false).
type ReportingSvcFacade interface {
	// Summary builds the dashboard view: balances, totals, per-service breakdown
	// and recent activity.
	Summary(ctx context.Context, operatorID string, recentLimit int) (*domain.SessionSummary, error)

	// Balances returns the operator's current float. The second return reports
	// whether a session is active; without one, balances are all zero.
	Balances(ctx context.Context, operatorID string) (domain.Balances, bool, error)
}

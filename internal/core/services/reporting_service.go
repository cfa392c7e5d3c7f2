package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hasinarv/cashpoint_backend/internal/apperrors"
	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	portsrepo "github.com/hasinarv/cashpoint_backend/internal/core/ports/repositories"
	portssvc "github.com/hasinarv/cashpoint_backend/internal/core/ports/services"
)

const defaultRecentLimit = 5

// reportingService builds read-only projections over the active session.
type reportingService struct {
	BaseService
	sessionRepo     portsrepo.SessionRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	reportingRepo   portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	sessionRepo portsrepo.SessionRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	reportingRepo portsrepo.ReportingRepositoryFacade,
) portssvc.ReportingSvcFacade {
	return &reportingService{
		sessionRepo:     sessionRepo,
		transactionRepo: transactionRepo,
		reportingRepo:   reportingRepo,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// Summary builds the dashboard projection. Without an active session it
// returns an empty summary rather than an error, so the dashboard can render
// a "start a session" state.
func (s *reportingService) Summary(ctx context.Context, operatorID string, recentLimit int) (*domain.SessionSummary, error) {
	if recentLimit <= 0 {
		recentLimit = defaultRecentLimit
	}

	session, err := s.sessionRepo.FindActiveSessionByOperator(ctx, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.SessionSummary{
				PerService:     s.perService(domain.Balances{}, nil),
				RecentActivity: []domain.TransactionRecord{},
			}, nil
		}
		s.LogError(ctx, err, "failed to find active session", slog.String("operator_id", operatorID))
		return nil, fmt.Errorf("failed to find active session: %w", err)
	}

	activity, err := s.reportingRepo.GetServiceActivity(ctx, session.SessionID)
	if err != nil {
		s.LogError(ctx, err, "failed to aggregate service activity", slog.String("session_id", session.SessionID))
		return nil, fmt.Errorf("failed to aggregate service activity: %w", err)
	}

	recent, err := s.transactionRepo.ListTransactionsBySession(ctx, session.SessionID,
		portsrepo.TransactionFilter{Limit: recentLimit})
	if err != nil {
		s.LogError(ctx, err, "failed to load recent transactions", slog.String("session_id", session.SessionID))
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}
	if recent == nil {
		recent = []domain.TransactionRecord{}
	}

	summary := &domain.SessionSummary{
		SessionActive:    true,
		SessionID:        session.SessionID,
		Balances:         session.CurrentBalances,
		MobileMoneyTotal: session.CurrentBalances.MobileMoneyTotal(),
		TotalFloat:       session.CurrentBalances.Total(),
		PerService:       s.perService(session.CurrentBalances, activity),
		RecentActivity:   recent,
	}
	for _, row := range activity {
		summary.FeeRevenue += row.FeeRevenue
		summary.TransactionCount += row.TransactionCount
	}
	return summary, nil
}

// Balances returns the operator's current float, or all zeros when no
// session is active.
func (s *reportingService) Balances(ctx context.Context, operatorID string) (domain.Balances, bool, error) {
	session, err := s.sessionRepo.FindActiveSessionByOperator(ctx, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Balances{}, false, nil
		}
		s.LogError(ctx, err, "failed to find active session", slog.String("operator_id", operatorID))
		return domain.Balances{}, false, fmt.Errorf("failed to find active session: %w", err)
	}
	return session.CurrentBalances, true, nil
}

// perService merges the aggregated activity onto the full service list so
// every service appears with its balance even before its first transaction.
func (s *reportingService) perService(balances domain.Balances, activity []domain.ServiceActivityRow) []domain.ServiceActivityRow {
	byService := make(map[domain.ServiceKind]domain.ServiceActivityRow, len(activity))
	for _, row := range activity {
		byService[row.Service] = row
	}

	rows := make([]domain.ServiceActivityRow, 0, len(domain.AllServices))
	for _, kind := range domain.AllServices {
		row := byService[kind]
		row.Service = kind
		row.Balance = balances.Service(kind)
		rows = append(rows, row)
	}
	return rows
}

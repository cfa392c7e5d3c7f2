package services

import (
	"github.com/hasinarv/cashpoint_backend/internal/core/notifications"
	portsrepo "github.com/hasinarv/cashpoint_backend/internal/core/ports/repositories"
	portssvc "github.com/hasinarv/cashpoint_backend/internal/core/ports/services"
	"github.com/hasinarv/cashpoint_backend/internal/platform/config"
	"github.com/hasinarv/cashpoint_backend/internal/utils/fees"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier notifications.Notifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	feePolicy := fees.NewPolicy(
		cfg.WithdrawalFeeFloor,
		cfg.WithdrawalFeeRateBP,
		cfg.TransferFeeFloor,
		cfg.TransferFeeRateBP,
	)

	container.Session = NewSessionService(repos.SessionRepo, notifier)
	container.Ledger = NewLedgerService(repos.TransactionRepo, repos.SessionRepo, feePolicy, cfg.MinTransactionAmount, notifier)
	container.Reporting = NewReportingService(repos.SessionRepo, repos.TransactionRepo, repos.ReportingRepo)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.SessionSvcFacade   = (*sessionService)(nil)
	_ portssvc.LedgerSvcFacade    = (*ledgerService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)

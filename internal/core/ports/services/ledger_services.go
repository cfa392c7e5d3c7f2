package services

import (
	"context"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	portsrepo "github.com/hasinarv/cashpoint_backend/internal/core/ports/repositories"
	"github.com/hasinarv/cashpoint_backend/internal/dto"
)

// LedgerSvcFacade validates, applies and records kiosk operations against the
// operator's active session. Every mutating call is atomic: either the balance
// delta is applied and the record appended, or nothing changes.
type LedgerSvcFacade interface {
	// Deposit converts a customer's mobile-money credit into cash handed over
	// the counter: the kiosk's cash rises, the service pool falls. Fee-free.
	Deposit(ctx context.Context, operatorID string, req dto.DepositRequest) (*domain.TransactionRecord, error)

	// Withdraw converts a customer's cash into mobile-money credit: the kiosk's
	// cash falls, the service pool rises.
	Withdraw(ctx context.Context, operatorID string, req dto.WithdrawRequest) (*domain.TransactionRecord, error)

	// Transfer sends mobile-money value to a third party on a customer's behalf,
	// collecting cash. Balance-wise symmetric with Deposit.
	Transfer(ctx context.Context, operatorID string, req dto.TransferRequest) (*domain.TransactionRecord, error)

	// ListTransactions returns the current session's ledger, newest first.
	ListTransactions(ctx context.Context, operatorID string, filter portsrepo.TransactionFilter) ([]domain.TransactionRecord, error)
}

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
	"github.com/hasinarv/cashpoint_backend/internal/dto"
	"github.com/hasinarv/cashpoint_backend/internal/utils/fees"
)

var (
	ErrAmountBelowMinimum = errors.New("amount is below the minimum transaction amount")
	ErrUnknownWireService = errors.New("unknown mobile money service")
)

// ledgerService validates kiosk operations and hands them to the repository
// for atomic recording. Fee computation is deterministic and informational:
// fees are stored on the record but never applied to the balances.
type ledgerService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	sessionRepo     portsrepo.SessionRepositoryFacade
	feePolicy       fees.Policy
	minAmount       int64
	notifier        notifications.Notifier
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	sessionRepo portsrepo.SessionRepositoryFacade,
	feePolicy fees.Policy,
	minAmount int64,
	notifier notifications.Notifier,
) portssvc.LedgerSvcFacade {
	if notifier == nil {
		notifier = notifications.NopNotifier{}
	}
	return &ledgerService{
		transactionRepo: transactionRepo,
		sessionRepo:     sessionRepo,
		feePolicy:       feePolicy,
		minAmount:       minAmount,
		notifier:        notifier,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Deposit records a fee-free deposit: cash in, service float out.
func (s *ledgerService) Deposit(ctx context.Context, operatorID string, req dto.DepositRequest) (*domain.TransactionRecord, error) {
	service, err := s.parseService(req.Service)
	if err != nil {
		return nil, err
	}
	if err := s.checkAmount(req.Amount); err != nil {
		return nil, err
	}

	record := s.newRecord(operatorID, domain.Deposit, service, req.Amount)
	record.PhoneNumber = req.PhoneNumber
	return s.record(ctx, operatorID, record)
}

// Withdraw records a withdrawal: cash out, service float in. The fee is
// computed on the amount but the solvency check covers the amount alone.
func (s *ledgerService) Withdraw(ctx context.Context, operatorID string, req dto.WithdrawRequest) (*domain.TransactionRecord, error) {
	service, err := s.parseService(req.Service)
	if err != nil {
		return nil, err
	}
	if err := s.checkAmount(req.Amount); err != nil {
		return nil, err
	}

	record := s.newRecord(operatorID, domain.Withdrawal, service, req.Amount)
	record.PhoneNumber = req.PhoneNumber
	return s.record(ctx, operatorID, record)
}

// Transfer records a transfer to a named third party. Balance-wise it moves
// money exactly like a deposit.
func (s *ledgerService) Transfer(ctx context.Context, operatorID string, req dto.TransferRequest) (*domain.TransactionRecord, error) {
	service, err := s.parseService(req.Service)
	if err != nil {
		return nil, err
	}
	if err := s.checkAmount(req.Amount); err != nil {
		return nil, err
	}

	record := s.newRecord(operatorID, domain.Transfer, service, req.Amount)
	record.RecipientName = req.Recipient.Name
	record.RecipientPhone = req.Recipient.Phone
	record.Description = req.Description
	return s.record(ctx, operatorID, record)
}

// ListTransactions returns the active session's ledger, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, operatorID string, filter portsrepo.TransactionFilter) ([]domain.TransactionRecord, error) {
	session, err := s.sessionRepo.FindActiveSessionByOperator(ctx, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		s.LogError(ctx, err, "failed to find active session", slog.String("operator_id", operatorID))
		return nil, fmt.Errorf("failed to find active session: %w", err)
	}

	records, err := s.transactionRepo.ListTransactionsBySession(ctx, session.SessionID, filter)
	if err != nil {
		s.LogError(ctx, err, "failed to list transactions", slog.String("session_id", session.SessionID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if records == nil {
		records = []domain.TransactionRecord{}
	}
	return records, nil
}

func (s *ledgerService) parseService(wire string) (domain.ServiceKind, error) {
	service, ok := dto.ParseService(wire)
	if !ok {
		return "", fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrUnknownWireService, wire)
	}
	return service, nil
}

func (s *ledgerService) checkAmount(amount int64) error {
	if amount < s.minAmount {
		return fmt.Errorf("%w: %w: got %d, minimum %d", apperrors.ErrValidation, ErrAmountBelowMinimum, amount, s.minAmount)
	}
	return nil
}

func (s *ledgerService) newRecord(operatorID string, op domain.OperationKind, service domain.ServiceKind, amount int64) domain.TransactionRecord {
	now := time.Now()
	return domain.TransactionRecord{
		TransactionID: uuid.NewString(),
		Type:          op,
		Service:       service,
		Amount:        amount,
		Fee:           s.feePolicy.Calculate(op, amount),
		Status:        domain.StatusCompleted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     operatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: operatorID,
		},
	}
}

// record hands the prepared entry to the repository for atomic application
// and emits the webhook event once committed.
func (s *ledgerService) record(ctx context.Context, operatorID string, record domain.TransactionRecord) (*domain.TransactionRecord, error) {
	stored, session, err := s.transactionRepo.RecordOperation(ctx, operatorID, record)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrNoActiveSession
		}
		if errors.Is(err, domain.ErrInsufficientCashBalance) || errors.Is(err, domain.ErrInsufficientServiceBalance) {
			s.LogInfo(ctx, "operation rejected for insufficient funds",
				slog.String("operator_id", operatorID),
				slog.String("type", string(record.Type)),
				slog.String("service", string(record.Service)),
				slog.Int64("amount", record.Amount))
			return nil, err
		}
		s.LogError(ctx, err, "failed to record operation",
			slog.String("operator_id", operatorID),
			slog.String("type", string(record.Type)))
		return nil, fmt.Errorf("failed to record operation: %w", err)
	}

	s.LogInfo(ctx, "operation recorded",
		slog.String("transaction_id", stored.TransactionID),
		slog.String("session_id", stored.SessionID),
		slog.String("type", string(stored.Type)),
		slog.String("service", string(stored.Service)),
		slog.Int64("amount", stored.Amount),
		slog.Int64("fee", stored.Fee))

	s.notifier.Notify(ctx, notifications.Event{
		Name:      notifications.EventTransactionRecorded,
		SessionID: session.SessionID,
		Balances:  session.CurrentBalances,
		Record:    stored,
	})
	return stored, nil
}

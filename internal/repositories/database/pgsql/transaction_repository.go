package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hasinarv/cashpoint_backend/internal/apperrors"
	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	portsrepo "github.com/hasinarv/cashpoint_backend/internal/core/ports/repositories"
	"github.com/hasinarv/cashpoint_backend/internal/models"
	"github.com/hasinarv/cashpoint_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// RecordOperation applies one operation and appends the ledger entry within a
// DB transaction. The session row is locked FOR UPDATE so concurrent
// operations against the same session serialize; the balance check and the
// write happen against the same locked snapshot. A retry re-runs the whole
// transaction, so the all-or-nothing guarantee holds across attempts.
func (r *PgxTransactionRepository) RecordOperation(ctx context.Context, operatorID string, record domain.TransactionRecord) (*domain.TransactionRecord, *domain.Session, error) {
	var (
		stored  *domain.TransactionRecord
		session *domain.Session
	)
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var opErr error
		stored, session, opErr = r.recordOperation(ctx, operatorID, record)
		return opErr
	})
	return stored, session, err
}

func (r *PgxTransactionRepository) recordOperation(ctx context.Context, operatorID string, record domain.TransactionRecord) (*domain.TransactionRecord, *domain.Session, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	// 1. Lock the operator's active session
	lockQuery := `SELECT ` + sessionColumns + ` FROM sessions WHERE operator_id = $1 AND is_active FOR UPDATE;`
	var modelSession models.Session
	err = tx.QueryRow(ctx, lockQuery, operatorID).Scan(
		&modelSession.SessionID,
		&modelSession.OperatorID,
		&modelSession.OpenedAt,
		&modelSession.ClosedAt,
		&modelSession.IsActive,
		&modelSession.OpeningCash,
		&modelSession.OpeningMVola,
		&modelSession.OpeningOrangeMoney,
		&modelSession.OpeningAirtelMoney,
		&modelSession.Cash,
		&modelSession.MVola,
		&modelSession.OrangeMoney,
		&modelSession.AirtelMoney,
		&modelSession.CreatedAt,
		&modelSession.CreatedBy,
		&modelSession.LastUpdatedAt,
		&modelSession.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, fmt.Errorf("%w: no active session for operator %s", apperrors.ErrNotFound, operatorID)
		}
		return nil, nil, apperrors.NewAppError(500, "failed to lock session for operator "+operatorID, err)
	}
	session := mapping.ToDomainSession(modelSession)
	sessionID := session.SessionID

	// 2. Validate and apply the balance delta. Rejection aborts before any write.
	updated, err := session.CurrentBalances.Apply(record.Type, record.Service, record.Amount)
	if err != nil {
		return nil, nil, err
	}

	// 3. Append the ledger entry
	record.SessionID = sessionID
	modelTxn := mapping.ToModelTransaction(record)
	insertQuery := `
		INSERT INTO transactions (
			transaction_id, session_id, type, service, amount, fee,
			phone_number, recipient_name, recipient_phone, description, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING sequence;
	`
	err = tx.QueryRow(ctx, insertQuery,
		modelTxn.TransactionID,
		modelTxn.SessionID,
		modelTxn.Type,
		modelTxn.Service,
		modelTxn.Amount,
		modelTxn.Fee,
		modelTxn.PhoneNumber,
		modelTxn.RecipientName,
		modelTxn.RecipientPhone,
		modelTxn.Description,
		modelTxn.Status,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	).Scan(&record.Sequence)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID, err)
	}

	// 4. Persist the new balances
	updateQuery := `
		UPDATE sessions
		SET cash = $2, mvola = $3, orange_money = $4, airtel_money = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE session_id = $1;
	`
	_, err = tx.Exec(ctx, updateQuery,
		sessionID,
		updated.Cash,
		updated.MVola,
		updated.OrangeMoney,
		updated.AirtelMoney,
		record.LastUpdatedAt,
		record.LastUpdatedBy,
	)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to update session balances for "+sessionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}

	session.CurrentBalances = updated
	session.LastUpdatedAt = record.LastUpdatedAt
	session.LastUpdatedBy = record.LastUpdatedBy
	return &record, &session, nil
}

// ListTransactionsBySession returns a session's ledger entries, newest first.
func (r *PgxTransactionRepository) ListTransactionsBySession(ctx context.Context, sessionID string, filter portsrepo.TransactionFilter) ([]domain.TransactionRecord, error) {
	query := `
		SELECT transaction_id, session_id, type, service, amount, fee,
		       phone_number, recipient_name, recipient_phone, description, status, sequence,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE session_id = $1
	`
	args := []any{sessionID}
	if filter.Service != nil {
		args = append(args, string(*filter.Service))
		query += fmt.Sprintf(" AND service = $%d", len(args))
	}
	if filter.Type != nil {
		args = append(args, string(*filter.Type))
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	query += " ORDER BY created_at DESC, sequence DESC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	var transactions []models.Transaction
	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, args...)
		if err != nil {
			return apperrors.NewAppError(500, "failed to query transactions for session "+sessionID, err)
		}
		defer rows.Close()

		transactions = []models.Transaction{}
		for rows.Next() {
			var m models.Transaction
			err := rows.Scan(
				&m.TransactionID,
				&m.SessionID,
				&m.Type,
				&m.Service,
				&m.Amount,
				&m.Fee,
				&m.PhoneNumber,
				&m.RecipientName,
				&m.RecipientPhone,
				&m.Description,
				&m.Status,
				&m.Sequence,
				&m.CreatedAt,
				&m.CreatedBy,
				&m.LastUpdatedAt,
				&m.LastUpdatedBy,
			)
			if err != nil {
				return apperrors.NewAppError(500, "failed to scan transaction row", err)
			}
			transactions = append(transactions, m)
		}
		if err := rows.Err(); err != nil {
			return apperrors.NewAppError(500, "error iterating transaction rows", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return mapping.ToDomainTransactionSlice(transactions), nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hasinarv/cashpoint_backend/internal/apperrors"
	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	portsrepo "github.com/hasinarv/cashpoint_backend/internal/core/ports/repositories"
	"github.com/hasinarv/cashpoint_backend/internal/models"
	"github.com/hasinarv/cashpoint_backend/internal/utils/mapping"
)

const sessionColumns = `session_id, operator_id, opened_at, closed_at, is_active,
       opening_cash, opening_mvola, opening_orange_money, opening_airtel_money,
       cash, mvola, orange_money, airtel_money,
       created_at, created_by, last_updated_at, last_updated_by`

type PgxSessionRepository struct {
	BaseRepository
}

// newPgxSessionRepository creates a new repository for session data.
func newPgxSessionRepository(pool *pgxpool.Pool) portsrepo.SessionRepositoryFacade {
	return &PgxSessionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

// SaveSession inserts a new session. The partial unique index
// one_active_session_per_operator turns a concurrent start into a unique
// violation, surfaced as apperrors.ErrDuplicate.
func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	modelSession := mapping.ToModelSession(session)
	query := `
		INSERT INTO sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	err := r.withRetry(ctx, func(ctx context.Context) error {
		_, err := r.Pool.Exec(ctx, query,
			modelSession.SessionID,
			modelSession.OperatorID,
			modelSession.OpenedAt,
			modelSession.ClosedAt,
			modelSession.IsActive,
			modelSession.OpeningCash,
			modelSession.OpeningMVola,
			modelSession.OpeningOrangeMoney,
			modelSession.OpeningAirtelMoney,
			modelSession.Cash,
			modelSession.MVola,
			modelSession.OrangeMoney,
			modelSession.AirtelMoney,
			modelSession.CreatedAt,
			modelSession.CreatedBy,
			modelSession.LastUpdatedAt,
			modelSession.LastUpdatedBy,
		)
		return err
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: operator %s already has an active session", apperrors.ErrDuplicate, session.OperatorID)
		}
		return apperrors.NewAppError(500, "failed to insert session "+modelSession.SessionID, err)
	}
	return nil
}

// FindSessionByID retrieves a session by its ID.
func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE session_id = $1;`
	var session *domain.Session
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		session, scanErr = r.scanSession(r.Pool.QueryRow(ctx, query, sessionID))
		return scanErr
	})
	return session, err
}

// FindActiveSessionByOperator retrieves the operator's single active session.
func (r *PgxSessionRepository) FindActiveSessionByOperator(ctx context.Context, operatorID string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE operator_id = $1 AND is_active;`
	var session *domain.Session
	err := r.withRetry(ctx, func(ctx context.Context) error {
		var scanErr error
		session, scanErr = r.scanSession(r.Pool.QueryRow(ctx, query, operatorID))
		return scanErr
	})
	return session, err
}

// CloseSession marks the session inactive and stamps its closing time. The
// is_active guard makes a double close a no-op at the storage level.
func (r *PgxSessionRepository) CloseSession(ctx context.Context, session domain.Session) error {
	query := `
		UPDATE sessions
		SET is_active = FALSE, closed_at = $2, last_updated_at = $3, last_updated_by = $4
		WHERE session_id = $1 AND is_active;
	`
	return r.withRetry(ctx, func(ctx context.Context) error {
		tag, err := r.Pool.Exec(ctx, query,
			session.SessionID,
			session.ClosedAt,
			session.LastUpdatedAt,
			session.LastUpdatedBy,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to close session "+session.SessionID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("%w: active session %s", apperrors.ErrNotFound, session.SessionID)
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PgxSessionRepository) scanSession(row rowScanner) (*domain.Session, error) {
	var m models.Session
	err := row.Scan(
		&m.SessionID,
		&m.OperatorID,
		&m.OpenedAt,
		&m.ClosedAt,
		&m.IsActive,
		&m.OpeningCash,
		&m.OpeningMVola,
		&m.OpeningOrangeMoney,
		&m.OpeningAirtelMoney,
		&m.Cash,
		&m.MVola,
		&m.OrangeMoney,
		&m.AirtelMoney,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan session", err)
	}
	session := mapping.ToDomainSession(m)
	return &session, nil
}

package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hasinarv/cashpoint_backend/internal/core/domain"
	portsrepo "github.com/hasinarv/cashpoint_backend/internal/core/ports/repositories"
)

// reportingRepository implements the read-only aggregate queries
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepositoryFacade {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var _ portsrepo.ReportingRepositoryFacade = (*reportingRepository)(nil)

// GetServiceActivity aggregates transaction counts and fee revenue per service
// for one session. Only completed transactions count toward revenue.
func (r *reportingRepository) GetServiceActivity(ctx context.Context, sessionID string) ([]domain.ServiceActivityRow, error) {
	query := `
		SELECT
			service,
			COUNT(*) AS transaction_count,
			COALESCE(SUM(fee), 0) AS fee_revenue
		FROM transactions
		WHERE session_id = $1
			AND status = 'COMPLETED'
		GROUP BY service
	`

	var result []domain.ServiceActivityRow
	err := r.withRetry(ctx, func(ctx context.Context) error {
		rows, err := r.Pool.Query(ctx, query, sessionID)
		if err != nil {
			return fmt.Errorf("error querying service activity: %w", err)
		}
		defer rows.Close()

		result = nil
		for rows.Next() {
			var row domain.ServiceActivityRow
			var service string

			if err := rows.Scan(&service, &row.TransactionCount, &row.FeeRevenue); err != nil {
				return fmt.Errorf("error scanning service activity row: %w", err)
			}

			row.Service = domain.ServiceKind(service)
			result = append(result, row)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return []domain.ServiceActivityRow{}, nil
	}

	return result, nil
}

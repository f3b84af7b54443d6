package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db DBTX) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetAggregatedReport retrieves per-cashbook totals for the period from the
// get_aggregated_report database function.
func (r *reportingRepository) GetAggregatedReport(ctx context.Context, userID string, isAdmin bool, start, end time.Time) ([]domain.CashbookReportRow, error) {
	query := `
		SELECT cashbook_id, cashbook_name, category_name, status, total_in, total_out, balance
		FROM get_aggregated_report($1, $2, $3, $4)
	`
	rows, err := r.Pool.Query(ctx, query, userID, isAdmin, start, end)
	if err != nil {
		return nil, fmt.Errorf("error calling get_aggregated_report: %w", err)
	}
	defer rows.Close()

	result, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.CashbookReportRow])
	if err != nil {
		return nil, fmt.Errorf("error collecting aggregated report rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.CashbookReportRow{}, nil
	}
	return result, nil
}

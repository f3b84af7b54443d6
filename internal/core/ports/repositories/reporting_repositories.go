package repositories

import (
	"context"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// ReportingRepository reads pre-aggregated figures from the database.
type ReportingRepository interface {
	// GetAggregatedReport calls the get_aggregated_report database function. When
	// isAdmin is false only cashbooks the user is staff on are included.
	GetAggregatedReport(ctx context.Context, userID string, isAdmin bool, start, end time.Time) ([]domain.CashbookReportRow, error)
}

package services

import (
	"context"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// ReportingSvc builds the aggregated cross-cashbook report.
type ReportingSvc interface {
	GetAggregatedReport(ctx context.Context, requestingUserID string, r domain.ReportRange) (*domain.AggregatedReport, error)
}

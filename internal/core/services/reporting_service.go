package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository, users portsrepo.UserReader) portssvc.ReportingSvc {
	return &reportingService{
		BaseService:   BaseService{Users: users},
		reportingRepo: repo,
	}
}

// Ensure reportingService implements the ReportingSvc interface
var _ portssvc.ReportingSvc = (*reportingService)(nil)

// GetAggregatedReport totals every cashbook the user can see over the range.
// The owner sees all live cashbooks, everybody else only the assigned ones.
func (s *reportingService) GetAggregatedReport(ctx context.Context, requestingUserID string, r domain.ReportRange) (*domain.AggregatedReport, error) {
	actor, err := s.LoadActor(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetAggregatedReport(ctx, actor.UserID, actor.IsOwner(), r.Start, r.End)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve aggregated report",
			slog.String("user_id", requestingUserID),
			slog.String("start", r.Start.Format(time.RFC3339)),
			slog.String("end", r.End.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve aggregated report: %w", err)
	}

	report := domain.NewAggregatedReport(r, rows)
	s.LogInfo(ctx, "Aggregated report generated",
		slog.String("preset", string(r.Preset)),
		slog.Int("row_count", len(report.Cashbooks)))
	return report, nil
}

package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAggregatedReport(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)
	r := domain.ReportRange{Preset: domain.ReportMonthly, Start: start, End: end}

	t.Run("owner sees every cashbook", func(t *testing.T) {
		users, repo := new(MockUserRepository), new(MockReportingRepository)
		users.On("FindUserByID", ctx, "owner-1").Return(ownerUser(), nil)
		repo.On("GetAggregatedReport", ctx, "owner-1", true, start, end).Return([]domain.CashbookReportRow{
			{CashbookID: "cb-1", TotalIn: decimal.NewFromInt(300), TotalOut: decimal.NewFromInt(100), Balance: decimal.NewFromInt(200)},
			{CashbookID: "cb-2", TotalIn: decimal.Zero, TotalOut: decimal.NewFromInt(50), Balance: decimal.NewFromInt(-50)},
		}, nil).Once()

		report, err := services.NewReportingService(repo, users).GetAggregatedReport(ctx, "owner-1", r)

		require.NoError(t, err)
		assert.Len(t, report.Cashbooks, 2)
		assert.True(t, decimal.NewFromInt(150).Equal(report.Totals.Balance))
		repo.AssertExpectations(t)
	})

	t.Run("staff report is scoped", func(t *testing.T) {
		users, repo := new(MockUserRepository), new(MockReportingRepository)
		users.On("FindUserByID", ctx, "staff-1").Return(staffUser(), nil)
		repo.On("GetAggregatedReport", ctx, "staff-1", false, start, end).Return([]domain.CashbookReportRow{}, nil).Once()

		report, err := services.NewReportingService(repo, users).GetAggregatedReport(ctx, "staff-1", r)

		require.NoError(t, err)
		assert.Empty(t, report.Cashbooks)
		assert.True(t, report.Totals.TotalIn.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("repository failure is wrapped", func(t *testing.T) {
		users, repo := new(MockUserRepository), new(MockReportingRepository)
		cause := errors.New("function get_aggregated_report does not exist")
		users.On("FindUserByID", ctx, "owner-1").Return(ownerUser(), nil)
		repo.On("GetAggregatedReport", ctx, "owner-1", true, start, end).Return(nil, cause)

		_, err := services.NewReportingService(repo, users).GetAggregatedReport(ctx, "owner-1", r)

		assert.ErrorIs(t, err, cause)
	})
}

package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ReportPreset names the supported report periods.
type ReportPreset string

const (
	ReportDaily   ReportPreset = "DAILY"
	ReportWeekly  ReportPreset = "WEEKLY"
	ReportMonthly ReportPreset = "MONTHLY"
	ReportYearly  ReportPreset = "YEARLY"
	ReportCustom  ReportPreset = "CUSTOM"
)

// ReportRange is a resolved, inclusive time window.
type ReportRange struct {
	Preset ReportPreset `json:"preset"`
	Start  time.Time    `json:"start"`
	End    time.Time    `json:"end"`
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// ResolveReportRange turns a preset into concrete bounds relative to now.
// customStart and customEnd are only read for CUSTOM and are widened to whole days.
func ResolveReportRange(preset ReportPreset, now time.Time, customStart, customEnd *time.Time) (ReportRange, error) {
	r := ReportRange{Preset: preset, End: now}
	switch preset {
	case ReportDaily:
		r.Start = startOfDay(now)
		r.End = endOfDay(now)
	case ReportWeekly:
		r.Start = now.AddDate(0, 0, -7)
	case ReportMonthly:
		y, m, _ := now.Date()
		r.Start = time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	case ReportYearly:
		r.Start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case ReportCustom:
		if customStart == nil || customEnd == nil {
			return ReportRange{}, fmt.Errorf("custom range requires both start and end")
		}
		r.Start = startOfDay(*customStart)
		r.End = endOfDay(*customEnd)
		if r.End.Before(r.Start) {
			return ReportRange{}, fmt.Errorf("custom range end %s is before start %s",
				customEnd.Format(time.DateOnly), customStart.Format(time.DateOnly))
		}
	default:
		return ReportRange{}, fmt.Errorf("unknown report range %q", preset)
	}
	return r, nil
}

// CashbookReportRow is one line returned by the aggregation function.
type CashbookReportRow struct {
	CashbookID   string          `json:"cashbookID" db:"cashbook_id"`
	CashbookName string          `json:"cashbookName" db:"cashbook_name"`
	CategoryName *string         `json:"categoryName,omitempty" db:"category_name"`
	Status       CashbookStatus  `json:"status" db:"status"`
	TotalIn      decimal.Decimal `json:"totalIn" db:"total_in"`
	TotalOut     decimal.Decimal `json:"totalOut" db:"total_out"`
	Balance      decimal.Decimal `json:"balance" db:"balance"`
}

// AggregatedReport is the per-cashbook breakdown plus grand totals.
type AggregatedReport struct {
	Range     ReportRange         `json:"range"`
	Cashbooks []CashbookReportRow `json:"cashbooks"`
	Totals    Balance             `json:"totals"`
}

// NewAggregatedReport computes the grand totals over rows.
func NewAggregatedReport(r ReportRange, rows []CashbookReportRow) *AggregatedReport {
	totalIn, totalOut := decimal.Zero, decimal.Zero
	for _, row := range rows {
		totalIn = totalIn.Add(row.TotalIn)
		totalOut = totalOut.Add(row.TotalOut)
	}
	if rows == nil {
		rows = []CashbookReportRow{}
	}
	return &AggregatedReport{Range: r, Cashbooks: rows, Totals: NewBalance(totalIn, totalOut)}
}

package dto

// AggregatedReportParams selects the report period. Start and End are
// YYYY-MM-DD and only used with the CUSTOM range.
type AggregatedReportParams struct {
	Range string `form:"range,default=WEEKLY" binding:"oneof=DAILY WEEKLY MONTHLY YEARLY CUSTOM"`
	Start string `form:"start" binding:"omitempty,datetime=2006-01-02"`
	End   string `form:"end" binding:"omitempty,datetime=2006-01-02"`
}

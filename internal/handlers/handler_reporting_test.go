package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/designerabdulhai/hhdcashfinal/internal/handlers"
	"github.com/designerabdulhai/hhdcashfinal/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportingHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockReportingService *MockReportingService
	token                string
}

func (suite *ReportingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret))
	suite.mockReportingService = new(MockReportingService)
	suite.token = generateTestToken("owner-1")

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterReportingRoutes(v1, suite.mockReportingService)
}

func (suite *ReportingHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportingHandlerTestSuite) TestDefaultsToWeekly() {
	report := domain.NewAggregatedReport(domain.ReportRange{Preset: domain.ReportWeekly}, []domain.CashbookReportRow{
		{CashbookID: "cb-1", CashbookName: "Shop A", TotalIn: decimal.NewFromInt(100), TotalOut: decimal.NewFromInt(40), Balance: decimal.NewFromInt(60)},
	})
	suite.mockReportingService.On("GetAggregatedReport",
		mock.AnythingOfType("*context.valueCtx"),
		"owner-1",
		mock.MatchedBy(func(r domain.ReportRange) bool {
			return r.Preset == domain.ReportWeekly && r.Start.Equal(r.End.AddDate(0, 0, -7))
		}),
	).Return(report, nil).Once()

	w := suite.get("/api/v1/reports/aggregated")

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.AggregatedReport
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Cashbooks, 1)
	suite.True(decimal.NewFromInt(60).Equal(resp.Totals.Balance))
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestCustomRangeCoversWholeLocalDays() {
	dhaka := time.FixedZone("BDT", 6*60*60)
	prevLocal := time.Local
	time.Local = dhaka
	defer func() { time.Local = prevLocal }()

	suite.mockReportingService.On("GetAggregatedReport", mock.Anything, "owner-1",
		mock.MatchedBy(func(r domain.ReportRange) bool {
			return r.Preset == domain.ReportCustom &&
				r.Start.Equal(time.Date(2024, time.February, 10, 0, 0, 0, 0, dhaka)) &&
				r.End.Location() == dhaka &&
				r.End.Year() == 2024 && r.End.Month() == time.February && r.End.Day() == 12 && r.End.Hour() == 23
		}),
	).Return(domain.NewAggregatedReport(domain.ReportRange{Preset: domain.ReportCustom}, nil), nil).Once()

	w := suite.get("/api/v1/reports/aggregated?range=CUSTOM&start=2024-02-10&end=2024-02-12")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *ReportingHandlerTestSuite) TestCustomRangeNeedsBounds() {
	w := suite.get("/api/v1/reports/aggregated?range=CUSTOM&start=2024-02-10")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReportingService.AssertNotCalled(suite.T(), "GetAggregatedReport", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestRejectsBadInput() {
	for _, url := range []string{
		"/api/v1/reports/aggregated?range=HOURLY",
		"/api/v1/reports/aggregated?range=CUSTOM&start=10/02/2024&end=2024-02-12",
		"/api/v1/reports/aggregated?range=CUSTOM&start=2024-02-12&end=2024-02-10",
	} {
		suite.Equal(http.StatusBadRequest, suite.get(url).Code, url)
	}
	suite.mockReportingService.AssertNotCalled(suite.T(), "GetAggregatedReport", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportingHandlerTestSuite) TestServiceFailure() {
	suite.mockReportingService.On("GetAggregatedReport", mock.Anything, "owner-1", mock.Anything).
		Return(nil, errors.New("function get_aggregated_report does not exist")).Once()

	w := suite.get("/api/v1/reports/aggregated?range=DAILY")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to generate report"}`, w.Body.String())
}

func TestReportingHandler(t *testing.T) {
	suite.Run(t, new(ReportingHandlerTestSuite))
}

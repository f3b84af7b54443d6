package handlers_test

import (
	"context"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// generateTestToken creates a signed JWT for userID.
func generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "hhdcash-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListUsers(ctx context.Context, requestingUserID string) ([]domain.User, error) {
	args := m.Called(ctx, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) UpdateGlobalPermissions(ctx context.Context, userID string, req dto.UpdateGlobalPermissionsRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	return m.Called(ctx, userID, requestingUserID).Error(0)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, phone, password string) (*domain.User, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) IsInitialized(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvc = (*MockTokenService)(nil)

// --- Mock CashbookService ---
type MockCashbookService struct {
	mock.Mock
}

func (m *MockCashbookService) ListCashbooks(ctx context.Context, requestingUserID string, filter domain.CashbookFilter) ([]domain.CashbookView, error) {
	args := m.Called(ctx, requestingUserID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashbookView), args.Error(1)
}
func (m *MockCashbookService) GetCashbook(ctx context.Context, cashbookID string, requestingUserID string) (*domain.CashbookDetail, error) {
	args := m.Called(ctx, cashbookID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashbookDetail), args.Error(1)
}
func (m *MockCashbookService) ListDeletedCashbooks(ctx context.Context, requestingUserID string) ([]domain.Cashbook, error) {
	args := m.Called(ctx, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashbook), args.Error(1)
}
func (m *MockCashbookService) CreateCashbook(ctx context.Context, req dto.CreateCashbookRequest, requestingUserID string) (*domain.Cashbook, error) {
	args := m.Called(ctx, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbook), args.Error(1)
}
func (m *MockCashbookService) UpdateCashbook(ctx context.Context, cashbookID string, req dto.UpdateCashbookRequest, requestingUserID string) (*domain.Cashbook, error) {
	args := m.Called(ctx, cashbookID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbook), args.Error(1)
}
func (m *MockCashbookService) SetCashbookStatus(ctx context.Context, cashbookID string, status domain.CashbookStatus, requestingUserID string) (*domain.Cashbook, error) {
	args := m.Called(ctx, cashbookID, status, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbook), args.Error(1)
}
func (m *MockCashbookService) SoftDeleteCashbook(ctx context.Context, cashbookID string, requestingUserID string) error {
	return m.Called(ctx, cashbookID, requestingUserID).Error(0)
}
func (m *MockCashbookService) RestoreCashbook(ctx context.Context, cashbookID string, requestingUserID string) error {
	return m.Called(ctx, cashbookID, requestingUserID).Error(0)
}
func (m *MockCashbookService) AuthorizeCashbook(ctx context.Context, userID, cashbookID string) (*domain.CashbookAccess, error) {
	args := m.Called(ctx, userID, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashbookAccess), args.Error(1)
}

var _ portssvc.CashbookSvcFacade = (*MockCashbookService)(nil)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) ListEntries(ctx context.Context, cashbookID string, requestingUserID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, cashbookID, requestingUserID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}
func (m *MockEntryService) CreateEntry(ctx context.Context, cashbookID string, req dto.CreateEntryRequest, requestingUserID string) (*domain.Entry, error) {
	args := m.Called(ctx, cashbookID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockEntryService) UpdateEntry(ctx context.Context, cashbookID, entryID string, req dto.UpdateEntryRequest, requestingUserID string) (*domain.Entry, error) {
	args := m.Called(ctx, cashbookID, entryID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockEntryService) DeleteEntry(ctx context.Context, cashbookID, entryID string, requestingUserID string) error {
	return m.Called(ctx, cashbookID, entryID, requestingUserID).Error(0)
}
func (m *MockEntryService) VerifyEntry(ctx context.Context, cashbookID, entryID string, requestingUserID string) (*domain.Entry, error) {
	args := m.Called(ctx, cashbookID, entryID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}
func (m *MockEntryService) GetBalance(ctx context.Context, cashbookID string, requestingUserID string) (domain.Balance, error) {
	args := m.Called(ctx, cashbookID, requestingUserID)
	return args.Get(0).(domain.Balance), args.Error(1)
}

var _ portssvc.EntrySvc = (*MockEntryService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportEntries(ctx context.Context, cashbookID string, requestingUserID string) (*domain.ExportFile, error) {
	args := m.Called(ctx, cashbookID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExportFile), args.Error(1)
}

var _ portssvc.ExportSvc = (*MockExportService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetAggregatedReport(ctx context.Context, requestingUserID string, r domain.ReportRange) (*domain.AggregatedReport, error) {
	args := m.Called(ctx, requestingUserID, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AggregatedReport), args.Error(1)
}

var _ portssvc.ReportingSvc = (*MockReportingService)(nil)

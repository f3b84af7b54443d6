package services_test

import (
	"context"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// Mocks satisfy exactly the ports the services consume.
var (
	_ portsrepo.UserRepositoryFacade     = (*MockUserRepository)(nil)
	_ portsrepo.CashbookRepositoryFacade = (*MockCashbookRepository)(nil)
)

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	return m.Called(ctx, userID, at).Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	return m.Called(ctx, userID, deletedAt).Error(0)
}

// --- MockCategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) RenameCategory(ctx context.Context, categoryID, name string) error {
	return m.Called(ctx, categoryID, name).Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	return m.Called(ctx, categoryID).Error(0)
}

// --- MockCashbookRepository ---
type MockCashbookRepository struct {
	mock.Mock
}

func (m *MockCashbookRepository) FindCashbookByID(ctx context.Context, cashbookID string) (*domain.Cashbook, error) {
	args := m.Called(ctx, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cashbook), args.Error(1)
}

func (m *MockCashbookRepository) FindCashbooks(ctx context.Context, filter domain.CashbookFilter) ([]domain.Cashbook, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashbook), args.Error(1)
}

func (m *MockCashbookRepository) FindCashbooksForStaff(ctx context.Context, userID string, filter domain.CashbookFilter) ([]domain.Cashbook, map[string]domain.CashbookStaff, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.Cashbook), args.Get(1).(map[string]domain.CashbookStaff), args.Error(2)
}

func (m *MockCashbookRepository) FindDeletedCashbooks(ctx context.Context) ([]domain.Cashbook, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashbook), args.Error(1)
}

func (m *MockCashbookRepository) SaveCashbook(ctx context.Context, cashbook domain.Cashbook, staff []domain.CashbookStaff) error {
	return m.Called(ctx, cashbook, staff).Error(0)
}

func (m *MockCashbookRepository) UpdateCashbook(ctx context.Context, cashbook domain.Cashbook) error {
	return m.Called(ctx, cashbook).Error(0)
}

func (m *MockCashbookRepository) UpdateCashbookStatus(ctx context.Context, cashbookID string, status domain.CashbookStatus) error {
	return m.Called(ctx, cashbookID, status).Error(0)
}

func (m *MockCashbookRepository) MarkCashbookDeleted(ctx context.Context, cashbookID string, deletedAt time.Time, deletedBy string) error {
	return m.Called(ctx, cashbookID, deletedAt, deletedBy).Error(0)
}

func (m *MockCashbookRepository) RestoreCashbook(ctx context.Context, cashbookID string) error {
	return m.Called(ctx, cashbookID).Error(0)
}

// --- MockStaffRepository ---
type MockStaffRepository struct {
	mock.Mock
}

func (m *MockStaffRepository) FindStaffRecord(ctx context.Context, cashbookID, userID string) (*domain.CashbookStaff, error) {
	args := m.Called(ctx, cashbookID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashbookStaff), args.Error(1)
}

func (m *MockStaffRepository) FindStaffByCashbook(ctx context.Context, cashbookID string) ([]domain.CashbookStaffMember, error) {
	args := m.Called(ctx, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashbookStaffMember), args.Error(1)
}

func (m *MockStaffRepository) FindCashbooksByStaffUser(ctx context.Context, userID string) ([]domain.Cashbook, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Cashbook), args.Error(1)
}

func (m *MockStaffRepository) SaveStaff(ctx context.Context, staff domain.CashbookStaff) error {
	return m.Called(ctx, staff).Error(0)
}

func (m *MockStaffRepository) UpdateStaff(ctx context.Context, staff domain.CashbookStaff) error {
	return m.Called(ctx, staff).Error(0)
}

func (m *MockStaffRepository) DeleteStaff(ctx context.Context, cashbookID, userID string) error {
	return m.Called(ctx, cashbookID, userID).Error(0)
}

// --- MockEntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntriesByCashbook(ctx context.Context, cashbookID string, limit int, cursor *domain.EntryCursor) ([]domain.Entry, error) {
	args := m.Called(ctx, cashbookID, limit, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindAllEntriesByCashbook(ctx context.Context, cashbookID string) ([]domain.Entry, error) {
	args := m.Called(ctx, cashbookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, cashbookID, entryID string) (*domain.Entry, error) {
	args := m.Called(ctx, cashbookID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) GetBalance(ctx context.Context, cashbookID string) (domain.Balance, error) {
	args := m.Called(ctx, cashbookID)
	return args.Get(0).(domain.Balance), args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockEntryRepository) DeleteEntry(ctx context.Context, cashbookID, entryID string) error {
	return m.Called(ctx, cashbookID, entryID).Error(0)
}

func (m *MockEntryRepository) MarkEntryVerified(ctx context.Context, cashbookID, entryID, verifiedBy string, at time.Time) error {
	return m.Called(ctx, cashbookID, entryID, verifiedBy, at).Error(0)
}

// --- MockReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetAggregatedReport(ctx context.Context, userID string, isAdmin bool, start, end time.Time) ([]domain.CashbookReportRow, error) {
	args := m.Called(ctx, userID, isAdmin, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashbookReportRow), args.Error(1)
}

// --- MockNotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) FindNotificationsByUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	return m.Called(ctx, notificationID, userID).Error(0)
}

// --- MockNotificationSvc ---
type MockNotificationSvc struct {
	mock.Mock
}

func (m *MockNotificationSvc) NotifyEntryPosted(ctx context.Context, cashbook domain.Cashbook, entry domain.Entry, author domain.User) error {
	return m.Called(ctx, cashbook, entry, author).Error(0)
}

func (m *MockNotificationSvc) ListNotifications(ctx context.Context, requestingUserID string, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, requestingUserID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationSvc) MarkNotificationRead(ctx context.Context, notificationID string, requestingUserID string) error {
	return m.Called(ctx, notificationID, requestingUserID).Error(0)
}

// --- MockNotificationChannel ---
type MockNotificationChannel struct {
	mock.Mock
}

func (m *MockNotificationChannel) Name() string { return "mock" }

func (m *MockNotificationChannel) Send(ctx context.Context, recipient domain.User, subject, message string) error {
	return m.Called(ctx, recipient, subject, message).Error(0)
}

// --- fixtures ---

func ownerUser() *domain.User {
	return &domain.User{UserID: "owner-1", FullName: "Hasan Owner", Phone: "01700000000", Role: domain.RoleOwner,
		CanCreateCashbooks: true, CanArchiveCashbooks: true}
}

func staffUser() *domain.User {
	return &domain.User{UserID: "staff-1", FullName: "Rafi Staff", Phone: "01800000000", Role: domain.RoleEmployee}
}

func activeCashbook() *domain.Cashbook {
	return &domain.Cashbook{CashbookID: "cb-1", CategoryID: "cat-1", Name: "Shop A", OwnerID: "owner-1",
		Status: domain.CashbookActive, CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

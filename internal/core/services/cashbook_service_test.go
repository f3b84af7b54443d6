package services_test

import (
	"context"
	"testing"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CashbookServiceTestSuite struct {
	suite.Suite
	users     *MockUserRepository
	cashbooks *MockCashbookRepository
	staff     *MockStaffRepository
	entries   *MockEntryRepository
	service   portssvc.CashbookSvcFacade
	ctx       context.Context
}

func (suite *CashbookServiceTestSuite) SetupTest() {
	suite.users = new(MockUserRepository)
	suite.cashbooks = new(MockCashbookRepository)
	suite.staff = new(MockStaffRepository)
	suite.entries = new(MockEntryRepository)
	suite.service = services.NewCashbookService(suite.cashbooks, suite.staff, suite.entries, suite.users)
	suite.ctx = context.Background()
}

// --- AuthorizeCashbook ---

func (suite *CashbookServiceTestSuite) TestAuthorize_StaffWithoutRecordIsDenied() {
	actor := staffUser()
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.cashbooks.On("FindCashbookByID", suite.ctx, "cb-1").Return(activeCashbook(), nil).Once()
	suite.staff.On("FindStaffRecord", suite.ctx, "cb-1", actor.UserID).Return(nil, apperrors.ErrNotFound).Once()

	access, err := suite.service.AuthorizeCashbook(suite.ctx, actor.UserID, "cb-1")

	suite.Nil(access)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CashbookServiceTestSuite) TestAuthorize_StaffCannotSeeCompletedCashbook() {
	actor := staffUser()
	cb := activeCashbook()
	cb.Status = domain.CashbookCompleted
	record := &domain.CashbookStaff{CashbookID: cb.CashbookID, UserID: actor.UserID, CanEdit: true}
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.cashbooks.On("FindCashbookByID", suite.ctx, cb.CashbookID).Return(cb, nil).Once()
	suite.staff.On("FindStaffRecord", suite.ctx, cb.CashbookID, actor.UserID).Return(record, nil).Once()

	_, err := suite.service.AuthorizeCashbook(suite.ctx, actor.UserID, cb.CashbookID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CashbookServiceTestSuite) TestAuthorize_OwnerSkipsStaffLookup() {
	actor := ownerUser()
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.cashbooks.On("FindCashbookByID", suite.ctx, "cb-1").Return(activeCashbook(), nil).Once()

	access, err := suite.service.AuthorizeCashbook(suite.ctx, actor.UserID, "cb-1")

	suite.Require().NoError(err)
	suite.True(access.Permissions.CanEdit)
	suite.True(access.Permissions.CanArchive)
	suite.True(access.Permissions.CanPost)
	suite.staff.AssertNotCalled(suite.T(), "FindStaffRecord", mock.Anything, mock.Anything, mock.Anything)
}

// --- ListCashbooks ---

func (suite *CashbookServiceTestSuite) TestListCashbooks_Owner() {
	actor := ownerUser()
	filter := domain.CashbookFilter{Search: "shop"}
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.cashbooks.On("FindCashbooks", suite.ctx, filter).Return([]domain.Cashbook{*activeCashbook()}, nil).Once()

	views, err := suite.service.ListCashbooks(suite.ctx, actor.UserID, filter)

	suite.Require().NoError(err)
	suite.Len(views, 1)
	suite.True(views[0].Permissions.CanDelete)
	suite.cashbooks.AssertNotCalled(suite.T(), "FindCashbooksForStaff", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashbookServiceTestSuite) TestListCashbooks_StaffSeesOnlyAssigned() {
	actor := staffUser()
	cb := activeCashbook()
	staffMap := map[string]domain.CashbookStaff{
		cb.CashbookID: {CashbookID: cb.CashbookID, UserID: actor.UserID, CanEdit: false, CanArchive: true},
	}
	unassigned := domain.Cashbook{CashbookID: "cb-x", Status: domain.CashbookActive}
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.cashbooks.On("FindCashbooksForStaff", suite.ctx, actor.UserID, domain.CashbookFilter{}).
		Return([]domain.Cashbook{*cb, unassigned}, staffMap, nil).Once()

	views, err := suite.service.ListCashbooks(suite.ctx, actor.UserID, domain.CashbookFilter{})

	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal(cb.CashbookID, views[0].CashbookID)
	suite.False(views[0].Permissions.CanEdit)
	suite.True(views[0].Permissions.CanArchive)
	suite.False(views[0].Permissions.CanPost)
	suite.False(views[0].Permissions.CanDelete)
}

// --- GetCashbook ---

func (suite *CashbookServiceTestSuite) TestGetCashbook_IncludesBalance() {
	actor := ownerUser()
	balance := domain.NewBalance(decimal.NewFromInt(500), decimal.NewFromInt(120))
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.cashbooks.On("FindCashbookByID", suite.ctx, "cb-1").Return(activeCashbook(), nil).Once()
	suite.entries.On("GetBalance", suite.ctx, "cb-1").Return(balance, nil).Once()

	detail, err := suite.service.GetCashbook(suite.ctx, "cb-1", actor.UserID)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(380).Equal(detail.Balance.Balance))
	suite.Equal("Shop A", detail.Name)
}

// --- CreateCashbook ---

func (suite *CashbookServiceTestSuite) TestCreateCashbook_RequiresCreateFlag() {
	actor := staffUser()
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()

	cb, err := suite.service.CreateCashbook(suite.ctx, dto.CreateCashbookRequest{Name: "New", CategoryID: "cat-1"}, actor.UserID)

	suite.Nil(cb)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.cashbooks.AssertNotCalled(suite.T(), "SaveCashbook", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashbookServiceTestSuite) TestCreateCashbook_OwnerAssignsInitialStaff() {
	actor := ownerUser()
	member := staffUser()
	member.CanArchiveCashbooks = true
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.users.On("FindUserByID", suite.ctx, member.UserID).Return(member, nil).Once()
	suite.cashbooks.On("SaveCashbook", suite.ctx, mock.AnythingOfType("domain.Cashbook"), mock.MatchedBy(func(staff []domain.CashbookStaff) bool {
		return len(staff) == 1 && staff[0].UserID == member.UserID && staff[0].Role == domain.RoleEmployee &&
			staff[0].CanEdit && staff[0].CanArchive
	})).Return(nil).Once()

	cb, err := suite.service.CreateCashbook(suite.ctx, dto.CreateCashbookRequest{
		Name: "  Project X ", CategoryID: "cat-1", StaffUserIDs: []string{member.UserID, member.UserID},
	}, actor.UserID)

	suite.Require().NoError(err)
	suite.Equal("Project X", cb.Name)
	suite.Equal(domain.CashbookActive, cb.Status)
	suite.Equal(actor.UserID, cb.OwnerID)
	suite.cashbooks.AssertExpectations(suite.T())
}

func (suite *CashbookServiceTestSuite) TestCreateCashbook_NonOwnerCreatorBecomesStaff() {
	actor := staffUser()
	actor.CanCreateCashbooks = true
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.cashbooks.On("SaveCashbook", suite.ctx, mock.AnythingOfType("domain.Cashbook"), mock.MatchedBy(func(staff []domain.CashbookStaff) bool {
		return len(staff) == 1 && staff[0].UserID == actor.UserID && staff[0].CanEdit
	})).Return(nil).Once()

	_, err := suite.service.CreateCashbook(suite.ctx, dto.CreateCashbookRequest{Name: "Mine", CategoryID: "cat-1"}, actor.UserID)

	suite.Require().NoError(err)
	suite.cashbooks.AssertExpectations(suite.T())
}

// --- SetCashbookStatus ---

func (suite *CashbookServiceTestSuite) TestSetStatus_RequiresArchiveRight() {
	actor := staffUser()
	record := &domain.CashbookStaff{CashbookID: "cb-1", UserID: actor.UserID, CanEdit: true}
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.cashbooks.On("FindCashbookByID", suite.ctx, "cb-1").Return(activeCashbook(), nil).Once()
	suite.staff.On("FindStaffRecord", suite.ctx, "cb-1", actor.UserID).Return(record, nil).Once()

	_, err := suite.service.SetCashbookStatus(suite.ctx, "cb-1", domain.CashbookCompleted, actor.UserID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *CashbookServiceTestSuite) TestSetStatus_OwnerCompletes() {
	actor := ownerUser()
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.cashbooks.On("FindCashbookByID", suite.ctx, "cb-1").Return(activeCashbook(), nil).Once()
	suite.cashbooks.On("UpdateCashbookStatus", suite.ctx, "cb-1", domain.CashbookCompleted).Return(nil).Once()

	cb, err := suite.service.SetCashbookStatus(suite.ctx, "cb-1", domain.CashbookCompleted, actor.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.CashbookCompleted, cb.Status)
}

// --- UpdateCashbook ---

func (suite *CashbookServiceTestSuite) TestUpdateCashbook_Rename() {
	actor := staffUser()
	record := &domain.CashbookStaff{CashbookID: "cb-1", UserID: actor.UserID, CanEdit: true}
	name := "Shop B"
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.cashbooks.On("FindCashbookByID", suite.ctx, "cb-1").Return(activeCashbook(), nil).Once()
	suite.staff.On("FindStaffRecord", suite.ctx, "cb-1", actor.UserID).Return(record, nil).Once()
	suite.cashbooks.On("UpdateCashbook", suite.ctx, mock.MatchedBy(func(cb domain.Cashbook) bool {
		return cb.Name == "Shop B"
	})).Return(nil).Once()

	cb, err := suite.service.UpdateCashbook(suite.ctx, "cb-1", dto.UpdateCashbookRequest{Name: &name}, actor.UserID)

	suite.Require().NoError(err)
	suite.Equal("Shop B", cb.Name)
}

// --- Recycle bin ---

func (suite *CashbookServiceTestSuite) TestSoftDelete_OwnerOnly() {
	actor := staffUser()
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()

	err := suite.service.SoftDeleteCashbook(suite.ctx, "cb-1", actor.UserID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.cashbooks.AssertNotCalled(suite.T(), "MarkCashbookDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CashbookServiceTestSuite) TestSoftDeleteAndRestore() {
	actor := ownerUser()
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil)
	suite.cashbooks.On("MarkCashbookDeleted", suite.ctx, "cb-1", mock.AnythingOfType("time.Time"), actor.UserID).Return(nil).Once()
	suite.cashbooks.On("RestoreCashbook", suite.ctx, "cb-1").Return(nil).Once()

	suite.Require().NoError(suite.service.SoftDeleteCashbook(suite.ctx, "cb-1", actor.UserID))
	suite.Require().NoError(suite.service.RestoreCashbook(suite.ctx, "cb-1", actor.UserID))
	suite.cashbooks.AssertExpectations(suite.T())
}

func (suite *CashbookServiceTestSuite) TestListDeletedCashbooks() {
	actor := ownerUser()
	deleted := activeCashbook()
	deleted.IsDeleted = true
	suite.users.On("FindUserByID", suite.ctx, actor.UserID).Return(actor, nil).Once()
	suite.cashbooks.On("FindDeletedCashbooks", suite.ctx).Return([]domain.Cashbook{*deleted}, nil).Once()

	list, err := suite.service.ListDeletedCashbooks(suite.ctx, actor.UserID)

	suite.Require().NoError(err)
	suite.Len(list, 1)
	suite.True(list[0].IsDeleted)
}

func TestCashbookServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashbookServiceTestSuite))
}

package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) GetUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBackend) AuthenticateUser(ctx context.Context, phone, password string) (*domain.User, error) {
	args := m.Called(ctx, phone, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockBackend) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type SessionTestSuite struct {
	suite.Suite
	backend *MockBackend
	store   *FileStore
	session *Session
	ctx     context.Context
}

func (suite *SessionTestSuite) SetupTest() {
	suite.backend = new(MockBackend)
	suite.store = NewFileStore(filepath.Join(suite.T().TempDir(), "nested", "session.json"))
	suite.session = New(suite.backend, suite.store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	suite.ctx = context.Background()
}

func testUser() *domain.User {
	return &domain.User{UserID: "u-1", FullName: "Rafi", Phone: "01800000000", Role: domain.RoleEmployee,
		PasswordHash: "$2a$10$hash-one"}
}

func (suite *SessionTestSuite) signIn() {
	suite.backend.On("AuthenticateUser", suite.ctx, "01800000000", "secret").Return(testUser(), nil).Once()
	_, err := suite.session.Login(suite.ctx, "01800000000", "secret")
	suite.Require().NoError(err)
}

func (suite *SessionTestSuite) TestLoad_NothingCached() {
	state, err := suite.session.Load(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(Anonymous, state)
	suite.backend.AssertNotCalled(suite.T(), "GetUserByPhone", mock.Anything, mock.Anything)
}

func (suite *SessionTestSuite) TestLogin_CachesIdentity() {
	suite.signIn()

	cached, err := suite.store.Read()
	suite.Require().NoError(err)
	suite.Require().NotNil(cached)
	suite.Equal("u-1", cached.UserID)
	suite.Equal("$2a$10$hash-one", cached.PasswordHash)
	suite.Equal(Authenticated, suite.session.State())
}

func (suite *SessionTestSuite) TestLogin_BadCredentialsCacheNothing() {
	suite.backend.On("AuthenticateUser", suite.ctx, "01800000000", "wrong").
		Return(nil, apperrors.NewUnauthorizedError("invalid phone number or password")).Once()

	_, err := suite.session.Login(suite.ctx, "01800000000", "wrong")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	cached, _ := suite.store.Read()
	suite.Nil(cached)
}

func (suite *SessionTestSuite) TestLoad_RevalidationRefreshesCache() {
	suite.signIn()
	fresh := testUser()
	fresh.Role = domain.RoleManager
	fresh.CanCreateCashbooks = true
	suite.backend.On("GetUserByPhone", suite.ctx, "01800000000").Return(fresh, nil).Once()

	restarted := New(suite.backend, suite.store, nil)
	state, err := restarted.Load(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(Authenticated, state)
	user, ok := restarted.Current()
	suite.True(ok)
	suite.Equal(domain.RoleManager, user.Role)
	cached, _ := suite.store.Read()
	suite.True(cached.CanCreateCashbooks)
}

func (suite *SessionTestSuite) TestLoad_PasswordChangedSignsOut() {
	suite.signIn()
	fresh := testUser()
	fresh.PasswordHash = "$2a$10$hash-two"
	suite.backend.On("GetUserByPhone", suite.ctx, "01800000000").Return(fresh, nil).Once()

	state, err := suite.session.Load(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(Anonymous, state)
	_, ok := suite.session.Current()
	suite.False(ok)
	cached, _ := suite.store.Read()
	suite.Nil(cached)
}

func (suite *SessionTestSuite) TestLoad_DeletedUserSignsOut() {
	suite.signIn()
	suite.backend.On("GetUserByPhone", suite.ctx, "01800000000").Return(nil, apperrors.ErrNotFound).Once()

	state, err := suite.session.Load(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(Anonymous, state)
}

func (suite *SessionTestSuite) TestLoad_BackendDownFallsBackToCache() {
	suite.signIn()
	suite.backend.On("GetUserByPhone", suite.ctx, "01800000000").Return(nil, errors.New("dial tcp: connection refused")).Once()

	state, err := suite.session.Load(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(Offline, state)
	user, ok := suite.session.Current()
	suite.True(ok)
	suite.Equal("u-1", user.UserID)
	cached, _ := suite.store.Read()
	suite.NotNil(cached, "offline mode keeps the cache")
}

func (suite *SessionTestSuite) TestRegisterAndLogout() {
	req := dto.RegisterRequest{FullName: "Hasan", Phone: "01700000000", Password: "secret1"}
	owner := &domain.User{UserID: "o-1", Phone: "01700000000", Role: domain.RoleOwner, PasswordHash: "h"}
	suite.backend.On("RegisterUser", suite.ctx, req).Return(owner, nil).Once()

	user, err := suite.session.Register(suite.ctx, req)
	suite.Require().NoError(err)
	suite.True(user.IsOwner())

	suite.Require().NoError(suite.session.Logout())
	suite.Require().NoError(suite.session.Logout())
	suite.Equal(Anonymous, suite.session.State())
}

func TestSessionTestSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}

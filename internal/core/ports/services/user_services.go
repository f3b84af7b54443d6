package services

import (
	"context"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user. Non-owners may only fetch themselves.
	GetUserByID(ctx context.Context, userID string, requestingUserID string) (*domain.User, error)

	// GetUserByPhone retrieves a user by login phone without an actor check.
	GetUserByPhone(ctx context.Context, phone string) (*domain.User, error)

	// ListUsers lists the staff directory. Owner only.
	ListUsers(ctx context.Context, requestingUserID string) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateStaff adds a team member. Owner only.
	CreateStaff(ctx context.Context, req dto.CreateStaffRequest, requestingUserID string) (*domain.User, error)

	// UpdateUser edits a profile. Users edit themselves, the owner may edit anyone.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)

	// UpdateGlobalPermissions sets the create/archive flags of a user. Owner only.
	UpdateGlobalPermissions(ctx context.Context, userID string, req dto.UpdateGlobalPermissionsRequest, requestingUserID string) (*domain.User, error)
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser removes a staff member. The owner cannot be deleted.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser checks phone and password and records the login.
	AuthenticateUser(ctx context.Context, phone, password string) (*domain.User, error)

	// RegisterUser self-registers a user. The first user becomes OWNER.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// IsInitialized reports whether any user exists yet.
	IsInitialized(ctx context.Context) (bool, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}

package repositories

import (
	"context"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific, non deleted user by ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByPhone retrieves a non deleted user by login phone number.
	FindUserByPhone(ctx context.Context, phone string) (*domain.User, error)

	// FindUsers lists every non deleted user, oldest first.
	FindUsers(ctx context.Context) ([]domain.User, error)

	// CountUsers counts all users ever registered, deleted ones included.
	CountUsers(ctx context.Context) (int, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A taken phone number yields a conflict error.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates profile, role and global permission fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// TouchLastLogin records a successful login.
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted soft deletes a user and revokes their cashbook access.
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}

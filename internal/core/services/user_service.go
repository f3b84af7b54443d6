package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/designerabdulhai/hhdcashfinal/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{Users: userRepo},
		userRepo:    userRepo,
		now:         time.Now,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string, requestingUserID string) (*domain.User, error) {
	if userID != requestingUserID {
		if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
			return nil, err
		}
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByPhone(ctx, utils.NormalizePhone(phone))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by phone")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, requestingUserID string) ([]domain.User, error) {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.FindUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	s.LogDebug(ctx, "Users listed successfully", slog.Int("count", len(users)))
	return users, nil
}

// newUser validates the phone, hashes the password and fills the defaults
// shared by self registration and staff creation.
func (s *userService) newUser(fullName, phone, password string, email *string) (domain.User, error) {
	phone = utils.NormalizePhone(phone)
	if !utils.IsValidPhone(phone) {
		return domain.User{}, apperrors.NewValidationFailedError("invalid phone number")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	return domain.User{
		UserID:       uuid.NewString(),
		FullName:     fullName,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		ProfilePhoto: domain.DefaultProfilePhoto(fullName),
		Role:         domain.RoleUnassigned,
		CreatedAt:    s.now(),
	}, nil
}

func (s *userService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest, requestingUserID string) (*domain.User, error) {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return nil, err
	}

	user, err := s.newUser(req.FullName, req.Phone, req.Password, req.Email)
	if err != nil {
		return nil, err
	}
	user.Role = domain.RoleEmployee
	if req.Role != "" {
		if req.Role == domain.RoleOwner {
			return nil, apperrors.NewValidationFailedError("staff cannot be created with the owner role")
		}
		user.Role = req.Role
	}
	user.CanCreateCashbooks = req.CanCreateCashbooks
	user.CanArchiveCashbooks = req.CanArchiveCashbooks

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save staff user", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Staff user created",
		slog.String("user_id", user.UserID),
		slog.String("role", string(user.Role)),
		slog.String("created_by", requestingUserID))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	actor, err := s.LoadActor(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	if userID != requestingUserID && !actor.IsOwner() {
		return nil, apperrors.NewForbiddenError("you can only edit your own profile")
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user for update", slog.String("user_id", userID))
		}
		return nil, err
	}

	updated := false
	if req.FullName != nil && *req.FullName != user.FullName {
		user.FullName = *req.FullName
		updated = true
	}
	if req.Email != nil && (user.Email == nil || *req.Email != *user.Email) {
		user.Email = req.Email
		updated = true
	}
	if req.ProfilePhoto != nil && *req.ProfilePhoto != user.ProfilePhoto {
		user.ProfilePhoto = *req.ProfilePhoto
		updated = true
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
		updated = true
	}
	if req.Role != nil && *req.Role != user.Role {
		if !actor.IsOwner() {
			return nil, apperrors.NewForbiddenError("only the owner can change roles")
		}
		if user.IsOwner() {
			return nil, apperrors.NewValidationFailedError("the owner role cannot be changed")
		}
		if *req.Role == domain.RoleOwner {
			return nil, apperrors.NewValidationFailedError("the owner role cannot be granted")
		}
		user.Role = *req.Role
		updated = true
	}

	if !updated {
		return user, nil
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "User updated", slog.String("user_id", userID), slog.String("updated_by", requestingUserID))
	return user, nil
}

func (s *userService) UpdateGlobalPermissions(ctx context.Context, userID string, req dto.UpdateGlobalPermissionsRequest, requestingUserID string) (*domain.User, error) {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsOwner() {
		return nil, apperrors.NewValidationFailedError("the owner always holds every permission")
	}

	if req.CanCreateCashbooks != nil {
		user.CanCreateCashbooks = *req.CanCreateCashbooks
	}
	if req.CanArchiveCashbooks != nil {
		user.CanArchiveCashbooks = *req.CanArchiveCashbooks
	}
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update global permissions", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Global permissions updated",
		slog.String("user_id", userID),
		slog.Bool("can_create_cashbooks", user.CanCreateCashbooks),
		slog.Bool("can_archive_cashbooks", user.CanArchiveCashbooks))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return err
	}
	if userID == requestingUserID {
		return apperrors.NewValidationFailedError("you cannot delete your own account")
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsOwner() {
		return apperrors.NewForbiddenError("the owner account cannot be deleted")
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID), slog.String("deleted_by", requestingUserID))
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, phone, password string) (*domain.User, error) {
	invalid := apperrors.NewUnauthorizedError("invalid phone number or password")

	user, err := s.userRepo.FindUserByPhone(ctx, utils.NormalizePhone(phone))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, invalid
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch on login", slog.String("user_id", user.UserID))
		return nil, invalid
	}

	now := s.now()
	if err := s.userRepo.TouchLastLogin(ctx, user.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to record last login", slog.String("user_id", user.UserID))
	} else {
		user.LastLogin = &now
	}
	return user, nil
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count users during registration")
		return nil, err
	}

	user, err := s.newUser(req.FullName, req.Phone, req.Password, req.Email)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		user.Role = domain.RoleOwner
		user.CanCreateCashbooks = true
		user.CanArchiveCashbooks = true
	}

	err = s.userRepo.SaveUser(ctx, user)
	if errors.Is(err, apperrors.ErrOwnerExists) {
		// another registration claimed ownership between the count and the insert
		s.LogInfo(ctx, "Lost owner registration race, registering as unassigned", slog.String("user_id", user.UserID))
		user.Role = domain.RoleUnassigned
		user.CanCreateCashbooks = false
		user.CanArchiveCashbooks = false
		err = s.userRepo.SaveUser(ctx, user)
	}
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save registered user")
		}
		return nil, err
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("role", string(user.Role)))
	return &user, nil
}

func (s *userService) IsInitialized(ctx context.Context) (bool, error) {
	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count users")
		return false, err
	}
	return count > 0, nil
}

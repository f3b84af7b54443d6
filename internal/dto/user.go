package dto

import (
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// CreateStaffRequest is used by the owner to add a team member.
type CreateStaffRequest struct {
	FullName            string          `json:"fullName" binding:"required,max=120"`
	Phone               string          `json:"phone" binding:"required,phone"`
	Password            string          `json:"password" binding:"required,min=6"`
	Email               *string         `json:"email" binding:"omitempty,email"`
	Role                domain.UserRole `json:"role" binding:"omitempty,oneof=MANAGER EMPLOYEE VIEWER UNASSIGNED"`
	CanCreateCashbooks  bool            `json:"canCreateCashbooks"`
	CanArchiveCashbooks bool            `json:"canArchiveCashbooks"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
// Role is only honoured when the owner edits someone else.
type UpdateUserRequest struct {
	FullName     *string          `json:"fullName" binding:"omitempty,min=1,max=120"`
	Email        *string          `json:"email" binding:"omitempty,email"`
	Password     *string          `json:"password" binding:"omitempty,min=6"`
	ProfilePhoto *string          `json:"profilePhoto" binding:"omitempty,url"`
	Role         *domain.UserRole `json:"role" binding:"omitempty,oneof=MANAGER EMPLOYEE VIEWER UNASSIGNED"`
}

// UpdateGlobalPermissionsRequest toggles the organisation wide cashbook flags.
type UpdateGlobalPermissionsRequest struct {
	CanCreateCashbooks  *bool `json:"canCreateCashbooks" binding:"required"`
	CanArchiveCashbooks *bool `json:"canArchiveCashbooks" binding:"required"`
}

type UserResponse struct {
	UserID              string          `json:"userID"`
	FullName            string          `json:"fullName"`
	Email               *string         `json:"email,omitempty"`
	Phone               string          `json:"phone"`
	ProfilePhoto        string          `json:"profilePhoto"`
	Role                domain.UserRole `json:"role"`
	CanCreateCashbooks  bool            `json:"canCreateCashbooks"`
	CanArchiveCashbooks bool            `json:"canArchiveCashbooks"`
	CreatedAt           time.Time       `json:"createdAt"`
	LastLogin           *time.Time      `json:"lastLogin,omitempty"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:              u.UserID,
		FullName:            u.FullName,
		Email:               u.Email,
		Phone:               u.Phone,
		ProfilePhoto:        u.ProfilePhoto,
		Role:                u.Role,
		CanCreateCashbooks:  u.CanCreateCashbooks,
		CanArchiveCashbooks: u.CanArchiveCashbooks,
		CreatedAt:           u.CreatedAt,
		LastLogin:           u.LastLogin,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}

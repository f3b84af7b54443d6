package domain

import (
	"net/url"
	"time"
)

// UserRole is the organisation wide role of a user.
type UserRole string

const (
	RoleOwner      UserRole = "OWNER"
	RoleManager    UserRole = "MANAGER"
	RoleEmployee   UserRole = "EMPLOYEE"
	RoleViewer     UserRole = "VIEWER"
	RoleUnassigned UserRole = "UNASSIGNED"
)

// IsValid reports whether r is one of the known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleEmployee, RoleViewer, RoleUnassigned:
		return true
	}
	return false
}

// User represents a member of the business. Phone is the login identifier.
type User struct {
	UserID              string     `json:"userID" db:"user_id"`
	FullName            string     `json:"fullName" db:"full_name"`
	Email               *string    `json:"email,omitempty" db:"email"`
	Phone               string     `json:"phone" db:"phone"`
	PasswordHash        string     `json:"-" db:"password_hash"`
	ProfilePhoto        string     `json:"profilePhoto" db:"profile_photo"`
	Role                UserRole   `json:"role" db:"role"`
	CanCreateCashbooks  bool       `json:"canCreateCashbooks" db:"can_create_cashbooks"`
	CanArchiveCashbooks bool       `json:"canArchiveCashbooks" db:"can_archive_cashbooks"`
	CreatedAt           time.Time  `json:"createdAt" db:"created_at"`
	LastLogin           *time.Time `json:"lastLogin,omitempty" db:"last_login"`
	DeletedAt           *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
}

// IsOwner reports whether the user bypasses per-cashbook checks.
func (u User) IsOwner() bool {
	return u.Role == RoleOwner
}

const avatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// DefaultProfilePhoto returns the generated avatar used until a user uploads a photo.
func DefaultProfilePhoto(fullName string) string {
	return avatarBaseURL + url.QueryEscape(fullName)
}

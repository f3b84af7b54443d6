package dto

import "time"

// RegisterRequest is the self sign-up payload. The first account ever created
// becomes the business owner.
type RegisterRequest struct {
	FullName string  `json:"fullName" binding:"required,max=120"`
	Phone    string  `json:"phone" binding:"required,phone"`
	Password string  `json:"password" binding:"required,min=6"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// LoginRequest carries phone based credentials.
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login or registration.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// SystemStatusResponse tells clients whether the owner account still has to be created.
type SystemStatusResponse struct {
	Initialized bool `json:"initialized"`
}

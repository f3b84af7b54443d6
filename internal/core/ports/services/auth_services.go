package services

import (
	"context"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// TokenSvc issues access tokens for authenticated users.
type TokenSvc interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

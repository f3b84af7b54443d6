package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/platform/config"
	"github.com/designerabdulhai/hhdcashfinal/internal/utils"
)

type tokenService struct {
	BaseService
	jwtSecret string
	expiry    time.Duration
	issuer    string
}

// NewTokenService creates a TokenSvc signing HS256 tokens with the configured secret.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{
		jwtSecret: cfg.JWTSecret,
		expiry:    cfg.JWTExpiryDuration,
		issuer:    cfg.JWTIssuer,
	}
}

var _ portssvc.TokenSvc = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiry)
	token, err := utils.GenerateJWT(user.UserID, s.jwtSecret, s.expiry, s.issuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiresAt, nil
}

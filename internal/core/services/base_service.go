package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	CashbookAuthorizer portssvc.CashbookAuthorizerSvc
	Users              portsrepo.UserReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// LoadActor fetches the user behind a request. A token whose user has since
// been deleted is treated as unauthenticated.
func (s *BaseService) LoadActor(ctx context.Context, userID string) (*domain.User, error) {
	if s.Users == nil {
		return nil, apperrors.NewAppError(500, "user reader not configured", nil)
	}
	actor, err := s.Users.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError("user no longer exists")
		}
		s.LogError(ctx, err, "Failed to load acting user", slog.String("user_id", userID))
		return nil, err
	}
	return actor, nil
}

// RequireOwner loads the actor and fails with ErrForbidden unless they are the owner.
func (s *BaseService) RequireOwner(ctx context.Context, userID string) (*domain.User, error) {
	actor, err := s.LoadActor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !actor.IsOwner() {
		s.LogDebug(ctx, "Owner-only action denied",
			slog.String("user_id", userID),
			slog.String("role", string(actor.Role)))
		return nil, apperrors.NewForbiddenError("only the owner can perform this action")
	}
	return actor, nil
}

// AuthorizeCashbook resolves the caller's access on a cashbook through the
// configured authorizer.
func (s *BaseService) AuthorizeCashbook(ctx context.Context, userID, cashbookID string) (*domain.CashbookAccess, error) {
	if s.CashbookAuthorizer == nil {
		s.LogDebug(ctx, "No cashbook authorizer provided, access denied",
			slog.String("user_id", userID),
			slog.String("cashbook_id", cashbookID))
		return nil, apperrors.ErrForbidden
	}
	return s.CashbookAuthorizer.AuthorizeCashbook(ctx, userID, cashbookID)
}

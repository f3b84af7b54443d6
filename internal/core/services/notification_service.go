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
	"github.com/google/uuid"
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepository
	channels         []portssvc.NotificationChannel
}

// NotificationServiceOption is a functional option for configuring the notification service
type NotificationServiceOption func(*notificationService)

// WithNotificationChannels adds out-of-app delivery channels.
func WithNotificationChannels(channels ...portssvc.NotificationChannel) NotificationServiceOption {
	return func(s *notificationService) {
		for _, ch := range channels {
			if ch != nil {
				s.channels = append(s.channels, ch)
			}
		}
	}
}

func NewNotificationService(
	notificationRepo portsrepo.NotificationRepository,
	users portsrepo.UserReader,
	options ...NotificationServiceOption,
) portssvc.NotificationSvc {
	svc := &notificationService{
		BaseService:      BaseService{Users: users},
		notificationRepo: notificationRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.NotificationSvc = (*notificationService)(nil)

func entryPostedMessage(cashbook domain.Cashbook, entry domain.Entry, author domain.User) string {
	if entry.Type == domain.EntryNote {
		return fmt.Sprintf("%s added a note to %s: %s", author.FullName, cashbook.Name, entry.Description)
	}
	return fmt.Sprintf("%s posted %s %s (%s) to %s: %s",
		author.FullName, entry.Type, entry.Amount.StringFixed(2), entry.PaymentMethod, cashbook.Name, entry.Description)
}

// NotifyEntryPosted stores a notification for the cashbook owner and hands it
// to every channel. Channel failures are logged and do not fail the call.
func (s *notificationService) NotifyEntryPosted(ctx context.Context, cashbook domain.Cashbook, entry domain.Entry, author domain.User) error {
	if author.UserID == cashbook.OwnerID {
		return nil
	}
	owner, err := s.Users.FindUserByID(ctx, cashbook.OwnerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Cashbook owner no longer exists, skipping notification",
				slog.String("cashbook_id", cashbook.CashbookID))
			return nil
		}
		return err
	}

	cashbookID := cashbook.CashbookID
	n := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         owner.UserID,
		CashbookID:     &cashbookID,
		Kind:           domain.NotificationEntryPosted,
		Message:        entryPostedMessage(cashbook, entry, author),
		CreatedAt:      time.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, n); err != nil {
		s.LogError(ctx, err, "Failed to save notification", slog.String("cashbook_id", cashbookID))
		return err
	}

	subject := "New entry in " + cashbook.Name
	for _, ch := range s.channels {
		if err := ch.Send(ctx, *owner, subject, n.Message); err != nil {
			s.LogError(ctx, err, "Failed to deliver notification",
				slog.String("channel", ch.Name()),
				slog.String("notification_id", n.NotificationID))
		}
	}
	return nil
}

func (s *notificationService) ListNotifications(ctx context.Context, requestingUserID string, unreadOnly bool) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, requestingUserID, unreadOnly)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications", slog.String("user_id", requestingUserID))
		return nil, err
	}
	if notifications == nil {
		return []domain.Notification{}, nil
	}
	return notifications, nil
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, notificationID string, requestingUserID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, requestingUserID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to mark notification read", slog.String("notification_id", notificationID))
		}
		return err
	}
	return nil
}

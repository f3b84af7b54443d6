package services

import (
	"context"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// NotificationSvc records and delivers activity notifications.
type NotificationSvc interface {
	// NotifyEntryPosted tells the cashbook owner about an entry posted by someone else.
	NotifyEntryPosted(ctx context.Context, cashbook domain.Cashbook, entry domain.Entry, author domain.User) error
	ListNotifications(ctx context.Context, requestingUserID string, unreadOnly bool) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string, requestingUserID string) error
}

// NotificationChannel delivers a notification outside the app, e.g. by e-mail.
type NotificationChannel interface {
	Name() string
	// Send delivers message to recipient. Channels skip recipients they cannot reach.
	Send(ctx context.Context, recipient domain.User, subject, message string) error
}

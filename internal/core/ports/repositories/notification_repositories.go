package repositories

import (
	"context"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// NotificationRepository stores in-app notifications.
type NotificationRepository interface {
	SaveNotification(ctx context.Context, n domain.Notification) error
	FindNotificationsByUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error)
	// MarkNotificationRead only touches rows owned by userID.
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error
}

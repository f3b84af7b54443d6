package dto

import (
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

type ListNotificationsParams struct {
	UnreadOnly bool `form:"unread"`
}

type NotificationResponse struct {
	NotificationID string                  `json:"notificationID"`
	CashbookID     *string                 `json:"cashbookID,omitempty"`
	Kind           domain.NotificationKind `json:"kind"`
	Message        string                  `json:"message"`
	IsRead         bool                    `json:"isRead"`
	CreatedAt      time.Time               `json:"createdAt"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

func ToListNotificationsResponse(ns []domain.Notification) ListNotificationsResponse {
	list := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		list[i] = NotificationResponse{
			NotificationID: n.NotificationID,
			CashbookID:     n.CashbookID,
			Kind:           n.Kind,
			Message:        n.Message,
			IsRead:         n.IsRead,
			CreatedAt:      n.CreatedAt,
		}
	}
	return ListNotificationsResponse{Notifications: list}
}

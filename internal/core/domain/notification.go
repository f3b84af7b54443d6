package domain

import "time"

type NotificationKind string

const (
	NotificationEntryPosted NotificationKind = "ENTRY_POSTED"
)

// Notification is an in-app message for a single recipient.
type Notification struct {
	NotificationID string           `json:"notificationID" db:"notification_id"`
	UserID         string           `json:"userID" db:"user_id"`
	CashbookID     *string          `json:"cashbookID,omitempty" db:"cashbook_id"`
	Kind           NotificationKind `json:"kind" db:"kind"`
	Message        string           `json:"message" db:"message"`
	IsRead         bool             `json:"isRead" db:"is_read"`
	CreatedAt      time.Time        `json:"createdAt" db:"created_at"`
}

package pgsql

import (
	"context"
	"errors"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool DBTX) portsrepo.NotificationRepository {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, user_id, cashbook_id, kind, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, n.NotificationID, n.UserID, n.CashbookID, n.Kind, n.Message, n.IsRead, n.CreatedAt)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save notification", err)
	}
	return nil
}

func (r *PgxNotificationRepository) FindNotificationsByUser(ctx context.Context, userID string, unreadOnly bool) ([]domain.Notification, error) {
	query := `
		SELECT notification_id, user_id, cashbook_id, kind, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1 AND ($2 = FALSE OR is_read = FALSE)
		ORDER BY created_at DESC
		LIMIT 100;
	`
	rows, err := r.Pool.Query(ctx, query, userID, unreadOnly)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query notifications", err)
	}
	defer rows.Close()

	notifications, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Notification])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Notification{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect notification rows", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND user_id = $2`,
		notificationID, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark notification read", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("notification not found")
	}
	return nil
}

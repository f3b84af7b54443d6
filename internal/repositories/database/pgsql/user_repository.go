package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool DBTX) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// singleOwnerIndex is the partial unique index that admits one OWNER row.
const singleOwnerIndex = "idx_users_single_owner"

const userSelectQuery = `
SELECT
	u.user_id, u.full_name, u.email, u.phone, u.password_hash, u.profile_photo, u.role,
	u.can_create_cashbooks, u.can_archive_cashbooks, u.created_at, u.last_login, u.deleted_at
FROM users u
`

func (r *PgxUserRepository) getUsers(ctx context.Context, filterQuery string, args ...any) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, userSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.User{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect user rows", err)
	}
	return users, nil
}

func (r *PgxUserRepository) findOne(ctx context.Context, filterQuery string, args ...any) (*domain.User, error) {
	users, err := r.getUsers(ctx, filterQuery, args...)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &users[0], nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, `WHERE u.user_id = $1 AND u.deleted_at IS NULL`, userID)
}

func (r *PgxUserRepository) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, `WHERE u.phone = $1 AND u.deleted_at IS NULL`, phone)
}

func (r *PgxUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	return r.getUsers(ctx, `WHERE u.deleted_at IS NULL ORDER BY u.created_at ASC`)
}

func (r *PgxUserRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count users", err)
	}
	return count, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (
			user_id, full_name, email, phone, password_hash, profile_photo, role,
			can_create_cashbooks, can_archive_cashbooks, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.FullName,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.ProfilePhoto,
		user.Role,
		user.CanCreateCashbooks,
		user.CanArchiveCashbooks,
		user.CreatedAt,
	)
	if err != nil {
		if code, constraint := pgErrorCode(err); code == pgUniqueViolation {
			if constraint == singleOwnerIndex {
				return apperrors.NewAppError(http.StatusConflict, "an owner is already registered", apperrors.ErrOwnerExists)
			}
			return apperrors.NewConflictError("phone number " + user.Phone + " is already registered")
		}
		return apperrors.NewAppError(500, "failed to save user", err)
	}
	return nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET full_name = $1, email = $2, password_hash = $3, profile_photo = $4, role = $5,
			can_create_cashbooks = $6, can_archive_cashbooks = $7
		WHERE user_id = $8 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.ProfilePhoto,
		user.Role,
		user.CanCreateCashbooks,
		user.CanArchiveCashbooks,
		user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.Pool.Exec(ctx, `UPDATE users SET last_login = $1 WHERE user_id = $2`, at, userID)
	if err != nil {
		return fmt.Errorf("failed to record last login: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	cmdTag, err := tx.Exec(ctx, `UPDATE users SET deleted_at = $1 WHERE user_id = $2 AND deleted_at IS NULL`, deletedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM cashbook_staff WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to revoke cashbook access: %w", err)
	}
	return r.Commit(ctx, tx)
}

package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxCashbookRepository struct {
	BaseRepository
}

// newPgxCashbookRepository creates a new repository for cashbook data.
func newPgxCashbookRepository(pool DBTX) portsrepo.CashbookRepositoryFacade {
	return &PgxCashbookRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxCashbookRepository implements portsrepo.CashbookRepositoryFacade
var _ portsrepo.CashbookRepositoryFacade = (*PgxCashbookRepository)(nil)

const cashbookColumns = `
	c.cashbook_id, c.category_id, c.name, c.owner_id, c.status,
	c.is_deleted, c.deleted_at, c.deleted_by, c.created_at`

// staffCashbookRow is a cashbook joined with the caller's staff record.
type staffCashbookRow struct {
	domain.Cashbook
	StaffID    string          `db:"staff_id"`
	StaffRole  domain.UserRole `db:"staff_role"`
	CanEdit    bool            `db:"can_edit"`
	CanArchive bool            `db:"can_archive"`
}

func (r *PgxCashbookRepository) getCashbooks(ctx context.Context, filterQuery string, args ...any) ([]domain.Cashbook, error) {
	query := `SELECT` + cashbookColumns + ` FROM cashbooks c ` + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cashbooks", err)
	}
	defer rows.Close()

	cashbooks, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Cashbook])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Cashbook{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect cashbook rows", err)
	}
	return cashbooks, nil
}

// appendFilter adds the optional listing filters to conditions, numbering
// placeholders after the ones already in args.
func appendFilter(conditions []string, args []any, filter domain.CashbookFilter) ([]string, []any) {
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", len(args)))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		conditions = append(conditions, fmt.Sprintf("c.category_id = $%d", len(args)))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		args = append(args, "%"+search+"%")
		conditions = append(conditions, fmt.Sprintf("c.name ILIKE $%d", len(args)))
	}
	return conditions, args
}

func (r *PgxCashbookRepository) FindCashbookByID(ctx context.Context, cashbookID string) (*domain.Cashbook, error) {
	cashbooks, err := r.getCashbooks(ctx, `WHERE c.cashbook_id = $1`, cashbookID)
	if err != nil {
		return nil, err
	}
	if len(cashbooks) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &cashbooks[0], nil
}

func (r *PgxCashbookRepository) FindCashbooks(ctx context.Context, filter domain.CashbookFilter) ([]domain.Cashbook, error) {
	conditions, args := appendFilter([]string{"c.is_deleted = FALSE"}, nil, filter)
	return r.getCashbooks(ctx, "WHERE "+strings.Join(conditions, " AND ")+" ORDER BY c.created_at DESC", args...)
}

func (r *PgxCashbookRepository) FindCashbooksForStaff(ctx context.Context, userID string, filter domain.CashbookFilter) ([]domain.Cashbook, map[string]domain.CashbookStaff, error) {
	conditions, args := appendFilter(
		[]string{"s.user_id = $1", "c.is_deleted = FALSE", "c.status = 'ACTIVE'"},
		[]any{userID},
		filter,
	)
	query := `SELECT` + cashbookColumns + `, s.staff_id, s.role AS staff_role, s.can_edit, s.can_archive
		FROM cashbooks c
		JOIN cashbook_staff s ON s.cashbook_id = c.cashbook_id
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY c.created_at DESC`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query staff cashbooks", err)
	}
	defer rows.Close()

	joined, err := pgx.CollectRows(rows, pgx.RowToStructByName[staffCashbookRow])
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, apperrors.NewAppError(500, "failed to collect staff cashbook rows", err)
	}

	cashbooks := make([]domain.Cashbook, 0, len(joined))
	staff := make(map[string]domain.CashbookStaff, len(joined))
	for _, row := range joined {
		cashbooks = append(cashbooks, row.Cashbook)
		staff[row.CashbookID] = domain.CashbookStaff{
			StaffID:    row.StaffID,
			CashbookID: row.CashbookID,
			UserID:     userID,
			Role:       row.StaffRole,
			CanEdit:    row.CanEdit,
			CanArchive: row.CanArchive,
		}
	}
	return cashbooks, staff, nil
}

func (r *PgxCashbookRepository) FindDeletedCashbooks(ctx context.Context) ([]domain.Cashbook, error) {
	return r.getCashbooks(ctx, `WHERE c.is_deleted = TRUE ORDER BY c.deleted_at DESC NULLS LAST`)
}

func (r *PgxCashbookRepository) SaveCashbook(ctx context.Context, cashbook domain.Cashbook, staff []domain.CashbookStaff) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO cashbooks (cashbook_id, category_id, name, owner_id, status, is_deleted, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6);
	`
	_, err = tx.Exec(ctx, query,
		cashbook.CashbookID,
		cashbook.CategoryID,
		cashbook.Name,
		cashbook.OwnerID,
		cashbook.Status,
		cashbook.CreatedAt,
	)
	if err != nil {
		switch code, constraint := pgErrorCode(err); {
		case code == pgUniqueViolation:
			return apperrors.NewConflictError("cashbook ID " + cashbook.CashbookID + " already exists")
		case code == pgForeignKeyViolation && constraint == "fk_cashbook_category":
			return apperrors.NewValidationFailedError("category does not exist")
		}
		return apperrors.NewAppError(500, "failed to save cashbook "+cashbook.CashbookID, err)
	}

	for _, s := range staff {
		_, err := tx.Exec(ctx, `
			INSERT INTO cashbook_staff (staff_id, cashbook_id, user_id, role, can_edit, can_archive)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (cashbook_id, user_id) DO NOTHING;`,
			s.StaffID, cashbook.CashbookID, s.UserID, s.Role, s.CanEdit, s.CanArchive,
		)
		if err != nil {
			if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
				return apperrors.NewValidationFailedError("staff user " + s.UserID + " does not exist")
			}
			return apperrors.NewAppError(500, "failed to assign staff to cashbook "+cashbook.CashbookID, err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxCashbookRepository) UpdateCashbook(ctx context.Context, cashbook domain.Cashbook) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE cashbooks SET name = $1, category_id = $2 WHERE cashbook_id = $3 AND is_deleted = FALSE`,
		cashbook.Name, cashbook.CategoryID, cashbook.CashbookID,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return apperrors.NewValidationFailedError("category does not exist")
		}
		return apperrors.NewAppError(500, "failed to update cashbook", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("cashbook not found")
	}
	return nil
}

func (r *PgxCashbookRepository) UpdateCashbookStatus(ctx context.Context, cashbookID string, status domain.CashbookStatus) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE cashbooks SET status = $1 WHERE cashbook_id = $2 AND is_deleted = FALSE`,
		status, cashbookID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update cashbook status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("cashbook not found")
	}
	return nil
}

func (r *PgxCashbookRepository) MarkCashbookDeleted(ctx context.Context, cashbookID string, deletedAt time.Time, deletedBy string) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE cashbooks SET is_deleted = TRUE, deleted_at = $1, deleted_by = $2
		WHERE cashbook_id = $3 AND is_deleted = FALSE`,
		deletedAt, deletedBy, cashbookID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete cashbook", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("cashbook not found or already deleted")
	}
	return nil
}

func (r *PgxCashbookRepository) RestoreCashbook(ctx context.Context, cashbookID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE cashbooks SET is_deleted = FALSE, deleted_at = NULL, deleted_by = NULL
		WHERE cashbook_id = $1 AND is_deleted = TRUE`,
		cashbookID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to restore cashbook", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("cashbook not found in recycle bin")
	}
	return nil
}

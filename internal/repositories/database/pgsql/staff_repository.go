package pgsql

import (
	"context"
	"errors"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxStaffRepository struct {
	BaseRepository
}

func newPgxStaffRepository(pool DBTX) portsrepo.StaffRepositoryFacade {
	return &PgxStaffRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

func (r *PgxStaffRepository) FindStaffRecord(ctx context.Context, cashbookID, userID string) (*domain.CashbookStaff, error) {
	query := `
		SELECT staff_id, cashbook_id, user_id, role, can_edit, can_archive
		FROM cashbook_staff
		WHERE cashbook_id = $1 AND user_id = $2;
	`
	var s domain.CashbookStaff
	err := r.Pool.QueryRow(ctx, query, cashbookID, userID).Scan(
		&s.StaffID,
		&s.CashbookID,
		&s.UserID,
		&s.Role,
		&s.CanEdit,
		&s.CanArchive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find staff record of "+userID+" on "+cashbookID, err)
	}
	return &s, nil
}

func (r *PgxStaffRepository) FindStaffByCashbook(ctx context.Context, cashbookID string) ([]domain.CashbookStaffMember, error) {
	query := `
		SELECT s.staff_id, s.cashbook_id, s.user_id, s.role, s.can_edit, s.can_archive, u.full_name, u.phone
		FROM cashbook_staff s
		JOIN users u ON u.user_id = s.user_id AND u.deleted_at IS NULL
		WHERE s.cashbook_id = $1
		ORDER BY u.full_name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, cashbookID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cashbook staff", err)
	}
	defer rows.Close()

	members, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.CashbookStaffMember])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.CashbookStaffMember{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect cashbook staff rows", err)
	}
	return members, nil
}

func (r *PgxStaffRepository) FindCashbooksByStaffUser(ctx context.Context, userID string) ([]domain.Cashbook, error) {
	query := `
		SELECT` + cashbookColumns + `
		FROM cashbooks c
		JOIN cashbook_staff s ON s.cashbook_id = c.cashbook_id
		WHERE s.user_id = $1 AND c.is_deleted = FALSE
		ORDER BY c.name ASC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query assigned cashbooks", err)
	}
	defer rows.Close()

	cashbooks, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Cashbook])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Cashbook{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect assigned cashbook rows", err)
	}
	return cashbooks, nil
}

func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.CashbookStaff) error {
	query := `
		INSERT INTO cashbook_staff (staff_id, cashbook_id, user_id, role, can_edit, can_archive)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (cashbook_id, user_id) DO UPDATE SET
			role = EXCLUDED.role,
			can_edit = EXCLUDED.can_edit,
			can_archive = EXCLUDED.can_archive;
	` // Upsert: assign the user or refresh an existing assignment
	_, err := r.Pool.Exec(ctx, query,
		staff.StaffID,
		staff.CashbookID,
		staff.UserID,
		staff.Role,
		staff.CanEdit,
		staff.CanArchive,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return apperrors.NewValidationFailedError("user or cashbook does not exist")
		}
		return apperrors.NewAppError(500, "failed to assign user "+staff.UserID+" to cashbook "+staff.CashbookID, err)
	}
	return nil
}

func (r *PgxStaffRepository) UpdateStaff(ctx context.Context, staff domain.CashbookStaff) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE cashbook_staff SET role = $1, can_edit = $2, can_archive = $3
		WHERE cashbook_id = $4 AND user_id = $5`,
		staff.Role, staff.CanEdit, staff.CanArchive, staff.CashbookID, staff.UserID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update staff permissions", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("staff assignment not found")
	}
	return nil
}

func (r *PgxStaffRepository) DeleteStaff(ctx context.Context, cashbookID, userID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM cashbook_staff WHERE cashbook_id = $1 AND user_id = $2`, cashbookID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to remove staff", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("staff assignment not found")
	}
	return nil
}

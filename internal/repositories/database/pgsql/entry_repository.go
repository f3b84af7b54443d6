package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(pool DBTX) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entrySelectQuery = `
SELECT
	e.entry_id, e.cashbook_id, e.entry_type, e.amount, e.description, e.payment_method,
	e.is_verified, e.verified_by, e.created_by, e.created_at, e.updated_at
FROM entries e
`

func (r *PgxEntryRepository) getEntries(ctx context.Context, filterQuery string, args ...any) ([]domain.Entry, error) {
	rows, err := r.Pool.Query(ctx, entrySelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Entry])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Entry{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect entry rows", err)
	}
	return entries, nil
}

func (r *PgxEntryRepository) FindEntriesByCashbook(ctx context.Context, cashbookID string, limit int, cursor *domain.EntryCursor) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	if cursor == nil {
		return r.getEntries(ctx, `
			WHERE e.cashbook_id = $1
			ORDER BY e.created_at DESC, e.entry_id DESC
			LIMIT $2`, cashbookID, limit)
	}
	return r.getEntries(ctx, `
		WHERE e.cashbook_id = $1 AND (e.created_at, e.entry_id) < ($2, $3)
		ORDER BY e.created_at DESC, e.entry_id DESC
		LIMIT $4`, cashbookID, cursor.CreatedAt, cursor.EntryID, limit)
}

func (r *PgxEntryRepository) FindAllEntriesByCashbook(ctx context.Context, cashbookID string) ([]domain.Entry, error) {
	return r.getEntries(ctx, `WHERE e.cashbook_id = $1 ORDER BY e.created_at DESC, e.entry_id DESC`, cashbookID)
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, cashbookID, entryID string) (*domain.Entry, error) {
	entries, err := r.getEntries(ctx, `WHERE e.cashbook_id = $1 AND e.entry_id = $2`, cashbookID, entryID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &entries[0], nil
}

func (r *PgxEntryRepository) GetBalance(ctx context.Context, cashbookID string) (domain.Balance, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN entry_type = 'IN' THEN amount ELSE 0 END), 0) AS total_in,
			COALESCE(SUM(CASE WHEN entry_type = 'OUT' THEN amount ELSE 0 END), 0) AS total_out
		FROM entries
		WHERE cashbook_id = $1;
	`
	var totalIn, totalOut decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, cashbookID).Scan(&totalIn, &totalOut); err != nil {
		return domain.Balance{}, fmt.Errorf("error querying cashbook balance: %w", err)
	}
	return domain.NewBalance(totalIn, totalOut), nil
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.Entry) error {
	query := `
		INSERT INTO entries (
			entry_id, cashbook_id, entry_type, amount, description, payment_method,
			is_verified, created_by, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.CashbookID,
		entry.Type,
		entry.Amount,
		entry.Description,
		entry.PaymentMethod,
		entry.CreatedBy,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		switch code, _ := pgErrorCode(err); code {
		case pgUniqueViolation:
			return apperrors.NewConflictError("entry ID " + entry.EntryID + " already exists")
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("cashbook not found")
		}
		return apperrors.NewAppError(500, "failed to save entry", err)
	}
	return nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.Entry) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE entries
		SET entry_type = $1, amount = $2, description = $3, payment_method = $4, updated_at = $5
		WHERE cashbook_id = $6 AND entry_id = $7`,
		entry.Type, entry.Amount, entry.Description, entry.PaymentMethod, entry.UpdatedAt,
		entry.CashbookID, entry.EntryID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update entry", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("entry not found")
	}
	return nil
}

func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, cashbookID, entryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM entries WHERE cashbook_id = $1 AND entry_id = $2`, cashbookID, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete entry", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("entry not found")
	}
	return nil
}

func (r *PgxEntryRepository) MarkEntryVerified(ctx context.Context, cashbookID, entryID, verifiedBy string, at time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE entries SET is_verified = TRUE, verified_by = $1, updated_at = $2
		WHERE cashbook_id = $3 AND entry_id = $4`,
		verifiedBy, at, cashbookID, entryID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to verify entry", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("entry not found")
	}
	return nil
}

package pgsql

import (
	"context"
	"errors"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool DBTX) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) getCategories(ctx context.Context, filterQuery string, args ...any) ([]domain.Category, error) {
	query := `SELECT category_id, name, owner_id, created_at FROM categories ` + filterQuery
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query categories", err)
	}
	defer rows.Close()

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Category])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Category{}, nil
		}
		return nil, apperrors.NewAppError(500, "failed to collect category rows", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) FindCategories(ctx context.Context) ([]domain.Category, error) {
	return r.getCategories(ctx, `ORDER BY name ASC`)
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	categories, err := r.getCategories(ctx, `WHERE category_id = $1`, categoryID)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &categories[0], nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `INSERT INTO categories (category_id, name, owner_id, created_at) VALUES ($1, $2, $3, $4);`
	_, err := r.Pool.Exec(ctx, query, category.CategoryID, category.Name, category.OwnerID, category.CreatedAt)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgUniqueViolation {
			return apperrors.NewConflictError("category " + category.CategoryID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save category", err)
	}
	return nil
}

func (r *PgxCategoryRepository) RenameCategory(ctx context.Context, categoryID, name string) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE categories SET name = $1 WHERE category_id = $2`, name, categoryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to rename category", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return apperrors.NewConflictError("category is still used by one or more cashbooks")
		}
		return apperrors.NewAppError(500, "failed to delete category", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category not found")
	}
	return nil
}

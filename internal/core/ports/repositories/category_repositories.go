package repositories

import (
	"context"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// CategoryRepositoryFacade covers category persistence.
type CategoryRepositoryFacade interface {
	FindCategories(ctx context.Context) ([]domain.Category, error)
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	SaveCategory(ctx context.Context, category domain.Category) error
	RenameCategory(ctx context.Context, categoryID, name string) error
	// DeleteCategory fails with a conflict while cashbooks still use the category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

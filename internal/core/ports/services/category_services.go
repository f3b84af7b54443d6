package services

import (
	"context"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
)

// CategorySvc manages cashbook categories. Mutations are owner only.
type CategorySvc interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req dto.CategoryRequest, requestingUserID string) (*domain.Category, error)
	RenameCategory(ctx context.Context, categoryID string, req dto.CategoryRequest, requestingUserID string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string, requestingUserID string) error
}

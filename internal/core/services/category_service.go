package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	portsrepo "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/repositories"
	portssvc "github.com/designerabdulhai/hhdcashfinal/internal/core/ports/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, users portsrepo.UserReader) portssvc.CategorySvc {
	return &categoryService{
		BaseService:  BaseService{Users: users},
		categoryRepo: categoryRepo,
	}
}

var _ portssvc.CategorySvc = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, err
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CategoryRequest, requestingUserID string) (*domain.Category, error) {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("category name is required")
	}

	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       name,
		OwnerID:    requestingUserID,
		CreatedAt:  time.Now(),
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) RenameCategory(ctx context.Context, categoryID string, req dto.CategoryRequest, requestingUserID string) (*domain.Category, error) {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("category name is required")
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.Name == name {
		return category, nil
	}
	if err := s.categoryRepo.RenameCategory(ctx, categoryID, name); err != nil {
		s.LogError(ctx, err, "Failed to rename category", slog.String("category_id", categoryID))
		return nil, err
	}
	category.Name = name
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string, requestingUserID string) error {
	if _, err := s.RequireOwner(ctx, requestingUserID); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return err
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID))
	return nil
}

package services_test

import (
	"context"
	"testing"

	"github.com/designerabdulhai/hhdcashfinal/internal/apperrors"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/designerabdulhai/hhdcashfinal/internal/core/services"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService(t *testing.T) {
	ctx := context.Background()

	t.Run("owner creates trimmed category", func(t *testing.T) {
		users, categories := new(MockUserRepository), new(MockCategoryRepository)
		users.On("FindUserByID", ctx, "owner-1").Return(ownerUser(), nil)
		categories.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool {
			return c.Name == "Projects" && c.OwnerID == "owner-1"
		})).Return(nil).Once()

		svc := services.NewCategoryService(categories, users)
		c, err := svc.CreateCategory(ctx, dto.CategoryRequest{Name: " Projects "}, "owner-1")

		require.NoError(t, err)
		assert.Equal(t, "Projects", c.Name)
		categories.AssertExpectations(t)
	})

	t.Run("staff cannot create", func(t *testing.T) {
		users, categories := new(MockUserRepository), new(MockCategoryRepository)
		users.On("FindUserByID", ctx, "staff-1").Return(staffUser(), nil)

		svc := services.NewCategoryService(categories, users)
		_, err := svc.CreateCategory(ctx, dto.CategoryRequest{Name: "X"}, "staff-1")

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("rename to same name is a no-op", func(t *testing.T) {
		users, categories := new(MockUserRepository), new(MockCategoryRepository)
		users.On("FindUserByID", ctx, "owner-1").Return(ownerUser(), nil)
		categories.On("FindCategoryByID", ctx, "cat-1").Return(&domain.Category{CategoryID: "cat-1", Name: "Shops"}, nil)

		svc := services.NewCategoryService(categories, users)
		c, err := svc.RenameCategory(ctx, "cat-1", dto.CategoryRequest{Name: "Shops"}, "owner-1")

		require.NoError(t, err)
		assert.Equal(t, "Shops", c.Name)
		categories.AssertNotCalled(t, "RenameCategory", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("delete in use surfaces conflict", func(t *testing.T) {
		users, categories := new(MockUserRepository), new(MockCategoryRepository)
		users.On("FindUserByID", ctx, "owner-1").Return(ownerUser(), nil)
		categories.On("DeleteCategory", ctx, "cat-1").
			Return(apperrors.NewConflictError("category is still used by one or more cashbooks"))

		svc := services.NewCategoryService(categories, users)
		err := svc.DeleteCategory(ctx, "cat-1", "owner-1")

		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	})

	t.Run("list never returns nil", func(t *testing.T) {
		users, categories := new(MockUserRepository), new(MockCategoryRepository)
		categories.On("FindCategories", ctx).Return(nil, nil)

		svc := services.NewCategoryService(categories, users)
		list, err := svc.ListCategories(ctx)

		require.NoError(t, err)
		assert.NotNil(t, list)
	})
}

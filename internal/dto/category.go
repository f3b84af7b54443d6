package dto

import (
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// CategoryRequest is used for both create and rename.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=80"`
}

type CategoryResponse struct {
	CategoryID string    `json:"categoryID"`
	Name       string    `json:"name"`
	OwnerID    string    `json:"ownerID"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		OwnerID:    c.OwnerID,
		CreatedAt:  c.CreatedAt,
	}
}

type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func ToListCategoriesResponse(cs []domain.Category) ListCategoriesResponse {
	list := make([]CategoryResponse, len(cs))
	for i := range cs {
		list[i] = ToCategoryResponse(&cs[i])
	}
	return ListCategoriesResponse{Categories: list}
}

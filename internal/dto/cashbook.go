package dto

import (
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// CreateCashbookRequest creates a cashbook and optionally assigns staff right away.
type CreateCashbookRequest struct {
	Name         string   `json:"name" binding:"required,min=1,max=120"`
	CategoryID   string   `json:"categoryID" binding:"required"`
	StaffUserIDs []string `json:"staffUserIDs" binding:"omitempty,dive,required"`
}

// UpdateCashbookRequest renames or recategorizes a cashbook.
type UpdateCashbookRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=120"`
	CategoryID *string `json:"categoryID" binding:"omitempty,min=1"`
}

type SetCashbookStatusRequest struct {
	Status domain.CashbookStatus `json:"status" binding:"required,oneof=ACTIVE COMPLETED"`
}

// ListCashbooksParams are the query filters of the cashbook list.
type ListCashbooksParams struct {
	Status     string `form:"status" binding:"omitempty,oneof=ACTIVE COMPLETED"`
	CategoryID string `form:"categoryID"`
	Search     string `form:"search" binding:"max=120"`
}

// ToFilter converts the query into a repository filter.
func (p ListCashbooksParams) ToFilter() domain.CashbookFilter {
	f := domain.CashbookFilter{CategoryID: p.CategoryID, Search: p.Search}
	if p.Status != "" {
		status := domain.CashbookStatus(p.Status)
		f.Status = &status
	}
	return f
}

type CashbookResponse struct {
	CashbookID  string                `json:"cashbookID"`
	CategoryID  string                `json:"categoryID"`
	Name        string                `json:"name"`
	OwnerID     string                `json:"ownerID"`
	Status      domain.CashbookStatus `json:"status"`
	IsDeleted   bool                  `json:"isDeleted"`
	DeletedAt   *time.Time            `json:"deletedAt,omitempty"`
	DeletedBy   *string               `json:"deletedBy,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
	Permissions *domain.Permissions   `json:"permissions,omitempty"`
}

func ToCashbookResponse(cb *domain.Cashbook) CashbookResponse {
	return CashbookResponse{
		CashbookID: cb.CashbookID,
		CategoryID: cb.CategoryID,
		Name:       cb.Name,
		OwnerID:    cb.OwnerID,
		Status:     cb.Status,
		IsDeleted:  cb.IsDeleted,
		DeletedAt:  cb.DeletedAt,
		DeletedBy:  cb.DeletedBy,
		CreatedAt:  cb.CreatedAt,
	}
}

func ToCashbookViewResponse(v *domain.CashbookView) CashbookResponse {
	resp := ToCashbookResponse(&v.Cashbook)
	perms := v.Permissions
	resp.Permissions = &perms
	return resp
}

// CashbookDetailResponse adds the balance summary to a cashbook.
type CashbookDetailResponse struct {
	CashbookResponse
	Balance domain.Balance `json:"balance"`
}

func ToCashbookDetailResponse(d *domain.CashbookDetail) CashbookDetailResponse {
	return CashbookDetailResponse{
		CashbookResponse: ToCashbookViewResponse(&d.CashbookView),
		Balance:          d.Balance,
	}
}

type ListCashbooksResponse struct {
	Cashbooks []CashbookResponse `json:"cashbooks"`
}

func ToListCashbookViewsResponse(vs []domain.CashbookView) ListCashbooksResponse {
	list := make([]CashbookResponse, len(vs))
	for i := range vs {
		list[i] = ToCashbookViewResponse(&vs[i])
	}
	return ListCashbooksResponse{Cashbooks: list}
}

func ToListCashbooksResponse(cbs []domain.Cashbook) ListCashbooksResponse {
	list := make([]CashbookResponse, len(cbs))
	for i := range cbs {
		list[i] = ToCashbookResponse(&cbs[i])
	}
	return ListCashbooksResponse{Cashbooks: list}
}

package dto

import (
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest records money in, money out or a plain note.
type CreateEntryRequest struct {
	Type          domain.EntryType     `json:"type" binding:"required,entrytype"`
	Amount        decimal.Decimal      `json:"amount"`
	Description   string               `json:"description" binding:"max=500"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=CASH BANK MOBILE_BANKING"`
}

// UpdateEntryRequest changes an existing entry. Omitted fields are kept.
type UpdateEntryRequest struct {
	Type          *domain.EntryType     `json:"type" binding:"omitempty,entrytype"`
	Amount        *decimal.Decimal      `json:"amount"`
	Description   *string               `json:"description" binding:"omitempty,max=500"`
	PaymentMethod *domain.PaymentMethod `json:"paymentMethod" binding:"omitempty,oneof=CASH BANK MOBILE_BANKING"`
}

// ListEntriesParams defines query parameters for listing entries.
type ListEntriesParams struct {
	Limit     int     `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken *string `form:"nextToken"`
}

type EntryResponse struct {
	EntryID       string               `json:"entryID"`
	CashbookID    string               `json:"cashbookID"`
	Type          domain.EntryType     `json:"type"`
	Amount        decimal.Decimal      `json:"amount"`
	Description   string               `json:"description"`
	PaymentMethod domain.PaymentMethod `json:"paymentMethod"`
	IsVerified    bool                 `json:"isVerified"`
	VerifiedBy    *string              `json:"verifiedBy,omitempty"`
	CreatedBy     string               `json:"createdBy"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func ToEntryResponse(e *domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:       e.EntryID,
		CashbookID:    e.CashbookID,
		Type:          e.Type,
		Amount:        e.Amount,
		Description:   e.Description,
		PaymentMethod: e.PaymentMethod,
		IsVerified:    e.IsVerified,
		VerifiedBy:    e.VerifiedBy,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// ListEntriesResponse is one page of entries. NextToken is nil on the last page.
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

func ToEntryResponses(es []domain.Entry) []EntryResponse {
	list := make([]EntryResponse, len(es))
	for i := range es {
		list[i] = ToEntryResponse(&es[i])
	}
	return list
}

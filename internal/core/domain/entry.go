package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the direction of an entry. NOTE entries carry information only.
type EntryType string

const (
	EntryIn   EntryType = "IN"
	EntryOut  EntryType = "OUT"
	EntryNote EntryType = "NOTE"
)

func (t EntryType) IsValid() bool {
	return t == EntryIn || t == EntryOut || t == EntryNote
}

// PaymentMethod records how money moved.
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "CASH"
	PaymentBank          PaymentMethod = "BANK"
	PaymentMobileBanking PaymentMethod = "MOBILE_BANKING"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentBank || m == PaymentMobileBanking
}

// Entry is a single line in a cashbook.
type Entry struct {
	EntryID       string          `json:"entryID" db:"entry_id"`
	CashbookID    string          `json:"cashbookID" db:"cashbook_id"`
	Type          EntryType       `json:"type" db:"entry_type"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	Description   string          `json:"description" db:"description"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" db:"payment_method"`
	IsVerified    bool            `json:"isVerified" db:"is_verified"`
	VerifiedBy    *string         `json:"verifiedBy,omitempty" db:"verified_by"`
	CreatedBy     string          `json:"createdBy" db:"created_by"`
	AuditFields
}

// ValidateAmount checks the amount against the entry type. IN and OUT need a
// positive amount, a NOTE may be zero.
func (e Entry) ValidateAmount() bool {
	if e.Amount.IsNegative() {
		return false
	}
	if e.Type == EntryNote {
		return true
	}
	return e.Amount.IsPositive()
}

// SignedAmount is the effect of the entry on the cashbook balance.
func (e Entry) SignedAmount() decimal.Decimal {
	switch e.Type {
	case EntryIn:
		return e.Amount
	case EntryOut:
		return e.Amount.Neg()
	}
	return decimal.Zero
}

// Balance summarises money movement of one or more cashbooks.
type Balance struct {
	TotalIn  decimal.Decimal `json:"totalIn"`
	TotalOut decimal.Decimal `json:"totalOut"`
	Balance  decimal.Decimal `json:"balance"`
}

// NewBalance builds a Balance with the net amount derived from the totals.
func NewBalance(totalIn, totalOut decimal.Decimal) Balance {
	return Balance{TotalIn: totalIn, TotalOut: totalOut, Balance: totalIn.Sub(totalOut)}
}

// SummarizeEntries folds entries into a Balance. NOTE entries are ignored.
func SummarizeEntries(entries []Entry) Balance {
	totalIn, totalOut := decimal.Zero, decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case EntryIn:
			totalIn = totalIn.Add(e.Amount)
		case EntryOut:
			totalOut = totalOut.Add(e.Amount)
		}
	}
	return NewBalance(totalIn, totalOut)
}

// EntryCursor marks the last entry of a page for keyset pagination.
type EntryCursor struct {
	CreatedAt time.Time
	EntryID   string
}

package domain

import "time"

// CashbookStatus tracks whether a cashbook still accepts entries.
type CashbookStatus string

const (
	CashbookActive    CashbookStatus = "ACTIVE"
	CashbookCompleted CashbookStatus = "COMPLETED"
)

func (s CashbookStatus) IsValid() bool {
	return s == CashbookActive || s == CashbookCompleted
}

// Cashbook is a named ledger of entries under a category.
type Cashbook struct {
	CashbookID string         `json:"cashbookID" db:"cashbook_id"`
	CategoryID string         `json:"categoryID" db:"category_id"`
	Name       string         `json:"name" db:"name"`
	OwnerID    string         `json:"ownerID" db:"owner_id"`
	Status     CashbookStatus `json:"status" db:"status"`
	IsDeleted  bool           `json:"isDeleted" db:"is_deleted"`
	DeletedAt  *time.Time     `json:"deletedAt,omitempty" db:"deleted_at"`
	DeletedBy  *string        `json:"deletedBy,omitempty" db:"deleted_by"`
	CreatedAt  time.Time      `json:"createdAt" db:"created_at"`
}

// CashbookFilter narrows cashbook listings. Empty fields do not filter.
type CashbookFilter struct {
	Status     *CashbookStatus
	CategoryID string
	Search     string
}

// CashbookStaff grants a non-owner user access to one cashbook.
type CashbookStaff struct {
	StaffID    string   `json:"staffID" db:"staff_id"`
	CashbookID string   `json:"cashbookID" db:"cashbook_id"`
	UserID     string   `json:"userID" db:"user_id"`
	Role       UserRole `json:"role" db:"role"`
	CanEdit    bool     `json:"canEdit" db:"can_edit"`
	CanArchive bool     `json:"canArchive" db:"can_archive"`
}

// CashbookStaffMember is a staff record joined with the user it points at.
type CashbookStaffMember struct {
	CashbookStaff
	FullName string `json:"fullName" db:"full_name"`
	Phone    string `json:"phone" db:"phone"`
}

// CashbookView is a cashbook annotated with what the current actor may do with it.
type CashbookView struct {
	Cashbook
	Permissions Permissions `json:"permissions"`
}

// CashbookAccess is the resolved authorization context for one actor on one cashbook.
type CashbookAccess struct {
	Actor       User
	Cashbook    Cashbook
	Staff       *CashbookStaff
	Permissions Permissions
}

// CashbookDetail is a cashbook view with its running totals.
type CashbookDetail struct {
	CashbookView
	Balance Balance `json:"balance"`
}

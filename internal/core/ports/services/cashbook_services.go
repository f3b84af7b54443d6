package services

import (
	"context"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
)

// CashbookReaderSvc defines read operations for cashbooks
type CashbookReaderSvc interface {
	// ListCashbooks returns what the actor may see, each annotated with permissions.
	ListCashbooks(ctx context.Context, requestingUserID string, filter domain.CashbookFilter) ([]domain.CashbookView, error)

	// GetCashbook returns a visible cashbook with its balance.
	GetCashbook(ctx context.Context, cashbookID string, requestingUserID string) (*domain.CashbookDetail, error)

	// ListDeletedCashbooks returns the recycle bin. Owner only.
	ListDeletedCashbooks(ctx context.Context, requestingUserID string) ([]domain.Cashbook, error)
}

// CashbookWriterSvc defines write operations for cashbooks
type CashbookWriterSvc interface {
	CreateCashbook(ctx context.Context, req dto.CreateCashbookRequest, requestingUserID string) (*domain.Cashbook, error)
	UpdateCashbook(ctx context.Context, cashbookID string, req dto.UpdateCashbookRequest, requestingUserID string) (*domain.Cashbook, error)
	SetCashbookStatus(ctx context.Context, cashbookID string, status domain.CashbookStatus, requestingUserID string) (*domain.Cashbook, error)
}

// CashbookLifecycleSvc covers the recycle bin. Owner only.
type CashbookLifecycleSvc interface {
	SoftDeleteCashbook(ctx context.Context, cashbookID string, requestingUserID string) error
	RestoreCashbook(ctx context.Context, cashbookID string, requestingUserID string) error
}

// CashbookAuthorizerSvc resolves the access of a user on a cashbook.
type CashbookAuthorizerSvc interface {
	// AuthorizeCashbook returns ErrNotFound when the cashbook does not exist or
	// the user may not view it.
	AuthorizeCashbook(ctx context.Context, userID, cashbookID string) (*domain.CashbookAccess, error)
}

// CashbookSvcFacade combines all cashbook-related service interfaces
type CashbookSvcFacade interface {
	CashbookReaderSvc
	CashbookWriterSvc
	CashbookLifecycleSvc
	CashbookAuthorizerSvc
}

// StaffSvc manages per-cashbook staff assignments. Owner only.
type StaffSvc interface {
	ListStaff(ctx context.Context, cashbookID string, requestingUserID string) ([]domain.CashbookStaffMember, error)
	AssignStaff(ctx context.Context, cashbookID string, req dto.AssignStaffRequest, requestingUserID string) (*domain.CashbookStaff, error)
	UpdateStaffPermissions(ctx context.Context, cashbookID, userID string, req dto.UpdateStaffPermissionsRequest, requestingUserID string) (*domain.CashbookStaff, error)
	RemoveStaff(ctx context.Context, cashbookID, userID string, requestingUserID string) error
	ListAssignedCashbooks(ctx context.Context, userID string, requestingUserID string) ([]domain.Cashbook, error)
}

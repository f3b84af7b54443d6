package repositories

import (
	"context"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// CashbookReader defines read operations for cashbooks
type CashbookReader interface {
	// FindCashbookByID returns the cashbook whether or not it is soft deleted.
	FindCashbookByID(ctx context.Context, cashbookID string) (*domain.Cashbook, error)

	// FindCashbooks lists all non deleted cashbooks, newest first.
	FindCashbooks(ctx context.Context, filter domain.CashbookFilter) ([]domain.Cashbook, error)

	// FindCashbooksForStaff lists non deleted, active cashbooks the user is staff on,
	// together with the staff records keyed by cashbook ID.
	FindCashbooksForStaff(ctx context.Context, userID string, filter domain.CashbookFilter) ([]domain.Cashbook, map[string]domain.CashbookStaff, error)

	// FindDeletedCashbooks lists the recycle bin, most recently deleted first.
	FindDeletedCashbooks(ctx context.Context) ([]domain.Cashbook, error)
}

// CashbookWriter defines write operations for cashbooks
type CashbookWriter interface {
	// SaveCashbook persists a new cashbook and its initial staff in one transaction.
	SaveCashbook(ctx context.Context, cashbook domain.Cashbook, staff []domain.CashbookStaff) error
	UpdateCashbook(ctx context.Context, cashbook domain.Cashbook) error
	UpdateCashbookStatus(ctx context.Context, cashbookID string, status domain.CashbookStatus) error
}

// CashbookLifecycleManager handles soft delete and restore.
type CashbookLifecycleManager interface {
	MarkCashbookDeleted(ctx context.Context, cashbookID string, deletedAt time.Time, deletedBy string) error
	RestoreCashbook(ctx context.Context, cashbookID string) error
}

// CashbookRepositoryFacade combines all cashbook-related repository interfaces
type CashbookRepositoryFacade interface {
	CashbookReader
	CashbookWriter
	CashbookLifecycleManager
}

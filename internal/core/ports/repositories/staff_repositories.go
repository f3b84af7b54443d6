package repositories

import (
	"context"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// StaffReader reads per-cashbook staff assignments.
type StaffReader interface {
	// FindStaffRecord returns ErrNotFound when the user is not assigned.
	FindStaffRecord(ctx context.Context, cashbookID, userID string) (*domain.CashbookStaff, error)
	FindStaffByCashbook(ctx context.Context, cashbookID string) ([]domain.CashbookStaffMember, error)
	// FindCashbooksByStaffUser lists every non deleted cashbook the user is assigned to.
	FindCashbooksByStaffUser(ctx context.Context, userID string) ([]domain.Cashbook, error)
}

// StaffWriter mutates staff assignments.
type StaffWriter interface {
	// SaveStaff inserts the assignment or updates role and flags if it exists.
	SaveStaff(ctx context.Context, staff domain.CashbookStaff) error
	UpdateStaff(ctx context.Context, staff domain.CashbookStaff) error
	DeleteStaff(ctx context.Context, cashbookID, userID string) error
}

// StaffRepositoryFacade combines staff reader and writer
type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
}

package services

import (
	"context"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
	"github.com/designerabdulhai/hhdcashfinal/internal/dto"
)

// EntrySvc manages cashbook entries.
type EntrySvc interface {
	ListEntries(ctx context.Context, cashbookID string, requestingUserID string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
	CreateEntry(ctx context.Context, cashbookID string, req dto.CreateEntryRequest, requestingUserID string) (*domain.Entry, error)
	UpdateEntry(ctx context.Context, cashbookID, entryID string, req dto.UpdateEntryRequest, requestingUserID string) (*domain.Entry, error)
	DeleteEntry(ctx context.Context, cashbookID, entryID string, requestingUserID string) error
	// VerifyEntry marks an entry as checked. Owner only.
	VerifyEntry(ctx context.Context, cashbookID, entryID string, requestingUserID string) (*domain.Entry, error)
	GetBalance(ctx context.Context, cashbookID string, requestingUserID string) (domain.Balance, error)
}

// ExportSvc renders cashbook data into downloadable files.
type ExportSvc interface {
	ExportEntries(ctx context.Context, cashbookID string, requestingUserID string) (*domain.ExportFile, error)
}

package repositories

import (
	"context"
	"time"

	"github.com/designerabdulhai/hhdcashfinal/internal/core/domain"
)

// EntryReader defines read operations for entries
type EntryReader interface {
	// FindEntriesByCashbook returns up to limit entries, newest first, strictly
	// after cursor when one is given.
	FindEntriesByCashbook(ctx context.Context, cashbookID string, limit int, cursor *domain.EntryCursor) ([]domain.Entry, error)

	// FindAllEntriesByCashbook returns every entry of a cashbook, newest first.
	FindAllEntriesByCashbook(ctx context.Context, cashbookID string) ([]domain.Entry, error)

	FindEntryByID(ctx context.Context, cashbookID, entryID string) (*domain.Entry, error)

	// GetBalance sums IN and OUT entries of a cashbook.
	GetBalance(ctx context.Context, cashbookID string) (domain.Balance, error)
}

// EntryWriter defines write operations for entries
type EntryWriter interface {
	SaveEntry(ctx context.Context, entry domain.Entry) error
	UpdateEntry(ctx context.Context, entry domain.Entry) error
	DeleteEntry(ctx context.Context, cashbookID, entryID string) error
	MarkEntryVerified(ctx context.Context, cashbookID, entryID, verifiedBy string, at time.Time) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

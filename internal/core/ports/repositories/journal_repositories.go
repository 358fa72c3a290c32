package repositories

import (
	"context"

	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
)

// JournalReader defines read operations for journal entries and lines.
type JournalReader interface {
	// FindEntryByID retrieves a specific journal entry (without lines).
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves all journal entries sorted by date descending,
	// most recent first.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)

	// FindLinesByEntryID retrieves an entry's lines ordered by seq.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListLines retrieves every journal line. The statement and balance
	// engines fold over this full snapshot.
	ListLines(ctx context.Context) ([]domain.JournalLine, error)

	// CountLinesByAccountID reports how many lines reference an account.
	CountLinesByAccountID(ctx context.Context, accountID string) (int64, error)
}

// JournalWriter defines write operations for journal entries and lines.
type JournalWriter interface {
	// SaveEntry persists an entry together with all of its lines atomically.
	// Either everything is written or nothing is.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// DeleteEntry removes an entry and all of its lines atomically.
	DeleteEntry(ctx context.Context, entryID string) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

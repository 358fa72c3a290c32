package services

import (
	"context"

	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	"github.com/reymancasio5-bit/accountingproject/internal/dto"
)

// JournalSvcFacade exposes journal entry operations to handlers.
type JournalSvcFacade interface {
	// PostEntry validates a caller-owned draft and commits it as a whole.
	// No partial write occurs on rejection.
	PostEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error)

	// GetEntryByID retrieves an entry with its lines in seq order.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries retrieves the entry history, most recent first.
	ListEntries(ctx context.Context) ([]domain.JournalEntry, error)

	// DeleteEntry removes an entry and its lines as a whole.
	DeleteEntry(ctx context.Context, entryID string) error
}

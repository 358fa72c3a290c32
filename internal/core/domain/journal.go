package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the state of a journal entry. Everything posts
// immediately; the enum exists so draft/void states can be added later
// without a schema change.
type EntryStatus string

const (
	Posted EntryStatus = "POSTED"
)

// JournalEntry represents a single, balanced financial event composed of
// multiple journal lines. An entry owns its lines: deleting the entry deletes
// them, and lines never outlive their entry.
type JournalEntry struct {
	EntryID     string      `json:"entryID"`     // Primary Key (UUID)
	Date        time.Time   `json:"date"`        // Date the event occurred
	Reference   string      `json:"reference"`   // Free-text label (invoice no, cheque no, ...)
	Description string      `json:"description"` // Nullable user description
	Status      EntryStatus `json:"status"`      // Always POSTED in current scope
	AuditFields

	// Lines is populated on demand by lookups; nil on list responses.
	Lines []JournalLine `json:"lines,omitempty"`
}

// JournalLine is one side of a double entry, affecting a single account.
// Exactly one of Debit/Credit is positive; the other is zero.
type JournalLine struct {
	LineID      string          `json:"lineID"`    // Primary Key (UUID)
	EntryID     string          `json:"entryID"`   // FK -> JournalEntry (Not Null)
	AccountID   string          `json:"accountID"` // FK -> Account (Not Null)
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`  // Non-negative
	Credit      decimal.Decimal `json:"credit"` // Non-negative
	Seq         int             `json:"seq"`    // Display order within the entry
	AuditFields
}

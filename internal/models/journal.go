package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the persisted row for a posted journal entry. Lines live
// in their own table and are loaded separately.
type JournalEntry struct {
	EntryID     string    `db:"entry_id"`
	EntryDate   time.Time `db:"entry_date"`
	Reference   string    `db:"reference"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	AuditFields
}

// JournalLine is the persisted row for one side of a journal entry.
type JournalLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountID   string          `db:"account_id"`
	Description string          `db:"description"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Seq         int             `db:"seq"`
	AuditFields
}

package domain

import "github.com/shopspring/decimal"

// CandidateCategory is the coarse classification assigned to an extracted
// document line. Equity is never inferred from documents.
type CandidateCategory string

const (
	CandidateAsset     CandidateCategory = "ASSET"
	CandidateLiability CandidateCategory = "LIABILITY"
	CandidateRevenue   CandidateCategory = "REVENUE"
	CandidateExpense   CandidateCategory = "EXPENSE"
)

// CandidateLineItem is one monetary line item recognized in extracted
// document text, before it has been mapped to accounts.
type CandidateLineItem struct {
	Description  string            `json:"description"` // Cleaned, max 60 chars
	Amount       decimal.Decimal   `json:"amount"`
	Category     CandidateCategory `json:"category"`
	OriginalLine string            `json:"originalLine"`
}

// CandidateEntry is an unposted, user-editable journal entry proposal built
// from a classified line item. Committing it produces one entry with exactly
// two lines (debit, credit) for the item's amount.
type CandidateEntry struct {
	Description     string            `json:"description"`
	Amount          decimal.Decimal   `json:"amount"`
	Category        CandidateCategory `json:"category"`
	DebitAccountID  string            `json:"debitAccountID"`
	CreditAccountID string            `json:"creditAccountID"`
	OriginalLine    string            `json:"originalLine"`

	// NeedsReview is set when the default-account policy had to fall back to
	// an arbitrary account because no account of the required type exists.
	NeedsReview bool `json:"needsReview"`
}

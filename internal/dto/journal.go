package dto

import (
	"time"

	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLineRequest is one side of a draft entry. Exactly one of Debit/Credit
// must be positive; the service enforces this beyond what binding can express.
type CreateLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// CreateEntryRequest is a caller-owned draft journal entry. It is validated
// and committed as a whole; no ambient working-entry state exists server-side.
type CreateEntryRequest struct {
	Date        time.Time           `json:"date" binding:"required"`
	Reference   string              `json:"reference"`
	Description string              `json:"description"`
	Lines       []CreateLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// LineResponse defines the data returned for a journal line.
type LineResponse struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountID   string          `json:"accountID"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Seq         int             `json:"seq"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID     string             `json:"entryID"`
	Date        time.Time          `json:"date"`
	Reference   string             `json:"reference"`
	Description string             `json:"description"`
	Status      domain.EntryStatus `json:"status"`
	CreatedAt   time.Time          `json:"createdAt"`
	Lines       []LineResponse     `json:"lines,omitempty"`
}

// ListEntriesResponse wraps the entry history, most recent first.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToLineResponse converts a domain.JournalLine to LineResponse DTO.
func ToLineResponse(l *domain.JournalLine) LineResponse {
	return LineResponse{
		LineID:      l.LineID,
		EntryID:     l.EntryID,
		AccountID:   l.AccountID,
		Description: l.Description,
		Debit:       l.Debit,
		Credit:      l.Credit,
		Seq:         l.Seq,
	}
}

// ToEntryResponse converts a domain.JournalEntry (with or without lines) to
// EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:     e.EntryID,
		Date:        e.Date,
		Reference:   e.Reference,
		Description: e.Description,
		Status:      e.Status,
		CreatedAt:   e.CreatedAt,
	}
	if len(e.Lines) > 0 {
		resp.Lines = make([]LineResponse, len(e.Lines))
		for i := range e.Lines {
			resp.Lines[i] = ToLineResponse(&e.Lines[i])
		}
	}
	return resp
}

// ToListEntriesResponse converts a slice of domain.JournalEntry to the list DTO.
func ToListEntriesResponse(entries []domain.JournalEntry) ListEntriesResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Entries: res}
}

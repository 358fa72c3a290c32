package dto

import (
	"time"

	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClassifyRequest carries the extracted document text to classify. The text
// is the raw page-by-page concatenation produced by the extraction
// collaborator; no layout metadata is available.
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse returns the proposed entries for user review. Each
// candidate is independently selectable before commit.
type ClassifyResponse struct {
	Candidates []domain.CandidateEntry `json:"candidates"`
}

// CommitCandidateRequest is one reviewed candidate the user chose to post.
// Accounts and the description may have been edited client-side.
type CommitCandidateRequest struct {
	Description     string          `json:"description" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	DebitAccountID  string          `json:"debitAccountID" binding:"required"`
	CreditAccountID string          `json:"creditAccountID" binding:"required"`
	Reference       string          `json:"reference"`
}

// CommitCandidatesRequest posts the selected candidates. Each becomes one
// journal entry with exactly two lines.
type CommitCandidatesRequest struct {
	Date       time.Time                `json:"date" binding:"required"`
	Candidates []CommitCandidateRequest `json:"candidates" binding:"required,min=1,dive"`
}

// CommitCandidatesResponse reports the entries created from the commit.
type CommitCandidatesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

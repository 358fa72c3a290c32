package services

import (
	"context"

	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	"github.com/reymancasio5-bit/accountingproject/internal/dto"
)

// ClassifierSvcFacade turns extracted document text into draft journal entry
// candidates and posts the ones the user confirms.
type ClassifierSvcFacade interface {
	// ProposeEntries classifies the text and maps every recognized item to a
	// two-sided candidate using the default-account policy. An empty result
	// is a normal outcome, not an error.
	ProposeEntries(ctx context.Context, text string) ([]domain.CandidateEntry, error)

	// CommitCandidates posts each confirmed candidate as one balanced entry
	// with exactly two lines, through the normal validation path.
	CommitCandidates(ctx context.Context, req dto.CommitCandidatesRequest) ([]domain.JournalEntry, error)
}

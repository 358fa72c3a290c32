package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/reymancasio5-bit/accountingproject/internal/apperrors"
	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	portsrepo "github.com/reymancasio5-bit/accountingproject/internal/core/ports/repositories"
	portssvc "github.com/reymancasio5-bit/accountingproject/internal/core/ports/services"
	"github.com/reymancasio5-bit/accountingproject/internal/dto"
	"github.com/reymancasio5-bit/accountingproject/internal/middleware"
	"github.com/reymancasio5-bit/accountingproject/internal/utils/accounting"
)

var (
	ErrEntryUnbalanced = errors.New("journal entry debits and credits do not balance")
	ErrEntryMinLines   = errors.New("journal entry must have at least two qualifying lines")
	ErrLineOneSide     = errors.New("journal line must have a positive amount on exactly one side")
	ErrLineNegative    = errors.New("journal line amounts must not be negative")
	ErrAccountNotFound = errors.New("account not found")
)

// JournalService provides posting and lookup of journal entries. Postings are
// all-or-nothing: a draft entry is validated as a whole and either every line
// is written or nothing is.
type JournalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
	accountRepo portsrepo.AccountReader
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade, accountRepo portsrepo.AccountReader) *JournalService {
	return &JournalService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

// Ensure JournalService implements the portssvc.JournalSvcFacade interface
var _ portssvc.JournalSvcFacade = (*JournalService)(nil)

// validateDraft checks the caller-owned draft lines against the posting
// invariants. A qualifying line has an account set and a positive amount on
// exactly one side; lines with both sides zero are ignored rather than
// rejected so sparse UI rows don't block a commit.
func validateDraft(lines []dto.CreateLineRequest) ([]dto.CreateLineRequest, error) {
	qualifying := make([]dto.CreateLineRequest, 0, len(lines))
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrLineNegative)
		}
		hasDebit := line.Debit.IsPositive()
		hasCredit := line.Credit.IsPositive()
		if !hasDebit && !hasCredit {
			continue
		}
		if hasDebit && hasCredit {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrLineOneSide)
		}
		if line.AccountID == "" {
			continue
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
		qualifying = append(qualifying, line)
	}

	if len(qualifying) < 2 {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrEntryMinLines)
	}

	if diff := totalDebit.Sub(totalCredit).Abs(); diff.GreaterThanOrEqual(accounting.EntryTolerance) {
		return nil, fmt.Errorf("%w: %w: debits %s, credits %s",
			apperrors.ErrValidation, ErrEntryUnbalanced, totalDebit.String(), totalCredit.String())
	}

	return qualifying, nil
}

// PostEntry validates a draft entry and commits it with its lines atomically.
func (s *JournalService) PostEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	qualifying, err := validateDraft(req.Lines)
	if err != nil {
		return nil, err
	}

	// Verify every referenced account exists before anything is written.
	accountIDs := make([]string, 0, len(qualifying))
	for _, line := range qualifying {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accountsMap, err := s.accountRepo.FindAccountsByIDs(ctx, uniqueStrings(accountIDs))
	if err != nil {
		logger.Error("Failed to fetch accounts for posting", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	for _, id := range accountIDs {
		if _, found := accountsMap[id]; !found {
			return nil, fmt.Errorf("%w: %w: ID %s", apperrors.ErrValidation, ErrAccountNotFound, id)
		}
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	entry := domain.JournalEntry{
		EntryID:     entryID,
		Date:        req.Date,
		Reference:   req.Reference,
		Description: req.Description,
		Status:      domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	domainLines := make([]domain.JournalLine, len(qualifying))
	for i, line := range qualifying {
		domainLines[i] = domain.JournalLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountID:   line.AccountID,
			Description: line.Description,
			Debit:       line.Debit,
			Credit:      line.Credit,
			Seq:         i,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}

	if err := s.journalRepo.SaveEntry(ctx, entry, domainLines); err != nil {
		logger.Error("Failed to save journal entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	logger.Info("Journal entry posted successfully", slog.String("entry_id", entryID), slog.Int("line_count", len(domainLines)))
	entry.Lines = domainLines
	return &entry, nil
}

// GetEntryByID retrieves an entry with its lines in seq order.
func (s *JournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find entry by ID", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}

	lines, err := s.journalRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		logger.Error("Failed to fetch lines for entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, apperrors.ErrInternal)
	}
	entry.Lines = lines

	return entry, nil
}

// ListEntries retrieves the entry history, most recent first.
func (s *JournalService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	entries, err := s.journalRepo.ListEntries(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list entries", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve entries: %w", err)
	}
	return entries, nil
}

// DeleteEntry removes an entry and all of its lines as a whole. Lines never
// outlive their entry; there is no partial deletion of a subset of lines.
func (s *JournalService) DeleteEntry(ctx context.Context, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.journalRepo.FindEntryByID(ctx, entryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry not found for deletion", slog.String("entry_id", entryID))
		}
		return err
	}

	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		logger.Error("Failed to delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	logger.Info("Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

// uniqueStrings returns a slice containing only the unique strings from the input.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}

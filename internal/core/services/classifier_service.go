package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/reymancasio5-bit/accountingproject/internal/apperrors"
	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	portsrepo "github.com/reymancasio5-bit/accountingproject/internal/core/ports/repositories"
	portssvc "github.com/reymancasio5-bit/accountingproject/internal/core/ports/services"
	"github.com/reymancasio5-bit/accountingproject/internal/dto"
	"github.com/reymancasio5-bit/accountingproject/internal/middleware"
)

const maxCandidateDescriptionLen = 60

// currencyTokenPattern matches currency-like numeric tokens: an optional
// currency symbol, digit groups with optional thousands separators, and an
// optional 2-decimal fraction.
var currencyTokenPattern = regexp.MustCompile(`\$?\d+(?:,\d{3})*(?:\.\d{2})?`)

// categoryKeywords associates each candidate category with the substrings
// that select it. Order matters: categories are tested in this fixed priority
// and the first match wins.
var categoryKeywords = []struct {
	category domain.CandidateCategory
	keywords []string
}{
	{domain.CandidateAsset, []string{
		"equipment", "furniture", "vehicle", "computer", "machinery",
		"inventory", "land", "building", "deposit",
	}},
	{domain.CandidateLiability, []string{
		"loan", "payable", "mortgage", "credit card", "borrow",
	}},
	{domain.CandidateRevenue, []string{
		"sales", "revenue", "income", "consulting", "service fee",
		"interest earned", "payment received", "invoice paid",
	}},
	{domain.CandidateExpense, []string{
		"rent", "salary", "salaries", "wages", "utilities", "electricity",
		"water", "internet", "phone", "insurance", "supplies", "advertising",
		"marketing", "maintenance", "repair", "fuel", "travel",
		"subscription", "expense", "fee", "tax", "postage",
	}},
}

// Classify turns extracted document text into categorized monetary line
// items. It is a pure function of its input: the same text always yields the
// same ordered candidate list. Lines that match no keyword set, carry no
// usable amount, or reduce to a degenerate description are silently dropped;
// that is a filtering decision, not an error.
func Classify(text string) []domain.CandidateLineItem {
	items := []domain.CandidateLineItem{}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		tokens := currencyTokenPattern.FindAllString(line, -1)
		if len(tokens) == 0 {
			continue
		}
		// Last-number-wins: documents usually put the line total rightmost.
		// Kept as a deliberate tie-break even though it is only a heuristic.
		amount, err := parseCurrencyToken(tokens[len(tokens)-1])
		if err != nil || amount.LessThan(decimal.NewFromInt(1)) {
			continue
		}

		category, matched := classifyLine(line)
		if !matched {
			continue
		}

		description := cleanDescription(line)
		if len(description) <= 3 {
			continue
		}
		if len(description) > maxCandidateDescriptionLen {
			description = strings.TrimSpace(description[:maxCandidateDescriptionLen])
		}

		items = append(items, domain.CandidateLineItem{
			Description:  description,
			Amount:       amount,
			Category:     category,
			OriginalLine: line,
		})
	}
	return items
}

// classifyLine tests the keyword sets in fixed priority order; first match wins.
func classifyLine(line string) (domain.CandidateCategory, bool) {
	lower := strings.ToLower(line)
	for _, set := range categoryKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lower, kw) {
				return set.category, true
			}
		}
	}
	return "", false
}

// parseCurrencyToken converts a matched token like "$1,250.00" to a decimal.
func parseCurrencyToken(token string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(token)
	return decimal.NewFromString(cleaned)
}

// cleanDescription strips every currency token from the line and collapses
// the remaining whitespace.
func cleanDescription(line string) string {
	stripped := currencyTokenPattern.ReplaceAllString(line, " ")
	return strings.Join(strings.Fields(stripped), " ")
}

// MapToJournalEntries maps classified items to two-sided candidate entries
// using a fixed default-account policy keyed by category. cashCode names the
// designated cash account in the chart. When no account of the required type
// exists, the candidate falls back to the first account in the chart and is
// flagged for review rather than dropped.
func MapToJournalEntries(items []domain.CandidateLineItem, accounts []domain.Account, cashCode string) []domain.CandidateEntry {
	if len(accounts) == 0 {
		return []domain.CandidateEntry{}
	}

	cash := accountByCode(accounts, cashCode)

	candidates := make([]domain.CandidateEntry, 0, len(items))
	for _, item := range items {
		var debit, credit *domain.Account
		switch item.Category {
		case domain.CandidateAsset:
			debit = firstOfType(accounts, domain.Asset, cashCode)
			credit = cash
		case domain.CandidateLiability:
			debit = cash
			credit = firstOfType(accounts, domain.Liability, "")
		case domain.CandidateRevenue:
			debit = cash
			credit = firstOfType(accounts, domain.Revenue, "")
		case domain.CandidateExpense:
			debit = firstOfType(accounts, domain.Expense, "")
			credit = cash
		}

		needsReview := false
		if debit == nil {
			debit = &accounts[0]
			needsReview = true
		}
		if credit == nil {
			credit = &accounts[0]
			needsReview = true
		}

		candidates = append(candidates, domain.CandidateEntry{
			Description:     item.Description,
			Amount:          item.Amount,
			Category:        item.Category,
			DebitAccountID:  debit.AccountID,
			CreditAccountID: credit.AccountID,
			OriginalLine:    item.OriginalLine,
			NeedsReview:     needsReview,
		})
	}
	return candidates
}

func accountByCode(accounts []domain.Account, code string) *domain.Account {
	for i := range accounts {
		if accounts[i].Code == code {
			return &accounts[i]
		}
	}
	return nil
}

// firstOfType returns the first account of the given type whose code differs
// from excludeCode ("" excludes nothing).
func firstOfType(accounts []domain.Account, t domain.AccountType, excludeCode string) *domain.Account {
	for i := range accounts {
		if accounts[i].AccountType == t && (excludeCode == "" || accounts[i].Code != excludeCode) {
			return &accounts[i]
		}
	}
	return nil
}

// ClassifierService turns extracted document text into candidate entries and
// posts confirmed candidates through the journal service.
type ClassifierService struct {
	accountRepo portsrepo.AccountReader
	journalSvc  portssvc.JournalSvcFacade
	cashCode    string
}

// NewClassifierService creates a new ClassifierService.
func NewClassifierService(accountRepo portsrepo.AccountReader, journalSvc portssvc.JournalSvcFacade, cashCode string) *ClassifierService {
	return &ClassifierService{
		accountRepo: accountRepo,
		journalSvc:  journalSvc,
		cashCode:    cashCode,
	}
}

// Ensure ClassifierService implements the portssvc.ClassifierSvcFacade interface
var _ portssvc.ClassifierSvcFacade = (*ClassifierService)(nil)

// ProposeEntries classifies the text and maps every recognized item to a
// candidate entry. An empty candidate list is a normal outcome.
func (s *ClassifierService) ProposeEntries(ctx context.Context, text string) ([]domain.CandidateEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	items := Classify(text)
	if len(items) == 0 {
		logger.Info("No recognizable transactions found in document text")
		return []domain.CandidateEntry{}, nil
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to list accounts for candidate mapping", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if len(accounts) == 0 {
		return nil, fmt.Errorf("%w: chart of accounts is empty", apperrors.ErrValidation)
	}

	candidates := MapToJournalEntries(items, accounts, s.cashCode)
	logger.Info("Document classified", slog.Int("item_count", len(items)), slog.Int("candidate_count", len(candidates)))
	return candidates, nil
}

// CommitCandidates posts each confirmed candidate as one entry with exactly
// two lines, through the journal service's normal validation path. Each
// posting is all-or-nothing per entry; a failure stops the batch and reports
// how far it got.
func (s *ClassifierService) CommitCandidates(ctx context.Context, req dto.CommitCandidatesRequest) ([]domain.JournalEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	posted := make([]domain.JournalEntry, 0, len(req.Candidates))
	for i, cand := range req.Candidates {
		if !cand.Amount.IsPositive() {
			return posted, fmt.Errorf("%w: candidate %d amount must be positive", apperrors.ErrValidation, i)
		}

		entryReq := dto.CreateEntryRequest{
			Date:        req.Date,
			Reference:   cand.Reference,
			Description: cand.Description,
			Lines: []dto.CreateLineRequest{
				{AccountID: cand.DebitAccountID, Description: cand.Description, Debit: cand.Amount},
				{AccountID: cand.CreditAccountID, Description: cand.Description, Credit: cand.Amount},
			},
		}

		entry, err := s.journalSvc.PostEntry(ctx, entryReq)
		if err != nil {
			logger.Warn("Candidate commit stopped on failure", slog.Int("index", i), slog.String("error", err.Error()))
			return posted, fmt.Errorf("candidate %d: %w", i, err)
		}
		posted = append(posted, *entry)
	}

	logger.Info("Candidates committed", slog.Int("entry_count", len(posted)))
	return posted, nil
}

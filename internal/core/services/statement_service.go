package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	portsrepo "github.com/reymancasio5-bit/accountingproject/internal/core/ports/repositories"
	portssvc "github.com/reymancasio5-bit/accountingproject/internal/core/ports/services"
	"github.com/reymancasio5-bit/accountingproject/internal/middleware"
	"github.com/reymancasio5-bit/accountingproject/internal/utils/accounting"
)

// ReportingService derives read-only financial statements from full account
// and line snapshots. Derivation never fails on malformed ledger data: bad or
// missing references contribute zero and the balanced flags surface any
// discrepancy for the operator instead of raising an error.
type ReportingService struct {
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
	cogsCode    string
}

// NewReportingService creates a new reporting service. cogsCode is the
// distinguished account code split out as cost of goods sold on the income
// statement.
func NewReportingService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, cogsCode string) *ReportingService {
	return &ReportingService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
		cogsCode:    cogsCode,
	}
}

// Ensure ReportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*ReportingService)(nil)

// loadSnapshot reads the full chart and line set the engines fold over.
func (s *ReportingService) loadSnapshot(ctx context.Context) ([]domain.Account, []domain.JournalLine, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	lines, err := s.journalRepo.ListLines(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load journal lines: %w", err)
	}
	return accounts, lines, nil
}

// AccountBalances computes raw and display balances for every account.
func (s *ReportingService) AccountBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	accounts, lines, err := s.loadSnapshot(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to load snapshot for balances", slog.String("error", err.Error()))
		return nil, err
	}
	return accounting.ComputeBalances(accounts, lines), nil
}

// TrialBalance reports unsigned gross debit and credit totals per account,
// filtered to accounts with any activity and sorted by code. The grand totals
// and the balanced flag verify the ledger's mechanical balance.
func (s *ReportingService) TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, lines, err := s.loadSnapshot(ctx)
	if err != nil {
		logger.Error("Failed to load snapshot for trial balance", slog.String("error", err.Error()))
		return nil, err
	}

	debits, credits := accounting.GrossTotals(lines)

	sorted := sortedByCode(accounts)
	report := &domain.TrialBalanceReport{Rows: []domain.TrialBalanceRow{}}
	for _, acc := range sorted {
		d := debits[acc.AccountID]
		c := credits[acc.AccountID]
		if d.IsZero() && c.IsZero() {
			continue
		}
		report.Rows = append(report.Rows, domain.TrialBalanceRow{
			AccountID:   acc.AccountID,
			AccountCode: acc.Code,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			Debit:       d,
			Credit:      c,
		})
		report.TotalDebit = report.TotalDebit.Add(d)
		report.TotalCredit = report.TotalCredit.Add(c)
	}

	report.Balanced = report.TotalDebit.Sub(report.TotalCredit).Abs().LessThan(accounting.StatementTolerance)
	if !report.Balanced {
		logger.Warn("Trial balance does not balance",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}
	return report, nil
}

// netIncome is the single net income computation shared by the income
// statement and the balance sheet's synthetic equity line. The two reports
// must never disagree on this figure.
func netIncome(balances []domain.AccountBalance) decimal.Decimal {
	total := decimal.Zero
	for _, b := range balances {
		switch b.AccountType {
		case domain.Revenue:
			total = total.Add(b.DisplayBalance)
		case domain.Expense:
			total = total.Sub(b.DisplayBalance)
		}
	}
	return total
}

// IncomeStatement partitions revenue and expense accounts, splitting out the
// configured COGS account so gross profit can be reported. Zero-balance
// accounts are omitted from line items but still count as zero in totals.
func (s *ReportingService) IncomeStatement(ctx context.Context) (*domain.IncomeStatementReport, error) {
	accounts, lines, err := s.loadSnapshot(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to load snapshot for income statement", slog.String("error", err.Error()))
		return nil, err
	}

	balances := accounting.ComputeBalances(accounts, lines)
	report := &domain.IncomeStatementReport{
		Revenue:           []domain.StatementLine{},
		OperatingExpenses: []domain.StatementLine{},
	}

	for _, b := range balances {
		switch b.AccountType {
		case domain.Revenue:
			report.TotalRevenue = report.TotalRevenue.Add(b.DisplayBalance)
			if !b.DisplayBalance.IsZero() {
				report.Revenue = append(report.Revenue, toStatementLine(b))
			}
		case domain.Expense:
			if b.Code == s.cogsCode {
				report.TotalCOGS = report.TotalCOGS.Add(b.DisplayBalance)
				if !b.DisplayBalance.IsZero() {
					line := toStatementLine(b)
					report.CostOfGoodsSold = &line
				}
			} else {
				report.TotalOperating = report.TotalOperating.Add(b.DisplayBalance)
				if !b.DisplayBalance.IsZero() {
					report.OperatingExpenses = append(report.OperatingExpenses, toStatementLine(b))
				}
			}
		}
	}

	report.GrossProfit = report.TotalRevenue.Sub(report.TotalCOGS)
	report.NetIncome = netIncome(balances)
	return report, nil
}

// BalanceSheet reports assets against liabilities and equity. Equity carries
// a synthetic "Net Income (Current Period)" component because retained
// earnings are never posted as a closing entry in this system.
func (s *ReportingService) BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, lines, err := s.loadSnapshot(ctx)
	if err != nil {
		logger.Error("Failed to load snapshot for balance sheet", slog.String("error", err.Error()))
		return nil, err
	}

	balances := accounting.ComputeBalances(accounts, lines)
	report := &domain.BalanceSheetReport{
		Assets:      []domain.StatementLine{},
		Liabilities: []domain.StatementLine{},
		Equity:      []domain.StatementLine{},
	}

	for _, b := range balances {
		switch b.AccountType {
		case domain.Asset:
			report.TotalAssets = report.TotalAssets.Add(b.DisplayBalance)
			if !b.DisplayBalance.IsZero() {
				report.Assets = append(report.Assets, toStatementLine(b))
			}
		case domain.Liability:
			report.TotalLiabilities = report.TotalLiabilities.Add(b.DisplayBalance)
			if !b.DisplayBalance.IsZero() {
				report.Liabilities = append(report.Liabilities, toStatementLine(b))
			}
		case domain.Equity:
			report.TotalEquity = report.TotalEquity.Add(b.DisplayBalance)
			if !b.DisplayBalance.IsZero() {
				report.Equity = append(report.Equity, toStatementLine(b))
			}
		}
	}

	report.NetIncome = netIncome(balances)
	report.TotalEquity = report.TotalEquity.Add(report.NetIncome)
	report.TotalLiabilitiesEquity = report.TotalLiabilities.Add(report.TotalEquity)
	report.Balanced = report.TotalAssets.Sub(report.TotalLiabilitiesEquity).Abs().LessThan(accounting.StatementTolerance)

	if !report.Balanced {
		logger.Warn("Balance sheet does not balance",
			slog.String("total_assets", report.TotalAssets.String()),
			slog.String("total_liabilities_equity", report.TotalLiabilitiesEquity.String()))
	}
	return report, nil
}

// GeneralLedger lists per-account line histories with running balances. Lines
// are ordered by the posting order of their parent entry (date, then creation
// time) and seq within the entry; the running balance is re-signed by the
// account's normal side so each row shows the balance as of that line.
func (s *ReportingService) GeneralLedger(ctx context.Context, filter portssvc.GeneralLedgerFilter) (*domain.GeneralLedgerReport, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, lines, err := s.loadSnapshot(ctx)
	if err != nil {
		logger.Error("Failed to load snapshot for general ledger", slog.String("error", err.Error()))
		return nil, err
	}
	entries, err := s.journalRepo.ListEntries(ctx)
	if err != nil {
		logger.Error("Failed to load entries for general ledger", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	entryByID := make(map[string]domain.JournalEntry, len(entries))
	for _, e := range entries {
		entryByID[e.EntryID] = e
	}

	// Group qualifying lines per account. A line whose parent entry is
	// missing (e.g. a partially written entry) cannot be date-resolved and is
	// treated as absent.
	linesByAccount := make(map[string][]domain.JournalLine)
	for _, line := range lines {
		if filter.AccountID != "" && line.AccountID != filter.AccountID {
			continue
		}
		entry, ok := entryByID[line.EntryID]
		if !ok {
			continue
		}
		if filter.From != nil && entry.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && entry.Date.After(*filter.To) {
			continue
		}
		linesByAccount[line.AccountID] = append(linesByAccount[line.AccountID], line)
	}

	report := &domain.GeneralLedgerReport{Accounts: []domain.LedgerAccountView{}}
	for _, acc := range sortedByCode(accounts) {
		accLines := linesByAccount[acc.AccountID]
		if len(accLines) == 0 {
			continue
		}

		sort.SliceStable(accLines, func(i, j int) bool {
			ei, ej := entryByID[accLines[i].EntryID], entryByID[accLines[j].EntryID]
			if !ei.Date.Equal(ej.Date) {
				return ei.Date.Before(ej.Date)
			}
			if !ei.CreatedAt.Equal(ej.CreatedAt) {
				return ei.CreatedAt.Before(ej.CreatedAt)
			}
			return accLines[i].Seq < accLines[j].Seq
		})

		view := domain.LedgerAccountView{
			AccountID:   acc.AccountID,
			AccountCode: acc.Code,
			AccountName: acc.Name,
			NormalSide:  acc.NormalSide,
			Lines:       make([]domain.LedgerLine, len(accLines)),
		}

		running := decimal.Zero
		for i, line := range accLines {
			entry := entryByID[line.EntryID]
			running = running.Add(line.Debit).Sub(line.Credit)
			view.Lines[i] = domain.LedgerLine{
				LineID:         line.LineID,
				EntryID:        line.EntryID,
				EntryDate:      entry.Date,
				EntryReference: entry.Reference,
				Description:    line.Description,
				Debit:          line.Debit,
				Credit:         line.Credit,
				RunningBalance: accounting.DisplayAmount(running, acc.NormalSide),
			}
		}
		view.EndBalance = accounting.DisplayAmount(running, acc.NormalSide)
		report.Accounts = append(report.Accounts, view)
	}

	return report, nil
}

func toStatementLine(b domain.AccountBalance) domain.StatementLine {
	return domain.StatementLine{
		AccountID:   b.AccountID,
		AccountCode: b.Code,
		AccountName: b.Name,
		Amount:      b.DisplayBalance,
	}
}

func sortedByCode(accounts []domain.Account) []domain.Account {
	sorted := make([]domain.Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Code < sorted[j].Code
	})
	return sorted
}

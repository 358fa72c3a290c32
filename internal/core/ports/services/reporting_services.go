package services

import (
	"context"
	"time"

	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
)

// GeneralLedgerFilter narrows the general ledger view. The zero value means
// every account over all time. Dates are inclusive and resolved through each
// line's parent entry.
type GeneralLedgerFilter struct {
	AccountID string
	From      *time.Time
	To        *time.Time
}

// ReportingSvcFacade derives the read-only financial statements. Derivation
// never fails on malformed ledger data; it degrades to zero and surfaces
// balanced/unbalanced diagnostic flags instead.
type ReportingSvcFacade interface {
	// AccountBalances computes raw and display balances for every account.
	AccountBalances(ctx context.Context) ([]domain.AccountBalance, error)

	// TrialBalance reports unsigned gross debit/credit totals per account.
	TrialBalance(ctx context.Context) (*domain.TrialBalanceReport, error)

	// IncomeStatement reports revenue, COGS, operating expenses and net income.
	IncomeStatement(ctx context.Context) (*domain.IncomeStatementReport, error)

	// BalanceSheet reports assets, liabilities and equity including the
	// synthetic current-period net income line.
	BalanceSheet(ctx context.Context) (*domain.BalanceSheetReport, error)

	// GeneralLedger lists per-account line histories with running balances.
	GeneralLedger(ctx context.Context, filter GeneralLedgerFilter) (*domain.GeneralLedgerReport, error)
}

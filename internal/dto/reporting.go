package dto

import (
	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
)

// GeneralLedgerParams defines query parameters for the general ledger view.
// Dates use the 2006-01-02 layout and are inclusive; both are optional.
type GeneralLedgerParams struct {
	AccountID string `form:"accountID"`
	From      string `form:"from"`
	To        string `form:"to"`
}

// TrialBalanceResponse is the trial balance report with its reference date.
type TrialBalanceResponse struct {
	AsOf string `json:"asOf"`
	domain.TrialBalanceReport
}

// IncomeStatementResponse is the income statement report with its reference date.
type IncomeStatementResponse struct {
	AsOf string `json:"asOf"`
	domain.IncomeStatementReport
}

// BalanceSheetResponse is the balance sheet report with its reference date.
type BalanceSheetResponse struct {
	AsOf string `json:"asOf"`
	domain.BalanceSheetReport
}

// BalancesResponse lists every account with its raw and display balance.
type BalancesResponse struct {
	Balances []domain.AccountBalance `json:"balances"`
}

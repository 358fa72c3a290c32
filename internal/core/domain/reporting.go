package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountBalance pairs an account with its computed balances. RawBalance is
// the ledger-side sum of debits minus credits; DisplayBalance is re-signed by
// the account's normal side so a "normally behaving" account reads positive.
type AccountBalance struct {
	Account
	RawBalance     decimal.Decimal `json:"rawBalance"`
	DisplayBalance decimal.Decimal `json:"displayBalance"`
}

// TrialBalanceRow represents a single row in a trial balance report.
// Debit and Credit are unsigned gross totals, not net balances.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceReport is the gross listing of every active account's total
// debits and credits, used to verify the ledger's mechanical balance.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
	Balanced    bool              `json:"balanced"`
}

// StatementLine is one account's contribution to an income statement or
// balance sheet section, expressed as a display balance.
type StatementLine struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Amount      decimal.Decimal `json:"amount"`
}

// IncomeStatementReport partitions revenue and expenses, splitting out the
// cost-of-goods-sold account so gross profit can be reported.
type IncomeStatementReport struct {
	Revenue           []StatementLine `json:"revenue"`
	CostOfGoodsSold   *StatementLine  `json:"costOfGoodsSold,omitempty"`
	OperatingExpenses []StatementLine `json:"operatingExpenses"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	TotalCOGS         decimal.Decimal `json:"totalCOGS"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	TotalOperating    decimal.Decimal `json:"totalOperating"`
	NetIncome         decimal.Decimal `json:"netIncome"`
}

// BalanceSheetReport reports assets against liabilities and equity. Equity
// includes a synthetic "Net Income (Current Period)" line because retained
// earnings are never posted as a closing entry in this system.
type BalanceSheetReport struct {
	Assets                 []StatementLine `json:"assets"`
	Liabilities            []StatementLine `json:"liabilities"`
	Equity                 []StatementLine `json:"equity"`
	NetIncome              decimal.Decimal `json:"netIncome"`
	TotalAssets            decimal.Decimal `json:"totalAssets"`
	TotalLiabilities       decimal.Decimal `json:"totalLiabilities"`
	TotalEquity            decimal.Decimal `json:"totalEquity"`
	TotalLiabilitiesEquity decimal.Decimal `json:"totalLiabilitiesEquity"`
	Balanced               bool            `json:"balanced"`
}

// LedgerLine is one journal line in a general ledger view, carrying the
// account's running display balance as of that line.
type LedgerLine struct {
	LineID         string          `json:"lineID"`
	EntryID        string          `json:"entryID"`
	EntryDate      time.Time       `json:"entryDate"`
	EntryReference string          `json:"entryReference"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// LedgerAccountView is the general ledger section for a single account.
type LedgerAccountView struct {
	AccountID   string          `json:"accountID"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	NormalSide  NormalSide      `json:"normalSide"`
	Lines       []LedgerLine    `json:"lines"`
	EndBalance  decimal.Decimal `json:"endBalance"`
}

// GeneralLedgerReport lists ledger views for every account with at least one
// qualifying line, ordered by account code.
type GeneralLedgerReport struct {
	Accounts []LedgerAccountView `json:"accounts"`
}

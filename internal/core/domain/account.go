package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// NormalSide is the side (debit or credit) on which an account's balance is
// conventionally expressed as positive. It is a declared property of the
// account, independent of any single transaction, and only affects how raw
// balances are presented.
type NormalSide string

const (
	DebitNormal  NormalSide = "DEBIT"
	CreditNormal NormalSide = "CREDIT"
)

// DefaultNormalSide returns the conventional normal side for an account type:
// assets and expenses carry debit balances, everything else credit balances.
func DefaultNormalSide(t AccountType) NormalSide {
	switch t {
	case Asset, Expense:
		return DebitNormal
	default:
		return CreditNormal
	}
}

// Account represents one account in the chart of accounts.
// This is the primary representation used by services.
type Account struct {
	AccountID   string      `json:"accountID"`   // Primary Key (UUID)
	Code        string      `json:"code"`        // Short code; lexicographic order defines chart ordering
	Name        string      `json:"name"`        // User-defined name
	AccountType AccountType `json:"accountType"` // ASSET, LIABILITY, etc.
	NormalSide  NormalSide  `json:"normalSide"`  // DEBIT or CREDIT
	AuditFields
}

package models

// Account is the persisted row for a chart-of-accounts account.
type Account struct {
	AccountID   string `db:"account_id"`
	Code        string `db:"code"`
	Name        string `db:"name"`
	AccountType string `db:"account_type"`
	NormalSide  string `db:"normal_side"`
	AuditFields
}

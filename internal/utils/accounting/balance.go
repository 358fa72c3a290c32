package accounting

import (
	"sort"

	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryTolerance is the maximum allowed |sum(debit) - sum(credit)| for an
// entry to post.
var EntryTolerance = decimal.NewFromFloat(0.001)

// StatementTolerance is the threshold for the balanced flag on trial balance
// and balance sheet reports.
var StatementTolerance = decimal.NewFromFloat(0.01)

// DisplayAmount re-signs a raw (debit-minus-credit) amount by the account's
// normal side. This is the single sign-flip rule: it is what lets both
// debit-normal and credit-normal accounts report positive balances when their
// ledger behaves normally. Every balance shown anywhere goes through here.
func DisplayAmount(raw decimal.Decimal, side domain.NormalSide) decimal.Decimal {
	if side == domain.CreditNormal {
		return raw.Neg()
	}
	return raw
}

// ComputeBalances folds a full line snapshot into per-account balances,
// ordered by account code. Lines referencing an unknown account are skipped;
// the fold never fails.
func ComputeBalances(accounts []domain.Account, lines []domain.JournalLine) []domain.AccountBalance {
	raw := make(map[string]decimal.Decimal, len(accounts))
	known := make(map[string]struct{}, len(accounts))
	for _, acc := range accounts {
		known[acc.AccountID] = struct{}{}
	}

	for _, line := range lines {
		if _, ok := known[line.AccountID]; !ok {
			// Orphaned line (account deleted out-of-band); its contribution
			// is ignored rather than failing the whole computation.
			continue
		}
		raw[line.AccountID] = raw[line.AccountID].Add(line.Debit).Sub(line.Credit)
	}

	balances := make([]domain.AccountBalance, len(accounts))
	for i, acc := range accounts {
		r := raw[acc.AccountID]
		balances[i] = domain.AccountBalance{
			Account:        acc,
			RawBalance:     r,
			DisplayBalance: DisplayAmount(r, acc.NormalSide),
		}
	}

	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Code < balances[j].Code
	})
	return balances
}

// GrossTotals sums unsigned debit and credit totals per account, the figures
// a trial balance is built from.
func GrossTotals(lines []domain.JournalLine) (debits, credits map[string]decimal.Decimal) {
	debits = make(map[string]decimal.Decimal)
	credits = make(map[string]decimal.Decimal)
	for _, line := range lines {
		debits[line.AccountID] = debits[line.AccountID].Add(line.Debit)
		credits[line.AccountID] = credits[line.AccountID].Add(line.Credit)
	}
	return debits, credits
}

package accounting_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	"github.com/reymancasio5-bit/accountingproject/internal/utils/accounting"
)

func TestDisplayAmount_SignFlip(t *testing.T) {
	raw := decimal.NewFromInt(500)

	assert.True(t, accounting.DisplayAmount(raw, domain.DebitNormal).Equal(raw))
	assert.True(t, accounting.DisplayAmount(raw, domain.CreditNormal).Equal(raw.Neg()))
	assert.True(t, accounting.DisplayAmount(raw.Neg(), domain.CreditNormal).Equal(raw))
}

func TestDisplayAmount_FlipIsInvolution(t *testing.T) {
	// Re-signing twice restores the raw amount, for either side.
	for _, side := range []domain.NormalSide{domain.DebitNormal, domain.CreditNormal} {
		for _, raw := range []decimal.Decimal{
			decimal.NewFromInt(0),
			decimal.RequireFromString("123.45"),
			decimal.RequireFromString("-987.65"),
		} {
			flipped := accounting.DisplayAmount(accounting.DisplayAmount(raw, side), side)
			assert.True(t, flipped.Equal(raw), "side %s raw %s", side, raw)
		}
	}
}

func TestComputeBalances_SkipsOrphanedLines(t *testing.T) {
	cash := domain.Account{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", AccountType: domain.Asset, NormalSide: domain.DebitNormal}

	lines := []domain.JournalLine{
		{AccountID: cash.AccountID, Debit: decimal.NewFromInt(100)},
		{AccountID: uuid.NewString(), Credit: decimal.NewFromInt(100)}, // Deleted account
	}

	balances := accounting.ComputeBalances([]domain.Account{cash}, lines)

	require.Len(t, balances, 1)
	assert.True(t, balances[0].RawBalance.Equal(decimal.NewFromInt(100)))
}

func TestComputeBalances_OrderedByCode(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Code: "5100", AccountType: domain.Expense, NormalSide: domain.DebitNormal},
		{AccountID: uuid.NewString(), Code: "1000", AccountType: domain.Asset, NormalSide: domain.DebitNormal},
		{AccountID: uuid.NewString(), Code: "4000", AccountType: domain.Revenue, NormalSide: domain.CreditNormal},
	}

	balances := accounting.ComputeBalances(accounts, nil)

	require.Len(t, balances, 3)
	assert.Equal(t, "1000", balances[0].Code)
	assert.Equal(t, "4000", balances[1].Code)
	assert.Equal(t, "5100", balances[2].Code)
}

func TestComputeBalances_ZeroActivityIsZero(t *testing.T) {
	acc := domain.Account{AccountID: uuid.NewString(), Code: "3000", AccountType: domain.Equity, NormalSide: domain.CreditNormal}

	balances := accounting.ComputeBalances([]domain.Account{acc}, nil)

	require.Len(t, balances, 1)
	assert.True(t, balances[0].RawBalance.IsZero())
	assert.True(t, balances[0].DisplayBalance.IsZero())
}

func TestGrossTotals_SeparatesSides(t *testing.T) {
	cashID := uuid.NewString()
	lines := []domain.JournalLine{
		{AccountID: cashID, Debit: decimal.NewFromInt(1000)},
		{AccountID: cashID, Credit: decimal.NewFromInt(250)},
		{AccountID: cashID, Debit: decimal.NewFromInt(50)},
	}

	debits, credits := accounting.GrossTotals(lines)

	assert.True(t, debits[cashID].Equal(decimal.NewFromInt(1050)))
	assert.True(t, credits[cashID].Equal(decimal.NewFromInt(250)))
}

package services_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	portssvc "github.com/reymancasio5-bit/accountingproject/internal/core/ports/services"
	"github.com/reymancasio5-bit/accountingproject/internal/core/services"
)

type StatementServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockJournalRepo *MockJournalRepository
	service         *services.ReportingService

	cash     domain.Account
	loan     domain.Account
	capital  domain.Account
	sales    domain.Account
	cogs     domain.Account
	salaries domain.Account
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewReportingService(suite.mockAccountRepo, suite.mockJournalRepo, "5000")

	newAccount := func(code, name string, t domain.AccountType) domain.Account {
		return domain.Account{
			AccountID:   uuid.NewString(),
			Code:        code,
			Name:        name,
			AccountType: t,
			NormalSide:  domain.DefaultNormalSide(t),
		}
	}
	suite.cash = newAccount("1000", "Cash", domain.Asset)
	suite.loan = newAccount("2000", "Bank Loan", domain.Liability)
	suite.capital = newAccount("3000", "Owner Capital", domain.Equity)
	suite.sales = newAccount("4000", "Sales Revenue", domain.Revenue)
	suite.cogs = newAccount("5000", "Cost of Goods Sold", domain.Expense)
	suite.salaries = newAccount("5200", "Salaries Expense", domain.Expense)
}

func (suite *StatementServiceTestSuite) chart() []domain.Account {
	return []domain.Account{suite.cash, suite.loan, suite.capital, suite.sales, suite.cogs, suite.salaries}
}

func line(accountID string, debit, credit int64) domain.JournalLine {
	return domain.JournalLine{
		LineID:    uuid.NewString(),
		EntryID:   uuid.NewString(),
		AccountID: accountID,
		Debit:     decimal.NewFromInt(debit),
		Credit:    decimal.NewFromInt(credit),
	}
}

func (suite *StatementServiceTestSuite) expectSnapshot(lines []domain.JournalLine) {
	ctx := context.Background()
	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.chart(), nil).Once()
	suite.mockJournalRepo.On("ListLines", ctx).Return(lines, nil).Once()
}

func (suite *StatementServiceTestSuite) TestAccountBalances_SignFlip() {
	// One $500 cash sale: both accounts display positive even though their
	// raw balances carry opposite signs.
	lines := []domain.JournalLine{
		line(suite.cash.AccountID, 500, 0),
		line(suite.sales.AccountID, 0, 500),
	}
	suite.expectSnapshot(lines)

	balances, err := suite.service.AccountBalances(context.Background())

	suite.Require().NoError(err)
	byCode := make(map[string]domain.AccountBalance)
	for _, b := range balances {
		byCode[b.Code] = b
	}

	suite.True(byCode["1000"].RawBalance.Equal(decimal.NewFromInt(500)))
	suite.True(byCode["1000"].DisplayBalance.Equal(decimal.NewFromInt(500)))
	suite.True(byCode["4000"].RawBalance.Equal(decimal.NewFromInt(-500)))
	suite.True(byCode["4000"].DisplayBalance.Equal(decimal.NewFromInt(500)))
}

func (suite *StatementServiceTestSuite) TestTrialBalance_Duality() {
	lines := []domain.JournalLine{
		line(suite.cash.AccountID, 1000, 0),
		line(suite.capital.AccountID, 0, 1000),
		line(suite.salaries.AccountID, 250, 0),
		line(suite.cash.AccountID, 0, 250),
	}
	suite.expectSnapshot(lines)

	report, err := suite.service.TrialBalance(context.Background())

	suite.Require().NoError(err)
	suite.True(report.TotalDebit.Equal(report.TotalCredit))
	suite.True(report.Balanced)
	// Gross totals, not net: cash shows both its debit and credit activity.
	suite.Require().Len(report.Rows, 3)
	suite.Equal("1000", report.Rows[0].AccountCode)
	suite.True(report.Rows[0].Debit.Equal(decimal.NewFromInt(1000)))
	suite.True(report.Rows[0].Credit.Equal(decimal.NewFromInt(250)))
}

func (suite *StatementServiceTestSuite) TestTrialBalance_SkipsInactiveAccounts() {
	lines := []domain.JournalLine{
		line(suite.cash.AccountID, 100, 0),
		line(suite.sales.AccountID, 0, 100),
	}
	suite.expectSnapshot(lines)

	report, err := suite.service.TrialBalance(context.Background())

	suite.Require().NoError(err)
	for _, row := range report.Rows {
		suite.NotEqual("2000", row.AccountCode)
		suite.NotEqual("3000", row.AccountCode)
	}
}

func (suite *StatementServiceTestSuite) TestIncomeStatement_COGSSplit() {
	// $500 sale, $200 cost of goods, $100 salaries.
	lines := []domain.JournalLine{
		line(suite.cash.AccountID, 500, 0),
		line(suite.sales.AccountID, 0, 500),
		line(suite.cogs.AccountID, 200, 0),
		line(suite.cash.AccountID, 0, 200),
		line(suite.salaries.AccountID, 100, 0),
		line(suite.cash.AccountID, 0, 100),
	}
	suite.expectSnapshot(lines)

	report, err := suite.service.IncomeStatement(context.Background())

	suite.Require().NoError(err)
	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(500)))
	suite.True(report.TotalCOGS.Equal(decimal.NewFromInt(200)))
	suite.True(report.GrossProfit.Equal(decimal.NewFromInt(300)))
	suite.True(report.TotalOperating.Equal(decimal.NewFromInt(100)))
	suite.True(report.NetIncome.Equal(decimal.NewFromInt(200)))
	suite.Require().NotNil(report.CostOfGoodsSold)
	suite.Equal("5000", report.CostOfGoodsSold.AccountCode)
	suite.Require().Len(report.OperatingExpenses, 1)
	suite.Equal("5200", report.OperatingExpenses[0].AccountCode)
}

func (suite *StatementServiceTestSuite) TestIncomeStatement_ServiceBusiness() {
	// A pure service business never touches the COGS account.
	lines := []domain.JournalLine{
		line(suite.cash.AccountID, 500, 0),
		line(suite.sales.AccountID, 0, 500),
	}
	suite.expectSnapshot(lines)

	report, err := suite.service.IncomeStatement(context.Background())

	suite.Require().NoError(err)
	suite.Nil(report.CostOfGoodsSold)
	suite.True(report.TotalCOGS.IsZero())
	suite.True(report.GrossProfit.Equal(decimal.NewFromInt(500)))
	suite.True(report.NetIncome.Equal(decimal.NewFromInt(500)))
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_NetIncomeClosesEquation() {
	// Capital contribution, a loan, and a profitable sale. Without the
	// synthetic net income line the sheet cannot balance.
	lines := []domain.JournalLine{
		line(suite.cash.AccountID, 1000, 0),
		line(suite.capital.AccountID, 0, 1000),
		line(suite.cash.AccountID, 300, 0),
		line(suite.loan.AccountID, 0, 300),
		line(suite.cash.AccountID, 500, 0),
		line(suite.sales.AccountID, 0, 500),
	}
	suite.expectSnapshot(lines)

	report, err := suite.service.BalanceSheet(context.Background())

	suite.Require().NoError(err)
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(1800)))
	suite.True(report.TotalLiabilities.Equal(decimal.NewFromInt(300)))
	suite.True(report.NetIncome.Equal(decimal.NewFromInt(500)))
	suite.True(report.TotalEquity.Equal(decimal.NewFromInt(1500)))
	suite.True(report.TotalLiabilitiesEquity.Equal(report.TotalAssets))
	suite.True(report.Balanced)
}

func (suite *StatementServiceTestSuite) TestBalanceSheet_RandomBalancedLedgerAlwaysBalances() {
	// Property: any ledger built from balanced entries produces a balanced
	// sheet, whatever the mix of accounts.
	rng := rand.New(rand.NewSource(42))
	chart := suite.chart()

	var lines []domain.JournalLine
	for i := 0; i < 50; i++ {
		amount := int64(rng.Intn(10_000) + 1)
		debitAcc := chart[rng.Intn(len(chart))]
		creditAcc := chart[rng.Intn(len(chart))]
		lines = append(lines,
			line(debitAcc.AccountID, amount, 0),
			line(creditAcc.AccountID, 0, amount),
		)
	}
	suite.expectSnapshot(lines)

	report, err := suite.service.BalanceSheet(context.Background())

	suite.Require().NoError(err)
	suite.True(report.Balanced,
		"assets %s vs liabilities+equity %s", report.TotalAssets, report.TotalLiabilitiesEquity)
}

func (suite *StatementServiceTestSuite) TestGeneralLedger_RunningBalance() {
	ctx := context.Background()

	entryA := domain.JournalEntry{
		EntryID: uuid.NewString(),
		Date:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		},
	}
	entryB := domain.JournalEntry{
		EntryID: uuid.NewString(),
		Date:    time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2024, 1, 12, 9, 0, 0, 0, time.UTC),
		},
	}

	// Entry B is dated earlier even though it was created later; its cash
	// line must come first in the ledger.
	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: entryA.EntryID, AccountID: suite.cash.AccountID, Debit: decimal.NewFromInt(200), Seq: 0},
		{LineID: uuid.NewString(), EntryID: entryA.EntryID, AccountID: suite.sales.AccountID, Credit: decimal.NewFromInt(200), Seq: 1},
		{LineID: uuid.NewString(), EntryID: entryB.EntryID, AccountID: suite.cash.AccountID, Debit: decimal.NewFromInt(1000), Seq: 0},
		{LineID: uuid.NewString(), EntryID: entryB.EntryID, AccountID: suite.capital.AccountID, Credit: decimal.NewFromInt(1000), Seq: 1},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.chart(), nil).Once()
	suite.mockJournalRepo.On("ListLines", ctx).Return(lines, nil).Once()
	suite.mockJournalRepo.On("ListEntries", ctx).Return([]domain.JournalEntry{entryA, entryB}, nil).Once()

	report, err := suite.service.GeneralLedger(ctx, portssvc.GeneralLedgerFilter{AccountID: suite.cash.AccountID})

	suite.Require().NoError(err)
	suite.Require().Len(report.Accounts, 1)
	view := report.Accounts[0]
	suite.Equal("1000", view.AccountCode)
	suite.Require().Len(view.Lines, 2)
	suite.Equal(entryB.EntryID, view.Lines[0].EntryID)
	suite.True(view.Lines[0].RunningBalance.Equal(decimal.NewFromInt(1000)))
	suite.True(view.Lines[1].RunningBalance.Equal(decimal.NewFromInt(1200)))
	suite.True(view.EndBalance.Equal(decimal.NewFromInt(1200)))
}

func (suite *StatementServiceTestSuite) TestGeneralLedger_DateFilter() {
	ctx := context.Background()

	early := domain.JournalEntry{EntryID: uuid.NewString(), Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)}
	late := domain.JournalEntry{EntryID: uuid.NewString(), Date: time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)}

	lines := []domain.JournalLine{
		{LineID: uuid.NewString(), EntryID: early.EntryID, AccountID: suite.cash.AccountID, Debit: decimal.NewFromInt(100), Seq: 0},
		{LineID: uuid.NewString(), EntryID: early.EntryID, AccountID: suite.sales.AccountID, Credit: decimal.NewFromInt(100), Seq: 1},
		{LineID: uuid.NewString(), EntryID: late.EntryID, AccountID: suite.cash.AccountID, Debit: decimal.NewFromInt(50), Seq: 0},
		{LineID: uuid.NewString(), EntryID: late.EntryID, AccountID: suite.sales.AccountID, Credit: decimal.NewFromInt(50), Seq: 1},
	}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(suite.chart(), nil).Once()
	suite.mockJournalRepo.On("ListLines", ctx).Return(lines, nil).Once()
	suite.mockJournalRepo.On("ListEntries", ctx).Return([]domain.JournalEntry{early, late}, nil).Once()

	from := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	report, err := suite.service.GeneralLedger(ctx, portssvc.GeneralLedgerFilter{AccountID: suite.cash.AccountID, From: &from})

	suite.Require().NoError(err)
	suite.Require().Len(report.Accounts, 1)
	suite.Require().Len(report.Accounts[0].Lines, 1)
	suite.Equal(late.EntryID, report.Accounts[0].Lines[0].EntryID)
}

func TestStatementServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}

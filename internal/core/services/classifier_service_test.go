package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/reymancasio5-bit/accountingproject/internal/apperrors"
	"github.com/reymancasio5-bit/accountingproject/internal/core/domain"
	"github.com/reymancasio5-bit/accountingproject/internal/core/services"
	"github.com/reymancasio5-bit/accountingproject/internal/dto"
)

// MockJournalService is a mock type for the JournalSvcFacade interface
type MockJournalService struct {
	mock.Mock
}

func (m *MockJournalService) PostEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListEntries(ctx context.Context) ([]domain.JournalEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

// --- Classify (pure function) ---

func TestClassify_ExpenseLineWithFormattedAmount(t *testing.T) {
	items := services.Classify("Office Rent Expense $1,250.00")

	require.Len(t, items, 1)
	assert.Equal(t, domain.CandidateExpense, items[0].Category)
	assert.True(t, items[0].Amount.Equal(decimal.RequireFromString("1250.00")))
	assert.Equal(t, "Office Rent Expense", items[0].Description)
	assert.Equal(t, "Office Rent Expense $1,250.00", items[0].OriginalLine)
}

func TestClassify_LastNumberWins(t *testing.T) {
	items := services.Classify("Invoice 42 consulting services 3500.00")

	require.Len(t, items, 1)
	assert.Equal(t, domain.CandidateRevenue, items[0].Category)
	assert.True(t, items[0].Amount.Equal(decimal.RequireFromString("3500.00")))
}

func TestClassify_CategoryPriority(t *testing.T) {
	// "equipment" (asset) outranks "expense" when both appear on one line.
	items := services.Classify("Equipment purchase expense 2000.00")

	require.Len(t, items, 1)
	assert.Equal(t, domain.CandidateAsset, items[0].Category)
}

func TestClassify_DropRules(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no amount", "Office rent payment due soon"},
		{"no keyword", "Miscellaneous payment 500.00"},
		{"amount below one", "Rent expense 0.50"},
		{"degenerate description", "Fee 99.00"},
		{"blank line", "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, services.Classify(tt.text))
		})
	}
}

func TestClassify_MultiLineDocument(t *testing.T) {
	text := "ACME Corp Statement\n" +
		"Office Rent Expense $1,250.00\n" +
		"Consulting revenue 3000.00\n" +
		"Bank loan proceeds 5000.00\n" +
		"Total pages: 3\n"

	items := services.Classify(text)

	require.Len(t, items, 3)
	assert.Equal(t, domain.CandidateExpense, items[0].Category)
	assert.Equal(t, domain.CandidateRevenue, items[1].Category)
	assert.Equal(t, domain.CandidateLiability, items[2].Category)
}

func TestClassify_Deterministic(t *testing.T) {
	text := "Rent expense 800.00\nSales revenue $1,200.00\nEquipment 4,000.00"

	first := services.Classify(text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, services.Classify(text))
	}
}

func TestClassify_TruncatesLongDescriptions(t *testing.T) {
	long := "Rent expense for the downtown satellite office including parking spaces and storage 950.00"

	items := services.Classify(long)

	require.Len(t, items, 1)
	assert.LessOrEqual(t, len(items[0].Description), 60)
	assert.Equal(t, long, items[0].OriginalLine)
}

// --- MapToJournalEntries (default-account policy) ---

func testChart() []domain.Account {
	newAccount := func(code, name string, t domain.AccountType) domain.Account {
		return domain.Account{
			AccountID:   uuid.NewString(),
			Code:        code,
			Name:        name,
			AccountType: t,
			NormalSide:  domain.DefaultNormalSide(t),
		}
	}
	return []domain.Account{
		newAccount("1000", "Cash", domain.Asset),
		newAccount("1500", "Equipment", domain.Asset),
		newAccount("2000", "Bank Loan", domain.Liability),
		newAccount("4000", "Sales Revenue", domain.Revenue),
		newAccount("5100", "Rent Expense", domain.Expense),
	}
}

func findByCode(t *testing.T, accounts []domain.Account, code string) domain.Account {
	t.Helper()
	for _, acc := range accounts {
		if acc.Code == code {
			return acc
		}
	}
	t.Fatalf("no account with code %s", code)
	return domain.Account{}
}

func TestMapToJournalEntries_DefaultPolicy(t *testing.T) {
	chart := testChart()
	cash := findByCode(t, chart, "1000")
	equipment := findByCode(t, chart, "1500")
	loan := findByCode(t, chart, "2000")
	sales := findByCode(t, chart, "4000")
	rent := findByCode(t, chart, "5100")

	items := []domain.CandidateLineItem{
		{Description: "Equipment purchase", Amount: decimal.NewFromInt(4000), Category: domain.CandidateAsset},
		{Description: "Bank loan proceeds", Amount: decimal.NewFromInt(5000), Category: domain.CandidateLiability},
		{Description: "Consulting revenue", Amount: decimal.NewFromInt(3000), Category: domain.CandidateRevenue},
		{Description: "Office rent", Amount: decimal.NewFromInt(1250), Category: domain.CandidateExpense},
	}

	candidates := services.MapToJournalEntries(items, chart, "1000")
	require.Len(t, candidates, 4)

	// Asset: debit the non-cash asset, credit cash.
	assert.Equal(t, equipment.AccountID, candidates[0].DebitAccountID)
	assert.Equal(t, cash.AccountID, candidates[0].CreditAccountID)
	// Liability: debit cash, credit the liability.
	assert.Equal(t, cash.AccountID, candidates[1].DebitAccountID)
	assert.Equal(t, loan.AccountID, candidates[1].CreditAccountID)
	// Revenue: debit cash, credit revenue.
	assert.Equal(t, cash.AccountID, candidates[2].DebitAccountID)
	assert.Equal(t, sales.AccountID, candidates[2].CreditAccountID)
	// Expense: debit the expense, credit cash.
	assert.Equal(t, rent.AccountID, candidates[3].DebitAccountID)
	assert.Equal(t, cash.AccountID, candidates[3].CreditAccountID)

	for _, c := range candidates {
		assert.False(t, c.NeedsReview)
	}
}

func TestMapToJournalEntries_FallbackNeedsReview(t *testing.T) {
	// Chart with no liability accounts: the liability candidate falls back
	// to the first account and is flagged.
	chart := []domain.Account{
		{AccountID: uuid.NewString(), Code: "1000", Name: "Cash", AccountType: domain.Asset, NormalSide: domain.DebitNormal},
	}

	items := []domain.CandidateLineItem{
		{Description: "Bank loan proceeds", Amount: decimal.NewFromInt(5000), Category: domain.CandidateLiability},
	}

	candidates := services.MapToJournalEntries(items, chart, "1000")

	require.Len(t, candidates, 1)
	assert.True(t, candidates[0].NeedsReview)
	assert.Equal(t, chart[0].AccountID, candidates[0].CreditAccountID)
}

func TestMapToJournalEntries_EmptyChart(t *testing.T) {
	items := []domain.CandidateLineItem{
		{Description: "Office rent", Amount: decimal.NewFromInt(1250), Category: domain.CandidateExpense},
	}

	assert.Empty(t, services.MapToJournalEntries(items, nil, "1000"))
}

// --- ClassifierService ---

type ClassifierServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockJournalSvc  *MockJournalService
	service         *services.ClassifierService
}

func (suite *ClassifierServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockJournalSvc = new(MockJournalService)
	suite.service = services.NewClassifierService(suite.mockAccountRepo, suite.mockJournalSvc, "1000")
}

func (suite *ClassifierServiceTestSuite) TestProposeEntries_Success() {
	ctx := context.Background()
	chart := testChart()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(chart, nil).Once()

	candidates, err := suite.service.ProposeEntries(ctx, "Office Rent Expense $1,250.00")

	suite.Require().NoError(err)
	suite.Require().Len(candidates, 1)
	suite.Equal(domain.CandidateExpense, candidates[0].Category)
	suite.False(candidates[0].NeedsReview)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *ClassifierServiceTestSuite) TestProposeEntries_NothingRecognized() {
	ctx := context.Background()

	candidates, err := suite.service.ProposeEntries(ctx, "page 1 of 3\nthank you for your business")

	suite.Require().NoError(err)
	suite.Empty(candidates)
	// No account fetch when nothing was recognized
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything)
}

func (suite *ClassifierServiceTestSuite) TestProposeEntries_EmptyChart() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()

	candidates, err := suite.service.ProposeEntries(ctx, "Office Rent Expense $1,250.00")

	suite.Require().Error(err)
	suite.Nil(candidates)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClassifierServiceTestSuite) TestCommitCandidates_PostsTwoLineEntries() {
	ctx := context.Background()
	debitID := uuid.NewString()
	creditID := uuid.NewString()
	req := dto.CommitCandidatesRequest{
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Candidates: []dto.CommitCandidateRequest{
			{
				Description:     "Office rent",
				Amount:          decimal.NewFromInt(1250),
				DebitAccountID:  debitID,
				CreditAccountID: creditID,
			},
		},
	}

	suite.mockJournalSvc.On("PostEntry", ctx, mock.MatchedBy(func(er dto.CreateEntryRequest) bool {
		return len(er.Lines) == 2 &&
			er.Lines[0].AccountID == debitID && er.Lines[0].Debit.Equal(decimal.NewFromInt(1250)) &&
			er.Lines[1].AccountID == creditID && er.Lines[1].Credit.Equal(decimal.NewFromInt(1250))
	})).Return(&domain.JournalEntry{EntryID: uuid.NewString(), Status: domain.Posted}, nil).Once()

	entries, err := suite.service.CommitCandidates(ctx, req)

	suite.Require().NoError(err)
	suite.Len(entries, 1)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *ClassifierServiceTestSuite) TestCommitCandidates_StopsOnFailure() {
	ctx := context.Background()
	good := dto.CommitCandidateRequest{
		Description:     "Office rent",
		Amount:          decimal.NewFromInt(1250),
		DebitAccountID:  uuid.NewString(),
		CreditAccountID: uuid.NewString(),
	}
	bad := dto.CommitCandidateRequest{
		Description:     "Ghost account",
		Amount:          decimal.NewFromInt(100),
		DebitAccountID:  uuid.NewString(),
		CreditAccountID: uuid.NewString(),
	}
	req := dto.CommitCandidatesRequest{
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Candidates: []dto.CommitCandidateRequest{good, bad},
	}

	suite.mockJournalSvc.On("PostEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest")).
		Return(&domain.JournalEntry{EntryID: uuid.NewString()}, nil).Once()
	suite.mockJournalSvc.On("PostEntry", ctx, mock.AnythingOfType("dto.CreateEntryRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	entries, err := suite.service.CommitCandidates(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Len(entries, 1)
	suite.mockJournalSvc.AssertExpectations(suite.T())
}

func (suite *ClassifierServiceTestSuite) TestCommitCandidates_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CommitCandidatesRequest{
		Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Candidates: []dto.CommitCandidateRequest{
			{
				Description:     "Zero amount",
				Amount:          decimal.Zero,
				DebitAccountID:  uuid.NewString(),
				CreditAccountID: uuid.NewString(),
			},
		},
	}

	entries, err := suite.service.CommitCandidates(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(entries)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "PostEntry", mock.Anything, mock.Anything)
}

func TestClassifierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClassifierServiceTestSuite))
}

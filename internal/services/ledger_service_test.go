package services

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/database"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceSuite))
}

type LedgerServiceSuite struct {
	suite.Suite
	db      *database.DB
	views   *cache.MemoryStore
	repo    repositories.TransactionRepositoryInterface
	service LedgerServiceInterface
	ownerID uuid.UUID
	ctx     context.Context
}

func (s *LedgerServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.views = cache.NewMemoryStore()

	base := repositories.NewTransactionRepository(s.db.DB)
	s.repo = repositories.NewInvalidatingTransactionRepository(base, s.views)
	s.service = NewLedgerService(s.repo, s.views, NewNoopMetrics())
	s.ownerID = uuid.New()
	s.ctx = context.Background()
}

func (s *LedgerServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *LedgerServiceSuite) addTransaction(kind, amount string, createdAt time.Time, tags ...string) *models.Transaction {
	transaction := &models.Transaction{
		OwnerID:     s.ownerID,
		Kind:        kind,
		Amount:      decimal.RequireFromString(amount),
		Description: gofakeit.ProductName(),
		CreatedAt:   createdAt,
	}
	transaction.SetTags(tags)
	s.Require().NoError(s.repo.Create(transaction))
	return transaction
}

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC)
}

func (s *LedgerServiceSuite) TestComputeBalance() {
	s.addTransaction(models.LedgerKindInflow, "100.00", date(2024, time.January))
	s.addTransaction(models.LedgerKindInflow, "50.00", date(2024, time.February))
	s.addTransaction(models.LedgerKindExpense, "40.00", date(2024, time.February))

	snapshot, err := s.service.ComputeBalance(s.ctx, s.ownerID)
	s.NoError(err)
	s.True(snapshot.TotalInflows.Equal(decimal.RequireFromString("150.00")))
	s.True(snapshot.TotalExpenses.Equal(decimal.RequireFromString("40.00")))
	s.True(snapshot.Balance.Equal(decimal.RequireFromString("110.00")))
}

func (s *LedgerServiceSuite) TestComputeBalance_EmptyOwnerIsZero() {
	snapshot, err := s.service.ComputeBalance(s.ctx, s.ownerID)
	s.NoError(err)
	s.True(snapshot.TotalInflows.IsZero())
	s.True(snapshot.TotalExpenses.IsZero())
	s.True(snapshot.Balance.IsZero())
}

func (s *LedgerServiceSuite) TestComputeMonthlyBalance_TwelveZeroFilledBuckets() {
	s.addTransaction(models.LedgerKindInflow, "100.00", date(2024, time.March))
	s.addTransaction(models.LedgerKindExpense, "30.00", date(2024, time.March))
	s.addTransaction(models.LedgerKindExpense, "10.00", date(2024, time.November))
	// Activity outside the requested year is excluded
	s.addTransaction(models.LedgerKindInflow, "999.00", date(2023, time.March))

	buckets, err := s.service.ComputeMonthlyBalance(s.ctx, s.ownerID, 2024)
	s.NoError(err)
	s.Require().Len(buckets, 12)

	for i, bucket := range buckets {
		s.Equal(2024, bucket.Year)
		s.Equal(i+1, bucket.Month)
	}

	march := buckets[2]
	s.True(march.Inflow.Equal(decimal.RequireFromString("100.00")))
	s.True(march.Expense.Equal(decimal.RequireFromString("30.00")))
	s.True(march.Balance.Equal(decimal.RequireFromString("70.00")))

	november := buckets[10]
	s.True(november.Balance.Equal(decimal.RequireFromString("-10.00")))

	// Untouched months stay zero
	s.True(buckets[0].Inflow.IsZero())
	s.True(buckets[0].Expense.IsZero())
	s.True(buckets[0].Balance.IsZero())
}

func (s *LedgerServiceSuite) TestComputeBalanceHistory_CumulativeRunningBalance() {
	s.addTransaction(models.LedgerKindInflow, "100.00", date(2024, time.January))
	s.addTransaction(models.LedgerKindExpense, "40.00", date(2024, time.February))

	buckets, err := s.service.ComputeBalanceHistory(s.ctx, s.ownerID)
	s.NoError(err)
	s.Require().Len(buckets, 2)

	january := buckets[0]
	s.Equal(models.PeriodKey{Year: 2024, Month: 1}, january.PeriodKey)
	s.True(january.Inflow.Equal(decimal.RequireFromString("100.00")))
	s.True(january.Expense.IsZero())
	s.True(january.Balance.Equal(decimal.RequireFromString("100.00")))
	s.True(january.CumulativeBalance.Equal(decimal.RequireFromString("100.00")))

	february := buckets[1]
	s.Equal(models.PeriodKey{Year: 2024, Month: 2}, february.PeriodKey)
	s.True(february.Inflow.IsZero())
	s.True(february.Expense.Equal(decimal.RequireFromString("40.00")))
	s.True(february.Balance.Equal(decimal.RequireFromString("-40.00")))
	s.True(february.CumulativeBalance.Equal(decimal.RequireFromString("60.00")))
}

func (s *LedgerServiceSuite) TestComputeBalanceHistory_SkipsInactiveMonths() {
	s.addTransaction(models.LedgerKindInflow, "100.00", date(2023, time.December))
	s.addTransaction(models.LedgerKindExpense, "20.00", date(2024, time.March))

	buckets, err := s.service.ComputeBalanceHistory(s.ctx, s.ownerID)
	s.NoError(err)
	s.Require().Len(buckets, 2)
	s.Equal(models.PeriodKey{Year: 2023, Month: 12}, buckets[0].PeriodKey)
	s.Equal(models.PeriodKey{Year: 2024, Month: 3}, buckets[1].PeriodKey)
	s.True(buckets[1].CumulativeBalance.Equal(decimal.RequireFromString("80.00")))
}

func (s *LedgerServiceSuite) TestComputeBalanceHistory_EmptyOwner() {
	buckets, err := s.service.ComputeBalanceHistory(s.ctx, s.ownerID)
	s.NoError(err)
	s.Empty(buckets)
}

func (s *LedgerServiceSuite) TestComputeTagStatistics() {
	s.addTransaction(models.LedgerKindExpense, "10.00", date(2024, time.January), "food", "weekly")
	s.addTransaction(models.LedgerKindExpense, "20.00", date(2024, time.February), "food")
	s.addTransaction(models.LedgerKindExpense, "5.00", date(2024, time.February), "fuel")

	stats, err := s.service.ComputeTagStatistics(s.ctx, s.ownerID, models.LedgerKindExpense)
	s.NoError(err)
	s.Require().Len(stats, 3)

	// Most used first
	s.Equal("food", stats[0].Tag)
	s.Equal(int64(2), stats[0].Count)
	s.True(stats[0].TotalAmount.Equal(decimal.RequireFromString("30.00")))

	// Count ties are broken by tag name ascending
	s.Equal("fuel", stats[1].Tag)
	s.Equal("weekly", stats[2].Tag)
	s.Equal(int64(1), stats[1].Count)
	s.True(stats[2].TotalAmount.Equal(decimal.RequireFromString("10.00")))
}

func (s *LedgerServiceSuite) TestComputeTagStatistics_InvalidKind() {
	_, err := s.service.ComputeTagStatistics(s.ctx, s.ownerID, "transfer")
	s.ErrorIs(err, models.ErrInvalidLedgerKind)

	_, err = s.service.ComputeTagStatistics(s.ctx, s.ownerID, "")
	s.ErrorIs(err, models.ErrInvalidLedgerKind)
}

func (s *LedgerServiceSuite) TestComputeTagStatistics_KindsAreNeverMerged() {
	s.addTransaction(models.LedgerKindInflow, "100.00", date(2024, time.January), "salary")
	s.addTransaction(models.LedgerKindExpense, "40.00", date(2024, time.January), "salary")

	inflowStats, err := s.service.ComputeTagStatistics(s.ctx, s.ownerID, models.LedgerKindInflow)
	s.NoError(err)
	s.Require().Len(inflowStats, 1)
	s.Equal(int64(1), inflowStats[0].Count)
	s.True(inflowStats[0].TotalAmount.Equal(decimal.RequireFromString("100.00")))

	expenseStats, err := s.service.ComputeTagStatistics(s.ctx, s.ownerID, models.LedgerKindExpense)
	s.NoError(err)
	s.Require().Len(expenseStats, 1)
	s.True(expenseStats[0].TotalAmount.Equal(decimal.RequireFromString("40.00")))
}

func (s *LedgerServiceSuite) TestComputeTopTags_RankedByAmount() {
	s.addTransaction(models.LedgerKindExpense, "5.00", date(2024, time.January), "coffee")
	s.addTransaction(models.LedgerKindExpense, "5.00", date(2024, time.February), "coffee")
	s.addTransaction(models.LedgerKindExpense, "500.00", date(2024, time.January), "rent")
	s.addTransaction(models.LedgerKindInflow, "100.00", date(2024, time.January), "salary")

	top, err := s.service.ComputeTopTags(s.ctx, s.ownerID)
	s.NoError(err)

	// Expense ranking is by total amount, not use count
	s.Require().Len(top.ExpenseTags, 2)
	s.Equal("rent", top.ExpenseTags[0].Tag)
	s.Equal("coffee", top.ExpenseTags[1].Tag)
	s.True(top.ExpenseTags[1].TotalAmount.Equal(decimal.RequireFromString("10.00")))

	s.Require().Len(top.InflowTags, 1)
	s.Equal("salary", top.InflowTags[0].Tag)
}

func (s *LedgerServiceSuite) TestComputeFinancialSummary() {
	s.addTransaction(models.LedgerKindInflow, "100.00", date(2024, time.January))
	s.addTransaction(models.LedgerKindInflow, "200.00", date(2024, time.February))
	s.addTransaction(models.LedgerKindExpense, "30.00", date(2024, time.January))

	summary, err := s.service.ComputeFinancialSummary(s.ctx, s.ownerID)
	s.NoError(err)

	s.True(summary.Balance.Balance.Equal(decimal.RequireFromString("270.00")))

	s.Equal(int64(2), summary.Inflow.TransactionCount)
	s.True(summary.Inflow.AverageAmount.Equal(decimal.RequireFromString("150.00")))
	// Two inflow transactions across two active months
	s.True(summary.Inflow.AverageMonthlyAmount.Equal(decimal.RequireFromString("150.00")))

	s.Equal(int64(1), summary.Expense.TransactionCount)
	s.True(summary.Expense.AverageAmount.Equal(decimal.RequireFromString("30.00")))
	s.True(summary.Expense.AverageMonthlyAmount.Equal(decimal.RequireFromString("30.00")))
}

func (s *LedgerServiceSuite) TestComputeFinancialSummary_EmptyLedgersAreZero() {
	s.addTransaction(models.LedgerKindInflow, "100.00", date(2024, time.January))

	summary, err := s.service.ComputeFinancialSummary(s.ctx, s.ownerID)
	s.NoError(err)

	s.Equal(int64(0), summary.Expense.TransactionCount)
	s.True(summary.Expense.AverageAmount.IsZero())
	s.True(summary.Expense.AverageMonthlyAmount.IsZero())
}

func (s *LedgerServiceSuite) TestViews_AreCachedPerOwner() {
	s.addTransaction(models.LedgerKindInflow, "100.00", date(2024, time.January))

	first, err := s.service.ComputeBalance(s.ctx, s.ownerID)
	s.NoError(err)

	// A write that bypasses the invalidating repository is not observed:
	// the second read is served from the cached view.
	rogue := &models.Transaction{
		OwnerID:     s.ownerID,
		Kind:        models.LedgerKindInflow,
		Amount:      decimal.RequireFromString("50.00"),
		Description: "bypass",
	}
	s.Require().NoError(s.db.Create(rogue).Error)

	second, err := s.service.ComputeBalance(s.ctx, s.ownerID)
	s.NoError(err)
	s.True(second.TotalInflows.Equal(first.TotalInflows))
}

func (s *LedgerServiceSuite) TestViews_InvalidatedByMutations() {
	transaction := s.addTransaction(models.LedgerKindInflow, "100.00", date(2024, time.January))
	s.addTransaction(models.LedgerKindExpense, "40.00", date(2024, time.February))

	snapshot, err := s.service.ComputeBalance(s.ctx, s.ownerID)
	s.NoError(err)
	s.True(snapshot.Balance.Equal(decimal.RequireFromString("60.00")))

	// Deleting through the repository invalidates the cached view before the
	// call returns, so the next read recomputes.
	s.Require().NoError(s.repo.SoftDelete(s.ownerID, transaction.ID))

	snapshot, err = s.service.ComputeBalance(s.ctx, s.ownerID)
	s.NoError(err)
	s.True(snapshot.Balance.Equal(decimal.RequireFromString("-40.00")))
}

// A compute that fetched its rows before a mutation must not write its result
// back after that mutation's invalidation has completed, or every later read
// would be served the pre-mutation aggregate from cache.
func TestComputeBalance_InvalidationDuringComputeIsNotOverwritten(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository_mocks.NewMockTransactionRepositoryInterface(ctrl)
	views := cache.NewMemoryStore()
	service := NewLedgerService(mockRepo, views, NewNoopMetrics())
	ownerID := uuid.New()
	ctx := context.Background()

	preMutation := []models.Transaction{{
		ID:      uuid.New(),
		OwnerID: ownerID,
		Kind:    models.LedgerKindInflow,
		Amount:  decimal.RequireFromString("100.00"),
	}}

	gomock.InOrder(
		// A delete commits and completes its invalidation while the fetched
		// rows are still in flight
		mockRepo.EXPECT().
			FindAllForOwner(gomock.Any(), ownerID, "").
			DoAndReturn(func(context.Context, uuid.UUID, string) ([]models.Transaction, error) {
				require.NoError(t, views.Invalidate(ownerID))
				return preMutation, nil
			}),
		mockRepo.EXPECT().
			FindAllForOwner(gomock.Any(), ownerID, "").
			Return([]models.Transaction{}, nil),
	)

	// The first compute still answers from the rows it fetched
	first, err := service.ComputeBalance(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, first.Balance.Equal(decimal.RequireFromString("100.00")))

	// A read issued after the invalidation returned must recompute, not be
	// served the stale write-back
	second, err := service.ComputeBalance(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, second.Balance.IsZero())
}

func (s *LedgerServiceSuite) TestViews_OtherOwnersUnaffectedByInvalidation() {
	otherID := uuid.New()
	other := &models.Transaction{
		OwnerID:     otherID,
		Kind:        models.LedgerKindInflow,
		Amount:      decimal.RequireFromString("10.00"),
		Description: "other owner",
	}
	s.Require().NoError(s.repo.Create(other))

	_, err := s.service.ComputeBalance(s.ctx, otherID)
	s.NoError(err)

	// Mutating one owner leaves the other owner's cached views in place
	s.addTransaction(models.LedgerKindInflow, "100.00", date(2024, time.January))
	_, cached := s.views.Get(otherID, cache.ViewBalance)
	s.True(cached)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type ledgerService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	views           cache.Store
	metrics         MetricsRecorderInterface
}

// NewLedgerService creates the aggregation engine backed by the given
// repository and derived-view cache.
func NewLedgerService(
	transactionRepo repositories.TransactionRepositoryInterface,
	views cache.Store,
	metrics MetricsRecorderInterface,
) LedgerServiceInterface {
	return &ledgerService{
		transactionRepo: transactionRepo,
		views:           views,
		metrics:         metrics,
	}
}

// ComputeBalance sums each ledger and nets them. Both totals are zero, not
// absent, when the owner has no transactions.
func (s *ledgerService) ComputeBalance(ctx context.Context, ownerID uuid.UUID) (*models.BalanceSnapshot, error) {
	if snapshot, ok := cachedView[models.BalanceSnapshot](s, ownerID, cache.ViewBalance); ok {
		return &snapshot, nil
	}

	started := time.Now()
	epoch := s.views.Epoch(ownerID)
	transactions, err := s.transactionRepo.FindAllForOwner(ctx, ownerID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	inflows, expenses := decimal.Zero, decimal.Zero
	for i := range transactions {
		if transactions[i].Kind == models.LedgerKindInflow {
			inflows = inflows.Add(transactions[i].Amount)
		} else {
			expenses = expenses.Add(transactions[i].Amount)
		}
	}

	snapshot := models.NewBalanceSnapshot(inflows, expenses)
	s.storeView(ownerID, cache.ViewBalance, snapshot, epoch, started)
	return &snapshot, nil
}

// ComputeMonthlyBalance returns exactly 12 buckets for months 1..12 of the
// given year, in order, zero-filled where the owner had no activity. The
// buckets carry no running total.
func (s *ledgerService) ComputeMonthlyBalance(ctx context.Context, ownerID uuid.UUID, year int) ([]models.PeriodBucket, error) {
	view := cache.ViewMonthly(year)
	if buckets, ok := cachedView[[]models.PeriodBucket](s, ownerID, view); ok {
		return buckets, nil
	}

	started := time.Now()
	epoch := s.views.Epoch(ownerID)
	transactions, err := s.transactionRepo.FindAllForOwner(ctx, ownerID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	buckets := make([]models.PeriodBucket, 12)
	for month := 1; month <= 12; month++ {
		buckets[month-1] = models.ZeroPeriodBucket(models.PeriodKey{Year: year, Month: month})
	}

	for i := range transactions {
		txn := &transactions[i]
		period := txn.Period()
		if period.Year != year {
			continue
		}

		bucket := &buckets[period.Month-1]
		if txn.Kind == models.LedgerKindInflow {
			bucket.Inflow = bucket.Inflow.Add(txn.Amount)
		} else {
			bucket.Expense = bucket.Expense.Add(txn.Amount)
		}
		bucket.Balance = bucket.Inflow.Sub(bucket.Expense)
	}

	s.storeView(ownerID, view, buckets, epoch, started)
	return buckets, nil
}

// ComputeBalanceHistory merges the two ledgers' per-period aggregates over
// the union of their (year, month) keys, zero-filling the missing side, and
// folds a running cumulative balance across the sorted sequence. The two
// per-ledger fetches are independent reads and run concurrently; the caller's
// context aborts both together.
func (s *ledgerService) ComputeBalanceHistory(ctx context.Context, ownerID uuid.UUID) ([]models.PeriodBucket, error) {
	if buckets, ok := cachedView[[]models.PeriodBucket](s, ownerID, cache.ViewHistory); ok {
		return buckets, nil
	}

	started := time.Now()
	epoch := s.views.Epoch(ownerID)
	inflows, expenses, err := s.fetchLedgers(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	inflowTotals := totalsByPeriod(inflows)
	expenseTotals := totalsByPeriod(expenses)

	keys := make([]models.PeriodKey, 0, len(inflowTotals)+len(expenseTotals))
	for key := range inflowTotals {
		keys = append(keys, key)
	}
	for key := range expenseTotals {
		if _, seen := inflowTotals[key]; !seen {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	buckets := make([]models.PeriodBucket, 0, len(keys))
	cumulative := decimal.Zero
	for _, key := range keys {
		bucket := models.ZeroPeriodBucket(key)
		if total, ok := inflowTotals[key]; ok {
			bucket.Inflow = total
		}
		if total, ok := expenseTotals[key]; ok {
			bucket.Expense = total
		}
		bucket.Balance = bucket.Inflow.Sub(bucket.Expense)
		cumulative = cumulative.Add(bucket.Balance)
		bucket.CumulativeBalance = cumulative
		buckets = append(buckets, bucket)
	}

	s.storeView(ownerID, cache.ViewHistory, buckets, epoch, started)
	return buckets, nil
}

// ComputeTagStatistics expands one ledger's transactions into one row per
// tag, then groups by tag with a count and amount sum. Results are ordered by
// count descending; ties are broken by tag name ascending so the order is
// deterministic.
func (s *ledgerService) ComputeTagStatistics(ctx context.Context, ownerID uuid.UUID, kind string) ([]models.TagStatistic, error) {
	if !models.IsValidLedgerKind(kind) {
		return nil, models.ErrInvalidLedgerKind
	}

	view := cache.ViewTagStats(kind)
	if stats, ok := cachedView[[]models.TagStatistic](s, ownerID, view); ok {
		return stats, nil
	}

	started := time.Now()
	epoch := s.views.Epoch(ownerID)
	transactions, err := s.transactionRepo.FindAllForOwner(ctx, ownerID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	stats := tagStatistics(transactions)
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Tag < stats[j].Tag
	})

	s.storeView(ownerID, view, stats, epoch, started)
	return stats, nil
}

// ComputeTopTags ranks each ledger's tags by total amount. The two rankings
// are returned side by side and never merged, even when tag text coincides
// across ledgers.
func (s *ledgerService) ComputeTopTags(ctx context.Context, ownerID uuid.UUID) (*models.TopTags, error) {
	if top, ok := cachedView[models.TopTags](s, ownerID, cache.ViewTopTags); ok {
		return &top, nil
	}

	started := time.Now()
	epoch := s.views.Epoch(ownerID)
	inflowStats, err := s.ComputeTagStatistics(ctx, ownerID, models.LedgerKindInflow)
	if err != nil {
		return nil, err
	}
	expenseStats, err := s.ComputeTagStatistics(ctx, ownerID, models.LedgerKindExpense)
	if err != nil {
		return nil, err
	}

	top := models.TopTags{
		InflowTags:  rankByAmount(inflowStats),
		ExpenseTags: rankByAmount(expenseStats),
	}

	s.storeView(ownerID, cache.ViewTopTags, top, epoch, started)
	return &top, nil
}

// ComputeFinancialSummary combines the balance snapshot with per-ledger
// counts and averages. Averages over an empty ledger are zero; no division
// happens when a denominator would be zero.
func (s *ledgerService) ComputeFinancialSummary(ctx context.Context, ownerID uuid.UUID) (*models.FinancialSummary, error) {
	if summary, ok := cachedView[models.FinancialSummary](s, ownerID, cache.ViewSummary); ok {
		return &summary, nil
	}

	started := time.Now()
	epoch := s.views.Epoch(ownerID)
	inflows, expenses, err := s.fetchLedgers(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summary := models.FinancialSummary{
		Balance: models.NewBalanceSnapshot(ledgerTotal(inflows), ledgerTotal(expenses)),
		Inflow:  ledgerStatistics(inflows),
		Expense: ledgerStatistics(expenses),
	}

	slog.Info("financial summary computed",
		"owner_id", ownerID,
		"inflow_count", summary.Inflow.TransactionCount,
		"expense_count", summary.Expense.TransactionCount,
		"balance", summary.Balance.Balance.String())

	s.storeView(ownerID, cache.ViewSummary, summary, epoch, started)
	return &summary, nil
}

// fetchLedgers loads both ledgers concurrently. The fetches are independent
// reads; ctx cancellation aborts both together.
func (s *ledgerService) fetchLedgers(ctx context.Context, ownerID uuid.UUID) (inflows, expenses []models.Transaction, err error) {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var fetchErr error
		inflows, fetchErr = s.transactionRepo.FindAllForOwner(gctx, ownerID, models.LedgerKindInflow)
		return fetchErr
	})
	g.Go(func() error {
		var fetchErr error
		expenses, fetchErr = s.transactionRepo.FindAllForOwner(gctx, ownerID, models.LedgerKindExpense)
		return fetchErr
	})

	if waitErr := g.Wait(); waitErr != nil {
		return nil, nil, fmt.Errorf("failed to fetch ledgers: %w", waitErr)
	}
	return inflows, expenses, nil
}

// storeView writes a computed view back to the cache. The epoch was captured
// before the view's source rows were fetched; the store discards the value if
// an invalidation has intervened since, so a slow compute racing a mutation
// can never resurrect pre-mutation aggregates.
func (s *ledgerService) storeView(ownerID uuid.UUID, view string, value any, epoch uint64, started time.Time) {
	s.views.Set(ownerID, view, value, epoch)
	s.metrics.RecordViewComputed(view, time.Since(started))
}

// cachedView returns a typed cached value and records the hit or miss.
func cachedView[T any](s *ledgerService, ownerID uuid.UUID, view string) (T, bool) {
	var zero T

	raw, ok := s.views.Get(ownerID, view)
	if !ok {
		s.metrics.RecordCacheMiss(view)
		return zero, false
	}

	value, ok := raw.(T)
	if !ok {
		s.metrics.RecordCacheMiss(view)
		return zero, false
	}

	s.metrics.RecordCacheHit(view)
	return value, true
}

func ledgerTotal(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for i := range transactions {
		total = total.Add(transactions[i].Amount)
	}
	return total
}

func totalsByPeriod(transactions []models.Transaction) map[models.PeriodKey]decimal.Decimal {
	totals := make(map[models.PeriodKey]decimal.Decimal)
	for i := range transactions {
		key := transactions[i].Period()
		totals[key] = totals[key].Add(transactions[i].Amount)
	}
	return totals
}

func tagStatistics(transactions []models.Transaction) []models.TagStatistic {
	byTag := make(map[string]*models.TagStatistic)
	for i := range transactions {
		for _, tag := range transactions[i].TagNames() {
			stat, ok := byTag[tag]
			if !ok {
				stat = &models.TagStatistic{Tag: tag, TotalAmount: decimal.Zero}
				byTag[tag] = stat
			}
			stat.Count++
			stat.TotalAmount = stat.TotalAmount.Add(transactions[i].Amount)
		}
	}

	stats := make([]models.TagStatistic, 0, len(byTag))
	for _, stat := range byTag {
		stats = append(stats, *stat)
	}
	return stats
}

// rankByAmount re-sorts a copy of the statistics by total amount descending,
// tag name ascending on ties.
func rankByAmount(stats []models.TagStatistic) []models.TagStatistic {
	ranked := make([]models.TagStatistic, len(stats))
	copy(ranked, stats)

	sort.Slice(ranked, func(i, j int) bool {
		cmp := ranked[i].TotalAmount.Cmp(ranked[j].TotalAmount)
		if cmp != 0 {
			return cmp > 0
		}
		return ranked[i].Tag < ranked[j].Tag
	})
	return ranked
}

func ledgerStatistics(transactions []models.Transaction) models.LedgerStatistics {
	if len(transactions) == 0 {
		return models.ZeroLedgerStatistics()
	}

	total := ledgerTotal(transactions)
	count := int64(len(transactions))
	periods := int64(len(totalsByPeriod(transactions)))

	return models.LedgerStatistics{
		TransactionCount:     count,
		AverageAmount:        total.Div(decimal.NewFromInt(count)),
		AverageMonthlyAmount: total.Div(decimal.NewFromInt(periods)),
	}
}

package services

import (
	"context"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/query"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerServiceInterface is the aggregation engine: derived views over an
// owner's transaction rows. Every operation is a pure function of the rows it
// fetches and returns zero-valued structures, never an error, on empty input.
type LedgerServiceInterface interface {
	ComputeBalance(ctx context.Context, ownerID uuid.UUID) (*models.BalanceSnapshot, error)
	ComputeMonthlyBalance(ctx context.Context, ownerID uuid.UUID, year int) ([]models.PeriodBucket, error)
	ComputeBalanceHistory(ctx context.Context, ownerID uuid.UUID) ([]models.PeriodBucket, error)
	ComputeTagStatistics(ctx context.Context, ownerID uuid.UUID, kind string) ([]models.TagStatistic, error)
	ComputeTopTags(ctx context.Context, ownerID uuid.UUID) (*models.TopTags, error)
	ComputeFinancialSummary(ctx context.Context, ownerID uuid.UUID) (*models.FinancialSummary, error)
}

// TransactionInput carries the caller-editable fields of a transaction.
type TransactionInput struct {
	Kind        string
	Amount      decimal.Decimal
	Description string
	Tags        []string
}

// TransactionServiceInterface defines transaction lifecycle operations and
// the filtered, paginated listing.
type TransactionServiceInterface interface {
	CreateTransaction(ownerID uuid.UUID, input TransactionInput) (*models.Transaction, error)
	UpdateTransaction(ownerID, id uuid.UUID, input TransactionInput) (*models.Transaction, error)
	DeleteTransaction(ownerID, id uuid.UUID) error
	GetTransaction(ownerID, id uuid.UUID) (*models.Transaction, error)
	ListTransactions(ctx context.Context, ownerID uuid.UUID, filter query.Filter, pagination models.Pagination) (*models.TransactionPage, error)
}

// MetricsRecorderInterface records operational metrics for the engine.
type MetricsRecorderInterface interface {
	RecordViewComputed(view string, duration time.Duration)
	RecordCacheHit(view string)
	RecordCacheMiss(view string)
	RecordMutation(operation string)
	RecordConsistencyWarning()
}

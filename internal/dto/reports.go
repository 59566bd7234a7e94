package dto

import (
	"fintrack/internal/models"
)

// Report Response DTOs

// BalanceResponse represents the current balance of an owner's ledger
type BalanceResponse struct {
	TotalInflows  string `json:"totalInflows"`
	TotalExpenses string `json:"totalExpenses"`
	Balance       string `json:"balance"`
}

// NewBalanceResponse maps a balance snapshot into its API representation
func NewBalanceResponse(snapshot *models.BalanceSnapshot) BalanceResponse {
	return BalanceResponse{
		TotalInflows:  snapshot.TotalInflows.StringFixed(2),
		TotalExpenses: snapshot.TotalExpenses.StringFixed(2),
		Balance:       snapshot.Balance.StringFixed(2),
	}
}

// PeriodBucketResponse represents one calendar month of ledger activity
type PeriodBucketResponse struct {
	Year              int    `json:"year"`
	Month             int    `json:"month"`
	Inflow            string `json:"inflow"`
	Expense           string `json:"expense"`
	Balance           string `json:"balance"`
	CumulativeBalance string `json:"cumulativeBalance,omitempty"`
}

// MonthlyBalanceResponse represents twelve months of activity for one year
type MonthlyBalanceResponse struct {
	Year   int                    `json:"year"`
	Months []PeriodBucketResponse `json:"months"`
}

// NewMonthlyBalanceResponse maps monthly buckets into their API representation
func NewMonthlyBalanceResponse(year int, buckets []models.PeriodBucket) MonthlyBalanceResponse {
	months := make([]PeriodBucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		months = append(months, PeriodBucketResponse{
			Year:    bucket.Year,
			Month:   bucket.Month,
			Inflow:  bucket.Inflow.StringFixed(2),
			Expense: bucket.Expense.StringFixed(2),
			Balance: bucket.Balance.StringFixed(2),
		})
	}
	return MonthlyBalanceResponse{Year: year, Months: months}
}

// BalanceHistoryResponse represents the full month-by-month balance history
type BalanceHistoryResponse struct {
	Periods []PeriodBucketResponse `json:"periods"`
}

// NewBalanceHistoryResponse maps history buckets into their API representation
func NewBalanceHistoryResponse(buckets []models.PeriodBucket) BalanceHistoryResponse {
	periods := make([]PeriodBucketResponse, 0, len(buckets))
	for _, bucket := range buckets {
		periods = append(periods, PeriodBucketResponse{
			Year:              bucket.Year,
			Month:             bucket.Month,
			Inflow:            bucket.Inflow.StringFixed(2),
			Expense:           bucket.Expense.StringFixed(2),
			Balance:           bucket.Balance.StringFixed(2),
			CumulativeBalance: bucket.CumulativeBalance.StringFixed(2),
		})
	}
	return BalanceHistoryResponse{Periods: periods}
}

// TagStatisticResponse represents usage statistics for one tag
type TagStatisticResponse struct {
	Tag         string `json:"tag"`
	Count       int64  `json:"count"`
	TotalAmount string `json:"totalAmount"`
}

// TagStatisticsResponse represents tag statistics for one ledger kind
type TagStatisticsResponse struct {
	Kind string                 `json:"kind"`
	Tags []TagStatisticResponse `json:"tags"`
}

// NewTagStatisticsResponse maps tag statistics into their API representation
func NewTagStatisticsResponse(kind string, statistics []models.TagStatistic) TagStatisticsResponse {
	tags := make([]TagStatisticResponse, 0, len(statistics))
	for _, stat := range statistics {
		tags = append(tags, TagStatisticResponse{
			Tag:         stat.Tag,
			Count:       stat.Count,
			TotalAmount: stat.TotalAmount.StringFixed(2),
		})
	}
	return TagStatisticsResponse{Kind: kind, Tags: tags}
}

// TopTagsResponse represents the highest-value tags per ledger kind
type TopTagsResponse struct {
	InflowTags  []TagStatisticResponse `json:"inflowTags"`
	ExpenseTags []TagStatisticResponse `json:"expenseTags"`
}

// NewTopTagsResponse maps ranked tags into their API representation
func NewTopTagsResponse(topTags *models.TopTags) TopTagsResponse {
	return TopTagsResponse{
		InflowTags:  NewTagStatisticsResponse(models.LedgerKindInflow, topTags.InflowTags).Tags,
		ExpenseTags: NewTagStatisticsResponse(models.LedgerKindExpense, topTags.ExpenseTags).Tags,
	}
}

// LedgerStatisticsResponse represents per-kind summary statistics
type LedgerStatisticsResponse struct {
	TransactionCount     int64  `json:"transactionCount"`
	AverageAmount        string `json:"averageAmount"`
	AverageMonthlyAmount string `json:"averageMonthlyAmount"`
}

// FinancialSummaryResponse represents the combined financial summary
type FinancialSummaryResponse struct {
	Balance BalanceResponse          `json:"balance"`
	Inflow  LedgerStatisticsResponse `json:"inflow"`
	Expense LedgerStatisticsResponse `json:"expense"`
}

// NewFinancialSummaryResponse maps a financial summary into its API representation
func NewFinancialSummaryResponse(summary *models.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		Balance: NewBalanceResponse(&summary.Balance),
		Inflow: LedgerStatisticsResponse{
			TransactionCount:     summary.Inflow.TransactionCount,
			AverageAmount:        summary.Inflow.AverageAmount.StringFixed(2),
			AverageMonthlyAmount: summary.Inflow.AverageMonthlyAmount.StringFixed(2),
		},
		Expense: LedgerStatisticsResponse{
			TransactionCount:     summary.Expense.TransactionCount,
			AverageAmount:        summary.Expense.AverageAmount.StringFixed(2),
			AverageMonthlyAmount: summary.Expense.AverageMonthlyAmount.StringFixed(2),
		},
	}
}

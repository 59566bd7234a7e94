package models

import "github.com/shopspring/decimal"

// LedgerStatistics describes one ledger of a financial summary. Averages over
// an empty ledger are zero, never NaN or a division error.
type LedgerStatistics struct {
	TransactionCount     int64           `json:"transaction_count"`
	AverageAmount        decimal.Decimal `json:"average_amount"`
	AverageMonthlyAmount decimal.Decimal `json:"average_monthly_amount"`
}

// ZeroLedgerStatistics returns explicitly zero-valued statistics.
func ZeroLedgerStatistics() LedgerStatistics {
	return LedgerStatistics{
		TransactionCount:     0,
		AverageAmount:        decimal.Zero,
		AverageMonthlyAmount: decimal.Zero,
	}
}

// FinancialSummary combines the balance snapshot with per-ledger statistics.
type FinancialSummary struct {
	Balance BalanceSnapshot  `json:"balance"`
	Inflow  LedgerStatistics `json:"inflow"`
	Expense LedgerStatistics `json:"expense"`
}

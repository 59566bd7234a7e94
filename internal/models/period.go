package models

import "github.com/shopspring/decimal"

// PeriodKey identifies one (year, month) aggregation window. Using a value
// type with structural equality avoids the key-collision bugs that come with
// hand-built "year-month" strings.
type PeriodKey struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Before reports whether k sorts before other in chronological order.
func (k PeriodKey) Before(other PeriodKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// BalanceSnapshot is the current position of an owner's two ledgers.
// All fields are zero, never absent, when the owner has no transactions.
type BalanceSnapshot struct {
	TotalInflows  decimal.Decimal `json:"total_inflows"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	Balance       decimal.Decimal `json:"balance"`
}

// NewBalanceSnapshot derives the net balance from the two ledger totals.
func NewBalanceSnapshot(inflows, expenses decimal.Decimal) BalanceSnapshot {
	return BalanceSnapshot{
		TotalInflows:  inflows,
		TotalExpenses: expenses,
		Balance:       inflows.Sub(expenses),
	}
}

// ZeroBalanceSnapshot returns an explicitly zero-valued snapshot.
func ZeroBalanceSnapshot() BalanceSnapshot {
	return NewBalanceSnapshot(decimal.Zero, decimal.Zero)
}

// PeriodBucket aggregates one (year, month) window. CumulativeBalance is the
// running prefix sum of Balance across the chronologically sorted sequence;
// it is left zero for views that do not carry a running total.
type PeriodBucket struct {
	PeriodKey
	Inflow            decimal.Decimal `json:"inflow"`
	Expense           decimal.Decimal `json:"expense"`
	Balance           decimal.Decimal `json:"balance"`
	CumulativeBalance decimal.Decimal `json:"cumulative_balance"`
}

// ZeroPeriodBucket returns an empty bucket for the given period.
func ZeroPeriodBucket(key PeriodKey) PeriodBucket {
	return PeriodBucket{
		PeriodKey:         key,
		Inflow:            decimal.Zero,
		Expense:           decimal.Zero,
		Balance:           decimal.Zero,
		CumulativeBalance: decimal.Zero,
	}
}

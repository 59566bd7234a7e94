package models

import "github.com/shopspring/decimal"

// TagStatistic aggregates the transactions of one ledger kind that carry a
// given tag. Statistics are always scoped to a single ledger; identical tag
// text on the other ledger is a different statistic.
type TagStatistic struct {
	Tag         string          `json:"tag"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// TopTags holds the per-ledger tag rankings side by side. The two lists are
// never merged, even when tag text coincides across ledgers.
type TopTags struct {
	InflowTags  []TagStatistic `json:"inflow_tags"`
	ExpenseTags []TagStatistic `json:"expense_tags"`
}

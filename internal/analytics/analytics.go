// Package analytics computes derived metrics over the transaction ledger:
// income/expense totals, a running-balance daily series, and a per-category
// expense breakdown. All functions are pure and stateless: they never mutate
// their input, allocate fresh output on every call, and are safe for
// concurrent use. Consumers must recompute whenever the ledger changes;
// results are never cached here.
package analytics

import (
	"sort"
	"time"

	"github.com/hardza1230/Wealth-Wallet/internal/models"
)

// Totals holds the summary figures shown on the dashboard cards.
// Amounts are in minor currency units, matching models.Transaction.
type Totals struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	NetBalance   int64 `json:"net_balance"`
}

// DailyPoint is one bucket of the running-balance series: a calendar date,
// the cumulative balance as of the end of that date, and every transaction
// that fell on it, in fold order.
type DailyPoint struct {
	Date           time.Time            `json:"date"`
	RunningBalance int64                `json:"running_balance"`
	Transactions   []models.Transaction `json:"transactions"`
}

// CategoryTotal is the total expense recorded under one category label.
// Income never contributes to a category total.
type CategoryTotal struct {
	Category     string `json:"category"`
	TotalExpense int64  `json:"total_expense"`
}

// ComputeTotals sums income and expense over the whole ledger, in any input
// order. An empty ledger yields all zeros.
func ComputeTotals(transactions []models.Transaction) Totals {
	var t Totals
	for i := range transactions {
		switch transactions[i].Type {
		case models.TransactionTypeIncome:
			t.TotalIncome += transactions[i].Amount
		case models.TransactionTypeExpense:
			t.TotalExpense += transactions[i].Amount
		}
	}
	t.NetBalance = t.TotalIncome - t.TotalExpense
	return t
}

// ComputeDailySeries folds the ledger in ascending date order into one bucket
// per distinct calendar date. Ties on the same date keep their input order
// (stable sort), which fixes both the fold order and the order of a bucket's
// detail list. A bucket's running balance always reflects the state after the
// last transaction processed for that date. Dates with no transactions are
// absent, not interpolated.
//
// Buckets are keyed by the full calendar date in UTC, so the same day in
// different years never collapses into one bucket. Display formatting is the
// caller's concern.
func ComputeDailySeries(transactions []models.Transaction) []DailyPoint {
	series := []DailyPoint{}
	if len(transactions) == 0 {
		return series
	}

	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	index := make(map[time.Time]int)
	var balance int64

	for _, tx := range sorted {
		switch tx.Type {
		case models.TransactionTypeIncome:
			balance += tx.Amount
		case models.TransactionTypeExpense:
			balance -= tx.Amount
		}

		day := tx.Day()
		i, ok := index[day]
		if !ok {
			i = len(series)
			index[day] = i
			series = append(series, DailyPoint{Date: day})
		}
		series[i].RunningBalance = balance
		series[i].Transactions = append(series[i].Transactions, tx)
	}

	return series
}

// ComputeCategoryBreakdown accumulates expense amounts per distinct category
// label, in first-seen input order. Income transactions contribute nothing
// and never appear as zero-value entries. No expenses yields an empty slice.
func ComputeCategoryBreakdown(transactions []models.Transaction) []CategoryTotal {
	breakdown := []CategoryTotal{}
	index := make(map[string]int)

	for i := range transactions {
		if transactions[i].Type != models.TransactionTypeExpense {
			continue
		}
		j, ok := index[transactions[i].Category]
		if !ok {
			j = len(breakdown)
			index[transactions[i].Category] = j
			breakdown = append(breakdown, CategoryTotal{Category: transactions[i].Category})
		}
		breakdown[j].TotalExpense += transactions[i].Amount
	}

	return breakdown
}

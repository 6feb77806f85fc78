package services

import (
	"github.com/hardza1230/Wealth-Wallet/internal/analytics"
)

// analyticsService feeds the pure aggregation functions from the ledger
// store. Derived metrics are recomputed from scratch on every call so they
// can never go stale against the collection.
type analyticsService struct {
	transactions TransactionServicer
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(transactions TransactionServicer) AnalyticsServicer {
	return &analyticsService{transactions: transactions}
}

// Summary returns total income, total expense, and net balance.
func (s *analyticsService) Summary() (analytics.Totals, error) {
	all, err := s.transactions.AllTransactions()
	if err != nil {
		return analytics.Totals{}, err
	}
	return analytics.ComputeTotals(all), nil
}

// DailySeries returns the running-balance series, one point per distinct
// calendar date.
func (s *analyticsService) DailySeries() ([]analytics.DailyPoint, error) {
	all, err := s.transactions.AllTransactions()
	if err != nil {
		return nil, err
	}
	return analytics.ComputeDailySeries(all), nil
}

// CategoryBreakdown returns total expense per category label.
func (s *analyticsService) CategoryBreakdown() ([]analytics.CategoryTotal, error) {
	all, err := s.transactions.AllTransactions()
	if err != nil {
		return nil, err
	}
	return analytics.ComputeCategoryBreakdown(all), nil
}

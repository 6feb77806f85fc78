package services

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/hardza1230/Wealth-Wallet/internal/errors"
	"github.com/hardza1230/Wealth-Wallet/internal/logger"
)

// refreshTimeout bounds a background insight regeneration.
const refreshTimeout = 60 * time.Second

// insightService caches the latest model-generated insight and regenerates it
// when the ledger changes. Concurrent refreshes may overlap; each request
// carries a sequence token and a response is applied only if no newer request
// has completed, so a stale response can never overwrite a fresh one.
type insightService struct {
	transactions    TransactionServicer
	generator       InsightGenerator
	maxTransactions int

	mu          sync.Mutex
	latest      *FinancialInsight
	latestCount int64  // ledger size the cached insight was generated from
	issued      uint64 // sequence tokens handed out
	applied     uint64 // token of the last applied response
}

// NewInsightService creates a new InsightServicer. maxTransactions bounds how
// many recent transactions are sent to the generator.
func NewInsightService(transactions TransactionServicer, generator InsightGenerator, maxTransactions int) InsightServicer {
	return &insightService{
		transactions:    transactions,
		generator:       generator,
		maxTransactions: maxTransactions,
	}
}

// Latest returns the cached insight if the ledger has not grown since it was
// generated, otherwise generates a fresh one synchronously.
func (s *insightService) Latest(ctx context.Context) (*FinancialInsight, error) {
	count, err := s.transactions.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.ErrInsightNoData
	}

	s.mu.Lock()
	if s.latest != nil && s.latestCount == count {
		cached := *s.latest
		s.mu.Unlock()
		return &cached, nil
	}
	s.mu.Unlock()

	return s.refresh(ctx)
}

// RefreshAsync regenerates the insight in the background. Failures are logged
// and leave the last good insight in place.
func (s *insightService) RefreshAsync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		if _, err := s.refresh(ctx); err != nil {
			logger.Get().Warnw("background insight refresh failed", "error", err)
		}
	}()
}

// refresh generates an insight for the current ledger and applies it unless a
// newer request has already been applied.
func (s *insightService) refresh(ctx context.Context) (*FinancialInsight, error) {
	s.mu.Lock()
	s.issued++
	token := s.issued
	s.mu.Unlock()

	count, err := s.transactions.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperrors.ErrInsightNoData
	}

	recent, err := s.transactions.RecentTransactions(s.maxTransactions)
	if err != nil {
		return nil, err
	}

	raw, err := s.generator.GenerateInsight(ctx, recent)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInsightUnavailable, err)
	}

	insight := &FinancialInsight{
		Summary:       raw.Summary,
		SavingsTip:    raw.SavingsTip,
		SpendingTrend: raw.SpendingTrend,
		HealthScore:   raw.HealthScore,
		FinancialRank: raw.FinancialRank,
		GeneratedAt:   time.Now().UTC(),
	}
	if insight.FinancialRank == "" {
		insight.FinancialRank = RankForScore(insight.HealthScore)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token < s.applied {
		// A newer request already resolved; discard this stale response.
		cached := *s.latest
		return &cached, nil
	}
	s.applied = token
	s.latest = insight
	s.latestCount = count

	result := *insight
	return &result, nil
}

// RankForScore maps a health score to its gamified rank tier.
func RankForScore(score float64) string {
	switch {
	case score >= 80:
		return "Wealth Wizard"
	case score >= 50:
		return "Smart Saver"
	default:
		return "Novice Spender"
	}
}

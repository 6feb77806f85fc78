package services

import (
	"context"
	"time"

	"github.com/hardza1230/Wealth-Wallet/internal/analytics"
	"github.com/hardza1230/Wealth-Wallet/internal/gemini"
	"github.com/hardza1230/Wealth-Wallet/internal/models"
	"github.com/hardza1230/Wealth-Wallet/internal/pagination"
)

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate  *time.Time
	ToDate    *time.Time
	Type      *models.TransactionType
	Category  *string
	MinAmount *int64
	MaxAmount *int64
}

// TransactionServicer is the canonical transaction store: an append-only
// ledger with list and read access. There is no update or delete.
type TransactionServicer interface {
	CreateTransaction(txType models.TransactionType, amount int64, category, description, merchant string, date time.Time) (*models.Transaction, error)
	GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetTransactionByID(id string) (*models.Transaction, error)
	AllTransactions() ([]models.Transaction, error)
	RecentTransactions(limit int) ([]models.Transaction, error)
	Count() (int64, error)
	SeedDemoData() error
}

// TransactionParser extracts a structured transaction from unstructured
// capture input. Implemented by the Gemini client; mocked in tests.
type TransactionParser interface {
	ParseTransaction(ctx context.Context, text string, imageJPEG []byte) (*gemini.ParsedTransaction, error)
}

// CaptureServicer turns free-form text and/or a base64 receipt image into a
// recorded transaction.
type CaptureServicer interface {
	Capture(ctx context.Context, text, imageBase64 string) (*models.Transaction, error)
}

// InsightGenerator produces a financial insight from a transaction slice.
// Implemented by the Gemini client; mocked in tests.
type InsightGenerator interface {
	GenerateInsight(ctx context.Context, transactions []models.Transaction) (*gemini.Insight, error)
}

// FinancialInsight is the insight served to clients. FinancialRank is always
// populated: the model's rank when given, otherwise derived from the score.
type FinancialInsight struct {
	Summary       string    `json:"summary"`
	SavingsTip    string    `json:"savings_tip"`
	SpendingTrend string    `json:"spending_trend"`
	HealthScore   float64   `json:"health_score"`
	FinancialRank string    `json:"financial_rank"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// InsightServicer serves the latest financial insight for the ledger.
type InsightServicer interface {
	// Latest returns a cached insight when the ledger has not changed since
	// it was generated, otherwise generates a fresh one.
	Latest(ctx context.Context) (*FinancialInsight, error)
	// RefreshAsync triggers a background regeneration. Responses that lose
	// the race to a newer request are discarded.
	RefreshAsync()
}

// AnalyticsServicer exposes the derived metrics over the current ledger.
// Results are recomputed from the store on every call, never cached.
type AnalyticsServicer interface {
	Summary() (analytics.Totals, error)
	DailySeries() ([]analytics.DailyPoint, error)
	CategoryBreakdown() ([]analytics.CategoryTotal, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}

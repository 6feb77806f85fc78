package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hardza1230/Wealth-Wallet/internal/analytics"
	"github.com/hardza1230/Wealth-Wallet/internal/models"
	"github.com/hardza1230/Wealth-Wallet/internal/pagination"
	"github.com/hardza1230/Wealth-Wallet/internal/services"
	"github.com/hardza1230/Wealth-Wallet/internal/validator"
)

// --- mock services ---

type mockTransactionService struct {
	createTransactionFn func(txType models.TransactionType, amount int64, category, description, merchant string, date time.Time) (*models.Transaction, error)
	getTransactionsFn   func(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	getByIDFn           func(id string) (*models.Transaction, error)
	allTransactionsFn   func() ([]models.Transaction, error)
}

func (m *mockTransactionService) CreateTransaction(txType models.TransactionType, amount int64, category, description, merchant string, date time.Time) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(txType, amount, category, description, merchant, date)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) GetTransactions(page pagination.PageRequest, filter services.TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if m.getTransactionsFn != nil {
		return m.getTransactionsFn(page, filter)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) AllTransactions() ([]models.Transaction, error) {
	if m.allTransactionsFn != nil {
		return m.allTransactionsFn()
	}
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) RecentTransactions(_ int) ([]models.Transaction, error) {
	return []models.Transaction{}, nil
}

func (m *mockTransactionService) Count() (int64, error) { return 0, nil }

func (m *mockTransactionService) SeedDemoData() error { return nil }

var _ services.TransactionServicer = (*mockTransactionService)(nil)

type mockCaptureService struct {
	captureFn func(ctx context.Context, text, imageBase64 string) (*models.Transaction, error)
}

func (m *mockCaptureService) Capture(ctx context.Context, text, imageBase64 string) (*models.Transaction, error) {
	if m.captureFn != nil {
		return m.captureFn(ctx, text, imageBase64)
	}
	return &models.Transaction{}, nil
}

var _ services.CaptureServicer = (*mockCaptureService)(nil)

type mockInsightService struct {
	latestFn     func(ctx context.Context) (*services.FinancialInsight, error)
	refreshCalls int
}

func (m *mockInsightService) Latest(ctx context.Context) (*services.FinancialInsight, error) {
	if m.latestFn != nil {
		return m.latestFn(ctx)
	}
	return &services.FinancialInsight{}, nil
}

func (m *mockInsightService) RefreshAsync() { m.refreshCalls++ }

var _ services.InsightServicer = (*mockInsightService)(nil)

type mockAnalyticsService struct {
	summaryFn   func() (analytics.Totals, error)
	dailyFn     func() ([]analytics.DailyPoint, error)
	breakdownFn func() ([]analytics.CategoryTotal, error)
}

func (m *mockAnalyticsService) Summary() (analytics.Totals, error) {
	if m.summaryFn != nil {
		return m.summaryFn()
	}
	return analytics.Totals{}, nil
}

func (m *mockAnalyticsService) DailySeries() ([]analytics.DailyPoint, error) {
	if m.dailyFn != nil {
		return m.dailyFn()
	}
	return []analytics.DailyPoint{}, nil
}

func (m *mockAnalyticsService) CategoryBreakdown() ([]analytics.CategoryTotal, error) {
	if m.breakdownFn != nil {
		return m.breakdownFn()
	}
	return []analytics.CategoryTotal{}, nil
}

var _ services.AnalyticsServicer = (*mockAnalyticsService)(nil)

type mockAuditService struct{}

func (m *mockAuditService) Log(_, _, _, _ string, _ map[string]interface{}) {}

var _ services.AuditServicer = (*mockAuditService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

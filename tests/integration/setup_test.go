package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hardza1230/Wealth-Wallet/internal/gemini"
	"github.com/hardza1230/Wealth-Wallet/internal/handlers"
	"github.com/hardza1230/Wealth-Wallet/internal/logger"
	"github.com/hardza1230/Wealth-Wallet/internal/middleware"
	"github.com/hardza1230/Wealth-Wallet/internal/models"
	"github.com/hardza1230/Wealth-Wallet/internal/services"
	"github.com/hardza1230/Wealth-Wallet/internal/validator"
)

// stubParser stands in for the Gemini client in capture flows.
type stubParser struct {
	parseFn func(ctx context.Context, text string, imageJPEG []byte) (*gemini.ParsedTransaction, error)
}

func (s *stubParser) ParseTransaction(ctx context.Context, text string, imageJPEG []byte) (*gemini.ParsedTransaction, error) {
	if s.parseFn != nil {
		return s.parseFn(ctx, text, imageJPEG)
	}
	return &gemini.ParsedTransaction{
		Amount:   100,
		Merchant: "Test Merchant",
		Date:     "2024-01-15",
		Category: "Food & Dining",
		Type:     "EXPENSE",
	}, nil
}

// stubGenerator stands in for the Gemini client in insight flows.
type stubGenerator struct {
	generateFn func(ctx context.Context, transactions []models.Transaction) (*gemini.Insight, error)
}

func (s *stubGenerator) GenerateInsight(ctx context.Context, transactions []models.Transaction) (*gemini.Insight, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx, transactions)
	}
	return &gemini.Insight{
		Summary:       "Steady month.",
		SavingsTip:    "Keep it up.",
		SpendingTrend: "STABLE",
		HealthScore:   70,
		FinancialRank: "Smart Saver",
	}, nil
}

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Transaction{}, &models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite, with the Gemini client replaced by the given stubs.
func setupApp(t *testing.T, parser services.TransactionParser, generator services.InsightGenerator) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	if parser == nil {
		parser = &stubParser{}
	}
	if generator == nil {
		generator = &stubGenerator{}
	}

	// Services
	transactionService := services.NewTransactionService(db)
	auditService := services.NewAuditService(db)
	analyticsService := services.NewAnalyticsService(transactionService)
	captureService := services.NewCaptureService(parser, transactionService)
	insightService := services.NewInsightService(transactionService, generator, 30)

	// Handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService, insightService, auditService)
	captureHandler := handlers.NewCaptureHandler(captureService, insightService, auditService)
	insightHandler := handlers.NewInsightHandler(insightService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	v1.GET("/transactions", transactionHandler.GetTransactions)
	v1.GET("/transactions/:id", transactionHandler.GetTransactionByID)
	v1.GET("/insights", insightHandler.GetInsights)

	analytics := v1.Group("/analytics")
	analytics.GET("/summary", analyticsHandler.GetSummary)
	analytics.GET("/daily", analyticsHandler.GetDailySeries)
	analytics.GET("/categories", analyticsHandler.GetCategoryBreakdown)

	v1.POST("/transactions", transactionHandler.CreateTransaction)
	v1.POST("/capture", captureHandler.Capture)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// recordTransaction creates a transaction via the API and returns its ID.
func (app *testApp) recordTransaction(t *testing.T, txType string, amount int64, category, date string) string {
	t.Helper()
	body := fmt.Sprintf(`{"type":%q,"amount":%d,"category":%q,"date":%q}`, txType, amount, category, date)
	rec := app.request("POST", "/api/v1/transactions", body)
	if rec.Code != 201 {
		t.Fatalf("record transaction failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	tx := result["transaction"].(map[string]interface{})
	return tx["id"].(string)
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/hardza1230/Wealth-Wallet/internal/config"
	"github.com/hardza1230/Wealth-Wallet/internal/database"
	"github.com/hardza1230/Wealth-Wallet/internal/gemini"
	"github.com/hardza1230/Wealth-Wallet/internal/handlers"
	"github.com/hardza1230/Wealth-Wallet/internal/logger"
	"github.com/hardza1230/Wealth-Wallet/internal/middleware"
	"github.com/hardza1230/Wealth-Wallet/internal/services"
	"github.com/hardza1230/Wealth-Wallet/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hardza1230/Wealth-Wallet/internal/docs" // Import swagger docs
)

// @title           Wealth Wallet API
// @version         1.0
// @description     Wealth Wallet is a personal finance tracker with AI-assisted transaction capture, spending analytics, and financial insights.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	transactionService := services.NewTransactionService(db)
	auditService := services.NewAuditService(db)
	analyticsService := services.NewAnalyticsService(transactionService)

	if appConfig.SeedDemoData {
		if err := transactionService.SeedDemoData(); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	geminiClient, err := gemini.NewClient(context.Background(), appConfig.GeminiAPIKey, appConfig.GeminiModel)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	captureService := services.NewCaptureService(geminiClient, transactionService)
	insightService := services.NewInsightService(transactionService, geminiClient, appConfig.InsightMaxTransactions)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService, insightService, auditService)
	captureHandler := handlers.NewCaptureHandler(captureService, insightService, auditService)
	insightHandler := handlers.NewInsightHandler(insightService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Read routes
	v1.GET("/transactions", transactionHandler.GetTransactions)
	v1.GET("/transactions/:id", transactionHandler.GetTransactionByID)
	v1.GET("/insights", insightHandler.GetInsights)

	analytics := v1.Group("/analytics")
	analytics.GET("/summary", analyticsHandler.GetSummary)
	analytics.GET("/daily", analyticsHandler.GetDailySeries)
	analytics.GET("/categories", analyticsHandler.GetCategoryBreakdown)

	// Write routes, guarded by the optional API key
	writes := v1.Group("/")
	writes.Use(middleware.APIKeyMiddleware(appConfig.APIKey))
	writes.POST("/transactions", transactionHandler.CreateTransaction)
	writes.POST("/capture", captureHandler.Capture)

	log.Infof("Starting Wealth Wallet backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

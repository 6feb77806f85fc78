package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Optional static API key for write endpoints. Empty disables the check.
	APIKey string

	// Database
	DBDriver   string // "sqlite" or "postgres"
	SQLitePath string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Gemini
	GeminiAPIKey string
	GeminiModel  string

	// InsightMaxTransactions bounds how many recent transactions are sent
	// to the model when generating an insight.
	InsightMaxTransactions int

	// SeedDemoData seeds the demo ledger on startup when the store is empty.
	SeedDemoData bool
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Get values from environment variables with defaults
	config := &Config{
		// Server
		Port:   getEnv("PORT", "8080"),
		Env:    getEnv("ENV", "development"),
		APIKey: getEnv("API_KEY", ""),

		// Database
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		SQLitePath: getEnv("SQLITE_PATH", "wealthwallet.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "wealthwallet"),
		DBPassword: getEnv("DB_PASSWORD", "wealthwallet"),
		DBName:     getEnv("DB_NAME", "wealthwallet"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Gemini
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		SeedDemoData: getEnvBool("SEED_DEMO_DATA", false),
	}

	maxTxStr := getEnv("INSIGHT_MAX_TRANSACTIONS", "30")
	maxTx, err := strconv.Atoi(maxTxStr)
	if err != nil || maxTx <= 0 {
		log.Printf("Warning: invalid INSIGHT_MAX_TRANSACTIONS value '%s', falling back to 30\n", maxTxStr)
		maxTx = 30
	}
	config.InsightMaxTransactions = maxTx

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %v\n", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

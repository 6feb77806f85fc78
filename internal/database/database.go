// Package database manages the GORM connection and schema migrations.
// SQLite is the default backend for single-user local deployments; PostgreSQL
// is supported for hosted ones.
package database

import (
	"fmt"
	"time"

	"github.com/hardza1230/Wealth-Wallet/internal/config"
	"github.com/hardza1230/Wealth-Wallet/internal/logger"
	"github.com/hardza1230/Wealth-Wallet/internal/models"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	driver string
	dsn    string
}

// NewManager opens a connection for the configured driver.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{driver: cfg.DBDriver}

	var err error
	switch cfg.DBDriver {
	case "sqlite":
		m.db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
		m.db, err = gorm.Open(postgres.New(postgres.Config{DSN: dsn}), &gorm.Config{})
		m.dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (use sqlite or postgres)", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if cfg.DBDriver == "postgres" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	} else {
		// SQLite serializes writes; a single connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	}

	return m, nil
}

// Migrate brings the schema up to date. SQLite uses GORM AutoMigrate;
// PostgreSQL applies the SQL files under migrations/.
func (m *Manager) Migrate() error {
	if m.driver == "sqlite" {
		return m.db.AutoMigrate(&models.Transaction{}, &models.AuditLog{})
	}
	return m.runSQLMigrations()
}

func (m *Manager) runSQLMigrations() error {
	logger.Get().Info("Running database migrations...")

	mig, err := migrate.New("file://migrations", m.dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

package testutil

import (
	"testing"
	"time"

	"github.com/hardza1230/Wealth-Wallet/internal/models"

	"gorm.io/gorm"
)

// MustDate parses a YYYY-MM-DD date string or fails the test.
func MustDate(t *testing.T, date string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", date, err)
	}
	return d
}

// CreateTestTransaction inserts a transaction with the given fields.
func CreateTestTransaction(t *testing.T, db *gorm.DB, txType models.TransactionType, amount int64, category, date string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Type:     txType,
		Amount:   amount,
		Category: category,
		Date:     MustDate(t, date),
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// SeedSampleLedger inserts the four-transaction demo ledger: a salary and
// three expenses across four dates in October 2023.
func SeedSampleLedger(t *testing.T, db *gorm.DB) []*models.Transaction {
	t.Helper()

	return []*models.Transaction{
		CreateTestTransaction(t, db, models.TransactionTypeIncome, 35000, "Salary", "2023-10-01"),
		CreateTestTransaction(t, db, models.TransactionTypeExpense, 1500, "Utilities", "2023-10-05"),
		CreateTestTransaction(t, db, models.TransactionTypeExpense, 250, "Food", "2023-10-06"),
		CreateTestTransaction(t, db, models.TransactionTypeExpense, 5000, "Investment", "2023-10-07"),
	}
}

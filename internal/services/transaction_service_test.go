package services

import (
	"testing"
	"time"

	"github.com/hardza1230/Wealth-Wallet/internal/models"
	"github.com/hardza1230/Wealth-Wallet/internal/pagination"
	"github.com/hardza1230/Wealth-Wallet/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		tx, err := svc.CreateTransaction(models.TransactionTypeExpense, 250, "Food", "Lunch", "KFC", testutil.MustDate(t, "2023-10-06"))
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Fatal("expected non-empty transaction ID")
		}
		if tx.Type != models.TransactionTypeExpense {
			t.Errorf("expected type EXPENSE, got %s", tx.Type)
		}
		if tx.Amount != 250 {
			t.Errorf("expected amount 250, got %d", tx.Amount)
		}
		if tx.Merchant != "KFC" {
			t.Errorf("expected merchant KFC, got %s", tx.Merchant)
		}
	})

	t.Run("normalizes_date_to_utc_midnight", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		loc := time.FixedZone("ICT", 7*3600)
		date := time.Date(2023, 10, 6, 18, 30, 0, 0, loc) // 11:30 UTC
		tx, err := svc.CreateTransaction(models.TransactionTypeExpense, 100, "Food", "", "", date)
		testutil.AssertNoError(t, err)

		want := time.Date(2023, 10, 6, 0, 0, 0, 0, time.UTC)
		if !tx.Date.Equal(want) {
			t.Errorf("expected date %v, got %v", want, tx.Date)
		}
	})

	t.Run("rejects_negative_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(models.TransactionTypeExpense, -5, "Food", "", "", testutil.MustDate(t, "2023-10-06"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("allows_zero_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction(models.TransactionTypeExpense, 0, "Food", "", "", testutil.MustDate(t, "2023-10-06"))
		testutil.AssertNoError(t, err)
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.CreateTransaction("TRANSFER", 100, "Food", "", "", testutil.MustDate(t, "2023-10-06"))
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})
}

func TestGetTransactions(t *testing.T) {
	t.Run("paginates_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		testutil.SeedSampleLedger(t, db)

		page := pagination.PageRequest{Page: 1, PageSize: 2}
		result, err := svc.GetTransactions(page, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 4 {
			t.Errorf("expected 4 total items, got %d", result.TotalItems)
		}
		if result.TotalPages != 2 {
			t.Errorf("expected 2 pages, got %d", result.TotalPages)
		}
		if len(result.Data) != 2 {
			t.Fatalf("expected 2 items on page, got %d", len(result.Data))
		}
		if result.Data[0].Category != "Investment" {
			t.Errorf("expected newest transaction first, got category %s", result.Data[0].Category)
		}
	})

	t.Run("filters_by_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		testutil.SeedSampleLedger(t, db)

		income := models.TransactionTypeIncome
		result, err := svc.GetTransactions(pagination.PageRequest{}, TransactionFilter{Type: &income})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Fatalf("expected 1 income transaction, got %d", result.TotalItems)
		}
		if result.Data[0].Category != "Salary" {
			t.Errorf("expected Salary, got %s", result.Data[0].Category)
		}
	})

	t.Run("filters_by_date_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		testutil.SeedSampleLedger(t, db)

		from := testutil.MustDate(t, "2023-10-05")
		to := testutil.MustDate(t, "2023-10-06")
		result, err := svc.GetTransactions(pagination.PageRequest{}, TransactionFilter{FromDate: &from, ToDate: &to})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 2 {
			t.Errorf("expected 2 transactions in range, got %d", result.TotalItems)
		}
	})

	t.Run("filters_by_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		testutil.SeedSampleLedger(t, db)

		food := "Food"
		result, err := svc.GetTransactions(pagination.PageRequest{}, TransactionFilter{Category: &food})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 1 {
			t.Errorf("expected 1 Food transaction, got %d", result.TotalItems)
		}
	})
}

func TestGetTransactionByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		created := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 250, "Food", "2023-10-06")

		tx, err := svc.GetTransactionByID(created.ID)
		testutil.AssertNoError(t, err)
		if tx.ID != created.ID {
			t.Errorf("expected ID %s, got %s", created.ID, tx.ID)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.GetTransactionByID("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestAllTransactions(t *testing.T) {
	t.Run("returns_insertion_order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		// Inserted out of date order; AllTransactions keeps insertion order.
		testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 250, "Food", "2023-10-06")
		testutil.CreateTestTransaction(t, db, models.TransactionTypeIncome, 35000, "Salary", "2023-10-01")

		all, err := svc.AllTransactions()
		testutil.AssertNoError(t, err)

		if len(all) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(all))
		}
		if all[0].Category != "Food" || all[1].Category != "Salary" {
			t.Errorf("expected insertion order Food, Salary; got %s, %s", all[0].Category, all[1].Category)
		}
	})

	t.Run("empty_ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		all, err := svc.AllTransactions()
		testutil.AssertNoError(t, err)
		if len(all) != 0 {
			t.Errorf("expected empty ledger, got %d transactions", len(all))
		}
	})
}

func TestRecentTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db)
	testutil.SeedSampleLedger(t, db)

	recent, err := svc.RecentTransactions(2)
	testutil.AssertNoError(t, err)

	if len(recent) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(recent))
	}
	if recent[0].Category != "Investment" {
		t.Errorf("expected newest first, got %s", recent[0].Category)
	}
}

func TestSeedDemoData(t *testing.T) {
	t.Run("seeds_empty_store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		testutil.AssertNoError(t, svc.SeedDemoData())

		count, err := svc.Count()
		testutil.AssertNoError(t, err)
		if count != 4 {
			t.Errorf("expected 4 seeded transactions, got %d", count)
		}
	})

	t.Run("noop_when_store_not_empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, 100, "Food", "2023-10-06")

		testutil.AssertNoError(t, svc.SeedDemoData())

		count, err := svc.Count()
		testutil.AssertNoError(t, err)
		if count != 1 {
			t.Errorf("expected store untouched with 1 transaction, got %d", count)
		}
	})
}

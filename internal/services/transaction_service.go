package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "github.com/hardza1230/Wealth-Wallet/internal/errors"
	"github.com/hardza1230/Wealth-Wallet/internal/models"
	"github.com/hardza1230/Wealth-Wallet/internal/pagination"
)

// transactionService is the GORM-backed ledger store.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// CreateTransaction appends a transaction to the ledger. The date is
// normalized to UTC midnight; ordering among same-date transactions is the
// order of insertion.
func (s *transactionService) CreateTransaction(
	txType models.TransactionType,
	amount int64,
	category, description, merchant string,
	date time.Time,
) (*models.Transaction, error) {
	if !txType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if amount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	if date.IsZero() {
		date = time.Now()
	}

	transaction := &models.Transaction{
		Type:        txType,
		Amount:      amount,
		Category:    category,
		Description: description,
		Merchant:    merchant,
		Date:        dayOf(date),
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transaction, nil
}

// GetTransactions retrieves a paginated, filtered list of transactions,
// newest first.
func (s *transactionService) GetTransactions(page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := applyTransactionFilters(s.db.Model(&models.Transaction{}), filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	if f.MinAmount != nil {
		q = q.Where("amount >= ?", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		q = q.Where("amount <= ?", *f.MaxAmount)
	}
	return q
}

// GetTransactionByID retrieves a transaction by ID.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// AllTransactions loads the whole ledger in insertion order. This is the
// canonical collection order the aggregator folds over: the UUIDv7 primary
// key is time-ordered, so it breaks created_at ties deterministically.
func (s *transactionService) AllTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("created_at ASC, id ASC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// RecentTransactions loads up to limit transactions, newest date first. Used
// to bound what the insight generator sees.
func (s *transactionService) RecentTransactions(limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("date DESC, created_at DESC").Limit(limit).Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// Count returns the ledger size.
func (s *transactionService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Transaction{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count, nil
}

// SeedDemoData inserts the demo ledger when the store is empty. No-op
// otherwise.
func (s *transactionService) SeedDemoData() error {
	count, err := s.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		txType      models.TransactionType
		amount      int64
		category    string
		date        string
		description string
		merchant    string
	}{
		{models.TransactionTypeIncome, 35000, "Salary", "2023-10-01", "Monthly Salary", "Company Inc"},
		{models.TransactionTypeExpense, 1500, "Utilities", "2023-10-05", "Electric Bill", "MEA"},
		{models.TransactionTypeExpense, 250, "Food", "2023-10-06", "Lunch", "KFC"},
		{models.TransactionTypeExpense, 5000, "Investment", "2023-10-07", "Stock Purchase", "Broker"},
	}
	for _, tx := range seed {
		date, parseErr := time.Parse("2006-01-02", tx.date)
		if parseErr != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, parseErr)
		}
		if _, err := s.CreateTransaction(tx.txType, tx.amount, tx.category, tx.description, tx.merchant, date); err != nil {
			return err
		}
	}
	return nil
}

// dayOf truncates a timestamp to its calendar date at UTC midnight.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

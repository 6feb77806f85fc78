package models

import "time"

// TransactionType represents the direction of a money movement.
// It is a closed enum: sign is carried exclusively by the type,
// never by a negative amount.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single recorded money movement. Transactions are
// immutable once created: the ledger is append-only and exposes no update or
// delete operation.
type Transaction struct {
	Base
	Type        TransactionType `gorm:"not null;index" json:"type"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Category    string          `gorm:"not null" json:"category"`
	Description string          `json:"description"`
	Merchant    string          `json:"merchant"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}

// Day returns the transaction's calendar date at UTC midnight, the key used
// for day-bucketing in the daily series.
func (t *Transaction) Day() time.Time {
	y, m, d := t.Date.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

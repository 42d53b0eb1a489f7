package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimestampLayout is the ISO-8601 layout used for locally generated
// timestamps: UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DateLayout is the calendar date layout used by transaction forms.
const DateLayout = "2006-01-02"

// Timestamp formats t in TimestampLayout.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// TransactionType represents the direction of a transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is income or expense.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense on an account.
// Amount is never negative; the direction is carried by Type.
type Transaction struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	AccountID   string          `gorm:"index;not null" json:"accountId"`
	Type        TransactionType `gorm:"not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(18,2);not null" json:"amount"`
	Description string          `json:"description"`
	Category    string          `gorm:"index" json:"category"`
	Date        string          `gorm:"not null" json:"date"`
	CreatedAt   string          `gorm:"not null" json:"createdAt"`
}

// SignedAmount returns the amount with the sign implied by the type:
// positive for income, negative for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// TransactionFormData is the pre-submission, string-typed form of a
// transaction as collected from user input.
type TransactionFormData struct {
	AccountID   string          `json:"accountId"`
	Type        TransactionType `json:"type"`
	Amount      string          `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
}

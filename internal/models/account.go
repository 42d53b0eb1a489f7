package models

import "github.com/shopspring/decimal"

// AccountType represents the kind of wallet account
type AccountType string

const (
	AccountTypeGeneral    AccountType = "general"
	AccountTypeInvestment AccountType = "investment"
	AccountTypeExpenses   AccountType = "expenses"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeGeneral, AccountTypeInvestment, AccountTypeExpenses:
		return true
	}
	return false
}

// Account represents a wallet account. Balance is signed and reflects the
// account's current value as reported by the API or the seed dataset.
type Account struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	Name      string          `gorm:"not null" json:"name"`
	Balance   decimal.Decimal `gorm:"type:numeric(18,2);not null;default:0" json:"balance"`
	Currency  string          `gorm:"size:3;not null;default:'USD'" json:"currency"`
	Type      AccountType     `gorm:"not null" json:"type"`
	CreatedAt string          `gorm:"not null" json:"createdAt"`

	// Relationships
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

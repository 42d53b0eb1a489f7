package services

import (
	"github.com/shopspring/decimal"

	"wallet/internal/models"
	"wallet/internal/pagination"
	"wallet/internal/seed"
)

// AccountServicer defines the contract for account lookups.
type AccountServicer interface {
	ListAccounts(page pagination.PageRequest) ([]models.Account, int64, error)
	GetAccountByID(accountID string) (*models.Account, error)
}

// TransactionFilter holds optional filter parameters for listing transactions.
// Every set field must match exactly.
type TransactionFilter struct {
	AccountID *string
	Type      *models.TransactionType
	Category  *string
}

// CreateTransactionInput is a transaction as submitted to the API. ID is
// always assigned by the service; CreatedAt and Date are stamped when empty.
type CreateTransactionInput struct {
	AccountID   string
	Type        models.TransactionType
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        string
	CreatedAt   string
}

// TransactionServicer defines the contract for transaction listing and creation.
type TransactionServicer interface {
	ListTransactions(filter TransactionFilter, page pagination.PageRequest) ([]models.Transaction, int64, error)
	CreateTransaction(input CreateTransactionInput) (*models.Transaction, error)
}

// SeedServicer loads a seed dataset into an empty database.
type SeedServicer interface {
	SeedIfEmpty(dataset *seed.Dataset) (bool, error)
}

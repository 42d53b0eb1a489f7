package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"wallet/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() string {
	return fmt.Sprintf("%d", counter.Add(1))
}

// CreateTestAccount creates a general USD account with the given balance.
func CreateTestAccount(t *testing.T, db *gorm.DB, balance string) *models.Account {
	t.Helper()

	id := nextID()
	account := &models.Account{
		ID:        "acct-" + id,
		Name:      "Account " + id,
		Balance:   decimal.RequireFromString(balance),
		Currency:  "USD",
		Type:      models.AccountTypeGeneral,
		CreatedAt: "2024-01-15T10:30:00Z",
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestTransaction creates a transaction on the given account.
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID string, txType models.TransactionType, amount, date string) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		ID:          "tx-" + nextID(),
		AccountID:   accountID,
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		Description: "Test transaction",
		Category:    "otros",
		Date:        date,
		CreatedAt:   date,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// Package seed holds the immutable dataset the wallet data layer serves when
// the live API is unavailable, and that the reference server loads into an
// empty database.
package seed

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "wallet/internal/errors"
	"wallet/internal/models"
)

// Dataset is an immutable set of accounts and transactions. Accessors return
// copies, so callers can never alter the seed through a returned slice.
type Dataset struct {
	accounts     []models.Account
	transactions []models.Transaction
}

// New validates the given records and returns a Dataset owning copies of them.
func New(accounts []models.Account, transactions []models.Transaction) (*Dataset, error) {
	d := &Dataset{
		accounts:     append([]models.Account(nil), accounts...),
		transactions: append([]models.Transaction(nil), transactions...),
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Default returns the built-in demo dataset.
func Default() *Dataset {
	return &Dataset{
		accounts: []models.Account{
			{
				ID:        "1",
				Name:      "Cuenta Principal",
				Balance:   decimal.RequireFromString("2500.75"),
				Currency:  "USD",
				Type:      models.AccountTypeGeneral,
				CreatedAt: "2024-01-15T10:30:00Z",
			},
			{
				ID:        "2",
				Name:      "Inversiones",
				Balance:   decimal.RequireFromString("5000.00"),
				Currency:  "USD",
				Type:      models.AccountTypeInvestment,
				CreatedAt: "2024-01-10T14:20:00Z",
			},
			{
				ID:        "3",
				Name:      "Gastos Varios",
				Balance:   decimal.RequireFromString("350.50"),
				Currency:  "USD",
				Type:      models.AccountTypeExpenses,
				CreatedAt: "2024-01-12T09:15:00Z",
			},
		},
		transactions: []models.Transaction{
			{
				ID:          "1",
				AccountID:   "1",
				Type:        models.TransactionTypeIncome,
				Amount:      decimal.RequireFromString("1200.00"),
				Description: "Pago de cliente",
				Category:    "trabajo",
				Date:        "2024-01-20T08:00:00Z",
				CreatedAt:   "2024-01-20T08:00:00Z",
			},
			{
				ID:          "2",
				AccountID:   "1",
				Type:        models.TransactionTypeExpense,
				Amount:      decimal.RequireFromString("150.25"),
				Description: "Supermercado",
				Category:    "comida",
				Date:        "2024-01-19T18:30:00Z",
				CreatedAt:   "2024-01-19T18:30:00Z",
			},
		},
	}
}

// Accounts returns a copy of all seed accounts in seed order.
func (d *Dataset) Accounts() []models.Account {
	out := make([]models.Account, len(d.accounts))
	copy(out, d.accounts)
	return out
}

// Transactions returns a copy of all seed transactions in seed order.
func (d *Dataset) Transactions() []models.Transaction {
	out := make([]models.Transaction, len(d.transactions))
	copy(out, d.transactions)
	return out
}

// TransactionsByAccount returns the seed transactions whose AccountID equals
// accountID, in seed order. The result is empty, never nil, when nothing
// matches.
func (d *Dataset) TransactionsByAccount(accountID string) []models.Transaction {
	out := []models.Transaction{}
	for _, tx := range d.transactions {
		if tx.AccountID == accountID {
			out = append(out, tx)
		}
	}
	return out
}

// Validate checks the dataset for structural defects. It returns an
// ErrInvalidSeed AppError describing the first problem found.
func (d *Dataset) Validate() error {
	if d == nil {
		return apperrors.WithMessage(apperrors.ErrInvalidSeed, "seed dataset is nil")
	}

	accountIDs := make(map[string]bool, len(d.accounts))
	for i, a := range d.accounts {
		switch {
		case a.ID == "":
			return invalid("account %d has an empty id", i)
		case accountIDs[a.ID]:
			return invalid("duplicate account id %q", a.ID)
		case !a.Type.Valid():
			return invalid("account %q has unknown type %q", a.ID, a.Type)
		case a.Currency == "":
			return invalid("account %q has no currency", a.ID)
		}
		accountIDs[a.ID] = true
	}

	txIDs := make(map[string]bool, len(d.transactions))
	for i, tx := range d.transactions {
		switch {
		case tx.ID == "":
			return invalid("transaction %d has an empty id", i)
		case txIDs[tx.ID]:
			return invalid("duplicate transaction id %q", tx.ID)
		case !tx.Type.Valid():
			return invalid("transaction %q has unknown type %q", tx.ID, tx.Type)
		case tx.Amount.IsNegative():
			return invalid("transaction %q has a negative amount", tx.ID)
		}
		txIDs[tx.ID] = true
	}

	return nil
}

func invalid(format string, args ...any) error {
	return apperrors.WithMessage(apperrors.ErrInvalidSeed, fmt.Sprintf("invalid seed: "+format, args...))
}

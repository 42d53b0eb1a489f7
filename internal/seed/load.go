package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	apperrors "wallet/internal/errors"
	"wallet/internal/models"
)

// file is the on-disk seed layout. Amounts are decoded as text and parsed
// with decimal so no precision is lost to float conversion.
type file struct {
	Accounts []struct {
		ID        string `yaml:"id"`
		Name      string `yaml:"name"`
		Balance   string `yaml:"balance"`
		Currency  string `yaml:"currency"`
		Type      string `yaml:"type"`
		CreatedAt string `yaml:"createdAt"`
	} `yaml:"accounts"`
	Transactions []struct {
		ID          string `yaml:"id"`
		AccountID   string `yaml:"accountId"`
		Type        string `yaml:"type"`
		Amount      string `yaml:"amount"`
		Description string `yaml:"description"`
		Category    string `yaml:"category"`
		Date        string `yaml:"date"`
		CreatedAt   string `yaml:"createdAt"`
	} `yaml:"transactions"`
}

// Load reads a YAML seed file from path. JSON files are accepted too, since
// JSON is valid YAML.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidSeed, fmt.Errorf("reading seed file %s: %w", path, err))
	}
	return Parse(data)
}

// Parse decodes a YAML seed document and validates the result.
func Parse(data []byte) (*Dataset, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidSeed, fmt.Errorf("decoding seed: %w", err))
	}

	accounts := make([]models.Account, 0, len(f.Accounts))
	for _, a := range f.Accounts {
		balance, err := parseAmount(a.Balance)
		if err != nil {
			return nil, invalid("account %q balance %q: %v", a.ID, a.Balance, err)
		}
		accounts = append(accounts, models.Account{
			ID:        a.ID,
			Name:      a.Name,
			Balance:   balance,
			Currency:  strings.ToUpper(a.Currency),
			Type:      models.AccountType(a.Type),
			CreatedAt: a.CreatedAt,
		})
	}

	transactions := make([]models.Transaction, 0, len(f.Transactions))
	for _, tx := range f.Transactions {
		amount, err := parseAmount(tx.Amount)
		if err != nil {
			return nil, invalid("transaction %q amount %q: %v", tx.ID, tx.Amount, err)
		}
		transactions = append(transactions, models.Transaction{
			ID:          tx.ID,
			AccountID:   tx.AccountID,
			Type:        models.TransactionType(tx.Type),
			Amount:      amount,
			Description: tx.Description,
			Category:    tx.Category,
			Date:        tx.Date,
			CreatedAt:   tx.CreatedAt,
		})
	}

	return New(accounts, transactions)
}

func parseAmount(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.TrimSpace(s))
}

// Package summary aggregates a list of transactions into the totals shown
// above an account's transaction history.
package summary

import (
	"github.com/shopspring/decimal"

	"wallet/internal/models"
)

// Summary holds the totals for a transaction list.
type Summary struct {
	Count    int             `json:"count"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// Of computes the totals for txs. Balance is income minus expenses.
func Of(txs []models.Transaction) Summary {
	s := Summary{Count: len(txs), Income: decimal.Zero, Expenses: decimal.Zero}
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			s.Income = s.Income.Add(tx.Amount)
		case models.TransactionTypeExpense:
			s.Expenses = s.Expenses.Add(tx.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)
	return s
}

// ByCategory returns the expense total per category tag.
func ByCategory(txs []models.Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != models.TransactionTypeExpense {
			continue
		}
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}
	return totals
}

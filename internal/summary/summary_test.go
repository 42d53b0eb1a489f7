package summary

import (
	"testing"

	"github.com/shopspring/decimal"

	"wallet/internal/models"
	"wallet/internal/testutil"
)

func tx(typ models.TransactionType, amount, category string) models.Transaction {
	return models.Transaction{Type: typ, Amount: decimal.RequireFromString(amount), Category: category}
}

func TestOf(t *testing.T) {
	t.Run("seed account", func(t *testing.T) {
		s := Of([]models.Transaction{
			tx(models.TransactionTypeIncome, "1200.00", "trabajo"),
			tx(models.TransactionTypeExpense, "150.25", "comida"),
		})

		if s.Count != 2 {
			t.Errorf("expected count 2, got %d", s.Count)
		}
		testutil.AssertDecimal(t, s.Income, "1200")
		testutil.AssertDecimal(t, s.Expenses, "150.25")
		testutil.AssertDecimal(t, s.Balance, "1049.75")
	})

	t.Run("empty", func(t *testing.T) {
		s := Of(nil)
		if s.Count != 0 {
			t.Errorf("expected count 0, got %d", s.Count)
		}
		testutil.AssertDecimal(t, s.Income, "0")
		testutil.AssertDecimal(t, s.Expenses, "0")
		testutil.AssertDecimal(t, s.Balance, "0")
	})

	t.Run("expenses exceed income", func(t *testing.T) {
		s := Of([]models.Transaction{
			tx(models.TransactionTypeIncome, "10", "trabajo"),
			tx(models.TransactionTypeExpense, "25.5", "salud"),
		})
		testutil.AssertDecimal(t, s.Balance, "-15.5")
	})

	t.Run("unknown type ignored in totals", func(t *testing.T) {
		s := Of([]models.Transaction{tx("transfer", "99", "otros")})
		if s.Count != 1 {
			t.Errorf("expected count 1, got %d", s.Count)
		}
		testutil.AssertDecimal(t, s.Balance, "0")
	})
}

func TestByCategory(t *testing.T) {
	totals := ByCategory([]models.Transaction{
		tx(models.TransactionTypeExpense, "10.10", "comida"),
		tx(models.TransactionTypeExpense, "5.05", "comida"),
		tx(models.TransactionTypeExpense, "3", "salud"),
		tx(models.TransactionTypeIncome, "100", "trabajo"),
	})

	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %v", totals)
	}
	testutil.AssertDecimal(t, totals["comida"], "15.15")
	testutil.AssertDecimal(t, totals["salud"], "3")
}

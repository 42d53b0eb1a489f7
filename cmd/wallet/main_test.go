package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"wallet/internal/client"
	apperrors "wallet/internal/errors"
	"wallet/internal/models"
)

var fixedNow = time.Date(2024, 3, 1, 12, 30, 45, 678_000_000, time.UTC)

func newTestCLI(t *testing.T) (*cli, *bytes.Buffer) {
	t.Helper()
	data, err := client.NewWalletClient(client.Options{
		ForceMock: true,
		Now:       func() time.Time { return fixedNow },
	})
	if err != nil {
		t.Fatalf("failed to build client: %v", err)
	}
	out := &bytes.Buffer{}
	return &cli{data: data, out: out, now: func() time.Time { return fixedNow }}, out
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("expected output to contain %q, got:\n%s", w, out)
		}
	}
}

func TestAccountsCommand(t *testing.T) {
	app, out := newTestCLI(t)

	if err := app.run(context.Background(), []string{"accounts"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertContains(t, out.String(),
		"Cuenta Principal", "General", "$2,500.75",
		"Inversiones", "$5,000.00",
		"Gastos Varios", "Gastos", "$350.50",
		"Total USD: $7,851.25",
	)
}

func TestTransactionsCommand(t *testing.T) {
	t.Run("lists with summary", func(t *testing.T) {
		app, out := newTestCLI(t)

		if err := app.run(context.Background(), []string{"transactions", "-account", "1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		assertContains(t, out.String(),
			"20/01/2024", "Pago de cliente", "Trabajo", "$1,200.00",
			"19/01/2024", "Supermercado", "Comida", "-$150.25",
			"2 transactions", "net $1,049.75",
		)
	})

	t.Run("empty account", func(t *testing.T) {
		app, out := newTestCLI(t)

		if err := app.run(context.Background(), []string{"transactions", "-account", "2"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, out.String(), "No transactions")
	})

	t.Run("requires account", func(t *testing.T) {
		app, _ := newTestCLI(t)

		if err := app.run(context.Background(), []string{"transactions"}); err == nil {
			t.Fatal("expected error without -account")
		}
	})
}

func TestAddCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		app, out := newTestCLI(t)

		err := app.run(context.Background(), []string{"add",
			"-account", "1", "-amount", "42.50", "-description", "Taxi", "-category", "transporte"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertContains(t, out.String(), "Created transaction 1709296245678", "Transporte", "42.50", "expense", "01/03/2024")
	})

	t.Run("invalid form", func(t *testing.T) {
		app, _ := newTestCLI(t)

		err := app.run(context.Background(), []string{"add", "-account", "1", "-amount", "0", "-description", "x"})
		var formErr formError
		if !errors.As(err, &formErr) {
			t.Fatalf("expected form error, got %v", err)
		}
		for _, field := range []string{"amount", "description", "category"} {
			if formErr.errs[field] == "" {
				t.Errorf("expected %s error, got %v", field, formErr.errs)
			}
		}
		assertContains(t, err.Error(), "Amount must be a number greater than 0", "Category is required")
	})
}

func TestSetBalanceCommand(t *testing.T) {
	app, out := newTestCLI(t)

	if err := app.run(context.Background(), []string{"set-balance", "-account", "1", "-amount", "10"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out.String(), "accepted")

	if err := app.run(context.Background(), []string{"set-balance", "-account", "1", "-amount", "ten"}); err == nil {
		t.Error("expected error for non-numeric amount")
	}

	out.Reset()
	if err := app.run(context.Background(), []string{"accounts"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out.String(), "$2,500.75")
}

func TestCategoriesCommand(t *testing.T) {
	app, out := newTestCLI(t)

	if err := app.run(context.Background(), []string{"categories"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out.String(), "trabajo", "educación", "Otros", "#9E9E9E")
}

func TestUnknownCommand(t *testing.T) {
	app, _ := newTestCLI(t)

	if err := app.run(context.Background(), []string{"frobnicate"}); err == nil {
		t.Fatal("expected error for unknown command")
	}
}

// failingData reports a defect on every call.
type failingData struct{}

func (failingData) GetAccounts(context.Context) ([]models.Account, error) {
	return nil, apperrors.ErrClientMisconfigured
}

func (failingData) GetTransactionsByAccount(context.Context, string) ([]models.Transaction, error) {
	return nil, apperrors.ErrClientMisconfigured
}

func (failingData) CreateTransaction(context.Context, models.TransactionFormData) (*models.Transaction, error) {
	return nil, apperrors.ErrInvalidAmount
}

func (failingData) UpdateAccountBalance(context.Context, string, decimal.Decimal) error {
	return nil
}

func TestDefectsAreReported(t *testing.T) {
	app := &cli{data: failingData{}, out: &bytes.Buffer{}, now: func() time.Time { return fixedNow }}

	if err := app.run(context.Background(), []string{"accounts"}); !errors.Is(err, apperrors.ErrClientMisconfigured) {
		t.Errorf("expected misconfiguration error, got %v", err)
	}
	if err := app.run(context.Background(), []string{"transactions", "-account", "1"}); !errors.Is(err, apperrors.ErrClientMisconfigured) {
		t.Errorf("expected misconfiguration error, got %v", err)
	}
	err := app.run(context.Background(), []string{"add",
		"-account", "1", "-amount", "1", "-description", "ok", "-category", "otros"})
	if !errors.Is(err, apperrors.ErrInvalidAmount) {
		t.Errorf("expected invalid amount error, got %v", err)
	}
}

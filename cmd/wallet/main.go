package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"wallet/internal/client"
	"wallet/internal/config"
	"wallet/internal/display"
	"wallet/internal/logger"
	"wallet/internal/models"
	"wallet/internal/seed"
	"wallet/internal/summary"
	"wallet/internal/validator"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	data, err := newDataAccess(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create wallet client: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli{data: data, out: os.Stdout, now: time.Now}
	if err := app.run(ctx, os.Args[1:]); err != nil {
		var formErr formError
		if !errors.As(err, &formErr) {
			logger.Get().Errorw("command failed", "command", os.Args[1], "error", err)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newDataAccess(cfg *config.Config) (client.DataAccess, error) {
	opts := client.Options{
		BaseURL:       cfg.APIBaseURL,
		APIKey:        cfg.APIKey,
		HTTPClient:    &http.Client{Timeout: cfg.RequestTimeout},
		ForceMock:     cfg.ForceMock,
		FallbackDelay: cfg.FallbackDelay,
	}
	if cfg.SeedFile != "" {
		dataset, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		opts.Seed = dataset
	}
	return client.NewWalletClient(opts)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Wallet CLI")
	fmt.Fprintln(w, "\nUsage:")
	fmt.Fprintln(w, "  wallet <command> [options]")
	fmt.Fprintln(w, "\nCommands:")
	fmt.Fprintln(w, "  accounts       List accounts and the total balance")
	fmt.Fprintln(w, "  transactions   List the transactions of an account")
	fmt.Fprintln(w, "  add            Record a new transaction")
	fmt.Fprintln(w, "  set-balance    Request a balance change for an account")
	fmt.Fprintln(w, "  categories     List transaction categories")
	fmt.Fprintln(w, "  help           Show this help message")
	fmt.Fprintln(w, "\nRun 'wallet <command> -h' for more information on a command.")
	fmt.Fprintln(w, "\nThe API is read from WALLET_API_BASE_URL; set WALLET_FORCE_MOCK=true to work offline.")
}

// cli runs wallet commands against a DataAccess.
type cli struct {
	data client.DataAccess
	out  io.Writer
	now  func() time.Time
}

// formError lists the validation problems of a transaction form.
type formError struct {
	errs validator.FormErrors
}

func (e formError) Error() string {
	fields := make([]string, 0, len(e.errs))
	for field := range e.errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, e.errs[field])
	}
	return "invalid transaction: " + strings.Join(msgs, "; ")
}

func (a *cli) run(ctx context.Context, args []string) error {
	switch args[0] {
	case "accounts":
		return a.accounts(ctx)
	case "transactions":
		return a.transactions(ctx, args[1:])
	case "add":
		return a.add(ctx, args[1:])
	case "set-balance":
		return a.setBalance(ctx, args[1:])
	case "categories":
		return a.categories()
	case "help", "-h", "--help":
		printUsage(a.out)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", args[0])
	}
}

func (a *cli) accounts(ctx context.Context) error {
	accounts, err := a.data.GetAccounts(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tBALANCE")
	totals := map[string]decimal.Decimal{}
	var currencies []string
	for _, acc := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			acc.ID, acc.Name, display.AccountTypeLabel(acc.Type), display.FormatCurrency(acc.Balance, acc.Currency))
		if _, seen := totals[acc.Currency]; !seen {
			currencies = append(currencies, acc.Currency)
		}
		totals[acc.Currency] = totals[acc.Currency].Add(acc.Balance)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	for _, cur := range currencies {
		fmt.Fprintf(a.out, "\nTotal %s: %s\n", cur, display.FormatCurrency(totals[cur], cur))
	}
	return nil
}

func (a *cli) transactions(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("transactions", flag.ContinueOnError)
	fs.SetOutput(a.out)
	accountID := fs.String("account", "", "Account ID")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *accountID == "" {
		return errors.New("-account is required")
	}

	currency := "USD"
	if accounts, err := a.data.GetAccounts(ctx); err == nil {
		for _, acc := range accounts {
			if acc.ID == *accountID {
				currency = acc.Currency
				break
			}
		}
	}

	txs, err := a.data.GetTransactionsByAccount(ctx, *accountID)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		fmt.Fprintln(a.out, "No transactions")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tCATEGORY\tAMOUNT")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			display.FormatDate(tx.Date), tx.Description, display.CategoryLabel(tx.Category),
			display.FormatCurrency(tx.SignedAmount(), currency))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s := summary.Of(txs)
	fmt.Fprintf(a.out, "\n%d transactions  income %s  expenses %s  net %s\n",
		s.Count,
		display.FormatCurrency(s.Income, currency),
		display.FormatCurrency(s.Expenses, currency),
		display.FormatCurrency(s.Balance, currency))
	return nil
}

func (a *cli) add(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(a.out)
	accountID := fs.String("account", "", "Account ID")
	txType := fs.String("type", string(models.TransactionTypeExpense), "income or expense")
	amount := fs.String("amount", "", "Amount, e.g. 42.50")
	description := fs.String("description", "", "Description")
	category := fs.String("category", "", "Category, see 'wallet categories'")
	date := fs.String("date", "", "Date as YYYY-MM-DD (default today)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *accountID == "" {
		return errors.New("-account is required")
	}

	form := validator.NewForm(*accountID, a.now())
	form.Type = models.TransactionType(strings.TrimSpace(*txType))
	form.Amount = strings.TrimSpace(*amount)
	form.Description = strings.TrimSpace(*description)
	form.Category = strings.TrimSpace(*category)
	if *date != "" {
		form.Date = *date
	}

	if errs := validator.ValidateForm(form); len(errs) > 0 {
		return formError{errs: errs}
	}

	tx, err := a.data.CreateTransaction(ctx, form)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created transaction %s: %s %s (%s) on %s\n",
		tx.ID, display.CategoryLabel(tx.Category), tx.Amount.StringFixed(2), tx.Type, display.FormatDate(tx.Date))
	return nil
}

func (a *cli) setBalance(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-balance", flag.ContinueOnError)
	fs.SetOutput(a.out)
	accountID := fs.String("account", "", "Account ID")
	amount := fs.String("amount", "", "New balance")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *accountID == "" {
		return errors.New("-account is required")
	}
	balance, err := decimal.NewFromString(strings.TrimSpace(*amount))
	if err != nil {
		return fmt.Errorf("invalid -amount %q", *amount)
	}

	if err := a.data.UpdateAccountBalance(ctx, *accountID, balance); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Balance update for account %s accepted\n", *accountID)
	return nil
}

func (a *cli) categories() error {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VALUE\tLABEL\tCOLOR")
	for _, c := range display.Categories() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Value, c.Label, c.Color)
	}
	return w.Flush()
}

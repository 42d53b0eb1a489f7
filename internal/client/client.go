// Package client provides the wallet data-access layer. Every read and the
// transaction create first try the wallet REST API; any network-level
// failure, non-2xx status, undecodable body, or forced mock mode is served
// from the seed dataset instead, so callers only ever see errors for genuine
// defects (bad configuration or bad input).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "wallet/internal/errors"
	"wallet/internal/logger"
	"wallet/internal/models"
	"wallet/internal/seed"
)

const (
	opGetAccounts          = "get_accounts"
	opGetTransactions      = "get_transactions_by_account"
	opCreateTransaction    = "create_transaction"
	opUpdateAccountBalance = "update_account_balance"
)

// DataAccess is the wallet data surface consumed by front ends.
type DataAccess interface {
	GetAccounts(ctx context.Context) ([]models.Account, error)
	GetTransactionsByAccount(ctx context.Context, accountID string) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, form models.TransactionFormData) (*models.Transaction, error)
	UpdateAccountBalance(ctx context.Context, accountID string, newBalance decimal.Decimal) error
}

// Options configures a WalletClient.
type Options struct {
	// BaseURL is the API root, e.g. "https://host/api/v1". Required unless
	// ForceMock is set.
	BaseURL string
	// APIKey, when set, is sent as the X-API-Key header.
	APIKey string
	// HTTPClient defaults to a client without timeout; bound latency through
	// the client's Timeout or the request context.
	HTTPClient *http.Client
	// ForceMock skips the network and always serves the seed dataset.
	ForceMock bool
	// FallbackDelay is the fixed simulated latency before fallback data is
	// returned. Zero disables it.
	FallbackDelay time.Duration
	// Seed defaults to seed.Default().
	Seed *seed.Dataset
	// Logger defaults to the global logger.
	Logger *zap.SugaredLogger
	// Now defaults to time.Now.
	Now func() time.Time
}

// WalletClient implements DataAccess. It holds only immutable configuration
// and is safe for concurrent use.
type WalletClient struct {
	baseURL       string
	apiKey        string
	httpClient    *http.Client
	forceMock     bool
	fallbackDelay time.Duration
	seed          *seed.Dataset
	log           *zap.SugaredLogger
	now           func() time.Time
}

var _ DataAccess = (*WalletClient)(nil)

// NewWalletClient validates opts and creates a WalletClient.
func NewWalletClient(opts Options) (*WalletClient, error) {
	c := &WalletClient{
		baseURL:       strings.TrimRight(opts.BaseURL, "/"),
		apiKey:        opts.APIKey,
		httpClient:    opts.HTTPClient,
		forceMock:     opts.ForceMock,
		fallbackDelay: opts.FallbackDelay,
		seed:          opts.Seed,
		log:           opts.Logger,
		now:           opts.Now,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.seed == nil {
		c.seed = seed.Default()
	}
	if c.log == nil {
		c.log = logger.Named("client")
	}
	if c.now == nil {
		c.now = time.Now
	}

	if err := c.seed.Validate(); err != nil {
		return nil, err
	}
	if c.fallbackDelay < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrClientMisconfigured, "fallback delay must not be negative")
	}
	if !c.forceMock {
		u, err := url.Parse(c.baseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, apperrors.WithMessage(apperrors.ErrClientMisconfigured,
				fmt.Sprintf("base URL %q must be an absolute http(s) URL", opts.BaseURL))
		}
	}

	return c, nil
}

// GetAccounts returns all accounts from the API, or the seed accounts when
// the API cannot serve them.
func (c *WalletClient) GetAccounts(ctx context.Context) ([]models.Account, error) {
	res := do[[]models.Account](ctx, c, opGetAccounts, http.MethodGet, c.baseURL+"/accounts", nil)

	switch res.kind {
	case outcomeLive:
		accounts := res.value
		if accounts == nil {
			accounts = []models.Account{}
		}
		c.log.Infow("accounts fetched", "op", opGetAccounts, "source", "api", "count", len(accounts))
		return accounts, nil
	case outcomeDegraded:
		c.fallback(ctx, opGetAccounts, res.err)
		return c.seed.Accounts(), nil
	default:
		return nil, res.err
	}
}

// GetTransactionsByAccount returns the transactions of one account. An
// unknown or empty account id yields an empty slice.
func (c *WalletClient) GetTransactionsByAccount(ctx context.Context, accountID string) ([]models.Transaction, error) {
	query := url.Values{"accountId": {accountID}}
	res := do[[]models.Transaction](ctx, c, opGetTransactions, http.MethodGet, c.baseURL+"/transactions?"+query.Encode(), nil)

	switch res.kind {
	case outcomeLive:
		// Some hosted mock APIs match query filters by substring, so the
		// exact account match is enforced here as well.
		txs := make([]models.Transaction, 0, len(res.value))
		for _, tx := range res.value {
			if tx.AccountID == accountID {
				txs = append(txs, tx)
			}
		}
		c.log.Infow("transactions fetched", "op", opGetTransactions, "source", "api", "account_id", accountID, "count", len(txs))
		return txs, nil
	case outcomeDegraded:
		c.fallback(ctx, opGetTransactions, res.err, "account_id", accountID)
		return c.seed.TransactionsByAccount(accountID), nil
	default:
		return nil, res.err
	}
}

// createTransactionRequest is the POST body: the form fields with a numeric
// amount and a client-side creation timestamp.
type createTransactionRequest struct {
	AccountID   string                 `json:"accountId"`
	Type        models.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description"`
	Category    string                 `json:"category"`
	Date        string                 `json:"date"`
	CreatedAt   string                 `json:"createdAt"`
}

// CreateTransaction submits a new transaction. form is assumed validated
// upstream; only an amount that does not parse as a decimal is rejected,
// with ErrInvalidAmount. When the API cannot accept the transaction, a local
// record is synthesized with a time-based id.
func (c *WalletClient) CreateTransaction(ctx context.Context, form models.TransactionFormData) (*models.Transaction, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidAmount, fmt.Errorf("parsing amount %q: %w", form.Amount, err))
	}

	now := c.now()
	body := createTransactionRequest{
		AccountID:   form.AccountID,
		Type:        form.Type,
		Amount:      amount,
		Description: form.Description,
		Category:    form.Category,
		Date:        form.Date,
		CreatedAt:   models.Timestamp(now),
	}

	res := do[models.Transaction](ctx, c, opCreateTransaction, http.MethodPost, c.baseURL+"/transactions", body)
	if res.kind == outcomeLive && res.value.ID == "" {
		res = degraded[models.Transaction](fmt.Errorf("%s: response is missing the transaction id", opCreateTransaction))
	}

	switch res.kind {
	case outcomeLive:
		tx := res.value
		c.log.Infow("transaction created", "op", opCreateTransaction, "source", "api", "account_id", tx.AccountID, "transaction_id", tx.ID)
		return &tx, nil
	case outcomeDegraded:
		c.fallback(ctx, opCreateTransaction, res.err, "account_id", form.AccountID)
		tx := synthesizeTransaction(body, now)
		return &tx, nil
	default:
		return nil, res.err
	}
}

// synthesizeTransaction builds the local stand-in for a server-created record.
func synthesizeTransaction(body createTransactionRequest, now time.Time) models.Transaction {
	date := body.Date
	if strings.TrimSpace(date) == "" {
		date = models.Timestamp(now)
	}
	return models.Transaction{
		ID:          fmt.Sprintf("%d", now.UnixMilli()),
		AccountID:   body.AccountID,
		Type:        body.Type,
		Amount:      body.Amount,
		Description: body.Description,
		Category:    body.Category,
		Date:        date,
		CreatedAt:   body.CreatedAt,
	}
}

// UpdateAccountBalance records the intent to change an account balance.
// Balances are not persisted anywhere: the call performs no I/O, always
// succeeds and does not change what GetAccounts returns.
func (c *WalletClient) UpdateAccountBalance(_ context.Context, accountID string, newBalance decimal.Decimal) error {
	c.log.Infow("simulating balance update",
		"op", opUpdateAccountBalance,
		"account_id", accountID,
		"new_balance", newBalance.String(),
	)
	return nil
}

// fallback logs the degradation and waits out the simulated delay. The wait
// ends early when ctx is done; seed data is served either way.
func (c *WalletClient) fallback(ctx context.Context, op string, reason error, fields ...any) {
	kv := append([]any{"op", op, "source", "mock", "reason", reason.Error()}, fields...)
	c.log.Warnw("wallet api unavailable, serving mock data", kv...)

	if c.fallbackDelay <= 0 {
		return
	}
	timer := time.NewTimer(c.fallbackDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// do performs one API call and tags the result. Only request construction
// problems are reported as defects.
func do[T any](ctx context.Context, c *WalletClient, op, method, endpoint string, body any) outcome[T] {
	if c.forceMock {
		return degraded[T](errForcedMock)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return defect[T](apperrors.Wrap(apperrors.ErrClientMisconfigured, fmt.Errorf("%s: marshaling request: %w", op, err)))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return defect[T](apperrors.Wrap(apperrors.ErrClientMisconfigured, fmt.Errorf("%s: creating request: %w", op, err)))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return degraded[T](fmt.Errorf("%s: %w", op, err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return degraded[T](&statusError{op: op, status: resp.StatusCode})
	}

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		return degraded[T](fmt.Errorf("%s: decoding response: %w", op, err))
	}
	return live(v)
}

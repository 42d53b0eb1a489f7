package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "wallet/internal/errors"
	"wallet/internal/models"
	"wallet/internal/pagination"
	"wallet/internal/services"
)

// --- mock transaction service ---

type mockTransactionService struct {
	listTransactionsFn  func(filter services.TransactionFilter, page pagination.PageRequest) ([]models.Transaction, int64, error)
	createTransactionFn func(input services.CreateTransactionInput) (*models.Transaction, error)
}

func (m *mockTransactionService) ListTransactions(filter services.TransactionFilter, page pagination.PageRequest) ([]models.Transaction, int64, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(filter, page)
	}
	return []models.Transaction{}, 0, nil
}

func (m *mockTransactionService) CreateTransaction(input services.CreateTransactionInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(input)
	}
	return &models.Transaction{}, nil
}

// verify interface compliance
var _ services.TransactionServicer = (*mockTransactionService)(nil)

func setupTransactionRouter(handler *TransactionHandler) *gin.Engine {
	r := gin.New()
	r.GET("/transactions", handler.ListTransactions)
	r.POST("/transactions", handler.CreateTransaction)
	return r
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	t.Run("filters by account id", func(t *testing.T) {
		var got services.TransactionFilter
		svc := &mockTransactionService{
			listTransactionsFn: func(filter services.TransactionFilter, page pagination.PageRequest) ([]models.Transaction, int64, error) {
				got = filter
				return []models.Transaction{
					{ID: "1", AccountID: "1", Type: models.TransactionTypeIncome, Amount: decimal.RequireFromString("1200.00")},
				}, 1, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, http.MethodGet, "/transactions?accountId=1&category=trabajo", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.AccountID == nil || *got.AccountID != "1" {
			t.Errorf("expected account filter 1, got %v", got.AccountID)
		}
		if got.Category == nil || *got.Category != "trabajo" {
			t.Errorf("expected category filter, got %v", got.Category)
		}
		if got.Type != nil {
			t.Errorf("expected no type filter, got %v", *got.Type)
		}
		txs := parseJSONArray(t, rec)
		if len(txs) != 1 || txs[0]["amount"] != 1200.0 || txs[0]["accountId"] != "1" {
			t.Errorf("unexpected body %v", txs)
		}
	})

	t.Run("no filter lists everything", func(t *testing.T) {
		var got services.TransactionFilter
		svc := &mockTransactionService{
			listTransactionsFn: func(filter services.TransactionFilter, page pagination.PageRequest) ([]models.Transaction, int64, error) {
				got = filter
				return []models.Transaction{}, 0, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, http.MethodGet, "/transactions", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.AccountID != nil || got.Category != nil {
			t.Errorf("expected empty filter, got %+v", got)
		}
	})

	t.Run("invalid type filter", func(t *testing.T) {
		r := setupTransactionRouter(NewTransactionHandler(&mockTransactionService{}))

		rec := doRequest(r, http.MethodGet, "/transactions?type=transfer", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_TRANSACTION_TYPE")
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 with server record", func(t *testing.T) {
		var got services.CreateTransactionInput
		svc := &mockTransactionService{
			createTransactionFn: func(input services.CreateTransactionInput) (*models.Transaction, error) {
				got = input
				return &models.Transaction{
					ID:          "srv-1",
					AccountID:   input.AccountID,
					Type:        input.Type,
					Amount:      input.Amount,
					Description: input.Description,
					Category:    input.Category,
					Date:        input.Date,
					CreatedAt:   input.CreatedAt,
				}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, http.MethodPost, "/transactions",
			`{"accountId":"1","type":"expense","amount":42.5,"description":" Groceries ","category":"comida","date":"2024-02-01","createdAt":"2024-02-01T10:00:00.000Z"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !got.Amount.Equal(decimal.RequireFromString("42.5")) {
			t.Errorf("expected amount 42.5, got %s", got.Amount)
		}
		if got.Description != "Groceries" {
			t.Errorf("expected trimmed description, got %q", got.Description)
		}
		result := parseJSON(t, rec)
		if result["id"] != "srv-1" || result["amount"] != 42.5 {
			t.Errorf("unexpected body %v", result)
		}
	})

	t.Run("accepts string amount", func(t *testing.T) {
		var got services.CreateTransactionInput
		svc := &mockTransactionService{
			createTransactionFn: func(input services.CreateTransactionInput) (*models.Transaction, error) {
				got = input
				return &models.Transaction{ID: "x"}, nil
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, http.MethodPost, "/transactions",
			`{"accountId":"1","type":"income","amount":"10.10","description":"Tip","category":"trabajo"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Amount.String() != "10.1" {
			t.Errorf("expected amount 10.1, got %s", got.Amount)
		}
	})

	invalid := []struct {
		name string
		body string
	}{
		{"missing account", `{"type":"expense","amount":1,"description":"x","category":"otros"}`},
		{"unknown type", `{"accountId":"1","type":"transfer","amount":1,"description":"x","category":"otros"}`},
		{"zero amount", `{"accountId":"1","type":"expense","amount":0,"description":"x","category":"otros"}`},
		{"missing amount", `{"accountId":"1","type":"expense","description":"x","category":"otros"}`},
		{"missing description", `{"accountId":"1","type":"expense","amount":1,"category":"otros"}`},
		{"malformed json", `{"accountId":`},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			svc := &mockTransactionService{
				createTransactionFn: func(input services.CreateTransactionInput) (*models.Transaction, error) {
					called = true
					return &models.Transaction{}, nil
				},
			}
			r := setupTransactionRouter(NewTransactionHandler(svc))

			rec := doRequest(r, http.MethodPost, "/transactions", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
			if called {
				t.Error("service must not be called for invalid input")
			}
		})
	}

	t.Run("unknown account", func(t *testing.T) {
		svc := &mockTransactionService{
			createTransactionFn: func(input services.CreateTransactionInput) (*models.Transaction, error) {
				return nil, apperrors.ErrAccountNotFound
			},
		}
		r := setupTransactionRouter(NewTransactionHandler(svc))

		rec := doRequest(r, http.MethodPost, "/transactions",
			`{"accountId":"nope","type":"expense","amount":1,"description":"x","category":"otros"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ACCOUNT_NOT_FOUND")
	})
}

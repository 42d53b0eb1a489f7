package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "wallet/internal/errors"
	"wallet/internal/models"
	"wallet/internal/pagination"
	"wallet/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Amount may be sent as a JSON number or a numeric string.
type CreateTransactionRequest struct {
	AccountID   string                 `json:"accountId" binding:"required"`
	Type        models.TransactionType `json:"type" binding:"required,transaction_type"`
	Amount      decimal.Decimal        `json:"amount" swaggertype:"number" binding:"positive_decimal"`
	Description string                 `json:"description" binding:"required,max=255"`
	Category    string                 `json:"category" binding:"required,max=50"`
	Date        string                 `json:"date" binding:"max=40"`
	CreatedAt   string                 `json:"createdAt" binding:"max=40"`
}

// ListTransactions returns transactions as a plain JSON array
// @Summary     List transactions
// @Description List transactions, newest date first. Filters match exactly. page and limit select a single page; the total is reported in X-Total-Count.
// @Tags        transactions
// @Produce     json
// @Security    ApiKeyAuth
// @Param       accountId query string false "Account ID"
// @Param       type      query string false "income or expense"
// @Param       category  query string false "Category tag"
// @Param       page      query int    false "Page number"
// @Param       limit     query int    false "Items per page (max 100)"
// @Success     200 {array}  models.Transaction "Transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.TransactionFilter{
		AccountID: optionalQuery(c, "accountId"),
		Category:  optionalQuery(c, "category"),
	}
	if t := optionalQuery(c, "type"); t != nil {
		txType := models.TransactionType(*t)
		if !txType.Valid() {
			respondWithError(c, apperrors.ErrInvalidTransactionType)
			return
		}
		filter.Type = &txType
	}

	transactions, total, err := h.transactionService.ListTransactions(filter, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	setTotalCount(c, total)
	c.JSON(http.StatusOK, transactions)
}

// CreateTransaction records a new transaction
// @Summary     Create a transaction
// @Description Record an income or expense on an account. The server assigns the id and stamps createdAt when it is missing. Account balances are not changed.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.transactionService.CreateTransaction(services.CreateTransactionInput{
		AccountID:   req.AccountID,
		Type:        req.Type,
		Amount:      req.Amount,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		Date:        req.Date,
		CreatedAt:   req.CreatedAt,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wallet/internal/errors"
	"wallet/internal/pagination"
	"wallet/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// ListAccounts returns every account as a plain JSON array
// @Summary     List accounts
// @Description List wallet accounts. page and limit select a single page; the total is reported in X-Total-Count.
// @Tags        accounts
// @Produce     json
// @Security    ApiKeyAuth
// @Param       page  query int false "Page number"
// @Param       limit query int false "Items per page (max 100)"
// @Success     200 {array}  models.Account "Accounts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	accounts, total, err := h.accountService.ListAccounts(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	setTotalCount(c, total)
	c.JSON(http.StatusOK, accounts)
}

// GetAccountByID returns a single account
// @Summary     Get account by ID
// @Tags        accounts
// @Produce     json
// @Security    ApiKeyAuth
// @Param       id path string true "Account ID"
// @Success     200 {object} models.Account "Account details"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccountByID(c *gin.Context) {
	account, err := h.accountService.GetAccountByID(c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, account)
}

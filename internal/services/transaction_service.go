package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "wallet/internal/errors"
	"wallet/internal/logger"
	"wallet/internal/models"
	"wallet/internal/pagination"
	"wallet/internal/uuid"
)

// transactionService handles transaction listing and creation.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
	now            func() time.Time
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, accountService AccountServicer) TransactionServicer {
	return &transactionService{db: db, accountService: accountService, now: time.Now}
}

// ListTransactions returns the transactions matching filter, newest date
// first, with the total number of matches.
func (s *transactionService) ListTransactions(filter TransactionFilter, page pagination.PageRequest) ([]models.Transaction, int64, error) {
	page.Defaults()

	base := applyTransactionFilters(s.db.Model(&models.Transaction{}), filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	transactions := []models.Transaction{}
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Order("created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transactions, total, nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.AccountID != nil {
		q = q.Where("account_id = ?", *f.AccountID)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Category != nil {
		q = q.Where("category = ?", *f.Category)
	}
	return q
}

// CreateTransaction records a transaction on an existing account. Account
// balances are not touched.
func (s *transactionService) CreateTransaction(input CreateTransactionInput) (*models.Transaction, error) {
	if !input.Type.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if !input.Amount.IsPositive() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount must be greater than zero")
	}
	if input.Description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}

	if _, err := s.accountService.GetAccountByID(input.AccountID); err != nil {
		return nil, err
	}

	createdAt := input.CreatedAt
	if createdAt == "" {
		createdAt = models.Timestamp(s.now())
	}
	date := input.Date
	if date == "" {
		date = createdAt
	}

	transaction := &models.Transaction{
		ID:          uuid.New(),
		AccountID:   input.AccountID,
		Type:        input.Type,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
		Date:        date,
		CreatedAt:   createdAt,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("Transaction created",
		"transaction_id", transaction.ID,
		"account_id", transaction.AccountID,
		"type", transaction.Type,
	)
	return transaction, nil
}

package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "wallet/internal/errors"
	"wallet/internal/models"
	"wallet/internal/pagination"
)

// accountService handles account-related queries.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// ListAccounts returns accounts ordered by id, one page at a time when
// pagination is requested, with the total number of accounts.
func (s *accountService) ListAccounts(page pagination.PageRequest) ([]models.Account, int64, error) {
	page.Defaults()

	base := s.db.Model(&models.Account{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	accounts := []models.Account{}
	if err := base.Scopes(pagination.Paginate(page)).
		Order("id ASC").
		Find(&accounts).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return accounts, total, nil
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(accountID string) (*models.Account, error) {
	var account models.Account
	if err := s.db.Where("id = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}

package services

import (
	"gorm.io/gorm"

	apperrors "wallet/internal/errors"
	"wallet/internal/logger"
	"wallet/internal/models"
	"wallet/internal/seed"
)

type seedService struct {
	db *gorm.DB
}

// NewSeedService creates a new SeedServicer.
func NewSeedService(db *gorm.DB) SeedServicer {
	return &seedService{db: db}
}

// SeedIfEmpty inserts dataset when the database has no accounts. It reports
// whether anything was written.
func (s *seedService) SeedIfEmpty(dataset *seed.Dataset) (bool, error) {
	if err := dataset.Validate(); err != nil {
		return false, err
	}

	seeded := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Account{}).Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return nil
		}

		accounts := dataset.Accounts()
		if len(accounts) > 0 {
			if err := tx.Create(&accounts).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		transactions := dataset.Transactions()
		if len(transactions) > 0 {
			if err := tx.Create(&transactions).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if seeded {
		logger.Get().Infow("Database seeded",
			"accounts", len(dataset.Accounts()),
			"transactions", len(dataset.Transactions()),
		)
	}
	return seeded, nil
}

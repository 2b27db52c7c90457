package repository

import (
	"time"

	"github.com/MarcSteiner/BaseForge/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the AccountRepository interface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// GetByUserID retrieves the economy account for a user
func (r *accountRepository) GetByUserID(userID string) (*models.EconomyAccount, error) {
	var account models.EconomyAccount
	err := r.db.Where("user_id = ?", userID).First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetByUserIDForUpdate retrieves the account with SELECT ... FOR UPDATE
func (r *accountRepository) GetByUserIDForUpdate(userID string) (*models.EconomyAccount, error) {
	var account models.EconomyAccount
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Create creates a new economy account
func (r *accountRepository) Create(account *models.EconomyAccount) error {
	return r.db.Create(account).Error
}

// Update saves the full account row
func (r *accountRepository) Update(account *models.EconomyAccount) error {
	return r.db.Save(account).Error
}

// UpdateBalance writes a single resource column for the user's account
func (r *accountRepository) UpdateBalance(userID string, kind models.ResourceKind, newAmount int64) error {
	column := "gold_amount"
	if kind == models.ResourceElixir {
		column = "elixir_amount"
	}
	return r.db.Model(&models.EconomyAccount{}).
		Where("user_id = ?", userID).
		Update(column, models.ClampResource(newAmount)).Error
}

// TouchLastSeen stamps the last-seen timestamp used by offline accrual
func (r *accountRepository) TouchLastSeen(userID string, seenAt time.Time) error {
	return r.db.Model(&models.EconomyAccount{}).
		Where("user_id = ?", userID).
		Update("last_seen_at", seenAt).Error
}

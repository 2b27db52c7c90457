package repository

import (
	"github.com/MarcSteiner/BaseForge/app/models"
	"gorm.io/gorm"
)

// upgradeRepository implements the UpgradeRepository interface
type upgradeRepository struct {
	db *gorm.DB
}

// NewUpgradeRepository creates a new active-upgrade repository instance
func NewUpgradeRepository(db *gorm.DB) UpgradeRepository {
	return &upgradeRepository{db: db}
}

// ListInProgress retrieves all in-progress upgrades for a user
func (r *upgradeRepository) ListInProgress(userID string) ([]models.ActiveUpgrade, error) {
	var upgrades []models.ActiveUpgrade
	err := r.db.Where("user_id = ? AND status = ?", userID, models.STATUS_IN_PROGRESS).
		Order("finishes_at").
		Find(&upgrades).Error
	return upgrades, err
}

// CountInProgress counts in-progress upgrades for a user
func (r *upgradeRepository) CountInProgress(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ActiveUpgrade{}).
		Where("user_id = ? AND status = ?", userID, models.STATUS_IN_PROGRESS).
		Count(&count).Error
	return count, err
}

// BusyInstanceNames returns the instance names locked by in-progress upgrades
func (r *upgradeRepository) BusyInstanceNames(userID string) ([]string, error) {
	var names []string
	err := r.db.Model(&models.ActiveUpgrade{}).
		Where("user_id = ? AND status = ?", userID, models.STATUS_IN_PROGRESS).
		Pluck("instance_name", &names).Error
	return names, err
}

// Insert creates a new active-upgrade row
func (r *upgradeRepository) Insert(upgrade *models.ActiveUpgrade) error {
	return r.db.Create(upgrade).Error
}

// DeleteMatching removes the row matching (id, user, instance) and reports
// how many rows were removed
func (r *upgradeRepository) DeleteMatching(id uint, userID, instanceName string) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ? AND instance_name = ?", id, userID, instanceName).
		Delete(&models.ActiveUpgrade{})
	return result.RowsAffected, result.Error
}

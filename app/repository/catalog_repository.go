package repository

import (
	"github.com/MarcSteiner/BaseForge/app/models"
	"gorm.io/gorm"
)

// catalogRepository implements the CatalogRepository interface
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository instance
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

// GetByID retrieves a catalog entry by its ID
func (r *catalogRepository) GetByID(id uint) (*models.CatalogEntry, error) {
	var entry models.CatalogEntry
	err := r.db.First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListUpToTier retrieves all catalog entries unlocked at or below the given tier
func (r *catalogRepository) ListUpToTier(tier int) ([]models.CatalogEntry, error) {
	var entries []models.CatalogEntry
	err := r.db.Where("unlocks_at_tier <= ?", tier).
		Order("structure_type, level").
		Find(&entries).Error
	return entries, err
}

package repository

import (
	"github.com/MarcSteiner/BaseForge/app/models"
	"gorm.io/gorm"
)

// structureRepository implements the StructureRepository interface
type structureRepository struct {
	db *gorm.DB
}

// NewStructureRepository creates a new structure repository instance
func NewStructureRepository(db *gorm.DB) StructureRepository {
	return &structureRepository{db: db}
}

// GetByName retrieves a structure instance by its per-user name
func (r *structureRepository) GetByName(userID, name string) (*models.StructureInstance, error) {
	var instance models.StructureInstance
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&instance).Error
	if err != nil {
		return nil, err
	}
	return &instance, nil
}

// ListByUserID retrieves all structure instances of a user's base
func (r *structureRepository) ListByUserID(userID string) ([]models.StructureInstance, error) {
	var instances []models.StructureInstance
	err := r.db.Where("user_id = ?", userID).Order("name").Find(&instances).Error
	return instances, err
}

// SetLevel writes the current level of a structure instance by row id
func (r *structureRepository) SetLevel(id uint, level int) error {
	return r.db.Model(&models.StructureInstance{}).
		Where("id = ?", id).
		Update("current_level", level).Error
}

// Insert creates a new structure instance row
func (r *structureRepository) Insert(instance *models.StructureInstance) error {
	return r.db.Create(instance).Error
}

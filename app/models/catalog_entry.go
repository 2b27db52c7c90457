package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// CatalogEntry is one row of the static upgrade catalog: what a structure
// type costs and how long it builds at a given level, and from which tier it
// becomes available. (structure_type, level) is unique.
type CatalogEntry struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	StructureType    string       `gorm:"uniqueIndex:idx_catalog_type_level;type:varchar(100)" json:"structure_type" validate:"required,min=1,max=100"`
	Level            int          `gorm:"uniqueIndex:idx_catalog_type_level;not null" json:"level" validate:"min=1"`
	BuildCost        int64        `gorm:"not null" json:"build_cost" validate:"min=0"`
	BuildResource    ResourceKind `gorm:"type:varchar(20);not null" json:"build_resource" validate:"required,oneof=gold elixir"`
	BuildTimeSeconds int          `gorm:"not null" json:"build_time_seconds" validate:"min=0"`
	UnlocksAtTier    int          `gorm:"not null;index" json:"unlocks_at_tier" validate:"min=0"`
	MaxPerTier       int          `gorm:"not null;default:1" json:"max_per_tier" validate:"min=1"`
	CreatedAt        time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (e *CatalogEntry) Validate() error {
	v := validator.New()

	return v.Struct(e)
}

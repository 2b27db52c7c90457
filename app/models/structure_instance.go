package models

import "time"

// StructureInstance is one placed building in a user's base, addressed by its
// display name ("Cannon #2"). The name is unique per user; the level only
// ever moves up.
type StructureInstance struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"uniqueIndex:idx_structure_user_name;type:varchar(64)" json:"user_id"`
	Name         string    `gorm:"uniqueIndex:idx_structure_user_name;type:varchar(120)" json:"name"`
	CurrentLevel int       `gorm:"not null;default:0" json:"current_level"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

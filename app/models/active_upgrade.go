package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const STATUS_IN_PROGRESS = "in_progress"

// ActiveUpgrade is a running timed job occupying one builder slot. The row
// exists from admission until completion; completion deletes it, so a missing
// row means the job was already resolved.
type ActiveUpgrade struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UUID           string    `gorm:"uniqueIndex;type:varchar(36)" json:"uuid"`
	UserID         string    `gorm:"index;type:varchar(64)" json:"user_id"`
	CatalogEntryID uint      `gorm:"not null" json:"catalog_entry_id"`
	InstanceName   string    `gorm:"type:varchar(120)" json:"instance_name"`
	TargetLevel    int       `gorm:"not null" json:"target_level"`
	Status         string    `gorm:"type:varchar(30);index;default:'in_progress'" json:"status"`
	StartedAt      time.Time `gorm:"type:timestamp" json:"started_at"`
	FinishesAt     time.Time `gorm:"type:timestamp;index" json:"finishes_at"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *ActiveUpgrade) BeforeCreate(tx *gorm.DB) error {
	if u.UUID == "" {
		u.UUID = uuid.New().String()
	}

	return nil
}

// Finished reports whether the job's timer has elapsed at the given moment.
func (u *ActiveUpgrade) Finished(now time.Time) bool {
	return !now.Before(u.FinishesAt)
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionItemOpen       = "open"
	ActionItemInProgress = "in_progress"
	ActionItemDone       = "done"
)

type ActionItem struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID   string         `json:"project_id" gorm:"not null;type:uuid;index"`
	ActionName  string         `json:"action_name" gorm:"not null"`
	Description *string        `json:"description" gorm:"type:text"`
	Status      string         `json:"status" gorm:"type:varchar(20);default:'open'"` // "open", "in_progress", "done"
	Deadline    *time.Time     `json:"deadline"`
	OwnerID     *string        `json:"owner_id" gorm:"type:uuid"`
	OwnerName   *string        `json:"owner_name"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (a *ActionItem) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

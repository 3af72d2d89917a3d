package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID        string     `json:"project_id" gorm:"not null;type:uuid;index"`
	EventName        string     `json:"event_name"`
	EventDescription string     `json:"event_description" gorm:"type:text"`
	EventDate        *time.Time `json:"event_date"`
	EventSummary     *string    `json:"event_summary" gorm:"type:text"`
	Processed        bool       `json:"processed" gorm:"default:false"`
	CreatedBy        string     `json:"created_by" gorm:"type:uuid"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

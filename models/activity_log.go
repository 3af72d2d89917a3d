package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Action verbs written to the activity log. The set is open: unknown verbs
// still render through the generic timeline fallback.
const (
	ActionCreated   = "created"
	ActionUpdated   = "updated"
	ActionDeleted   = "deleted"
	ActionUploaded  = "uploaded"
	ActionRenamed   = "renamed"
	ActionCompleted = "completed"
)

const (
	ResourceDocument   = "document"
	ResourceURL        = "url"
	ResourceEvent      = "event"
	ResourceActionItem = "action_item"
)

// JSONMap stores the free-form details payload as a JSONB column.
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for JSONMap: %T", value)
	}
	return json.Unmarshal(data, m)
}

// ActivityLog is an append-only record of one user action on one resource.
// Rows are never updated or deleted by normal operation.
type ActivityLog struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt    time.Time `json:"created_at"`
	ProjectID    string    `json:"project_id" gorm:"not null;type:uuid;index"`
	UserID       string    `json:"user_id" gorm:"not null;type:uuid"`
	User         User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Action       string    `json:"action" gorm:"not null;type:varchar(50)"` // "uploaded", "deleted", etc.
	ResourceType string    `json:"resource_type" gorm:"not null;type:varchar(50)"`
	ResourceName *string   `json:"resource_name"`
	Details      JSONMap   `json:"details" gorm:"type:jsonb"`
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

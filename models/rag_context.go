package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// RagContext is one retrievable chunk of project knowledge. Rows are written
// whenever a document, event or action item changes and ranked by embedding
// similarity at question time.
type RagContext struct {
	ID         string          `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID  string          `json:"project_id" gorm:"not null;type:uuid;index"`
	SourceType string          `json:"source_type" gorm:"type:varchar(50)"` // "document", "event", "action_item"
	SourceID   string          `json:"source_id" gorm:"type:uuid"`
	Content    string          `json:"content" gorm:"type:text"`
	Embedding  pq.Float64Array `json:"-" gorm:"type:float8[]"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (r *RagContext) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatSession struct {
	ID        string        `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string        `json:"project_id" gorm:"not null;type:uuid;index"`
	UserID    string        `json:"user_id" gorm:"not null;type:uuid"`
	Messages  []ChatMessage `json:"messages,omitempty" gorm:"foreignKey:SessionID"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (s *ChatSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type ChatMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	SessionID string    `json:"session_id" gorm:"not null;type:uuid;index"`
	Role      string    `json:"role" gorm:"type:varchar(20)"` // "user" or "assistant"
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

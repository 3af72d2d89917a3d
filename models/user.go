package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Name          string         `json:"name"`
	Password      *string        `json:"-"` // nil for OAuth-only accounts
	GoogleID      *string        `gorm:"unique" json:"-"`
	Provider      string         `json:"provider" gorm:"type:varchar(20);default:'email'"`
	Projects      []Project      `json:"projects,omitempty" gorm:"foreignKey:CreatedBy"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID          string              `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string              `json:"name" gorm:"not null"`
	Description string              `json:"description" gorm:"type:text"`
	CreatedBy   string              `json:"created_by" gorm:"not null;type:uuid"`
	Creator     User                `json:"-" gorm:"foreignKey:CreatedBy"`
	Memberships []ProjectMembership `json:"memberships,omitempty" gorm:"foreignKey:ProjectID"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

type ProjectMembership struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string    `json:"project_id" gorm:"not null;type:uuid;uniqueIndex:idx_membership_project_user"`
	UserID    string    `json:"user_id" gorm:"not null;type:uuid;uniqueIndex:idx_membership_project_user"`
	User      User      `json:"user" gorm:"foreignKey:UserID"`
	Role      string    `json:"role" gorm:"type:varchar(20);default:'member'"`
	CreatedAt time.Time `json:"created_at"`
}

func (m *ProjectMembership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

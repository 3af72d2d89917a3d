package controllers

import (
	"errors"
	"log"

	"github.com/chrono-board/api-go/models"
	"gorm.io/gorm"
)

type StandardResponse struct {
	Success    bool            `json:"success"`
	Data       interface{}     `json:"data,omitempty"`
	Meta       interface{}     `json:"meta,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
	TotalPages  int   `json:"totalPages"`
}

var errNotMember = errors.New("not a member of this project")

// requireMembership checks that the user belongs to the project and returns
// the membership row. Callers translate errNotMember into a 403.
func requireMembership(db *gorm.DB, projectID, userID string) (*models.ProjectMembership, error) {
	var membership models.ProjectMembership
	err := db.Where("project_id = ? AND user_id = ?", projectID, userID).First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNotMember
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// logActivity appends one row to the activity log. The log is append-only
// and best effort: a failed write is logged, never propagated, so a CRUD
// operation cannot fail because its audit trail did.
func logActivity(db *gorm.DB, projectID, userID, action, resourceType, resourceName string, details models.JSONMap) {
	entry := models.ActivityLog{
		ProjectID:    projectID,
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceName: &resourceName,
		Details:      details,
	}
	if details == nil {
		entry.Details = models.JSONMap{}
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("Failed to write activity log (%s %s %q): %v", action, resourceType, resourceName, err)
	}
}

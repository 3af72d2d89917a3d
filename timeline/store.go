package timeline

import (
	"context"

	"github.com/chrono-board/api-go/models"
	"gorm.io/gorm"
)

// activityFetchLimit matches the activity log view: only the most recent
// entries feed the timeline.
const activityFetchLimit = 50

// Store fetches the raw rows the pipeline aggregates. Both listings are
// scoped to one project and ordered newest first.
type Store interface {
	ListActivity(ctx context.Context, projectID string) ([]models.ActivityLog, error)
	ListDocuments(ctx context.Context, projectID string) ([]models.Document, error)
}

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) ListActivity(ctx context.Context, projectID string) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := s.DB.WithContext(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(activityFetchLimit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (s *GormStore) ListDocuments(ctx context.Context, projectID string) ([]models.Document, error) {
	var docs []models.Document
	err := s.DB.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("uploaded_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DocTypePDF   = "pdf"
	DocTypeDocx  = "docx"
	DocTypeXlsx  = "xlsx"
	DocTypeURL   = "url"
	DocTypeOther = "other"
)

type Document struct {
	ID           string         `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID    string         `json:"project_id" gorm:"not null;type:uuid;index"`
	Filename     string         `json:"filename"`
	DocType      string         `json:"doc_type" gorm:"type:varchar(20);default:'other'"` // "pdf", "docx", "xlsx", "url", "other"
	StoragePath  string         `json:"storage_path"`
	DownloadPath string         `json:"download_path"`
	RawText      *string        `json:"raw_text" gorm:"type:text"` // URL target for link documents
	Summary      *string        `json:"summary" gorm:"type:text"`
	Processed    bool           `json:"processed" gorm:"default:false"`
	UploadedAt   time.Time      `json:"uploaded_at"`
	UploadedBy   string         `json:"uploaded_by" gorm:"type:uuid"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.UploadedAt.IsZero() {
		d.UploadedAt = time.Now()
	}
	return nil
}

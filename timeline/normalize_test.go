package timeline

import (
	"testing"
	"time"

	"github.com/chrono-board/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func activityRow(id, action, resourceType string, name *string, at time.Time) models.ActivityLog {
	return models.ActivityLog{
		ID:           id,
		Action:       action,
		ResourceType: resourceType,
		ResourceName: name,
		CreatedAt:    at,
		ProjectID:    "p1",
		UserID:       "u1",
	}
}

func TestFromActivityLogsTypeMapping(t *testing.T) {
	now := time.Now()
	logs := []models.ActivityLog{
		activityRow("a1", models.ActionCreated, models.ResourceEvent, strPtr("Kickoff"), now),
		activityRow("a2", models.ActionCreated, models.ResourceActionItem, strPtr("Ship it"), now),
		activityRow("a3", models.ActionUploaded, models.ResourceDocument, strPtr("spec.pdf"), now),
		activityRow("a4", models.ActionUploaded, models.ResourceURL, strPtr("https://example.com"), now),
	}

	items := FromActivityLogs(logs)
	require.Len(t, items, 4)
	assert.Equal(t, TypeEvent, items[0].Type)
	assert.Equal(t, TypeActionItem, items[1].Type)
	assert.Equal(t, TypeFile, items[2].Type)
	assert.Equal(t, TypeFile, items[3].Type)
}

func TestFromActivityLogsDefaults(t *testing.T) {
	row := activityRow("a1", models.ActionDeleted, models.ResourceDocument, nil, time.Now())
	row.Details = nil

	items := FromActivityLogs([]models.ActivityLog{row})
	require.Len(t, items, 1)
	assert.Equal(t, "Unknown", items[0].Title)
	assert.NotNil(t, items[0].Details)
	assert.Empty(t, items[0].Details)
}

func TestFromActivityLogsActor(t *testing.T) {
	row := activityRow("a1", models.ActionCreated, models.ResourceEvent, strPtr("Kickoff"), time.Now())

	row.User = models.User{Name: "Ada", Email: "ada@example.com"}
	assert.Equal(t, "Ada", FromActivityLogs([]models.ActivityLog{row})[0].Actor)

	row.User = models.User{Email: "ada@example.com"}
	assert.Equal(t, "ada@example.com", FromActivityLogs([]models.ActivityLog{row})[0].Actor)

	row.User = models.User{}
	assert.Equal(t, "Someone", FromActivityLogs([]models.ActivityLog{row})[0].Actor)
}

func TestFromDocuments(t *testing.T) {
	uploadedAt := time.Now()
	docs := []models.Document{
		{ID: "d1", Filename: "spec.pdf", DocType: models.DocTypePDF, UploadedAt: uploadedAt},
		{ID: "d2", Filename: "notes", DocType: models.DocTypeURL, RawText: strPtr("https://example.com"), UploadedAt: uploadedAt},
		{ID: "d3", UploadedAt: uploadedAt},
	}

	items := FromDocuments(docs)
	require.Len(t, items, 3)

	assert.Equal(t, "doc-d1", items[0].ID)
	assert.Equal(t, TypeFile, items[0].Type)
	assert.Equal(t, models.ActionUploaded, items[0].Action)
	assert.Equal(t, "spec.pdf", items[0].Title)
	assert.Equal(t, models.ResourceDocument, items[0].ResourceType)
	assert.True(t, items[0].FromDocumentRow())

	assert.Equal(t, models.ResourceURL, items[1].ResourceType)
	assert.Equal(t, "https://example.com", items[1].Details["raw_text"])

	assert.Equal(t, "Unknown", items[2].Title)
}

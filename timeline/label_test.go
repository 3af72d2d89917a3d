package timeline

import (
	"testing"
	"time"

	"github.com/chrono-board/api-go/models"
	"github.com/stretchr/testify/assert"
)

func TestBadge(t *testing.T) {
	cases := []struct {
		item Item
		want string
	}{
		{Item{Type: TypeEvent, Action: models.ActionCreated}, "Event"},
		{Item{Type: TypeActionItem, Action: models.ActionCompleted}, "Action Item"},
		{Item{Type: TypeFile, Action: models.ActionUploaded}, "Upload"},
		{Item{Type: TypeFile, Action: models.ActionDeleted}, "Delete"},
		{Item{Type: TypeFile, Action: models.ActionRenamed}, "Rename"},
		{Item{Type: TypeFile, Action: models.ActionCreated}, "Create"},
		{Item{Type: TypeFile, Action: models.ActionUpdated}, "Update"},
		{Item{Type: TypeFile, Action: models.ActionCompleted}, "Complete"},
		{Item{Type: TypeFile, Action: "archived"}, "Archived"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Badge(tc.item), "type=%s action=%s", tc.item.Type, tc.item.Action)
	}
}

func TestDescribeRenamed(t *testing.T) {
	item := Item{
		ID:           "a1",
		Type:         TypeFile,
		Action:       models.ActionRenamed,
		Title:        "final.pdf",
		Actor:        "Ada",
		ResourceType: models.ResourceDocument,
		Details: map[string]interface{}{
			"old_name": "draft.pdf",
			"new_name": "final.pdf",
		},
	}

	assert.Equal(t, `Ada renamed document from "draft.pdf" to "final.pdf"`, Describe(item))
	assert.Equal(t, "Rename", Badge(item))
}

func TestDescribeCompletedActionItem(t *testing.T) {
	item := Item{
		ID:           "a1",
		Type:         TypeActionItem,
		Action:       models.ActionCompleted,
		Title:        "Ship report",
		Actor:        "Ada",
		ResourceType: models.ResourceActionItem,
	}

	assert.Equal(t, `Ada completed action item "Ship report"`, Describe(item))
	assert.Equal(t, "Action Item", Badge(item))
}

func TestDescribeUnknownActionFallback(t *testing.T) {
	item := Item{
		ID:           "a1",
		Type:         TypeFile,
		Action:       "archived",
		Title:        "spec.pdf",
		Actor:        "Ada",
		ResourceType: models.ResourceDocument,
	}

	assert.Equal(t, `Ada performed archived on document "spec.pdf"`, Describe(item))
}

func TestDescribeDocumentRows(t *testing.T) {
	pdf := Item{ID: "doc-d1", Type: TypeFile, Action: models.ActionUploaded,
		Details: map[string]interface{}{"doc_type": models.DocTypePDF}}
	assert.Equal(t, "PDF file uploaded", Describe(pdf))

	link := Item{ID: "doc-d2", Type: TypeFile, Action: models.ActionUploaded,
		Details: map[string]interface{}{"doc_type": models.DocTypeURL}}
	assert.Equal(t, "URL uploaded", Describe(link))

	other := Item{ID: "doc-d3", Type: TypeFile, Action: models.ActionUploaded,
		Details: map[string]interface{}{"doc_type": models.DocTypeOther}}
	assert.Equal(t, "File uploaded", Describe(other))
}

func TestIconTag(t *testing.T) {
	assert.Equal(t, "calendar", IconTag(Item{Type: TypeEvent, Action: models.ActionCreated}))
	assert.Equal(t, "upload", IconTag(Item{Type: TypeFile, Action: models.ActionUploaded}))
	assert.Equal(t, "check-circle", IconTag(Item{Type: TypeActionItem, Action: models.ActionCompleted}))
	assert.Equal(t, "trash", IconTag(Item{Type: TypeFile, Action: models.ActionDeleted}))

	assert.Equal(t, "external-link", IconTag(Item{
		Type: TypeFile, Action: models.ActionUploaded,
		Details: map[string]interface{}{"doc_type": models.DocTypeURL},
	}))
	assert.Equal(t, "external-link", IconTag(Item{
		Type: TypeFile, Action: models.ActionDeleted, ResourceType: models.ResourceURL,
	}))

	assert.Equal(t, defaultIcon, IconTag(Item{Type: TypeFile, Action: "archived"}))
}

// Every (type, action, resourceType) triple must produce a non-empty badge,
// description and icon with no panic, including verbs nobody has taught the
// categorizer about.
func TestCategorizationTotality(t *testing.T) {
	types := []ItemType{TypeEvent, TypeFile, TypeActionItem}
	actions := []string{
		models.ActionCreated, models.ActionUpdated, models.ActionDeleted,
		models.ActionUploaded, models.ActionRenamed, models.ActionCompleted,
		"archived", "",
	}
	resourceTypes := []string{
		models.ResourceDocument, models.ResourceURL, models.ResourceEvent,
		models.ResourceActionItem, "widget", "",
	}

	for _, typ := range types {
		for _, action := range actions {
			for _, rt := range resourceTypes {
				item := Item{
					ID:           "a1",
					Type:         typ,
					Action:       action,
					Title:        "thing",
					Actor:        "Ada",
					ResourceType: rt,
					Date:         time.Now(),
				}
				assert.NotEmpty(t, Badge(item))
				assert.NotEmpty(t, Describe(item))
				assert.NotEmpty(t, IconTag(item))
			}
		}
	}
}

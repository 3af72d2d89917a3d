package timeline

import (
	"github.com/chrono-board/api-go/models"
)

const unknownTitle = "Unknown"

// FromActivityLogs maps activity log rows into timeline items. Resource types
// "event" and "action_item" keep their own item type, everything else renders
// as a file entry. Missing names and details degrade to defaults rather than
// failing.
func FromActivityLogs(logs []models.ActivityLog) []Item {
	items := make([]Item, 0, len(logs))
	for _, entry := range logs {
		title := unknownTitle
		if entry.ResourceName != nil && *entry.ResourceName != "" {
			title = *entry.ResourceName
		}

		details := make(map[string]interface{}, len(entry.Details))
		for k, v := range entry.Details {
			details[k] = v
		}

		items = append(items, Item{
			ID:           entry.ID,
			Type:         itemTypeFor(entry.ResourceType),
			Action:       entry.Action,
			Title:        title,
			Date:         entry.CreatedAt,
			Actor:        actorName(entry.User),
			ResourceType: entry.ResourceType,
			Details:      details,
		})
	}
	return items
}

// FromDocuments maps document rows into upload items. Every document renders
// as a file uploaded at its upload time; the id is prefixed so it cannot
// collide with an activity log id describing the same upload.
func FromDocuments(docs []models.Document) []Item {
	items := make([]Item, 0, len(docs))
	for _, doc := range docs {
		title := doc.Filename
		if title == "" {
			title = unknownTitle
		}

		details := map[string]interface{}{
			"doc_type": doc.DocType,
		}
		if doc.RawText != nil {
			details["raw_text"] = *doc.RawText
		}

		resourceType := models.ResourceDocument
		if doc.DocType == models.DocTypeURL {
			resourceType = models.ResourceURL
		}

		items = append(items, Item{
			ID:           DocumentIDPrefix + doc.ID,
			Type:         TypeFile,
			Action:       models.ActionUploaded,
			Title:        title,
			Date:         doc.UploadedAt,
			ResourceType: resourceType,
			Details:      details,
		})
	}
	return items
}

func itemTypeFor(resourceType string) ItemType {
	switch resourceType {
	case models.ResourceEvent:
		return TypeEvent
	case models.ResourceActionItem:
		return TypeActionItem
	default:
		return TypeFile
	}
}

func actorName(user models.User) string {
	if user.Name != "" {
		return user.Name
	}
	if user.Email != "" {
		return user.Email
	}
	return "Someone"
}

package timeline

import (
	"time"
)

type ItemType string

const (
	TypeEvent      ItemType = "event"
	TypeFile       ItemType = "file"
	TypeActionItem ItemType = "action_item"
)

// DocumentIDPrefix marks items synthesized from the documents table so their
// ids never collide with activity log ids.
const DocumentIDPrefix = "doc-"

// DedupWindow is the span within which an upload row and an activity log
// "uploaded" row with the same title are treated as the same physical event.
const DedupWindow = 60 * time.Second

// PreviewCount is how many items a preview-mode timeline shows.
const PreviewCount = 3

// Item is the canonical, display-ready projection of one timeline entry.
// Items are recomputed from scratch on every fetch and never persisted.
type Item struct {
	ID           string                 `json:"id"`
	Type         ItemType               `json:"type"`
	Action       string                 `json:"action"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Badge        string                 `json:"badge"`
	Icon         string                 `json:"icon"`
	Date         time.Time              `json:"date"`
	Actor        string                 `json:"actor,omitempty"`
	ResourceType string                 `json:"resource_type,omitempty"`
	Details      map[string]interface{} `json:"details"`
}

// FromDocuments reports whether the item was synthesized from a document row
// rather than an activity log row.
func (i Item) FromDocumentRow() bool {
	return len(i.ID) >= len(DocumentIDPrefix) && i.ID[:len(DocumentIDPrefix)] == DocumentIDPrefix
}

type Options struct {
	Preview bool
}

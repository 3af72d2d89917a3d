package timeline

import (
	"github.com/chrono-board/api-go/models"
)

// Dedup removes document-sourced upload items that duplicate an activity log
// upload of the same title within DedupWindow. Uploads made through the API
// produce both a document row and an explicit activity entry; uploads made
// through the direct storage path produce only the document row. When both
// are visible the richer activity-sourced item wins.
//
// Two genuinely distinct uploads of same-named files inside the window are
// collapsed too; that false positive is accepted, not worked around.
func Dedup(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.FromDocumentRow() && hasActivityTwin(item, items) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func hasActivityTwin(doc Item, items []Item) bool {
	for _, other := range items {
		if other.FromDocumentRow() || other.ID == doc.ID {
			continue
		}
		if other.Action != models.ActionUploaded || other.Title != doc.Title {
			continue
		}
		delta := other.Date.Sub(doc.Date)
		if delta < 0 {
			delta = -delta
		}
		if delta <= DedupWindow {
			return true
		}
	}
	return false
}

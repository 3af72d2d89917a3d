package timeline

import (
	"sort"

	"github.com/chrono-board/api-go/models"
)

// SortItems orders items by date, most recent first. The sort is stable:
// equal timestamps keep their arrival order, which is activity log items
// before document items, each in store order.
func SortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
}

// Compute runs the full aggregation pipeline over one snapshot of activity
// log and document rows: normalize, merge, dedup, annotate, sort and,
// in preview mode, truncate to the most recent PreviewCount items.
//
// The pipeline is pure and reentrant; recomputing from an unchanged snapshot
// yields an identical list.
func Compute(logs []models.ActivityLog, docs []models.Document, opts Options) []Item {
	items := append(FromActivityLogs(logs), FromDocuments(docs)...)
	items = Dedup(items)
	Annotate(items)
	SortItems(items)

	if opts.Preview && len(items) > PreviewCount {
		items = items[:PreviewCount]
	}
	return items
}

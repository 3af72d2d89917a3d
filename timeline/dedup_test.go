package timeline

import (
	"testing"
	"time"

	"github.com/chrono-board/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadPair(title string, activityAt, docAt time.Time) []Item {
	return []Item{
		{ID: "a1", Type: TypeFile, Action: models.ActionUploaded, Title: title, Date: activityAt},
		{ID: "doc-d1", Type: TypeFile, Action: models.ActionUploaded, Title: title, Date: docAt},
	}
}

func TestDedupSuppressesDocumentTwin(t *testing.T) {
	now := time.Now()
	items := uploadPair("spec.pdf", now, now.Add(10*time.Second))

	out := Dedup(items)
	require.Len(t, out, 1)
	assert.Equal(t, "a1", out[0].ID, "the activity-sourced item must win")
}

func TestDedupWindowBoundary(t *testing.T) {
	now := time.Now()

	out := Dedup(uploadPair("spec.pdf", now, now.Add(DedupWindow)))
	assert.Len(t, out, 1, "exactly at the window boundary still dedupes")

	out = Dedup(uploadPair("spec.pdf", now, now.Add(DedupWindow+time.Second)))
	assert.Len(t, out, 2, "outside the window both survive")
}

func TestDedupIgnoresDifferentTitles(t *testing.T) {
	now := time.Now()
	items := uploadPair("spec.pdf", now, now.Add(5*time.Second))
	items[1].Title = "other.pdf"

	out := Dedup(items)
	assert.Len(t, out, 2)
}

func TestDedupIgnoresNonUploadActivity(t *testing.T) {
	now := time.Now()
	items := uploadPair("spec.pdf", now, now.Add(5*time.Second))
	items[0].Action = models.ActionRenamed

	out := Dedup(items)
	assert.Len(t, out, 2)
}

func TestDedupNeverPairsTwoDocumentRows(t *testing.T) {
	now := time.Now()
	items := []Item{
		{ID: "doc-d1", Type: TypeFile, Action: models.ActionUploaded, Title: "report.pdf", Date: now},
		{ID: "doc-d2", Type: TypeFile, Action: models.ActionUploaded, Title: "report.pdf", Date: now.Add(10 * time.Second)},
	}

	out := Dedup(items)
	assert.Len(t, out, 2, "two real uploads without activity twins both stay visible")
}

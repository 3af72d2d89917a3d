package timeline

import (
	"context"
	"testing"
	"time"

	"github.com/chrono-board/api-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDedupsApiUpload(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	logs := []models.ActivityLog{
		activityRow("a1", models.ActionUploaded, models.ResourceDocument, strPtr("spec.pdf"), at),
	}
	docs := []models.Document{
		{ID: "d1", Filename: "spec.pdf", DocType: models.DocTypePDF, UploadedAt: at.Add(10 * time.Second)},
	}

	items := Compute(logs, docs, Options{})
	require.Len(t, items, 1)
	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, "Upload", items[0].Badge)
}

func TestComputeEmptyInput(t *testing.T) {
	items := Compute(nil, nil, Options{})
	assert.Empty(t, items)
}

func TestComputePreviewTruncation(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	var logs []models.ActivityLog
	for i := 0; i < 5; i++ {
		logs = append(logs, activityRow(
			string(rune('a'+i))+"1", models.ActionCreated, models.ResourceEvent,
			strPtr("Event"), base.Add(-time.Duration(i)*time.Hour)))
	}

	items := Compute(logs, nil, Options{Preview: true})
	require.Len(t, items, PreviewCount)
	assert.Equal(t, base, items[0].Date)
	assert.Equal(t, base.Add(-time.Hour), items[1].Date)
	assert.Equal(t, base.Add(-2*time.Hour), items[2].Date)
}

func TestComputeKeepsDistinctSameNamedUploads(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	docs := []models.Document{
		{ID: "d1", Filename: "report.pdf", DocType: models.DocTypePDF, UploadedAt: at},
		{ID: "d2", Filename: "report.pdf", DocType: models.DocTypePDF, UploadedAt: at.Add(90 * time.Second)},
	}

	items := Compute(nil, docs, Options{})
	assert.Len(t, items, 2)
}

// P1: output is totally ordered by date, most recent first.
func TestComputeTotalOrder(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	logs := []models.ActivityLog{
		activityRow("a1", models.ActionCreated, models.ResourceEvent, strPtr("E1"), base.Add(-3*time.Hour)),
		activityRow("a2", models.ActionCompleted, models.ResourceActionItem, strPtr("T1"), base),
		activityRow("a3", models.ActionDeleted, models.ResourceDocument, strPtr("old.pdf"), base.Add(-time.Hour)),
	}
	docs := []models.Document{
		{ID: "d1", Filename: "spec.pdf", DocType: models.DocTypePDF, UploadedAt: base.Add(-2 * time.Hour)},
		{ID: "d2", Filename: "notes", DocType: models.DocTypeURL, UploadedAt: base.Add(-30 * time.Minute)},
	}

	items := Compute(logs, docs, Options{})
	require.Len(t, items, 5)
	for i := 0; i < len(items)-1; i++ {
		assert.False(t, items[i].Date.Before(items[i+1].Date),
			"items[%d] older than items[%d]", i, i+1)
	}
}

// P3: nothing is dropped except dedup pairs and preview truncation.
func TestComputeNoDataLoss(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	logs := []models.ActivityLog{
		activityRow("a1", models.ActionUploaded, models.ResourceDocument, strPtr("spec.pdf"), base),
		activityRow("a2", models.ActionCreated, models.ResourceEvent, strPtr("Kickoff"), base.Add(time.Minute)),
	}
	docs := []models.Document{
		{ID: "d1", Filename: "spec.pdf", DocType: models.DocTypePDF, UploadedAt: base.Add(5 * time.Second)}, // deduped
		{ID: "d2", Filename: "extra.pdf", DocType: models.DocTypePDF, UploadedAt: base.Add(time.Hour)},
	}

	items := Compute(logs, docs, Options{})
	assert.Len(t, items, len(logs)+len(docs)-1)
}

// P4: recomputing from an unchanged snapshot yields an identical list.
func TestComputeIdempotent(t *testing.T) {
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	logs := []models.ActivityLog{
		activityRow("a1", models.ActionRenamed, models.ResourceDocument, strPtr("final.pdf"), base),
		activityRow("a2", models.ActionCreated, models.ResourceEvent, strPtr("Kickoff"), base),
	}
	docs := []models.Document{
		{ID: "d1", Filename: "spec.pdf", DocType: models.DocTypePDF, UploadedAt: base.Add(-time.Hour)},
	}

	first := Compute(logs, docs, Options{})
	second := Compute(logs, docs, Options{})
	assert.Equal(t, first, second)
}

// Equal timestamps keep arrival order: activity items before document items.
func TestSortStableTiebreak(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []Item{
		{ID: "a1", Date: at},
		{ID: "a2", Date: at},
		{ID: "doc-d1", Date: at},
	}

	SortItems(items)
	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, "a2", items[1].ID)
	assert.Equal(t, "doc-d1", items[2].ID)
}

type fakeStore struct {
	logs []models.ActivityLog
	docs []models.Document
	err  error
}

func (f *fakeStore) ListActivity(ctx context.Context, projectID string) ([]models.ActivityLog, error) {
	return f.logs, f.err
}

func (f *fakeStore) ListDocuments(ctx context.Context, projectID string) ([]models.Document, error) {
	return f.docs, f.err
}

func TestServiceTimeline(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store := &fakeStore{
		logs: []models.ActivityLog{
			activityRow("a1", models.ActionCreated, models.ResourceEvent, strPtr("Kickoff"), at),
		},
		docs: []models.Document{
			{ID: "d1", Filename: "spec.pdf", DocType: models.DocTypePDF, UploadedAt: at.Add(-time.Hour)},
		},
	}

	svc := NewService(store)
	items, err := svc.Timeline(context.Background(), "p1", Options{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a1", items[0].ID)
	assert.Equal(t, "doc-d1", items[1].ID)
}

func TestServiceTimelineFetchFailure(t *testing.T) {
	store := &fakeStore{err: assert.AnError}

	svc := NewService(store)
	items, err := svc.Timeline(context.Background(), "p1", Options{})
	assert.Error(t, err)
	assert.Nil(t, items)
}

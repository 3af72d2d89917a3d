package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDeliversToMatchingSubscriber(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe([]string{"activity_logs", "documents"}, "p1")
	defer cancel()

	hub.Publish(Notification{Table: "documents", ProjectID: "p1"})

	select {
	case n := <-ch:
		assert.Equal(t, "documents", n.Table)
		assert.Equal(t, "p1", n.ProjectID)
	case <-time.After(time.Second):
		t.Fatal("notification not delivered")
	}
}

func TestHubScopesByProject(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe([]string{"activity_logs"}, "p1")
	defer cancel()

	hub.Publish(Notification{Table: "activity_logs", ProjectID: "p2"})

	select {
	case n := <-ch:
		t.Fatalf("unexpected delivery: %+v", n)
	default:
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe([]string{"events"}, "p1")
	cancel()

	_, open := <-ch
	assert.False(t, open)

	// Publishing after cancel must not panic on the closed channel.
	hub.Publish(Notification{Table: "events", ProjectID: "p1"})
}

func TestHubBurstDoesNotBlock(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe([]string{"documents"}, "p1")
	defer cancel()

	// More than the channel buffer; extras are dropped, not deadlocked.
	for i := 0; i < 100; i++ {
		hub.Publish(Notification{Table: "documents", ProjectID: "p1"})
	}

	require.NotEmpty(t, ch)
}

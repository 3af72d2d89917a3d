package realtime

import (
	"sync"
)

// Notification says that some row in a watched table changed for a project.
// It carries no row payload; consumers refetch and recompute, so duplicate or
// reordered notifications cost at most a redundant recomputation.
type Notification struct {
	Table     string `json:"table"`
	ProjectID string `json:"project_id"`
}

type subKey struct {
	Table     string
	ProjectID string
}

type subscriber struct {
	ch chan Notification
}

// Hub fans change notifications out to subscribers keyed by
// (table, projectID). Subscriber channels are buffered and sends never
// block: a full channel drops the notification, which is safe because every
// notification means the same thing ("refetch").
type Hub struct {
	mu     sync.RWMutex
	subs   map[subKey]map[int]*subscriber
	nextID int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[subKey]map[int]*subscriber)}
}

// Subscribe registers interest in changes to the given tables for one
// project. The returned cancel func must be called when the consumer goes
// away; it closes the channel.
func (h *Hub) Subscribe(tables []string, projectID string) (<-chan Notification, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &subscriber{ch: make(chan Notification, 8)}
	h.nextID++
	id := h.nextID

	keys := make([]subKey, 0, len(tables))
	for _, table := range tables {
		key := subKey{Table: table, ProjectID: projectID}
		if h.subs[key] == nil {
			h.subs[key] = make(map[int]*subscriber)
		}
		h.subs[key][id] = sub
		keys = append(keys, key)
	}

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		for _, key := range keys {
			if set, ok := h.subs[key]; ok {
				if _, present := set[id]; present {
					delete(set, id)
					if len(set) == 0 {
						delete(h.subs, key)
					}
				}
			}
		}
		close(sub.ch)
	}

	return sub.ch, cancel
}

// Publish delivers a notification to every subscriber of its
// (table, projectID) key.
func (h *Hub) Publish(n Notification) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs[subKey{Table: n.Table, ProjectID: n.ProjectID}] {
		select {
		case sub.ch <- n:
		default:
		}
	}
}

package realtime

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/lib/pq"
)

// Channel carries change notifications from Postgres. Each watched table has
// an AFTER INSERT OR UPDATE OR DELETE trigger along these lines:
//
//	CREATE OR REPLACE FUNCTION notify_chronoboard_change() RETURNS trigger AS $$
//	BEGIN
//	  PERFORM pg_notify('chronoboard_changes',
//	    json_build_object('table', TG_TABLE_NAME,
//	                      'project_id', COALESCE(NEW.project_id, OLD.project_id))::text);
//	  RETURN NULL;
//	END; $$ LANGUAGE plpgsql;
//
// applied to activity_logs, documents, events and action_items.
const Channel = "chronoboard_changes"

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

// Listener bridges Postgres NOTIFY into the Hub. Reconnection is delegated
// to pq.Listener; after a reconnect pq delivers a nil notification, which we
// ignore since consumers refetch on every real change anyway.
type Listener struct {
	pql *pq.Listener
	hub *Hub
}

func NewListener(dsn string, hub *Hub) (*Listener, error) {
	pql := pq.NewListener(dsn, minReconnectInterval, maxReconnectInterval,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Printf("realtime listener event %v: %v", ev, err)
			}
		})

	if err := pql.Listen(Channel); err != nil {
		pql.Close()
		return nil, err
	}

	return &Listener{pql: pql, hub: hub}, nil
}

// Start consumes notifications until ctx is done. Run it in its own
// goroutine.
func (l *Listener) Start(ctx context.Context) {
	defer l.pql.Close()

	ping := time.NewTicker(pingInterval)
	defer ping.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case n := <-l.pql.Notify:
			if n == nil {
				// Connection was re-established; nothing to replay.
				continue
			}
			l.dispatch(n.Extra)
		case <-ping.C:
			if err := l.pql.Ping(); err != nil {
				log.Printf("realtime listener ping failed: %v", err)
			}
		}
	}
}

func (l *Listener) dispatch(payload string) {
	var n Notification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		log.Printf("realtime listener: bad payload %q: %v", payload, err)
		return
	}
	if n.Table == "" || n.ProjectID == "" {
		return
	}
	l.hub.Publish(n)
}

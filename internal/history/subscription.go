package history

import (
	"context"
	"time"

	"github.com/lib/pq"

	"github.com/vidget/media-downloader/internal/model"
)

// The NOTIFY channel raised by the history table trigger. The payload is
// the user id whose records changed.
const notifyChannel = "history_events"

// Listener reconnect and resync tuning
const (
	listenMinReconnect = 10 * time.Second
	listenMaxReconnect = time.Minute
	resyncInterval     = 90 * time.Second
)

// Subscribe delivers a full, newest-first snapshot of the user's history to
// onSnapshot: once immediately, and again after every relevant change. The
// returned stop function tears the subscription down; it must be called when
// the identity changes or the consumer is disposed.
func (s *Store) Subscribe(uid string, onSnapshot func([]model.HistoryItem)) (stop func(), err error) {
	listener := pq.NewListener(s.dsn, listenMinReconnect, listenMaxReconnect, nil)
	if err := listener.Listen(notifyChannel); err != nil {
		listener.Close()
		return nil, err
	}

	done := make(chan struct{})
	go s.watch(uid, listener, onSnapshot, done)

	return func() { close(done) }, nil
}

// watch pushes snapshots until the subscription is stopped. Snapshot query
// failures are logged and skipped; the next event tries again.
func (s *Store) watch(uid string, listener *pq.Listener, onSnapshot func([]model.HistoryItem), done chan struct{}) {
	defer listener.Close()

	s.push(uid, onSnapshot)

	resync := time.NewTicker(resyncInterval)
	defer resync.Stop()

	for {
		select {
		case notification := <-listener.Notify:
			// A nil notification signals a re-established connection;
			// events may have been missed, so resnapshot unconditionally.
			if notification == nil || notification.Extra == uid {
				s.push(uid, onSnapshot)
			}
		case <-resync.C:
			// Keep the connection alive and recover from missed events
			if err := listener.Ping(); err != nil {
				s.logger.Warn("history listener ping failed", "error", err)
			}
			s.push(uid, onSnapshot)
		case <-done:
			return
		}
	}
}

func (s *Store) push(uid string, onSnapshot func([]model.HistoryItem)) {
	items, err := s.All(context.Background(), uid)
	if err != nil {
		s.logger.Error("failed to load history snapshot", "user", uid, "error", err)
		return
	}
	onSnapshot(items)
}

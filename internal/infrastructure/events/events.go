// Package events publishes sync progress. The reconciler emits one event
// per processed contact through a Writer; delivery is best-effort and a
// failing transport never affects reconciliation outcomes.
package events

import (
	"context"
	"time"
)

// SyncEvent is one per-contact reconciliation outcome.
type SyncEvent struct {
	RunID     string    `json:"runId"`
	ContactID uint      `json:"contactId"`
	Name      string    `json:"name"`
	Action    string    `json:"action"` // created, updated, error
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Writer delivers sync events to a transport.
type Writer interface {
	WriteEvent(ctx context.Context, event SyncEvent) error
	Close() error
}

// multiWriter fans one event out to several transports, keeping the first
// error but attempting every writer.
type multiWriter struct {
	writers []Writer
}

// NewMultiWriter combines writers; used when kafka publishing runs next to
// the in-process websocket feed.
func NewMultiWriter(writers ...Writer) Writer {
	return &multiWriter{writers: writers}
}

func (m *multiWriter) WriteEvent(ctx context.Context, event SyncEvent) error {
	var firstErr error
	for _, w := range m.writers {
		if err := w.WriteEvent(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multiWriter) Close() error {
	var firstErr error
	for _, w := range m.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// NopWriter discards events; used in tests and when no transport is
// configured.
type NopWriter struct{}

func (NopWriter) WriteEvent(ctx context.Context, event SyncEvent) error { return nil }
func (NopWriter) Close() error                                          { return nil }

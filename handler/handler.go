package handler

import (
	"github.com/philipp01105/logfile/core"
)

// Handler defines the interface for log routers. A logfile fans every
// admitted entry out to each of its handlers.
type Handler interface {
	// Handle processes a log entry. The entry must be treated as read-only.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsReporter is implemented by handlers that track Stats.
type StatsReporter interface {
	Stats() Snapshot
}

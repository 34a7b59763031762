package handler

import (
	"errors"

	"github.com/philipp01105/daylog/core"
)

// ErrClosed is returned by Handle after Close
var ErrClosed = errors.New("handler closed")

// Handler defines the interface for line sinks
type Handler interface {
	// Handle appends one fully rendered line. The line must be written
	// completely or not at all, and must not be retained after Handle
	// returns.
	Handle(level core.Level, line []byte) error

	// Close closes the handler and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that count their writes
type StatsProvider interface {
	Stats() Snapshot
}

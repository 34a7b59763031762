package handler

import (
	"io"
	"os"
	"sync"

	"github.com/philipp01105/daylog/core"
)

// WriterHandler appends lines to an io.Writer. Each line is passed to
// the writer in a single Write call while holding the handler's mutex,
// so concurrent records never interleave.
type WriterHandler struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	closed bool
	stats  *Stats
}

// WriterConfig holds configuration for the writer handler
type WriterConfig struct {
	// Writer is the destination (default: os.Stdout)
	Writer io.Writer
	// CloseWriter closes Writer on Close when it implements io.Closer
	CloseWriter bool
}

// NewWriterHandler creates a new writer handler
func NewWriterHandler(cfg WriterConfig) *WriterHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}

	h := &WriterHandler{
		w:     cfg.Writer,
		stats: NewStats(),
	}
	if cfg.CloseWriter {
		h.closer, _ = cfg.Writer.(io.Closer)
	}
	return h
}

// Handle writes line with one Write call
func (h *WriterHandler) Handle(level core.Level, line []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		h.stats.IncrementFailed(level)
		return ErrClosed
	}

	n, err := h.w.Write(line)
	if err == nil && n < len(line) {
		err = io.ErrShortWrite
	}
	if err != nil {
		h.stats.IncrementFailed(level)
		return err
	}

	h.stats.IncrementWritten(level)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *WriterHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the underlying writer if the handler owns it
func (h *WriterHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	if h.closer != nil {
		return h.closer.Close()
	}
	return nil
}

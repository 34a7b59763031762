package benchmark

import (
	"github.com/philipp01105/daylog/core"
	"github.com/philipp01105/daylog/handler"
)

// noopHandler drops every line, isolating formatting cost from I/O
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(_ core.Level, line []byte) error {
	_ = len(line)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}

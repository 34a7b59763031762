package consolehandler

import (
	"io"
	"os"

	"github.com/philipp01105/daylog/handler"
)

// ConsoleHandler writes lines to stdout or stderr
type ConsoleHandler struct {
	*handler.WriterHandler
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout, or os.Stderr when Stderr is set)
	Writer io.Writer
	// Stderr selects os.Stderr as the default writer
	Stderr bool
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
		if cfg.Stderr {
			cfg.Writer = os.Stderr
		}
	}

	return &ConsoleHandler{
		WriterHandler: handler.NewWriterHandler(handler.WriterConfig{
			Writer: cfg.Writer,
		}),
	}
}

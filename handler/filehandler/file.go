package filehandler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/philipp01105/daylog/handler"
)

const (
	// DefaultDir is the directory log files are created in
	DefaultDir = "logs"
	// DefaultPrefix starts every log file name
	DefaultPrefix = "Log"

	dateFormat = "2006-01-02"
	ext        = ".log"
)

// FileHandler appends lines to the log file of its start date
type FileHandler struct {
	*handler.WriterHandler
	path string
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Dir is the directory holding the log files (default: "logs")
	Dir string
	// Prefix starts the file name (default: "Log")
	Prefix string
	// Now supplies the start date (default: time.Now)
	Now func() time.Time
}

// NewFileHandler creates the logs directory if needed and opens the
// day's file in create-or-append mode.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Dir == "" {
		cfg.Dir = DefaultDir
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(cfg.Dir, DailyFilename(cfg.Prefix, cfg.Now()))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileHandler{
		WriterHandler: handler.NewWriterHandler(handler.WriterConfig{
			Writer:      syncCloser{file},
			CloseWriter: true,
		}),
		path: path,
	}, nil
}

// DailyFilename returns the file name for the local date of day
func DailyFilename(prefix string, day time.Time) string {
	return prefix + " " + day.Local().Format(dateFormat) + ext
}

// Path returns the file the handler appends to
func (h *FileHandler) Path() string {
	return h.path
}

// syncCloser flushes the file to disk before closing it
type syncCloser struct {
	*os.File
}

func (f syncCloser) Close() error {
	if err := f.Sync(); err != nil {
		_ = f.File.Close()
		return err
	}
	return f.File.Close()
}

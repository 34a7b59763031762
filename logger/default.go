package logger

import (
	"sync"

	"github.com/philipp01105/daylog/config"
	"github.com/philipp01105/daylog/handler/filehandler"
)

var (
	instance     *Logger
	instanceOnce sync.Once
	instanceMu   sync.RWMutex
)

// Instance returns the process-wide logger. On first use it opens the
// daily file in the "logs" directory with the default configuration and
// keeps it for the lifetime of the process. It panics if the file cannot
// be opened.
func Instance() *Logger {
	instanceOnce.Do(func() {
		instanceMu.Lock()
		defer instanceMu.Unlock()
		if instance == nil {
			instance = MustNewFile(filehandler.FileConfig{})
		}
	})

	instanceMu.RLock()
	defer instanceMu.RUnlock()
	return instance
}

// SetInstance replaces the process-wide logger. Calling it before the
// first Instance call prevents the default file from being opened.
func SetInstance(l *Logger) {
	instanceOnce.Do(func() {})

	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = l
}

// Package-level convenience functions using the process-wide logger

// Settings returns the configuration handle of the process-wide logger
func Settings() *config.Store {
	return Instance().Settings()
}

// Verbosef logs a formatted verbose message using the process-wide logger
func Verbosef(format string, args ...interface{}) {
	Instance().logf(Verbose, format, args)
}

// Infof logs a formatted informational message using the process-wide logger
func Infof(format string, args ...interface{}) {
	Instance().logf(Information, format, args)
}

// Warningf logs a formatted warning message using the process-wide logger
func Warningf(format string, args ...interface{}) {
	Instance().logf(Warning, format, args)
}

// Errorf logs a formatted error message using the process-wide logger
func Errorf(format string, args ...interface{}) {
	Instance().logf(Error, format, args)
}

// Debugf logs a formatted debug message using the process-wide logger
func Debugf(format string, args ...interface{}) {
	Instance().logf(Debug, format, args)
}

// Tracef logs a formatted trace message using the process-wide logger
func Tracef(format string, args ...interface{}) {
	Instance().logf(Trace, format, args)
}

// Criticalf logs a formatted critical message using the process-wide logger
func Criticalf(format string, args ...interface{}) {
	Instance().logf(Critical, format, args)
}

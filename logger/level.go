package logger

import (
	"github.com/philipp01105/daylog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	Verbose     = core.Verbose
	Information = core.Information
	Warning     = core.Warning
	Error       = core.Error
	Debug       = core.Debug
	Trace       = core.Trace
	Critical    = core.Critical
)

// CallSite Re-export for callers that pass their own location
type CallSite = core.CallSite

// ParseLevel converts a string to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}

// Site is shorthand for building a call-site
func Site(file string, line, column int) *CallSite {
	return &CallSite{File: file, Line: line, Column: column}
}

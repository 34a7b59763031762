// Package consolehandler provides a handler that writes rendered lines
// to the process's standard streams (default: os.Stdout).
//
// It shares the write path of handler.WriterHandler: one Write per line
// under the handler's mutex, with per-level counters. Closing the
// handler stops further writes but never closes the stream itself.
package consolehandler

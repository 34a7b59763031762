// Package handler provides the Handler interface and the built-in sink
// that appends rendered lines to an output.
//
// A Handler receives lines that are already complete, including the
// trailing newline. It must hand each line to its output in one write so
// that a record is either fully written or not written at all, and it
// must serialize writes so that concurrent records never interleave.
// The handler's lock is independent of the configuration lock; a slow
// write never blocks configuration readers.
//
// Built-in handlers:
//
//   - WriterHandler appends to any io.Writer (default: stdout).
//   - consolehandler.ConsoleHandler writes to stdout or stderr and
//     leaves the stream open on Close.
//   - filehandler.FileHandler appends to a per-day file.
//
// Handlers count written and failed lines per level in a Stats value
// that can be queried at runtime for monitoring.
package handler

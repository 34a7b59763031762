// Package logger is the public API of daylog. Most users only need to
// import this package.
//
// A Logger reads from a config.Store, renders each record with a
// formatter.LineFormatter and appends the line to a handler. The store
// is shared and mutable; the logger takes exactly one snapshot of it per
// record, so every line reflects one consistent configuration even while
// other goroutines change settings.
//
// Severity is part of that configuration. The selectors return the
// Logger so a selection and a log call chain:
//
//	log.Warning().Log(logger.Site("main.go", 42, 7), "disk full")
//
// LogAt renders at an explicit level without touching the selection.
// The f-style helpers (Infof, Warningf, ...) select their level, capture
// the caller's file and line, and log at that level.
//
// The process-wide logger returned by Instance is created on first use
// and appends to "logs/Log <start date>.log". Package-level functions
// such as Warningf delegate to it:
//
//	logger.Settings().UTCTime().HideMicros()
//	logger.Warningf("disk %s is %d%% full", dev, pct)
//
// Lines that cannot be written are dropped: Log returns the handler
// error, the handler counts the failure, and the failure is reported on
// the logger's zap error logger (stderr by default). The logger never
// terminates the process because of a failed write.
package logger

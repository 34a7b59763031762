// Package core defines the shared types used across daylog.
//
// It provides the Level type that selects the bracketed severity tag,
// the Record type that represents a single log call before rendering,
// and the CallSite type that carries an already-extracted file, line
// and column triple.
//
// Record objects are pooled via sync.Pool so that the hot path does
// not allocate a new Record per call. Callers get a Record with
// GetRecord and must return it with PutRecord once the line has been
// rendered. A Record is never persisted; only its rendered line is.
//
// Clock abstracts time.Now so that formatting can be tested against a
// fixed instant.
package core

package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// CallSite identifies where a log call originated. A zero Line or Column
// means the value is unknown.
type CallSite struct {
	File   string
	Line   int
	Column int
}

// Record represents one log call before it is rendered
type Record struct {
	Time    time.Time
	Level   Level
	Site    *CallSite
	Message string

	site CallSite
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{}
	},
}

// GetRecord retrieves a Record from the pool
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = time.Time{}
	r.Level = Verbose
	r.Site = nil
	r.Message = ""
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	r.Message = ""
	r.Site = nil
	r.site = CallSite{}
	recordPool.Put(r)
}

// SetSite copies site into storage owned by the record, so the caller's
// value does not escape. A nil site clears the call-site.
func (r *Record) SetSite(site *CallSite) {
	if site == nil {
		r.Site = nil
		return
	}
	r.site = *site
	r.Site = &r.site
}

// Caller captures the call-site skip frames above the caller of Caller.
// File is reduced to its base name. Go reports no column, so Column is 0.
func Caller(skip int) (CallSite, bool) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallSite{}, false
	}
	return CallSite{
		File: filepath.Base(file),
		Line: line,
	}, true
}

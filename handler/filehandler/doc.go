// Package filehandler provides the file sink that appends rendered
// lines to one log file per calendar day.
//
// The file name is derived once, when the handler is created, from the
// local date at that moment ("Log 2006-01-02.log" inside the logs
// directory). The handler does not switch files at midnight: a process
// that runs across days keeps appending to the file of its start date.
// Size- or time-based rotation is deliberately not provided.
//
// The logs directory is created on first use. Failing to create the
// directory or open the file is reported by NewFileHandler; a logger
// cannot be built without its sink.
package filehandler

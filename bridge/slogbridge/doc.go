// Package slogbridge provides a log/slog.Handler that renders slog
// records through a daylog Logger, so code written against the standard
// library's structured logging API ends up in the daily log file.
//
// Attributes are appended to the message as key=value pairs; groups are
// flattened into dotted keys. The record's source position, when the
// slog.Logger captured one, becomes the daylog call-site.
package slogbridge

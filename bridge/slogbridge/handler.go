package slogbridge

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/philipp01105/daylog/core"
	"github.com/philipp01105/daylog/logger"
)

// Options configure a Handler
type Options struct {
	// Level is the minimum slog level handled (default: slog.LevelDebug)
	Level slog.Leveler
	// AddSource passes the record's source position as the call-site
	AddSource bool
}

// Handler is an adapter that implements slog.Handler using a daylog Logger.
type Handler struct {
	logger    *logger.Logger
	level     slog.Leveler
	addSource bool
	attrs     string
	group     string
}

// NewHandler creates a new slog.Handler adapter wrapping l.
func NewHandler(l *logger.Logger, opts *Options) *Handler {
	h := &Handler{
		logger: l,
		level:  slog.LevelDebug,
	}
	if opts != nil {
		if opts.Level != nil {
			h.level = opts.Level
		}
		h.addSource = opts.AddSource
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle renders the record at the daylog level matching its slog level.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Message)
	sb.WriteString(h.attrs)
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.group, a)
		return true
	})

	var site *core.CallSite
	if h.addSource && record.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{record.PC})
		f, _ := frames.Next()
		if f.File != "" {
			site = &core.CallSite{File: filepath.Base(f.File), Line: f.Line}
		}
	}

	return h.logger.LogAt(LevelFromSlog(record.Level), site, sb.String())
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.group, a)
	}
	clone := *h
	clone.attrs = sb.String()
	return &clone
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if h.group != "" {
		clone.group = h.group + "." + name
	} else {
		clone.group = name
	}
	return &clone
}

// LevelFromSlog maps a slog level to the closest daylog level. Levels
// above slog.LevelError become Critical, levels below slog.LevelDebug
// become Trace.
func LevelFromSlog(level slog.Level) core.Level {
	switch {
	case level > slog.LevelError:
		return core.Critical
	case level >= slog.LevelError:
		return core.Error
	case level >= slog.LevelWarn:
		return core.Warning
	case level >= slog.LevelInfo:
		return core.Information
	case level >= slog.LevelDebug:
		return core.Debug
	default:
		return core.Trace
	}
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(sb, key, ga)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	sb.WriteString(quoteIfNeeded(a.Value.String()))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " =\"\t") {
		return strconv.Quote(s)
	}
	return s
}

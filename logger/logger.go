package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/daylog/config"
	"github.com/philipp01105/daylog/core"
	"github.com/philipp01105/daylog/formatter"
	"github.com/philipp01105/daylog/handler"
	"github.com/philipp01105/daylog/handler/filehandler"
)

// Logger renders records from the current configuration snapshot and
// appends them to its handler
type Logger struct {
	store           *config.Store
	handler         handler.Handler
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	clock           core.Clock
	errLog          *zap.Logger
	callerSkip      int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	store      *config.Store
	handler    handler.Handler
	formatter  formatter.Formatter
	clock      core.Clock
	errLog     *zap.Logger
	callerSkip int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		callerSkip: 2, // Skip logf and the exported wrapper
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithConfig gives the logger its own store holding cfg
func (b *Builder) WithConfig(cfg config.Config) *Builder {
	b.store = config.NewStore(cfg)
	return b
}

// WithStore makes the logger read from an existing, possibly shared, store
func (b *Builder) WithStore(s *config.Store) *Builder {
	b.store = s
	return b
}

// WithFormatter replaces the line formatter
func (b *Builder) WithFormatter(f formatter.Formatter) *Builder {
	b.formatter = f
	return b
}

// WithClock sets the timestamp source
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithErrorLogger sets where dropped lines are reported
func (b *Builder) WithErrorLogger(z *zap.Logger) *Builder {
	b.errLog = z
	return b
}

// WithCallerSkip adds frames to skip when the f-style helpers capture
// the call-site, for wrappers around Logger.
func (b *Builder) WithCallerSkip(extra int) *Builder {
	b.callerSkip = 2 + extra
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	l := &Logger{
		store:      b.store,
		handler:    b.handler,
		formatter:  b.formatter,
		clock:      b.clock,
		errLog:     b.errLog,
		callerSkip: b.callerSkip,
	}
	if l.store == nil {
		l.store = config.NewDefaultStore()
	}
	if l.formatter == nil {
		l.formatter = formatter.NewLineFormatter()
	}
	if l.clock == nil {
		l.clock = core.SystemClock{}
	}
	if l.errLog == nil {
		l.errLog = defaultErrorLogger()
	}
	// Cache BufferFormatter for the pooled-buffer path
	l.bufferFormatter, _ = l.formatter.(formatter.BufferFormatter)
	return l
}

// New creates a logger with the default configuration
func New(h handler.Handler) *Logger {
	return NewBuilder().WithHandler(h).Build()
}

// NewWithConfig creates a logger that starts from cfg
func NewWithConfig(cfg config.Config, h handler.Handler) *Logger {
	return NewBuilder().WithHandler(h).WithConfig(cfg).Build()
}

// NewFile creates a logger with the default configuration that appends
// to the daily file described by fileCfg.
func NewFile(fileCfg filehandler.FileConfig) (*Logger, error) {
	h, err := filehandler.NewFileHandler(fileCfg)
	if err != nil {
		return nil, err
	}
	return New(h), nil
}

// MustNewFile is like NewFile but panics when the file cannot be opened
func MustNewFile(fileCfg filehandler.FileConfig) *Logger {
	l, err := NewFile(fileCfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}
	return l
}

func defaultErrorLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	zc := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.WarnLevel)
	return zap.New(zc).Named("daylog")
}

// Settings returns the configuration handle. Changes apply to every
// record rendered after the call returns.
func (l *Logger) Settings() *config.Store {
	return l.store
}

// SetLevel selects the severity of subsequent Log calls
func (l *Logger) SetLevel(level core.Level) *Logger {
	l.store.SetLevel(level)
	return l
}

// Verbose selects the [VERBOSE] tag
func (l *Logger) Verbose() *Logger { return l.SetLevel(core.Verbose) }

// Information selects the [INFO] tag
func (l *Logger) Information() *Logger { return l.SetLevel(core.Information) }

// Warning selects the [WARNING] tag
func (l *Logger) Warning() *Logger { return l.SetLevel(core.Warning) }

// Error selects the [ERROR] tag
func (l *Logger) Error() *Logger { return l.SetLevel(core.Error) }

// Debug selects the [DEBUG] tag
func (l *Logger) Debug() *Logger { return l.SetLevel(core.Debug) }

// Trace selects the [TRACE] tag
func (l *Logger) Trace() *Logger { return l.SetLevel(core.Trace) }

// Critical selects the [CRITICAL] tag
func (l *Logger) Critical() *Logger { return l.SetLevel(core.Critical) }

// Log renders msg at the currently selected level and appends it. site
// may be nil. The returned error is the handler's; the line has then
// been dropped.
func (l *Logger) Log(site *core.CallSite, msg string) error {
	cfg := l.store.Snapshot()
	return l.write(cfg, cfg.Level, site, msg)
}

// LogAt is like Log but uses level instead of the selected one, without
// changing the selection.
func (l *Logger) LogAt(level core.Level, site *core.CallSite, msg string) error {
	return l.write(l.store.Snapshot(), level, site, msg)
}

// write assembles the full line in memory and hands it to the handler
// in one call
func (l *Logger) write(cfg config.Config, level core.Level, site *core.CallSite, msg string) error {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return nil
	}

	rec := core.GetRecord()
	rec.Time = l.clock.Now()
	rec.Level = level
	rec.Message = msg
	rec.SetSite(site)

	buf := formatter.GetBuffer()
	if l.bufferFormatter != nil {
		l.bufferFormatter.FormatRecord(cfg, rec, buf)
	} else {
		buf.Write(l.formatter.Format(cfg, rec))
	}
	core.PutRecord(rec)

	err := l.handler.Handle(level, buf.Bytes())
	formatter.PutBuffer(buf)

	if err != nil {
		l.errLog.Warn("dropped log line",
			zap.Stringer("level", level),
			zap.Int("message_length", len(msg)),
			zap.Error(err),
		)
	}
	return err
}

// logf selects level, captures the caller and logs the formatted message
// at that level
func (l *Logger) logf(level core.Level, format string, args []interface{}) {
	l.store.SetLevel(level)

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	if site, ok := core.Caller(l.callerSkip); ok {
		_ = l.write(l.store.Snapshot(), level, &site, msg)
		return
	}
	_ = l.write(l.store.Snapshot(), level, nil, msg)
}

// Verbosef logs a formatted message with the [VERBOSE] tag and the caller's location
func (l *Logger) Verbosef(format string, args ...interface{}) {
	l.logf(core.Verbose, format, args)
}

// Infof logs a formatted message with the [INFO] tag and the caller's location
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(core.Information, format, args)
}

// Warningf logs a formatted message with the [WARNING] tag and the caller's location
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.logf(core.Warning, format, args)
}

// Errorf logs a formatted message with the [ERROR] tag and the caller's location
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(core.Error, format, args)
}

// Debugf logs a formatted message with the [DEBUG] tag and the caller's location
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logf(core.Debug, format, args)
}

// Tracef logs a formatted message with the [TRACE] tag and the caller's location
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logf(core.Trace, format, args)
}

// Criticalf logs a formatted message with the [CRITICAL] tag and the caller's location
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.logf(core.Critical, format, args)
}

// Stats returns the handler's counters when it keeps any
func (l *Logger) Stats() (handler.Snapshot, bool) {
	sp, ok := l.handler.(handler.StatsProvider)
	if !ok {
		return handler.Snapshot{}, false
	}
	return sp.Stats(), true
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}

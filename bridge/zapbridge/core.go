package zapbridge

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/daylog/core"
	"github.com/philipp01105/daylog/logger"
)

// Core implements zapcore.Core on top of a daylog Logger
type Core struct {
	zapcore.LevelEnabler
	logger *logger.Logger
	fields []zapcore.Field
}

// NewCore creates a core writing through l for every level enab allows
func NewCore(l *logger.Logger, enab zapcore.LevelEnabler) *Core {
	return &Core{
		LevelEnabler: enab,
		logger:       l,
	}
}

// With returns a core that adds fields to every entry
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = make([]zapcore.Field, 0, len(c.fields)+len(fields))
	clone.fields = append(clone.fields, c.fields...)
	clone.fields = append(clone.fields, fields...)
	return &clone
}

// Check adds the core to ce when the entry level is enabled
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry at the daylog level matching its zap level
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	var site *core.CallSite
	if ent.Caller.Defined {
		site = &core.CallSite{File: filepath.Base(ent.Caller.File), Line: ent.Caller.Line}
	}
	return c.logger.LogAt(LevelFromZap(ent.Level), site, c.message(ent, fields))
}

// Sync is a no-op; every line is handed to the sink before Write returns
func (c *Core) Sync() error {
	return nil
}

func (c *Core) message(ent zapcore.Entry, fields []zapcore.Field) string {
	var sb strings.Builder
	if ent.LoggerName != "" {
		sb.WriteString(ent.LoggerName)
		sb.WriteString(": ")
	}
	sb.WriteString(ent.Message)

	if len(c.fields)+len(fields) == 0 {
		return sb.String()
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteByte(' ')
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(formatValue(enc.Fields[k]))
	}
	return sb.String()
}

func formatValue(v interface{}) string {
	s := fmt.Sprint(v)
	if s == "" || strings.ContainsAny(s, " =\"\t") {
		return strconv.Quote(s)
	}
	return s
}

// LevelFromZap maps a zap level to the closest daylog level. DPanic,
// Panic and Fatal all become Critical.
func LevelFromZap(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.Critical
	case level == zapcore.ErrorLevel:
		return core.Error
	case level == zapcore.WarnLevel:
		return core.Warning
	case level == zapcore.InfoLevel:
		return core.Information
	case level == zapcore.DebugLevel:
		return core.Debug
	default:
		return core.Trace
	}
}

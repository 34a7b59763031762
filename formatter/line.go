package formatter

import (
	"bytes"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/philipp01105/daylog/config"
	"github.com/philipp01105/daylog/core"
)

// LineFormatter renders records as tab-separated, width-padded text lines
type LineFormatter struct{}

// NewLineFormatter creates a new line formatter
func NewLineFormatter() *LineFormatter {
	return &LineFormatter{}
}

// Format renders rec as one line terminated by '\n'
func (f *LineFormatter) Format(cfg config.Config, rec *core.Record) []byte {
	buf := GetBuffer()
	defer PutBuffer(buf)

	f.FormatRecord(cfg, rec, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// FormatRecord appends the rendered line to buf
func (f *LineFormatter) FormatRecord(cfg config.Config, rec *core.Record, buf *bytes.Buffer) {
	appendTimestamp(buf, cfg, rec.Time)

	if cfg.ShowLevel {
		buf.WriteString(rec.Level.Tag())
	} else {
		buf.WriteByte('\t')
	}

	appendLocation(buf, cfg, rec.Site)
	appendMessage(buf, cfg.ContentWidth, rec.Message)

	buf.WriteByte('\n')
}

// Timestamp layouts indexed by the six component toggles and the
// sub-second precision.
var layouts [1 << 6][3]string

func init() {
	for mask := range layouts {
		for sub := range layouts[mask] {
			layouts[mask][sub] = buildLayout(mask, config.SubSecond(sub))
		}
	}
}

const (
	bitYears = 1 << iota
	bitMonths
	bitDays
	bitHours
	bitMinutes
	bitSeconds
)

func layoutMask(cfg config.Config) int {
	mask := 0
	if cfg.Date.Years {
		mask |= bitYears
	}
	if cfg.Date.Months {
		mask |= bitMonths
	}
	if cfg.Date.Days {
		mask |= bitDays
	}
	if cfg.Time.Hours {
		mask |= bitHours
	}
	if cfg.Time.Minutes {
		mask |= bitMinutes
	}
	if cfg.Time.Seconds {
		mask |= bitSeconds
	}
	return mask
}

// buildLayout assembles a time.Format layout. The separator belongs to
// the later component, so hiding the year leaves "-01-02".
func buildLayout(mask int, sub config.SubSecond) string {
	var sb strings.Builder
	if mask&bitYears != 0 {
		sb.WriteString("2006")
	}
	if mask&bitMonths != 0 {
		sb.WriteString("-01")
	}
	if mask&bitDays != 0 {
		sb.WriteString("-02")
	}
	if mask&(bitYears|bitMonths|bitDays) != 0 {
		sb.WriteByte(' ')
	}
	if mask&bitHours != 0 {
		sb.WriteString("15")
	}
	if mask&bitMinutes != 0 {
		sb.WriteString(":04")
	}
	if mask&bitSeconds != 0 {
		sb.WriteString(":05")
	}
	switch sub {
	case config.Microseconds:
		sb.WriteString(".000000")
	case config.Milliseconds:
		sb.WriteString(".000")
	}
	return sb.String()
}

// TimestampLayout returns the time.Format layout used for cfg
func TimestampLayout(cfg config.Config) string {
	sub := cfg.Time.SubSecond
	if sub > config.NoSubSecond {
		sub = config.NoSubSecond
	}
	return layouts[layoutMask(cfg)][sub]
}

func appendTimestamp(buf *bytes.Buffer, cfg config.Config, t time.Time) {
	t = cfg.Timezone.In(t)
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), TimestampLayout(cfg)))
	buf.WriteByte('\t')
}

// appendLocation writes "@file: line|column" cut or padded to the
// location width. Nothing is written when no location is shown.
func appendLocation(buf *bytes.Buffer, cfg config.Config, site *core.CallSite) {
	if site == nil || !cfg.Location.File {
		return
	}

	var scratch [128]byte
	loc := append(scratch[:0], '@')
	loc = append(loc, site.File...)
	if cfg.Location.Line && site.Line > 0 {
		loc = append(loc, ": "...)
		loc = strconv.AppendInt(loc, int64(site.Line), 10)
		if cfg.Location.Column && site.Column > 0 {
			loc = append(loc, '|')
			loc = strconv.AppendInt(loc, int64(site.Column), 10)
		}
	}

	width := cfg.LocationWidth
	n := utf8.RuneCount(loc)
	if n > width {
		head, _ := cutRunes(string(loc), width)
		buf.WriteString(head)
		buf.WriteString("\t\t")
		return
	}
	buf.Write(loc)
	writePadding(buf, width-n)
}

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// appendMessage writes msg cut or padded to width runes. Line breaks are
// flattened to spaces so a record always occupies one line.
func appendMessage(buf *bytes.Buffer, width int, msg string) {
	if strings.ContainsAny(msg, "\r\n") {
		msg = newlineReplacer.Replace(msg)
	}
	msg, n := cutRunes(msg, width)
	buf.WriteString(msg)
	writePadding(buf, width-n)
}

// cutRunes returns the prefix of s holding at most n runes, and the rune
// count of that prefix.
func cutRunes(s string, n int) (string, int) {
	count := 0
	for i := range s {
		if count == n {
			return s[:i], count
		}
		count++
	}
	return s, count
}

const spaces = "                                                                "

func writePadding(buf *bytes.Buffer, n int) {
	for n > len(spaces) {
		buf.WriteString(spaces)
		n -= len(spaces)
	}
	if n > 0 {
		buf.WriteString(spaces[:n])
	}
}

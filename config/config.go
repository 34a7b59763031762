package config

import (
	"time"

	"github.com/philipp01105/daylog/core"
)

const (
	// DefaultLocationWidth is the column width reserved for the call-site
	DefaultLocationWidth = 80
	// DefaultContentWidth is the column width reserved for the message
	DefaultContentWidth = 300
)

// SubSecond selects the fractional-second precision of the timestamp
type SubSecond uint8

const (
	// Microseconds renders six fractional digits (default)
	Microseconds SubSecond = iota
	// Milliseconds renders three fractional digits
	Milliseconds
	// NoSubSecond renders no fraction at all
	NoSubSecond
)

// String returns the string representation of the precision
func (s SubSecond) String() string {
	switch s {
	case Microseconds:
		return "micros"
	case Milliseconds:
		return "millis"
	case NoSubSecond:
		return "none"
	default:
		return "unknown"
	}
}

// Timezone selects how the record timestamp is resolved
type Timezone uint8

const (
	// Local uses the system local offset (default)
	Local Timezone = iota
	// UTC uses Coordinated Universal Time
	UTC
)

// String returns the string representation of the timezone
func (z Timezone) String() string {
	if z == UTC {
		return "utc"
	}
	return "local"
}

// In converts t to the timezone.
func (z Timezone) In(t time.Time) time.Time {
	if z == UTC {
		return t.UTC()
	}
	return t.Local()
}

// DateConfig toggles the date components of the timestamp
type DateConfig struct {
	Years  bool
	Months bool
	Days   bool
}

// Any reports whether at least one date component is shown.
func (d DateConfig) Any() bool {
	return d.Years || d.Months || d.Days
}

// TimeConfig toggles the time components of the timestamp
type TimeConfig struct {
	Hours     bool
	Minutes   bool
	Seconds   bool
	SubSecond SubSecond
}

// LocationConfig toggles the call-site fields. Line is only rendered
// together with File, and Column only together with Line.
type LocationConfig struct {
	File   bool
	Line   bool
	Column bool
}

// Config is one immutable snapshot of the logger configuration.
//
// Every toggle method has a value receiver and returns the modified copy,
// so a Config can be built up fluently and then swapped into a Store:
//
//	cfg := config.Default().UTCTime().HideYears().SetLocationWidth(40)
type Config struct {
	Date          DateConfig
	Time          TimeConfig
	Timezone      Timezone
	ShowLevel     bool
	Level         core.Level
	Location      LocationConfig
	LocationWidth int
	ContentWidth  int
}

// Default returns the configuration a logger starts with
func Default() Config {
	return Config{
		Date:      DateConfig{Years: true, Months: true, Days: true},
		Time:      TimeConfig{Hours: true, Minutes: true, Seconds: true, SubSecond: Microseconds},
		Timezone:  Local,
		ShowLevel: true,
		Level:     core.Verbose,
		Location: LocationConfig{
			File: true,
			Line: true,
		},
		LocationWidth: DefaultLocationWidth,
		ContentWidth:  DefaultContentWidth,
	}
}

// HidesMillis reports the hide_millis flag derived from SubSecond.
func (c Config) HidesMillis() bool {
	return c.Time.SubSecond == NoSubSecond
}

// HidesMicros reports the hide_micros flag derived from SubSecond.
// Hiding milliseconds always hides microseconds too.
func (c Config) HidesMicros() bool {
	return c.Time.SubSecond != Microseconds
}

// WithLevel selects the severity
func (c Config) WithLevel(level core.Level) Config {
	c.Level = level
	return c
}

// ShowYears shows the year component
func (c Config) ShowYears() Config {
	c.Date.Years = true
	return c
}

// HideYears hides the year component
func (c Config) HideYears() Config {
	c.Date.Years = false
	return c
}

// ShowMonths shows the month component
func (c Config) ShowMonths() Config {
	c.Date.Months = true
	return c
}

// HideMonths hides the month component
func (c Config) HideMonths() Config {
	c.Date.Months = false
	return c
}

// ShowDays shows the day component
func (c Config) ShowDays() Config {
	c.Date.Days = true
	return c
}

// HideDays hides the day component
func (c Config) HideDays() Config {
	c.Date.Days = false
	return c
}

// ShowHours shows the hour component
func (c Config) ShowHours() Config {
	c.Time.Hours = true
	return c
}

// HideHours hides the hour component
func (c Config) HideHours() Config {
	c.Time.Hours = false
	return c
}

// ShowMinutes shows the minute component
func (c Config) ShowMinutes() Config {
	c.Time.Minutes = true
	return c
}

// HideMinutes hides the minute component
func (c Config) HideMinutes() Config {
	c.Time.Minutes = false
	return c
}

// ShowSeconds shows the second component
func (c Config) ShowSeconds() Config {
	c.Time.Seconds = true
	return c
}

// HideSeconds hides the second component
func (c Config) HideSeconds() Config {
	c.Time.Seconds = false
	return c
}

// ShowMillis turns sub-second output back on. Microsecond precision is
// kept if it was already selected.
func (c Config) ShowMillis() Config {
	if c.Time.SubSecond == NoSubSecond {
		c.Time.SubSecond = Milliseconds
	}
	return c
}

// HideMillis suppresses sub-second output entirely, microseconds included.
func (c Config) HideMillis() Config {
	c.Time.SubSecond = NoSubSecond
	return c
}

// ShowMicros selects microsecond precision. It has no effect while
// milliseconds are hidden.
func (c Config) ShowMicros() Config {
	if c.Time.SubSecond == Milliseconds {
		c.Time.SubSecond = Microseconds
	}
	return c
}

// HideMicros drops microsecond precision down to milliseconds.
func (c Config) HideMicros() Config {
	if c.Time.SubSecond == Microseconds {
		c.Time.SubSecond = Milliseconds
	}
	return c
}

// UTCTime renders timestamps in UTC
func (c Config) UTCTime() Config {
	c.Timezone = UTC
	return c
}

// LocalTime renders timestamps in the system local zone
func (c Config) LocalTime() Config {
	c.Timezone = Local
	return c
}

// ShowLevelTag shows the bracketed severity tag
func (c Config) ShowLevelTag() Config {
	c.ShowLevel = true
	return c
}

// HideLevelTag replaces the severity tag with a tab placeholder
func (c Config) HideLevelTag() Config {
	c.ShowLevel = false
	return c
}

// ShowFileName shows the call-site file name
func (c Config) ShowFileName() Config {
	c.Location.File = true
	return c
}

// HideFileName hides the whole location section
func (c Config) HideFileName() Config {
	c.Location.File = false
	return c
}

// ShowFileLine shows the call-site line number
func (c Config) ShowFileLine() Config {
	c.Location.Line = true
	return c
}

// HideFileLine hides the line and column numbers
func (c Config) HideFileLine() Config {
	c.Location.Line = false
	return c
}

// ShowFileColumn shows the call-site column number
func (c Config) ShowFileColumn() Config {
	c.Location.Column = true
	return c
}

// HideFileColumn hides the column number
func (c Config) HideFileColumn() Config {
	c.Location.Column = false
	return c
}

// SetLocationWidth sets the location column width. Negative values are
// treated as 0.
func (c Config) SetLocationWidth(n int) Config {
	c.LocationWidth = clampWidth(n)
	return c
}

// SetContentWidth sets the message column width. Negative values are
// treated as 0.
func (c Config) SetContentWidth(n int) Config {
	c.ContentWidth = clampWidth(n)
	return c
}

func clampWidth(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

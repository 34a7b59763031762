package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for names that match no Level.
var ErrUnknownLevel = errors.New("unknown level")

// Level represents the severity tag attached to a record
type Level int8

const (
	// Verbose is the default level
	Verbose Level = iota
	// Information for general informational messages
	Information
	// Warning for conditions worth a second look
	Warning
	// Error for failed operations
	Error
	// Debug for detailed debugging information
	Debug
	// Trace for very fine-grained tracing
	Trace
	// Critical for failures that need immediate attention
	Critical
)

// pre-formatted tag sections. Labels are padded with tabs so that the
// column after the tag lines up for every level.
var levelTags = [...]string{
	Verbose:     "[VERBOSE]\t",
	Information: "[INFO]\t\t",
	Warning:     "[WARNING]\t",
	Error:       "[ERROR]\t\t",
	Debug:       "[DEBUG]\t\t",
	Trace:       "[TRACE]\t\t",
	Critical:    "[CRITICAL]\t",
}

const unknownTag = "[UNKNOWN]\t"

// Levels returns every level in enumeration order.
func Levels() []Level {
	return []Level{Verbose, Information, Warning, Error, Debug, Trace, Critical}
}

// String returns the bare label of the level
func (l Level) String() string {
	switch l {
	case Verbose:
		return "VERBOSE"
	case Information:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Debug:
		return "DEBUG"
	case Trace:
		return "TRACE"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Tag returns the bracketed label including its alignment padding.
func (l Level) Tag() string {
	if l < 0 || int(l) >= len(levelTags) {
		return unknownTag
	}
	return levelTags[l]
}

// Valid reports whether l is a member of the enumeration.
func (l Level) Valid() bool {
	return l >= Verbose && l <= Critical
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and accepts the usual short forms.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "VERBOSE", "VERB":
		return Verbose, nil
	case "INFO", "INFORMATION":
		return Information, nil
	case "WARNING", "WARN":
		return Warning, nil
	case "ERROR", "ERR":
		return Error, nil
	case "DEBUG":
		return Debug, nil
	case "TRACE":
		return Trace, nil
	case "CRITICAL", "CRIT":
		return Critical, nil
	default:
		return Verbose, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// MarshalText implements encoding.TextMarshaler so presets store names.
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, l)
	}
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

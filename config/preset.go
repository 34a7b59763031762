package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/daylog/core"
)

// Format is the encoding of a preset file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatAuto Format = "auto"
)

var (
	// ErrUnsupportedFormat is returned for unknown preset encodings
	ErrUnsupportedFormat = errors.New("unsupported preset format")
	// ErrInvalidPreset is returned when a preset value cannot be applied
	ErrInvalidPreset = errors.New("invalid preset")
)

// Preset is the file form of a Config. Every field is optional; missing
// fields keep the value of the Config the preset is applied to.
type Preset struct {
	Date     DatePreset     `yaml:"date" json:"date" toml:"date"`
	Time     TimePreset     `yaml:"time" json:"time" toml:"time"`
	Level    LevelPreset    `yaml:"level" json:"level" toml:"level"`
	Location LocationPreset `yaml:"location" json:"location" toml:"location"`
	Content  ContentPreset  `yaml:"content" json:"content" toml:"content"`
}

// DatePreset holds the date toggles
type DatePreset struct {
	Years  *bool `yaml:"years,omitempty" json:"years,omitempty" toml:"years,omitempty"`
	Months *bool `yaml:"months,omitempty" json:"months,omitempty" toml:"months,omitempty"`
	Days   *bool `yaml:"days,omitempty" json:"days,omitempty" toml:"days,omitempty"`
}

// TimePreset holds the time toggles. SubSecond is one of micros, millis
// or none; Timezone is local or utc.
type TimePreset struct {
	Hours     *bool  `yaml:"hours,omitempty" json:"hours,omitempty" toml:"hours,omitempty"`
	Minutes   *bool  `yaml:"minutes,omitempty" json:"minutes,omitempty" toml:"minutes,omitempty"`
	Seconds   *bool  `yaml:"seconds,omitempty" json:"seconds,omitempty" toml:"seconds,omitempty"`
	SubSecond string `yaml:"subsecond,omitempty" json:"subsecond,omitempty" toml:"subsecond,omitempty"`
	Timezone  string `yaml:"timezone,omitempty" json:"timezone,omitempty" toml:"timezone,omitempty"`
}

// LevelPreset holds the severity tag settings
type LevelPreset struct {
	Show *bool  `yaml:"show,omitempty" json:"show,omitempty" toml:"show,omitempty"`
	Name string `yaml:"name,omitempty" json:"name,omitempty" toml:"name,omitempty"`
}

// LocationPreset holds the call-site toggles and the column width
type LocationPreset struct {
	File   *bool `yaml:"file,omitempty" json:"file,omitempty" toml:"file,omitempty"`
	Line   *bool `yaml:"line,omitempty" json:"line,omitempty" toml:"line,omitempty"`
	Column *bool `yaml:"column,omitempty" json:"column,omitempty" toml:"column,omitempty"`
	Width  *int  `yaml:"width,omitempty" json:"width,omitempty" toml:"width,omitempty"`
}

// ContentPreset holds the message column width
type ContentPreset struct {
	Width *int `yaml:"width,omitempty" json:"width,omitempty" toml:"width,omitempty"`
}

// LoadPreset reads a preset file and applies it to Default(). The format
// is detected from the file extension.
func LoadPreset(path string) (Config, error) {
	format := DetectFormat(path)
	if format == FormatAuto {
		return Config{}, fmt.Errorf("%w: cannot detect format from file extension: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read preset: %w", err)
	}

	return ParsePreset(data, format)
}

// ParsePreset decodes data and applies it to Default()
func ParsePreset(data []byte, format Format) (Config, error) {
	var p Preset
	if err := unmarshal(data, format, &p); err != nil {
		return Config{}, err
	}
	return p.Apply(Default())
}

// MarshalPreset encodes every field of cfg in the given format
func MarshalPreset(cfg Config, format Format) ([]byte, error) {
	p := PresetFrom(cfg)
	switch format {
	case FormatJSON:
		return json.MarshalIndent(p, "", "  ")
	case FormatYAML:
		return yaml.Marshal(p)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(p); err != nil {
			return nil, fmt.Errorf("failed to marshal TOML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// DetectFormat maps a file extension to a Format
func DetectFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatAuto
	}
}

func unmarshal(data []byte, format Format, p *Preset) error {
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, p); err != nil {
			return fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, p); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, p); err != nil {
			return fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return nil
}

// Apply overlays the preset on base
func (p Preset) Apply(base Config) (Config, error) {
	cfg := base
	setBool(&cfg.Date.Years, p.Date.Years)
	setBool(&cfg.Date.Months, p.Date.Months)
	setBool(&cfg.Date.Days, p.Date.Days)
	setBool(&cfg.Time.Hours, p.Time.Hours)
	setBool(&cfg.Time.Minutes, p.Time.Minutes)
	setBool(&cfg.Time.Seconds, p.Time.Seconds)
	setBool(&cfg.ShowLevel, p.Level.Show)
	setBool(&cfg.Location.File, p.Location.File)
	setBool(&cfg.Location.Line, p.Location.Line)
	setBool(&cfg.Location.Column, p.Location.Column)

	if p.Time.SubSecond != "" {
		s, err := ParseSubSecond(p.Time.SubSecond)
		if err != nil {
			return Config{}, err
		}
		cfg.Time.SubSecond = s
	}
	if p.Time.Timezone != "" {
		z, err := ParseTimezone(p.Time.Timezone)
		if err != nil {
			return Config{}, err
		}
		cfg.Timezone = z
	}
	if p.Level.Name != "" {
		level, err := core.ParseLevel(p.Level.Name)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
		}
		cfg.Level = level
	}
	if p.Location.Width != nil {
		cfg = cfg.SetLocationWidth(*p.Location.Width)
	}
	if p.Content.Width != nil {
		cfg = cfg.SetContentWidth(*p.Content.Width)
	}
	return cfg, nil
}

// PresetFrom builds a fully populated preset from cfg
func PresetFrom(cfg Config) Preset {
	b := func(v bool) *bool { return &v }
	n := func(v int) *int { return &v }
	return Preset{
		Date: DatePreset{
			Years:  b(cfg.Date.Years),
			Months: b(cfg.Date.Months),
			Days:   b(cfg.Date.Days),
		},
		Time: TimePreset{
			Hours:     b(cfg.Time.Hours),
			Minutes:   b(cfg.Time.Minutes),
			Seconds:   b(cfg.Time.Seconds),
			SubSecond: cfg.Time.SubSecond.String(),
			Timezone:  cfg.Timezone.String(),
		},
		Level: LevelPreset{
			Show: b(cfg.ShowLevel),
			Name: strings.ToLower(cfg.Level.String()),
		},
		Location: LocationPreset{
			File:   b(cfg.Location.File),
			Line:   b(cfg.Location.Line),
			Column: b(cfg.Location.Column),
			Width:  n(cfg.LocationWidth),
		},
		Content: ContentPreset{
			Width: n(cfg.ContentWidth),
		},
	}
}

// ParseSubSecond converts micros, millis or none to a SubSecond
func ParseSubSecond(s string) (SubSecond, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "micros", "microseconds", "us":
		return Microseconds, nil
	case "millis", "milliseconds", "ms":
		return Milliseconds, nil
	case "none", "off":
		return NoSubSecond, nil
	default:
		return Microseconds, fmt.Errorf("%w: subsecond %q", ErrInvalidPreset, s)
	}
}

// ParseTimezone converts local or utc to a Timezone
func ParseTimezone(s string) (Timezone, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "local":
		return Local, nil
	case "utc":
		return UTC, nil
	default:
		return Local, fmt.Errorf("%w: timezone %q", ErrInvalidPreset, s)
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

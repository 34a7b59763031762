package config

import (
	"sync"

	"github.com/philipp01105/daylog/core"
)

// Store is the shared, mutable holder of the current Config.
//
// Any number of goroutines may take snapshots concurrently; every
// mutation takes the lock exclusively and is visible to all snapshots
// taken after it returns. All mutators return the Store so calls chain:
//
//	store.UTCTime().HideYears().Warning()
type Store struct {
	mu  sync.RWMutex
	cfg Config
}

// NewStore creates a store holding cfg
func NewStore(cfg Config) *Store {
	return &Store{cfg: cfg}
}

// NewDefaultStore creates a store holding Default()
func NewDefaultStore() *Store {
	return NewStore(Default())
}

// Snapshot returns the current configuration, read under a single lock
// acquisition.
func (s *Store) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Replace swaps in a whole configuration at once
func (s *Store) Replace(cfg Config) *Store {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return s
}

// Update applies fn to the current configuration as one exclusive
// read-modify-write.
func (s *Store) Update(fn func(Config) Config) *Store {
	s.mu.Lock()
	s.cfg = fn(s.cfg)
	s.mu.Unlock()
	return s
}

// SetLevel selects the severity used by subsequent records
func (s *Store) SetLevel(level core.Level) *Store {
	return s.Update(func(c Config) Config { return c.WithLevel(level) })
}

// Verbose selects the [VERBOSE] tag
func (s *Store) Verbose() *Store { return s.SetLevel(core.Verbose) }

// Information selects the [INFO] tag
func (s *Store) Information() *Store { return s.SetLevel(core.Information) }

// Warning selects the [WARNING] tag
func (s *Store) Warning() *Store { return s.SetLevel(core.Warning) }

// Error selects the [ERROR] tag
func (s *Store) Error() *Store { return s.SetLevel(core.Error) }

// Debug selects the [DEBUG] tag
func (s *Store) Debug() *Store { return s.SetLevel(core.Debug) }

// Trace selects the [TRACE] tag
func (s *Store) Trace() *Store { return s.SetLevel(core.Trace) }

// Critical selects the [CRITICAL] tag
func (s *Store) Critical() *Store { return s.SetLevel(core.Critical) }

// ShowYears shows the year component
func (s *Store) ShowYears() *Store { return s.Update(Config.ShowYears) }

// HideYears hides the year component
func (s *Store) HideYears() *Store { return s.Update(Config.HideYears) }

// ShowMonths shows the month component
func (s *Store) ShowMonths() *Store { return s.Update(Config.ShowMonths) }

// HideMonths hides the month component
func (s *Store) HideMonths() *Store { return s.Update(Config.HideMonths) }

// ShowDays shows the day component
func (s *Store) ShowDays() *Store { return s.Update(Config.ShowDays) }

// HideDays hides the day component
func (s *Store) HideDays() *Store { return s.Update(Config.HideDays) }

// ShowHours shows the hour component
func (s *Store) ShowHours() *Store { return s.Update(Config.ShowHours) }

// HideHours hides the hour component
func (s *Store) HideHours() *Store { return s.Update(Config.HideHours) }

// ShowMinutes shows the minute component
func (s *Store) ShowMinutes() *Store { return s.Update(Config.ShowMinutes) }

// HideMinutes hides the minute component
func (s *Store) HideMinutes() *Store { return s.Update(Config.HideMinutes) }

// ShowSeconds shows the second component
func (s *Store) ShowSeconds() *Store { return s.Update(Config.ShowSeconds) }

// HideSeconds hides the second component
func (s *Store) HideSeconds() *Store { return s.Update(Config.HideSeconds) }

// ShowMillis turns sub-second output back on
func (s *Store) ShowMillis() *Store { return s.Update(Config.ShowMillis) }

// HideMillis suppresses sub-second output, microseconds included
func (s *Store) HideMillis() *Store { return s.Update(Config.HideMillis) }

// ShowMicros selects microsecond precision unless milliseconds are hidden
func (s *Store) ShowMicros() *Store { return s.Update(Config.ShowMicros) }

// HideMicros drops to millisecond precision
func (s *Store) HideMicros() *Store { return s.Update(Config.HideMicros) }

// UTCTime renders timestamps in UTC
func (s *Store) UTCTime() *Store { return s.Update(Config.UTCTime) }

// LocalTime renders timestamps in the system local zone
func (s *Store) LocalTime() *Store { return s.Update(Config.LocalTime) }

// ShowLevel shows the bracketed severity tag
func (s *Store) ShowLevel() *Store { return s.Update(Config.ShowLevelTag) }

// HideLevel replaces the severity tag with a tab placeholder
func (s *Store) HideLevel() *Store { return s.Update(Config.HideLevelTag) }

// ShowFileName shows the call-site file name
func (s *Store) ShowFileName() *Store { return s.Update(Config.ShowFileName) }

// HideFileName hides the whole location section
func (s *Store) HideFileName() *Store { return s.Update(Config.HideFileName) }

// ShowFileLine shows the call-site line number
func (s *Store) ShowFileLine() *Store { return s.Update(Config.ShowFileLine) }

// HideFileLine hides the line and column numbers
func (s *Store) HideFileLine() *Store { return s.Update(Config.HideFileLine) }

// ShowFileColumn shows the call-site column number
func (s *Store) ShowFileColumn() *Store { return s.Update(Config.ShowFileColumn) }

// HideFileColumn hides the column number
func (s *Store) HideFileColumn() *Store { return s.Update(Config.HideFileColumn) }

// SetLocationWidth sets the location column width; negative means 0
func (s *Store) SetLocationWidth(n int) *Store {
	return s.Update(func(c Config) Config { return c.SetLocationWidth(n) })
}

// SetContentWidth sets the message column width; negative means 0
func (s *Store) SetContentWidth(n int) *Store {
	return s.Update(func(c Config) Config { return c.SetContentWidth(n) })
}

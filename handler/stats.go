package handler

import (
	"sync/atomic"

	"github.com/philipp01105/daylog/core"
)

const levelCount = int(core.Critical) + 1

// Stats tracks handler statistics
type Stats struct {
	// Separate atomic counters per level
	written [levelCount]atomic.Uint64
	failed  [levelCount]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter for a level
func (s *Stats) IncrementWritten(level core.Level) {
	if level.Valid() {
		s.written[level].Add(1)
	}
}

// IncrementFailed atomically increments the failed counter for a level
func (s *Stats) IncrementFailed(level core.Level) {
	if level.Valid() {
		s.failed[level].Add(1)
	}
}

// GetWritten returns the written count for a level
func (s *Stats) GetWritten(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.written[level].Load()
}

// GetFailed returns the failed count for a level
func (s *Stats) GetFailed(level core.Level) uint64 {
	if !level.Valid() {
		return 0
	}
	return s.failed[level].Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.written {
		s.written[i].Store(0)
		s.failed[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Written      map[core.Level]uint64
	Failed       map[core.Level]uint64
	WrittenTotal uint64
	FailedTotal  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Written: make(map[core.Level]uint64, levelCount),
		Failed:  make(map[core.Level]uint64, levelCount),
	}
	for _, level := range core.Levels() {
		w, f := s.GetWritten(level), s.GetFailed(level)
		snap.Written[level] = w
		snap.Failed[level] = f
		snap.WrittenTotal += w
		snap.FailedTotal += f
	}
	return snap
}

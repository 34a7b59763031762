// Package config holds the display settings that decide how a record is
// rendered.
//
// A Config is a plain value: copying it yields an independent snapshot.
// Its toggle methods have value receivers and return the modified copy,
// which makes Config usable as a consuming builder for named presets.
//
// A Store is the single shared instance that loggers read from. Readers
// call Snapshot and receive the whole Config under one read lock, so a
// rendered line never mixes settings from before and after a concurrent
// change. Mutators take the lock exclusively; each is one complete
// read-modify-write and returns the Store for chaining.
//
// Sub-second precision is a three-valued setting (micros, millis, none).
// The hide/show millis and micros operations keep the rule that hiding
// milliseconds hides microseconds as well, so the formatter never has to
// re-derive it.
//
// Presets can be loaded from YAML, TOML or JSON files with LoadPreset
// and applied with Store.Replace.
package config

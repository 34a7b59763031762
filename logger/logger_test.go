package logger

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"github.com/philipp01105/daylog/config"
	"github.com/philipp01105/daylog/core"
	"github.com/philipp01105/daylog/formatter"
	"github.com/philipp01105/daylog/handler"
	"github.com/philipp01105/daylog/handler/filehandler"
)

var testTime = time.Date(2023, 12, 16, 17, 8, 7, 451851000, time.UTC)

func newTestLogger(cfg config.Config) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := handler.NewWriterHandler(handler.WriterConfig{Writer: &buf})
	l := NewBuilder().
		WithHandler(h).
		WithConfig(cfg).
		WithClock(core.FixedClock(testTime)).
		WithErrorLogger(zap.NewNop()).
		Build()
	return l, &buf
}

func TestLogger_DefaultWarningLine(t *testing.T) {
	l, buf := newTestLogger(config.Default().UTCTime())

	if err := l.Warning().Log(Site("main.go", 42, 7), "disk full"); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	want := "2023-12-16 17:08:07.451851\t[WARNING]\t" +
		"@main.go: 42" + strings.Repeat(" ", 80-12) +
		"disk full" + strings.Repeat(" ", 300-9) + "\n"
	if got := buf.String(); got != want {
		t.Errorf("line mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestLogger_SelectorsChain(t *testing.T) {
	l, buf := newTestLogger(config.Default().UTCTime().SetContentWidth(8))

	tests := []struct {
		selector func() *Logger
		level    Level
	}{
		{l.Verbose, Verbose},
		{l.Information, Information},
		{l.Warning, Warning},
		{l.Error, Error},
		{l.Debug, Debug},
		{l.Trace, Trace},
		{l.Critical, Critical},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			buf.Reset()
			if got := tt.selector(); got != l {
				t.Fatal("selector did not return the same logger")
			}
			if got := l.Settings().Snapshot().Level; got != tt.level {
				t.Errorf("selected level = %v, want %v", got, tt.level)
			}
			_ = l.Log(nil, "msg")
			if !strings.Contains(buf.String(), "\t"+tt.level.Tag()) {
				t.Errorf("expected tag %q in %q", tt.level.Tag(), buf.String())
			}
		})
	}
}

func TestLogger_LastSelectionWins(t *testing.T) {
	l, buf := newTestLogger(config.Default().UTCTime())

	l.Error().Critical()
	_ = l.Log(nil, "boom")

	if !strings.Contains(buf.String(), "[CRITICAL]\t") {
		t.Errorf("expected [CRITICAL] tag, got %q", buf.String())
	}
}

func TestLogger_LogAtKeepsSelection(t *testing.T) {
	l, buf := newTestLogger(config.Default().UTCTime())
	l.Debug()

	if err := l.LogAt(Critical, nil, "explicit"); err != nil {
		t.Fatalf("LogAt failed: %v", err)
	}

	if !strings.Contains(buf.String(), "[CRITICAL]\t") {
		t.Errorf("expected [CRITICAL] tag, got %q", buf.String())
	}
	if got := l.Settings().Snapshot().Level; got != Debug {
		t.Errorf("LogAt changed selection to %v", got)
	}
}

func TestLogger_NilSite(t *testing.T) {
	l, buf := newTestLogger(config.Default().UTCTime().SetContentWidth(4))

	_ = l.Information().Log(nil, "hi")

	want := "2023-12-16 17:08:07.451851\t[INFO]\t\thi  \n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLogger_FormattedCapturesCaller(t *testing.T) {
	l, buf := newTestLogger(config.Default().UTCTime().SetContentWidth(16))

	_, _, line, _ := runtime.Caller(0)
	l.Warningf("disk %d%% full", 93)

	out := buf.String()
	wantLoc := fmt.Sprintf("@logger_test.go: %d", line+1)
	if !strings.Contains(out, wantLoc) {
		t.Errorf("expected location %q in %q", wantLoc, out)
	}
	if !strings.Contains(out, "[WARNING]\t") {
		t.Errorf("expected [WARNING] tag in %q", out)
	}
	if !strings.Contains(out, "disk 93% full") {
		t.Errorf("expected formatted message in %q", out)
	}
	if got := l.Settings().Snapshot().Level; got != Warning {
		t.Errorf("Warningf left selection at %v, want Warning", got)
	}
}

func TestLogger_FormattedWithoutArgs(t *testing.T) {
	l, buf := newTestLogger(config.Default().UTCTime().SetContentWidth(10))

	l.Infof("100% done")

	if !strings.Contains(buf.String(), "100% done") {
		t.Errorf("format verbs without args should be written verbatim, got %q", buf.String())
	}
}

func TestLogger_FormattedHelpersLevels(t *testing.T) {
	l, buf := newTestLogger(config.Default().UTCTime().SetContentWidth(1))

	helpers := map[Level]func(string, ...interface{}){
		Verbose:     l.Verbosef,
		Information: l.Infof,
		Warning:     l.Warningf,
		Error:       l.Errorf,
		Debug:       l.Debugf,
		Trace:       l.Tracef,
		Critical:    l.Criticalf,
	}

	for level, fn := range helpers {
		buf.Reset()
		fn("x")
		if !strings.Contains(buf.String(), level.Tag()) {
			t.Errorf("%v helper wrote %q", level, buf.String())
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("device full")
}

func TestLogger_WriteFailureIsReported(t *testing.T) {
	obsCore, logs := observer.New(zapcore.WarnLevel)
	h := handler.NewWriterHandler(handler.WriterConfig{Writer: failingWriter{}})
	l := NewBuilder().
		WithHandler(h).
		WithErrorLogger(zap.New(obsCore)).
		Build()

	err := l.Error().Log(nil, "lost")
	if err == nil {
		t.Fatal("expected write error")
	}

	entries := logs.FilterMessage("dropped log line").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 report, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["level"] != "ERROR" {
		t.Errorf("reported level = %v", fields["level"])
	}
	if fields["message_length"] != int64(4) {
		t.Errorf("reported message_length = %v", fields["message_length"])
	}

	// The logger keeps working after a failure
	if err := l.Log(nil, "again"); err == nil {
		t.Error("expected second write error")
	}
	if logs.Len() != 2 {
		t.Errorf("expected 2 reports, got %d", logs.Len())
	}

	snap, ok := l.Stats()
	if !ok {
		t.Fatal("expected stats from writer handler")
	}
	if snap.FailedTotal != 2 || snap.WrittenTotal != 0 {
		t.Errorf("stats = %+v", snap)
	}
}

func TestLogger_WriteAfterClose(t *testing.T) {
	l, buf := newTestLogger(config.Default())

	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := l.Log(nil, "late"); !errors.Is(err, handler.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written after close, got %q", buf.String())
	}
}

func TestLogger_NilHandler(t *testing.T) {
	l := New(nil)

	if err := l.Log(nil, "nowhere"); err != nil {
		t.Errorf("Log with nil handler = %v", err)
	}
	l.Infof("nowhere %d", 1)
	if _, ok := l.Stats(); ok {
		t.Error("nil handler should not report stats")
	}
	if err := l.Close(); err != nil {
		t.Errorf("Close with nil handler = %v", err)
	}
}

func TestLogger_Stats(t *testing.T) {
	l, _ := newTestLogger(config.Default())

	_ = l.Warning().Log(nil, "a")
	_ = l.Log(nil, "b")
	_ = l.LogAt(Trace, nil, "c")

	snap, ok := l.Stats()
	if !ok {
		t.Fatal("expected stats")
	}
	if snap.Written[Warning] != 2 || snap.Written[Trace] != 1 {
		t.Errorf("written = %v", snap.Written)
	}
	if snap.WrittenTotal != 3 {
		t.Errorf("WrittenTotal = %d, want 3", snap.WrittenTotal)
	}
}

func TestLogger_SharedStore(t *testing.T) {
	store := config.NewStore(config.Default().UTCTime().SetContentWidth(2))

	var a, b bytes.Buffer
	la := NewBuilder().
		WithStore(store).
		WithHandler(handler.NewWriterHandler(handler.WriterConfig{Writer: &a})).
		WithClock(core.FixedClock(testTime)).
		Build()
	lb := NewBuilder().
		WithStore(store).
		WithHandler(handler.NewWriterHandler(handler.WriterConfig{Writer: &b})).
		WithClock(core.FixedClock(testTime)).
		Build()

	la.Settings().HideYears().HideMillis()
	_ = lb.Trace().Log(nil, "ok")

	want := "-12-16 17:08:07\t[TRACE]\t\tok\n"
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if la.Settings().Snapshot().Level != Trace {
		t.Error("selection on one logger should be visible through the shared store")
	}
}

func TestLogger_CustomFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := NewBuilder().
		WithHandler(handler.NewWriterHandler(handler.WriterConfig{Writer: &buf})).
		WithFormatter(upperFormatter{}).
		Build()

	_ = l.Log(nil, "quiet")

	if got := buf.String(); got != "QUIET\n" {
		t.Errorf("got %q", got)
	}
}

// upperFormatter only implements Format, exercising the copy path
type upperFormatter struct{}

func (upperFormatter) Format(_ config.Config, rec *core.Record) []byte {
	return []byte(strings.ToUpper(rec.Message) + "\n")
}

// Lines written while another goroutine swaps between two whole
// configurations must each match one of them exactly.
func TestLogger_ConcurrentConfigChanges(t *testing.T) {
	cfgA := config.Default().UTCTime().
		SetContentWidth(12).SetLocationWidth(20).
		WithLevel(Warning)
	cfgB := config.Default().UTCTime().
		SetContentWidth(12).SetLocationWidth(20).
		HideYears().HideMonths().HideMicros().HideLevelTag().HideFileName().
		WithLevel(Error)

	site := Site("worker.go", 7, 3)
	render := func(cfg config.Config) string {
		rec := &core.Record{Time: testTime, Level: cfg.Level, Message: "tick", Site: site}
		return string(formatter.NewLineFormatter().Format(cfg, rec))
	}
	wantA, wantB := render(cfgA), render(cfgB)
	if wantA == wantB {
		t.Fatal("configurations should render differently")
	}

	l, buf := newTestLogger(cfgA)

	const writers, perWriter = 8, 200
	var done atomic.Bool
	var g errgroup.Group

	g.Go(func() error {
		for i := 0; !done.Load(); i++ {
			if i%2 == 0 {
				l.Settings().Replace(cfgB)
			} else {
				l.Settings().Replace(cfgA)
			}
			runtime.Gosched()
		}
		return nil
	})

	var wg errgroup.Group
	for w := 0; w < writers; w++ {
		wg.Go(func() error {
			for i := 0; i < perWriter; i++ {
				if err := l.Log(site, "tick"); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		t.Fatalf("writer failed: %v", err)
	}
	done.Store(true)
	_ = g.Wait()

	lines := strings.SplitAfter(buf.String(), "\n")
	lines = lines[:len(lines)-1] // trailing empty element
	if len(lines) != writers*perWriter {
		t.Fatalf("expected %d lines, got %d", writers*perWriter, len(lines))
	}
	for i, line := range lines {
		if line != wantA && line != wantB {
			t.Fatalf("line %d mixes configurations: %q", i, line)
		}
	}
}

// Each goroutine flips its own field and logs right away. Every line must
// be the rendering of one of the 2^n possible configurations.
func TestLogger_ConcurrentDistinctToggles(t *testing.T) {
	type toggle struct {
		show, hide func(config.Config) config.Config
	}
	toggles := []toggle{
		{config.Config.ShowYears, config.Config.HideYears},
		{config.Config.ShowLevelTag, config.Config.HideLevelTag},
		{config.Config.ShowFileName, config.Config.HideFileName},
		{config.Config.ShowMicros, config.Config.HideMicros},
	}

	base := config.Default().UTCTime().SetContentWidth(8).SetLocationWidth(16).WithLevel(Debug)
	site := Site("toggle.go", 11, 0)

	valid := make(map[string]bool)
	for mask := 0; mask < 1<<len(toggles); mask++ {
		cfg := base
		for i, tg := range toggles {
			if mask&(1<<i) != 0 {
				cfg = tg.hide(cfg)
			}
		}
		rec := &core.Record{Time: testTime, Level: Debug, Message: "tick", Site: site}
		valid[string(formatter.NewLineFormatter().Format(cfg, rec))] = true
	}

	l, buf := newTestLogger(base)

	const rounds = 200
	var g errgroup.Group
	for _, tg := range toggles {
		tg := tg
		g.Go(func() error {
			for i := 0; i < rounds; i++ {
				if i%2 == 0 {
					l.Settings().Update(tg.hide)
				} else {
					l.Settings().Update(tg.show)
				}
				if err := l.Log(site, "tick"); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("writer failed: %v", err)
	}

	lines := strings.SplitAfter(buf.String(), "\n")
	lines = lines[:len(lines)-1]
	if len(lines) != len(toggles)*rounds {
		t.Fatalf("expected %d lines, got %d", len(toggles)*rounds, len(lines))
	}
	for i, line := range lines {
		if !valid[line] {
			t.Fatalf("line %d matches no configuration: %q", i, line)
		}
	}
}

func TestNewFile(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2024, 3, 9, 12, 0, 0, 0, time.Local)

	l, err := NewFile(filehandler.FileConfig{
		Dir: dir,
		Now: func() time.Time { return day },
	})
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	l.Settings().Replace(config.Default().SetContentWidth(5))

	_ = l.Information().Log(Site("app.go", 1, 0), "start")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "Log 2024-03-09.log"))
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if !strings.HasSuffix(string(data), "[INFO]\t\t@app.go: 1"+strings.Repeat(" ", 80-10)+"start\n") {
		t.Errorf("unexpected file content %q", data)
	}
}

func TestMustNewFile_Panics(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic when the log directory cannot be created")
		}
	}()
	MustNewFile(filehandler.FileConfig{Dir: filepath.Join(blocker, "logs")})
}

func TestInstance(t *testing.T) {
	var buf bytes.Buffer
	SetInstance(NewBuilder().
		WithHandler(handler.NewWriterHandler(handler.WriterConfig{Writer: &buf})).
		WithClock(core.FixedClock(testTime)).
		Build())

	if Instance() != Instance() {
		t.Fatal("Instance should return the same logger")
	}

	Settings().SetContentWidth(3)
	_, _, line, _ := runtime.Caller(0)
	Criticalf("bad")

	out := buf.String()
	if !strings.Contains(out, fmt.Sprintf("@logger_test.go: %d", line+1)) {
		t.Errorf("package-level helper captured the wrong location: %q", out)
	}
	if !strings.Contains(out, "[CRITICAL]\t") || !strings.HasSuffix(out, "bad\n") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("warn")
	if err != nil || level != Warning {
		t.Errorf("ParseLevel(warn) = %v, %v", level, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func BenchmarkLogger_Log(b *testing.B) {
	h := handler.NewWriterHandler(handler.WriterConfig{Writer: discard{}})
	l := New(h)
	site := Site("bench.go", 10, 0)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Log(site, "benchmark message")
	}
}

func BenchmarkLogger_Infof(b *testing.B) {
	h := handler.NewWriterHandler(handler.WriterConfig{Writer: discard{}})
	l := New(h)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Infof("request %d served", i)
	}
}

func BenchmarkLogger_Parallel(b *testing.B) {
	h := handler.NewWriterHandler(handler.WriterConfig{Writer: discard{}})
	l := New(h)

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = l.LogAt(Information, nil, "parallel message")
		}
	})
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

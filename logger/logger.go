package logger

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/evandrocoan/DebugTools/core"
	"github.com/evandrocoan/DebugTools/handler"
)

// Logger is a named, bitmask-gated debug logger. Numeric-level calls (Log,
// Logf, Clean) pass through the bitwise gate against the logger's mask;
// the convenience calls (Debug, Info, Warning) bypass the mask entirely and
// are controlled by per-category switches, default enabled.
//
// Every emitted line carries the logger name, a high-resolution timestamp
// and the elapsed time since the logger's previous emission. A gated-out
// call has no observable effect: the clock is not read and the delta
// baseline does not advance.
type Logger struct {
	name          string
	handler       handler.Handler
	clock         core.Clock
	resolver      core.FrameResolver
	includeCaller bool
	callerSkip    int
	recycleEntry  bool

	// mask and the category switches use plain atomic access; a stale
	// read only gates a message one call earlier or later than strictly
	// ordered, which is an accepted relaxation.
	mask  atomic.Uint64
	muted [core.NumCategories]atomic.Bool

	// mu spans the delta read, the lastEmit update and the sink write of
	// one emission, so concurrent emissions never interleave output and
	// the delta never reads a concurrently-updated baseline.
	mu       sync.Mutex
	lastEmit time.Time
}

// Name returns the identifier shown in every emitted line.
func (l *Logger) Name() string {
	return l.name
}

// Level returns the current bitmask.
func (l *Logger) Level() core.Level {
	return core.Level(l.mask.Load())
}

// SetLevel replaces the bitmask unconditionally. It takes effect on future
// calls; in-flight emissions on other goroutines may still see the old
// mask for one call.
func (l *Logger) SetLevel(mask core.Level) {
	l.mask.Store(uint64(mask))
}

// CategoryEnabled reports whether a convenience category is currently
// emitting.
func (l *Logger) CategoryEnabled(c core.Category) bool {
	return !l.muted[c].Load()
}

// SetCategoryEnabled mutes or unmutes one convenience category. Categories
// are independent of the bitmask and default to enabled.
func (l *Logger) SetCategoryEnabled(c core.Category, enabled bool) {
	l.muted[c].Store(!enabled)
}

// Log emits the arguments, concatenated, when level passes the bitwise
// gate. Level 0 always passes regardless of the mask. A sink write failure
// is returned; a closed gate returns nil with no side effects.
func (l *Logger) Log(level core.Level, args ...interface{}) error {
	if !core.Enabled(l.Level(), level) {
		return nil
	}
	return l.emit(level, core.CategoryNone, join(args))
}

// Logf emits a formatted message when level passes the bitwise gate.
// Mismatched verbs and arguments degrade to fmt's inline %! markers in the
// emitted text rather than failing the call.
func (l *Logger) Logf(level core.Level, format string, args ...interface{}) error {
	if !core.Enabled(l.Level(), level) {
		return nil
	}
	return l.emit(level, core.CategoryNone, sprintf(format, args))
}

// Debug emits at the DEBUG category, bypassing the bitmask.
func (l *Logger) Debug(args ...interface{}) error {
	if l.muted[core.CategoryDebug].Load() {
		return nil
	}
	return l.emit(0, core.CategoryDebug, join(args))
}

// Debugf emits a formatted message at the DEBUG category, bypassing the
// bitmask.
func (l *Logger) Debugf(format string, args ...interface{}) error {
	if l.muted[core.CategoryDebug].Load() {
		return nil
	}
	return l.emit(0, core.CategoryDebug, sprintf(format, args))
}

// Info emits at the INFO category, bypassing the bitmask.
func (l *Logger) Info(args ...interface{}) error {
	if l.muted[core.CategoryInfo].Load() {
		return nil
	}
	return l.emit(0, core.CategoryInfo, join(args))
}

// Infof emits a formatted message at the INFO category, bypassing the
// bitmask.
func (l *Logger) Infof(format string, args ...interface{}) error {
	if l.muted[core.CategoryInfo].Load() {
		return nil
	}
	return l.emit(0, core.CategoryInfo, sprintf(format, args))
}

// Warning emits at the WARNING category, bypassing the bitmask.
func (l *Logger) Warning(args ...interface{}) error {
	if l.muted[core.CategoryWarning].Load() {
		return nil
	}
	return l.emit(0, core.CategoryWarning, join(args))
}

// Warningf emits a formatted message at the WARNING category, bypassing
// the bitmask.
func (l *Logger) Warningf(format string, args ...interface{}) error {
	if l.muted[core.CategoryWarning].Load() {
		return nil
	}
	return l.emit(0, core.CategoryWarning, sprintf(format, args))
}

// Clean emits the arguments without any prefix (no name, timestamp or
// delta), still gated by the bitmask. The delta baseline does not advance.
func (l *Logger) Clean(level core.Level, args ...interface{}) error {
	if !core.Enabled(l.Level(), level) {
		return nil
	}

	entry := core.GetEntry()
	entry.Name = l.name
	entry.Message = join(args)
	entry.Plain = true

	l.mu.Lock()
	err := l.handler.Handle(entry)
	l.mu.Unlock()

	if err == nil && l.recycleEntry {
		core.PutEntry(entry)
	}
	return err
}

// NewLine emits an empty line, gated like Clean.
func (l *Logger) NewLine(level core.Level) error {
	return l.Clean(level)
}

// emit runs the full emission pipeline for an open gate: read the clock,
// compute the delta, resolve the caller, hand the assembled entry to the
// sink and advance the delta baseline.
func (l *Logger) emit(level core.Level, category core.Category, msg string) error {
	var caller core.CallerInfo
	if l.includeCaller {
		caller = l.resolver.Resolve(l.callerSkip)
	}

	entry := core.GetEntry()
	entry.Name = l.name
	entry.Level = level
	entry.Category = category
	entry.Caller = caller
	entry.Message = msg

	l.mu.Lock()
	now := l.clock.Now()
	entry.Time = now
	entry.Delta = now.Sub(l.lastEmit)
	l.lastEmit = now

	err := l.handler.Handle(entry)
	l.mu.Unlock()

	if err == nil && l.recycleEntry {
		core.PutEntry(entry)
	}
	return err
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}

// join concatenates the arguments the way fmt.Sprint does, with the
// single-string fast path taken first.
func join(args []interface{}) string {
	if len(args) == 1 {
		if s, ok := args[0].(string); ok {
			return s
		}
	}
	return fmt.Sprint(args...)
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

package logger

import (
	"github.com/evandrocoan/DebugTools/core"
	"github.com/evandrocoan/DebugTools/formatter"
	"github.com/evandrocoan/DebugTools/handler"
)

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name          string
	handler       handler.Handler
	level         core.Level
	clock         core.Clock
	resolver      core.FrameResolver
	includeCaller bool
	callerSkip    int
	showDate      bool
	utc           bool
	recycleEntry  bool
}

// NewBuilder creates a builder for a logger with the given name. The name
// appears in every emitted line, typically a module or file name.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:       name,
		level:      core.LevelAll, // Default: every category enabled
		callerSkip: 3,             // Default skip: resolver, emit, public method
	}
}

// WithHandler sets the sink. When unset, Build creates a WriterHandler on
// os.Stdout with a TextFormatter honoring WithShowDate and WithUTC.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the initial bitmask
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithClock sets the time source used for timestamps and deltas
func (b *Builder) WithClock(clock core.Clock) *Builder {
	b.clock = clock
	return b
}

// WithFrameResolver sets the call-site resolver used when caller capture
// is enabled
func (b *Builder) WithFrameResolver(r core.FrameResolver) *Builder {
	b.resolver = r
	return b
}

// WithCaller enables resolving the calling function name and line number
// into each emitted line
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCallerSkip adjusts the stack depth used for caller resolution, for
// callers that wrap the logger in their own helper layer.
func (b *Builder) WithCallerSkip(skip int) *Builder {
	b.callerSkip = skip
	return b
}

// WithShowDate includes a YYYY-MM-DD date segment before the timestamp.
// Applies to the default handler only; a handler set via WithHandler owns
// its own formatter configuration.
func (b *Builder) WithShowDate(enabled bool) *Builder {
	b.showDate = enabled
	return b
}

// WithUTC renders timestamps in UTC. Applies to the default handler only.
func (b *Builder) WithUTC(enabled bool) *Builder {
	b.utc = enabled
	return b
}

// Build creates the Logger instance. The delta baseline starts at the
// construction time, so the first emitted line's delta measures the time
// since Build.
func (b *Builder) Build() *Logger {
	h := b.handler
	if h == nil {
		h = handler.NewWriterHandler(handler.WriterConfig{
			Formatter: formatter.NewTextFormatter(formatter.Config{
				ShowDate: b.showDate,
				UTC:      b.utc,
			}),
		})
	}

	clock := b.clock
	if clock == nil {
		clock = core.SystemClock{}
	}
	resolver := b.resolver
	if resolver == nil {
		resolver = core.RuntimeResolver{}
	}

	recycle := false
	if rc, ok := h.(handler.Recycler); ok {
		recycle = rc.CanRecycleEntry()
	}

	l := &Logger{
		name:          b.name,
		handler:       h,
		clock:         clock,
		resolver:      resolver,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		recycleEntry:  recycle,
		lastEmit:      clock.Now(),
	}
	l.mask.Store(uint64(b.level))
	return l
}

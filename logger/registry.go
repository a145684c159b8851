package logger

import (
	"sync"

	"github.com/evandrocoan/DebugTools/core"
)

// Registry is a process-wide table of loggers keyed by name. Repeated Get
// calls with the same name return the same shared instance, so SetLevel
// through any reference is visible to every holder of that name. Tests can
// reset the table with Clear.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		loggers: make(map[string]*Logger),
	}
}

// Get returns the logger registered under name, creating it on first use
// with the given initial mask. The configure functions run on the Builder
// only when the logger is actually created; on later calls they are
// ignored and the existing instance is returned unchanged, mask included.
func (r *Registry) Get(mask core.Level, name string, configure ...func(*Builder)) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l
	}

	b := NewBuilder(name).WithLevel(mask)
	for _, fn := range configure {
		fn(b)
	}
	l := b.Build()
	r.loggers[name] = l
	return l
}

// Lookup returns the logger registered under name, if any.
func (r *Registry) Lookup(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[name]
	return l, ok
}

// Clear empties the registry. Existing references stay usable; they are
// simply no longer shared with future Get calls.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers = make(map[string]*Logger)
}

// defaultRegistry backs the package-level GetLogger.
var defaultRegistry = NewRegistry()

// GetLogger returns the shared logger registered under name in the package
// default registry, creating it with the given initial mask on first use.
func GetLogger(mask core.Level, name string, configure ...func(*Builder)) *Logger {
	return defaultRegistry.Get(mask, name, configure...)
}

// DefaultRegistry exposes the registry behind GetLogger, mainly so tests
// can Clear it between cases.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

package handler

import (
	"sync/atomic"

	"github.com/evandrocoan/DebugTools/core"
)

// Handler defines the interface for log sinks
type Handler interface {
	// Handle delivers a log entry. A write failure is returned to the
	// caller; gating and formatting problems never reach this point.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Recycler is an optional interface handlers implement to signal that the
// caller may return the entry to the pool as soon as Handle returns.
type Recycler interface {
	CanRecycleEntry() bool
}

// Stats tracks handler statistics
type Stats struct {
	processed atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// Processed returns the number of entries written so far
func (s *Stats) Processed() uint64 {
	return s.processed.Load()
}

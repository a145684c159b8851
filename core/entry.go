package core

import (
	"sync"
	"time"
)

// Entry represents one log event with all the data a formatter needs
type Entry struct {
	// Name is the owning logger's identifier.
	Name string
	// Time is the wall-clock timestamp read for this emission.
	Time time.Time
	// Delta is the elapsed time since the logger's previous emission.
	Delta time.Duration
	// Level is the numeric level the caller requested (0 for category calls).
	Level Level
	// Category is the convenience severity, CategoryNone for numeric calls.
	Category Category
	// Caller is the resolved call site; Caller.Defined is false when caller
	// capture is disabled or resolution failed.
	Caller CallerInfo
	// Message is the fully interpolated message text.
	Message string
	// Plain suppresses the entire prefix: only Message and the trailing
	// newline are rendered. Used by Logger.Clean.
	Plain bool
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves a cleared Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	*e = Entry{}
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Message = ""
	e.Name = ""
	entryPool.Put(e)
}

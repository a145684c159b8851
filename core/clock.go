package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

// Clock supplies the wall-clock time used for timestamps and delta
// computation. It is injectable so tests can freeze time and golden-check
// formatted output.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now directly.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls the wrapped function.
func (f ClockFunc) Now() time.Time {
	return f()
}

var (
	coarseClockOnce sync.Once
	coarseNow       unsafe.Pointer // *time.Time
)

// startCoarseClock starts the background goroutine that caches time.Now()
// every 500µs. Safe to call multiple times; the goroutine is started exactly
// once and runs for the lifetime of the process, which is intentional since
// logging typically spans the entire application lifecycle.
func startCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
	})
}

// CoarseClock is a low-overhead Clock backed by a cached timestamp that a
// background goroutine refreshes every 500µs. Deltas computed from it are
// correspondingly coarse; use it when emission rate matters more than
// sub-millisecond delta accuracy.
type CoarseClock struct{}

// NewCoarseClock starts the shared background refresher (once) and returns
// a CoarseClock.
func NewCoarseClock() CoarseClock {
	startCoarseClock()
	return CoarseClock{}
}

// Now returns the most recently cached time.
func (CoarseClock) Now() time.Time {
	return *(*time.Time)(atomic.LoadPointer(&coarseNow))
}

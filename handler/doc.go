// Package handler provides the sinks that formatted log entries are
// delivered to.
//
// All delivery is synchronous: the emitting call returns once the sink's
// Write has returned, and a write failure propagates back to the caller
// (wrapped with context). The WriterHandler serializes writes with a single
// mutex so concurrent emissions never interleave partial lines; writers
// known to be concurrent-safe (os.File, io.Discard) skip that lock.
//
// MultiHandler fans an entry out to several handlers and combines their
// failures. ZapHandler bridges entries into go.uber.org/zap for
// applications that already own a zap pipeline.
package handler

package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"

	"github.com/evandrocoan/DebugTools/core"
	"github.com/evandrocoan/DebugTools/formatter"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Formatters prepare data in their own pooled buffers
// and call Write once, so the lock is held only during the actual I/O.
type lockedWriter struct {
	mu *sync.Mutex // points to handler's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// isConcurrentSafeWriter returns true if the writer is known to be safe for
// concurrent Write calls, allowing the handler to skip write-level locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// WriterConfig holds configuration for the writer handler
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// ConcurrentWriter indicates the Writer supports concurrent Write
	// calls, letting the handler skip write-level locking. Automatically
	// detected for io.Discard and *os.File; set true for other
	// goroutine-safe writers.
	ConcurrentWriter bool
}

// WriterHandler delivers entries synchronously to an io.Writer. Each entry
// is formatted into a handler-owned buffer and written under a single
// mutex, so two concurrent emissions never interleave their bytes.
type WriterHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	concurrentSafe  bool
	stats           *Stats
	mu              sync.Mutex // protects buf and writer
	lw              lockedWriter
	buf             bytes.Buffer
	closed          chan struct{}
}

// NewWriterHandler creates a new synchronous writer handler
func NewWriterHandler(cfg WriterConfig) *WriterHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &WriterHandler{
		writer:         cfg.Writer,
		formatter:      cfg.Formatter,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
		stats:          NewStats(),
		closed:         make(chan struct{}),
	}

	// Cache the optional formatter interfaces for the fast paths
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	h.lw = lockedWriter{mu: &h.mu, w: h.writer}
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
	}

	return h
}

// Handle formats the entry and writes it to the underlying writer. The
// write happens under the handler mutex unless the writer is known to be
// concurrent-safe; either way a line is written in a single Write call.
func (h *WriterHandler) Handle(entry *core.Entry) error {
	if h.bufferFormatter != nil {
		h.mu.Lock()
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		_, err := h.writer.Write(h.buf.Bytes())
		h.mu.Unlock()
		if err != nil {
			return errors.Wrap(err, "sink write")
		}
		h.stats.IncrementProcessed()
		return nil
	}

	if h.writerFormatter != nil {
		var err error
		if h.concurrentSafe {
			err = h.writerFormatter.FormatTo(entry, h.writer)
		} else {
			err = h.writerFormatter.FormatTo(entry, &h.lw)
		}
		if err != nil {
			return errors.Wrap(err, "sink write")
		}
		h.stats.IncrementProcessed()
		return nil
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	if h.concurrentSafe {
		_, err = h.writer.Write(data)
	} else {
		h.mu.Lock()
		_, err = h.writer.Write(data)
		h.mu.Unlock()
	}
	if err != nil {
		return errors.Wrap(err, "sink write")
	}
	h.stats.IncrementProcessed()
	return nil
}

// CanRecycleEntry returns true because entries are processed immediately.
func (h *WriterHandler) CanRecycleEntry() bool {
	return true
}

// Stats returns the handler's statistics
func (h *WriterHandler) Stats() *Stats {
	return h.stats
}

// Close closes the handler. The underlying writer is owned by the caller
// and is not closed or flushed here.
func (h *WriterHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}

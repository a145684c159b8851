// Package formatter defines how log entries are serialized into bytes.
//
// It exposes three interfaces: Formatter, which returns a []byte,
// WriterFormatter, which writes directly to an io.Writer, and
// BufferFormatter, which formats into a caller-provided buffer. Handlers
// check for the optional interfaces at construction time and prefer them
// when available, eliminating intermediate allocations on the write path.
//
// The single built-in TextFormatter implements all three. Its output line is
// the module's one compatibility-bearing artifact and is pinned byte-for-byte
// by golden tests: name in brackets, optional date, a colon-separated
// timestamp with a nanosecond-resolution fractional field, the delta since
// the previous emission in two-digit scientific notation, an optional level
// tag, an optional caller segment, and the message.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large log line from permanently inflating memory usage.
package formatter

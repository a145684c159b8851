package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/evandrocoan/DebugTools/core"
)

// TextFormatter renders entries as single human-readable lines:
//
//	[<name>] [<YYYY-MM-DD> ]<HH:MM:SS:mmm.uuuuuu> <D.DDe±DD> [<TAG>[(<mask>)] ][<func>:<line> ]<message>
//
// The timestamp carries the full nanosecond field split after the
// millisecond digits; the delta is the elapsed time since the previous
// emission, in seconds, scientific notation with two fraction digits.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry writes the formatted entry into the given buffer
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if entry.Plain {
		buf.WriteString(entry.Message)
		buf.WriteByte('\n')
		return
	}

	t := entry.Time
	if f.UTC {
		t = t.UTC()
	}

	// Name
	buf.WriteByte('[')
	buf.WriteString(entry.Name)
	buf.WriteString("] ")

	// Optional date
	if f.ShowDate {
		buf.Write(t.AppendFormat(buf.AvailableBuffer(), "2006-01-02"))
		buf.WriteByte(' ')
	}

	// Timestamp: HH:MM:SS: then the 9-digit nanosecond field with a dot
	// after the millisecond digits, e.g. 23:34:08:081.722975
	buf.Write(t.AppendFormat(buf.AvailableBuffer(), "15:04:05"))
	buf.WriteByte(':')
	ns := t.Nanosecond()
	writePadded(buf, ns/1e6, 3)
	buf.WriteByte('.')
	writePadded(buf, ns%1e6, 6)
	buf.WriteByte(' ')

	// Delta in seconds, scientific notation with two fraction digits
	buf.WriteString(strconv.FormatFloat(entry.Delta.Seconds(), 'e', 2, 64))
	buf.WriteByte(' ')

	// Level tag: categories always carry their tag; numeric levels only
	// when more than one bit is set, rendered as DEBUG(<level>)
	if entry.Category != core.CategoryNone {
		buf.WriteString(entry.Category.String())
		buf.WriteByte(' ')
	} else if entry.Level.Bits() > 1 {
		buf.WriteString("DEBUG(")
		buf.WriteString(strconv.FormatUint(uint64(entry.Level), 10))
		buf.WriteString(") ")
	}

	// Caller segment, omitted silently when undefined
	if entry.Caller.Defined {
		buf.WriteString(entry.Caller.Function)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Caller.Line))
		buf.WriteByte(' ')
	}

	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}

// writePadded writes v zero-padded to width digits.
func writePadded(buf *bytes.Buffer, v, width int) {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		buf.WriteByte('0')
	}
	buf.WriteString(s)
}

package vix

import "strconv"

// Standard VT100 escape sequences used by the renderer.
const (
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
	escCursorHome = "\x1b[H"
	escClearLine  = "\x1b[K"
)

// escBuilder efficiently builds a frame of escape-annotated output.
// It uses a pre-allocated buffer to minimize allocations.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{
		buf: make([]byte, 0, capacity),
	}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built frame.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// WriteString appends a literal string.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}

// writeCSI writes the Control Sequence Introducer (ESC [).
func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

// writeInt writes an integer to the buffer.
func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the specified position.
// x and y are 0-indexed; ANSI sequences use 1-indexed positions.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1) // Convert to 1-indexed
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1) // Convert to 1-indexed
	e.buf = append(e.buf, 'H')
}

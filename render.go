package vix

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// Renderer composes the document, cursor, and viewport into a single frame
// of escape-annotated output. It owns nothing it renders; every input is a
// read-only borrow for the duration of one call.
type Renderer struct {
	esc *escBuilder
}

// NewRenderer creates a Renderer with a reusable frame buffer.
func NewRenderer() *Renderer {
	return &Renderer{esc: newEscBuilder(4096)}
}

// Frame builds one complete frame: cursor hidden, every viewport row drawn
// (document rows truncated to the viewport width, `~` for rows past the end
// of the document), cursor repositioned, cursor shown. Rendering the same
// inputs twice yields byte-identical output.
//
// The returned slice is valid until the next Frame or Flush call.
func (r *Renderer) Frame(doc *Document, cursor Position, vp Viewport) []byte {
	r.esc.Reset()
	r.esc.WriteString(escHideCursor)
	r.esc.WriteString(escCursorHome)

	for y := 0; y < vp.Rows; y++ {
		if y < doc.NumRows() {
			row := string(doc.Row(y).Bytes())
			if runewidth.StringWidth(row) > vp.Cols {
				row = runewidth.Truncate(row, vp.Cols, "")
			}
			r.esc.WriteString(row)
		} else {
			r.esc.WriteString("~")
		}
		r.esc.WriteString(escClearLine)
		if y < vp.Rows-1 {
			r.esc.WriteString("\r\n")
		}
	}

	r.esc.MoveTo(cursor.X, cursor.Y)
	r.esc.WriteString(escShowCursor)

	return r.esc.Bytes()
}

// Flush builds a frame and writes it to w in a single Write call, so no
// partial render state is ever observable. A write failure is fatal and
// propagates to the caller.
func (r *Renderer) Flush(w io.Writer, doc *Document, cursor Position, vp Viewport) error {
	frame := r.Frame(doc, cursor, vp)
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

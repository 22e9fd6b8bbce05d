package vix

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSITerminal implements Terminal for a real controlling terminal using
// ANSI escape sequences and termios raw mode.
type ANSITerminal struct {
	out      io.Writer     // Output destination (usually os.Stdout)
	in       io.Reader     // Input source (usually os.Stdin)
	inFd     int           // File descriptor for input (raw mode)
	outFd    int           // File descriptor for output (size query)
	rawState *rawModeState // Captured attributes, nil outside raw mode
}

// Ensure ANSITerminal implements Terminal.
var _ Terminal = (*ANSITerminal)(nil)

// NewANSITerminal creates an ANSI terminal over the given streams.
// The output writer is typically os.Stdout and the input reader os.Stdin;
// file descriptors for raw mode and size queries are extracted when the
// streams are *os.File.
func NewANSITerminal(out io.Writer, in io.Reader) *ANSITerminal {
	t := &ANSITerminal{
		out:   out,
		in:    in,
		inFd:  -1,
		outFd: -1,
	}

	if f, ok := out.(*os.File); ok {
		t.outFd = int(f.Fd())
	}
	if f, ok := in.(*os.File); ok {
		t.inFd = int(f.Fd())
	}

	return t
}

// Write flushes a rendered frame to the terminal.
func (t *ANSITerminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// EnterRawMode captures the current attributes and applies raw mode.
// A no-op if the terminal is already in raw mode.
func (t *ANSITerminal) EnterRawMode() error {
	if t.rawState != nil {
		return nil
	}
	if t.inFd < 0 || !term.IsTerminal(t.inFd) {
		return fmt.Errorf("%w: input is not a terminal", ErrAttrGet)
	}

	state, err := enableRawMode(t.inFd)
	if err != nil {
		return err
	}
	t.rawState = state
	return nil
}

// ExitRawMode restores the attributes captured by EnterRawMode.
// Safe to call when raw mode was never entered.
func (t *ANSITerminal) ExitRawMode() error {
	if t.rawState == nil {
		return nil
	}
	if err := disableRawMode(t.inFd, t.rawState); err != nil {
		return err
	}
	t.rawState = nil
	return nil
}

// Size returns the terminal dimensions in columns and rows.
func (t *ANSITerminal) Size() (cols, rows int, err error) {
	if t.outFd < 0 {
		return 0, 0, fmt.Errorf("%w: output is not a terminal", ErrSizeUnavailable)
	}
	return getTerminalSize(t.outFd)
}

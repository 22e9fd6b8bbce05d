package vix

import (
	"fmt"
	"os"
	"time"

	"github.com/grindlemire/go-vix/internal/debug"
)

// farewell is printed once the terminal has been restored on a normal quit.
const farewell = "thanks for flying vix"

// Session owns the viewer lifecycle: enable raw mode, load the document,
// run the render/dispatch loop, restore the terminal, print the farewell.
// All state is held here explicitly; nothing in the package is global.
type Session struct {
	term        Terminal
	reader      KeyReader
	renderer    *Renderer
	path        string
	pollTimeout time.Duration

	doc      *Document
	cursor   Position
	viewport Viewport
}

// NewSession creates a session for the document at path. Without options it
// drives the process's controlling terminal via stdin/stdout. The
// constructor has no terminal side effects; raw mode is scoped to Run.
func NewSession(path string, opts ...Option) (*Session, error) {
	if path == "" {
		return nil, fmt.Errorf("document path must not be empty")
	}

	s := &Session{
		path:        path,
		renderer:    NewRenderer(),
		pollTimeout: 100 * time.Millisecond, // One decisecond, matching VTIME
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.term == nil {
		s.term = NewANSITerminal(os.Stdout, os.Stdin)
	}
	if s.reader == nil {
		s.reader = NewKeyReader(os.Stdin)
	}

	return s, nil
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() Position {
	return s.cursor
}

// Run drives the session to completion: interact under raw mode, then print
// the farewell on the restored terminal. Any error is fatal; the terminal is
// restored before it is returned.
func (s *Session) Run() error {
	if err := s.interact(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.term, "%s\n", farewell); err != nil {
		return fmt.Errorf("write farewell: %w", err)
	}
	return nil
}

// interact is the raw mode scope. Raw mode is acquired on entry and the
// deferred restore covers every exit path: size query failure, load failure,
// render I/O failure, and normal quit. Exactly one ExitRawMode call happens
// per successful EnterRawMode.
func (s *Session) interact() (err error) {
	if err := s.term.EnterRawMode(); err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	debug.Log("session: raw mode enabled")
	defer func() {
		if rerr := s.term.ExitRawMode(); rerr != nil && err == nil {
			err = fmt.Errorf("exit raw mode: %w", rerr)
		}
		debug.Log("session: raw mode restored")
	}()

	cols, rows, err := s.term.Size()
	if err != nil {
		return fmt.Errorf("query viewport: %w", err)
	}
	s.viewport = Viewport{Cols: cols, Rows: rows}
	debug.Log("session: viewport %dx%d", cols, rows)

	doc, err := LoadFirstLine(s.path)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.path, err)
	}
	s.doc = doc

	dispatcher := NewDispatcher(s.reader, s.pollTimeout)
	for {
		if err := s.renderer.Flush(s.term, s.doc, s.cursor, s.viewport); err != nil {
			return err
		}
		sig, err := dispatcher.Step(&s.cursor, s.viewport)
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if sig == SignalQuit {
			debug.Log("session: quit signal")
			break
		}
	}

	// One final frame so the quit leaves a complete screen behind
	return s.renderer.Flush(s.term, s.doc, s.cursor, s.viewport)
}

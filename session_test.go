package vix

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
)

// newTestSession wires a session to mock collaborators over a one-line file.
func newTestSession(t *testing.T, keys string) (*Session, *MockTerminal) {
	t.Helper()
	term := NewMockTerminal(80, 24)
	s, err := NewSession(
		writeTemp(t, []byte("hello, vix\n")),
		WithTerminal(term),
		WithKeyReader(NewMockKeyReader([]byte(keys)...)),
		WithPollTimeout(testTimeout),
	)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s, term
}

func TestSessionRunNormalQuit(t *testing.T) {
	s, term := newTestSession(t, "lllj:q")

	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got := s.Cursor(); (got != Position{X: 3, Y: 1}) {
		t.Errorf("Cursor() = %+v, want {X:3 Y:1}", got)
	}
	if term.RawEnterCount() != 1 || term.RawExitCount() != 1 {
		t.Errorf("raw mode transitions = %d enter / %d exit, want 1 / 1",
			term.RawEnterCount(), term.RawExitCount())
	}
	if term.InRawMode() {
		t.Error("terminal left in raw mode after Run()")
	}

	frames := term.Frames()
	if len(frames) < 2 {
		t.Fatalf("Run() flushed %d frames, want at least an initial and a final one", len(frames))
	}
	if !bytes.Contains(frames[0], []byte("hello, vix")) {
		t.Errorf("first frame does not show the document row: %q", frames[0])
	}
	// Final frame repositions the cursor to (3,1), 1-indexed 2;4
	final := frames[len(frames)-2]
	if !bytes.Contains(final, []byte("\x1b[2;4H")) {
		t.Errorf("final frame %q missing cursor reposition at 2;4", final)
	}
	if !bytes.Contains(term.LastFrame(), []byte(farewell)) {
		t.Errorf("farewell not written after restore, last write = %q", term.LastFrame())
	}
}

func TestSessionRunCommandModeKeepsRunning(t *testing.T) {
	// An unknown command followed by carriage return must not terminate;
	// the session quits only on the later :q.
	s, term := newTestSession(t, ":xxx\r:q")

	if err := s.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := s.Cursor(); (got != Position{}) {
		t.Errorf("Cursor() = %+v, want unchanged origin", got)
	}
	if term.RawExitCount() != 1 {
		t.Errorf("RawExitCount() = %d, want 1", term.RawExitCount())
	}
}

// TestSessionRunRestoresOnEveryExitPath asserts the one correctness property
// worth a dedicated test: after a successful raw mode enable, exactly one
// disable happens no matter how the session ends.
func TestSessionRunRestoresOnEveryExitPath(t *testing.T) {
	t.Run("size query failure", func(t *testing.T) {
		s, term := newTestSession(t, "")
		term.FailSize(ErrSizeUnavailable)

		err := s.Run()
		if !errors.Is(err, ErrSizeUnavailable) {
			t.Fatalf("Run() error = %v, want ErrSizeUnavailable", err)
		}
		if term.RawEnterCount() != 1 || term.RawExitCount() != 1 {
			t.Errorf("raw mode transitions = %d enter / %d exit, want 1 / 1",
				term.RawEnterCount(), term.RawExitCount())
		}
	})

	t.Run("document load failure", func(t *testing.T) {
		term := NewMockTerminal(80, 24)
		s, err := NewSession(
			filepath.Join(t.TempDir(), "missing"),
			WithTerminal(term),
			WithKeyReader(NewMockKeyReader()),
		)
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}

		if err := s.Run(); !errors.Is(err, ErrOpenFailed) {
			t.Fatalf("Run() error = %v, want ErrOpenFailed", err)
		}
		if term.RawEnterCount() != 1 || term.RawExitCount() != 1 {
			t.Errorf("raw mode transitions = %d enter / %d exit, want 1 / 1",
				term.RawEnterCount(), term.RawExitCount())
		}
	})

	t.Run("render write failure", func(t *testing.T) {
		s, term := newTestSession(t, "")
		writeErr := errors.New("broken pipe")
		term.FailWrite(writeErr)

		if err := s.Run(); !errors.Is(err, writeErr) {
			t.Fatalf("Run() error = %v, want wrapped %v", err, writeErr)
		}
		if term.RawEnterCount() != 1 || term.RawExitCount() != 1 {
			t.Errorf("raw mode transitions = %d enter / %d exit, want 1 / 1",
				term.RawEnterCount(), term.RawExitCount())
		}
	})

	t.Run("reader failure", func(t *testing.T) {
		// Exhausted mock reader reports io.EOF out of Step.
		s, term := newTestSession(t, "lll")

		if err := s.Run(); err == nil {
			t.Fatal("Run() error = nil, want reader error")
		}
		if term.RawEnterCount() != 1 || term.RawExitCount() != 1 {
			t.Errorf("raw mode transitions = %d enter / %d exit, want 1 / 1",
				term.RawEnterCount(), term.RawExitCount())
		}
	})

	t.Run("enable failure leaves attributes untouched", func(t *testing.T) {
		s, term := newTestSession(t, "")
		term.FailEnterRaw(ErrAttrGet)

		if err := s.Run(); !errors.Is(err, ErrAttrGet) {
			t.Fatalf("Run() error = %v, want ErrAttrGet", err)
		}
		if term.RawExitCount() != 0 {
			t.Errorf("RawExitCount() = %d, want 0 when enable never succeeded", term.RawExitCount())
		}
	})
}

func TestNewSessionValidation(t *testing.T) {
	type tc struct {
		path string
		opts []Option
	}

	tests := map[string]tc{
		"empty path": {
			path: "",
		},
		"nil terminal": {
			path: "doc.txt",
			opts: []Option{WithTerminal(nil)},
		},
		"nil key reader": {
			path: "doc.txt",
			opts: []Option{WithKeyReader(nil)},
		},
		"zero poll timeout": {
			path: "doc.txt",
			opts: []Option{WithPollTimeout(0)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewSession(tt.path, tt.opts...); err == nil {
				t.Error("NewSession() error = nil, want validation error")
			}
		})
	}
}

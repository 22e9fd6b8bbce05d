package vix

import (
	"bytes"
	"errors"
	"testing"
)

func TestMockTerminalRawMode(t *testing.T) {
	m := NewMockTerminal(80, 24)

	if m.InRawMode() {
		t.Error("new mock should not start in raw mode")
	}
	if err := m.EnterRawMode(); err != nil {
		t.Fatalf("EnterRawMode() error = %v", err)
	}
	if !m.InRawMode() {
		t.Error("EnterRawMode() should enable raw mode")
	}
	if err := m.ExitRawMode(); err != nil {
		t.Fatalf("ExitRawMode() error = %v", err)
	}
	if m.InRawMode() {
		t.Error("ExitRawMode() should disable raw mode")
	}
	if m.RawEnterCount() != 1 || m.RawExitCount() != 1 {
		t.Errorf("transition counts = %d / %d, want 1 / 1", m.RawEnterCount(), m.RawExitCount())
	}
}

func TestMockTerminalSize(t *testing.T) {
	m := NewMockTerminal(120, 40)
	cols, rows, err := m.Size()
	if err != nil {
		t.Fatalf("Size() error = %v", err)
	}
	if cols != 120 || rows != 40 {
		t.Errorf("Size() = %dx%d, want 120x40", cols, rows)
	}

	sizeErr := errors.New("no tty")
	m.FailSize(sizeErr)
	if _, _, err := m.Size(); !errors.Is(err, sizeErr) {
		t.Errorf("Size() error = %v, want injected %v", err, sizeErr)
	}
}

func TestMockTerminalFrames(t *testing.T) {
	m := NewMockTerminal(80, 24)

	if m.LastFrame() != nil {
		t.Error("LastFrame() on fresh mock should be nil")
	}

	m.Write([]byte("first"))
	m.Write([]byte("second"))

	if len(m.Frames()) != 2 {
		t.Fatalf("Frames() = %d writes, want 2", len(m.Frames()))
	}
	if got := string(m.LastFrame()); got != "second" {
		t.Errorf("LastFrame() = %q, want %q", got, "second")
	}
	// Captured frames are copies, not aliases of the caller's buffer
	p := []byte("third")
	m.Write(p)
	p[0] = 'X'
	if got := string(m.LastFrame()); got != "third" {
		t.Errorf("LastFrame() = %q, want copy %q", got, "third")
	}
}

func TestANSITerminalWithoutTTY(t *testing.T) {
	// Plain buffers carry no file descriptor, so every terminal operation
	// that needs one must fail cleanly instead of touching fd 0.
	var out, in bytes.Buffer
	term := NewANSITerminal(&out, &in)

	if err := term.EnterRawMode(); !errors.Is(err, ErrAttrGet) {
		t.Errorf("EnterRawMode() error = %v, want ErrAttrGet", err)
	}
	if err := term.ExitRawMode(); err != nil {
		t.Errorf("ExitRawMode() without raw mode = %v, want nil", err)
	}
	if _, _, err := term.Size(); !errors.Is(err, ErrSizeUnavailable) {
		t.Errorf("Size() error = %v, want ErrSizeUnavailable", err)
	}

	if _, err := term.Write([]byte("frame")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if out.String() != "frame" {
		t.Errorf("Write() passed %q to output, want %q", out.String(), "frame")
	}
}

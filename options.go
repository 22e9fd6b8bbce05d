package vix

import (
	"fmt"
	"time"
)

// Option is a functional option for configuring a Session.
type Option func(*Session) error

// WithTerminal replaces the default ANSI terminal.
// Primarily used to inject a MockTerminal in tests.
func WithTerminal(t Terminal) Option {
	return func(s *Session) error {
		if t == nil {
			return fmt.Errorf("terminal must not be nil")
		}
		s.term = t
		return nil
	}
}

// WithKeyReader replaces the default stdin key reader.
// Primarily used to inject a MockKeyReader in tests.
func WithKeyReader(r KeyReader) Option {
	return func(s *Session) error {
		if r == nil {
			return fmt.Errorf("key reader must not be nil")
		}
		s.reader = r
		return nil
	}
}

// WithPollTimeout sets the per-read polling timeout for the session loop.
// Default is one decisecond, mirroring the raw mode read timeout. A value
// of 0 is not allowed and will return an error.
func WithPollTimeout(d time.Duration) Option {
	return func(s *Session) error {
		if d == 0 {
			return fmt.Errorf("poll timeout of 0 (busy polling) is not allowed; use a positive duration")
		}
		s.pollTimeout = d
		return nil
	}
}

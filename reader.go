package vix

import "time"

// KeyReader reads single input bytes from the terminal.
// It is designed for polling-based session loops: one bounded-wait read per
// loop iteration, never an unbounded block.
type KeyReader interface {
	// PollKey reads the next input byte with a timeout.
	// Returns (b, true, nil) if a byte was read, or (0, false, nil) on
	// timeout. A read error (including end of input) is returned as err.
	PollKey(timeout time.Duration) (b byte, ok bool, err error)
}

package vix

import "io"

// Terminal abstracts the controlling terminal for the session: raw mode
// transitions, size queries, and frame output.
// Implementations are ANSITerminal for a real terminal and MockTerminal for
// testing. No other component touches terminal attributes.
type Terminal interface {
	// Writer receives rendered frames. Each frame is flushed with a single
	// Write call.
	io.Writer

	// EnterRawMode captures the terminal's current attributes and switches
	// to raw mode: no echo, no line buffering, no signal generation, and a
	// one-decisecond read timeout. Calling it while already in raw mode is
	// a no-op.
	EnterRawMode() error

	// ExitRawMode re-applies the attributes captured by EnterRawMode.
	// Safe to call when raw mode was never entered.
	ExitRawMode() error

	// Size returns the terminal dimensions in columns and rows.
	// Returns ErrSizeUnavailable if the terminal reports zero columns or
	// the query fails.
	Size() (cols, rows int, err error)
}

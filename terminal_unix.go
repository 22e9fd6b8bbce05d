//go:build unix

package vix

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// rawModeState stores the original terminal attributes for restoration.
type rawModeState struct {
	termios unix.Termios
}

// enableRawMode puts the terminal into raw mode and returns the previous state.
func enableRawMode(fd int) (*rawModeState, error) {
	// Get current terminal attributes
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAttrGet, err)
	}

	// Save original state
	state := &rawModeState{termios: *termios}

	// Modify for raw mode
	// Turn off:
	// - ECHO: don't echo input characters
	// - ICANON: disable canonical mode (read byte-by-byte instead of line-by-line)
	// - ISIG: disable signals (Ctrl+C, Ctrl+Z, etc.)
	// - IEXTEN: disable extended input processing
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN

	// Turn off:
	// - IXON: disable software flow control (Ctrl+S, Ctrl+Q)
	// - ICRNL: don't translate CR to NL
	// - BRKINT: don't send SIGINT on break
	// - INPCK: disable parity checking
	// - ISTRIP: don't strip 8th bit
	termios.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP

	// Turn off:
	// - OPOST: disable output processing
	termios.Oflag &^= unix.OPOST

	// Set:
	// - CS8: 8-bit characters
	termios.Cflag |= unix.CS8

	// Set minimum bytes for read and timeout
	// VMIN = 0: read returns as soon as any input is available
	// VTIME = 1: read times out after one decisecond with no input
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 1

	// Apply new settings
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAttrSet, err)
	}

	return state, nil
}

// disableRawMode restores the terminal to its previous state.
func disableRawMode(fd int, state *rawModeState) error {
	if state == nil {
		return nil
	}
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &state.termios); err != nil {
		return fmt.Errorf("%w: %v", ErrAttrSet, err)
	}
	return nil
}

// getTerminalSize returns the terminal dimensions in columns and rows.
func getTerminalSize(fd int) (cols, rows int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrSizeUnavailable, err)
	}
	if ws.Col == 0 {
		return 0, 0, fmt.Errorf("%w: zero columns reported", ErrSizeUnavailable)
	}
	return int(ws.Col), int(ws.Row), nil
}

//go:build unix

package vix

import (
	"io"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// stdinKeyReader implements KeyReader for a real terminal.
// The terminal should already be in raw mode when PollKey is called.
type stdinKeyReader struct {
	fd  int
	buf [1]byte
}

// NewKeyReader creates a KeyReader for the given terminal input.
func NewKeyReader(in *os.File) KeyReader {
	return &stdinKeyReader{fd: int(in.Fd())}
}

// PollKey reads one byte with a timeout.
// Returns (0, false, nil) when no input arrives within the timeout.
func (r *stdinKeyReader) PollKey(timeout time.Duration) (byte, bool, error) {
	ready, err := selectWithTimeout(r.fd, timeout)
	if err != nil {
		return 0, false, err
	}
	if !ready {
		return 0, false, nil
	}

	n, err := unix.Read(r.fd, r.buf[:])
	if err != nil {
		// EINTR and EAGAIN are expected under raw mode; treat as timeout
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, err
	}
	if n == 0 {
		return 0, false, io.EOF
	}
	return r.buf[0], true, nil
}

// selectWithTimeout performs a select() call on the given fd with timeout.
// Returns (true, nil) if the fd is ready for reading.
// Returns (false, nil) on timeout.
// Returns (false, err) on error.
func selectWithTimeout(fd int, timeout time.Duration) (ready bool, err error) {
	// Prepare the fd set
	var readFds unix.FdSet
	readFds.Zero()
	readFds.Set(fd)

	// Convert timeout to timeval
	var tv *unix.Timeval
	if timeout >= 0 {
		tvVal := unix.NsecToTimeval(timeout.Nanoseconds())
		tv = &tvVal
	}
	// If timeout < 0, tv is nil which means block indefinitely

	// Call select
	n, err := unix.Select(fd+1, &readFds, nil, nil, tv)
	if err != nil {
		// EINTR is expected when signals arrive
		if err == unix.EINTR {
			return false, nil
		}
		return false, err
	}

	return n > 0, nil
}

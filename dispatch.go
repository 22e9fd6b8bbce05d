package vix

import "time"

// Signal is the result of one dispatch step.
type Signal int

const (
	// SignalContinue keeps the session loop running.
	SignalContinue Signal = iota
	// SignalQuit terminates the session loop.
	SignalQuit
)

// Dispatcher interprets input bytes as navigation keys and colon commands.
// It is a two-mode state machine: normal mode handles one byte per step,
// and a colon switches into a command sub-loop that runs until a carriage
// return or a quit key.
type Dispatcher struct {
	reader  KeyReader
	timeout time.Duration
}

// NewDispatcher creates a Dispatcher reading keys from reader, waiting at
// most timeout per read.
func NewDispatcher(reader KeyReader, timeout time.Duration) *Dispatcher {
	return &Dispatcher{reader: reader, timeout: timeout}
}

// Step reads and interprets one normal-mode byte. h/j/k/l move the cursor,
// a colon enters the command sub-loop, and any other byte, including a read
// timeout, is a no-op.
func (d *Dispatcher) Step(cursor *Position, vp Viewport) (Signal, error) {
	b, ok, err := d.reader.PollKey(d.timeout)
	if err != nil {
		return SignalContinue, err
	}
	if !ok {
		return SignalContinue, nil
	}

	switch b {
	case 'h':
		*cursor = cursor.Move(MoveLeft, vp)
	case 'j':
		*cursor = cursor.Move(MoveDown, vp)
	case 'k':
		*cursor = cursor.Move(MoveUp, vp)
	case 'l':
		*cursor = cursor.Move(MoveRight, vp)
	case ':':
		return d.command()
	}
	return SignalContinue, nil
}

// command runs the command-mode sub-loop. A carriage return returns to
// normal mode with the session still running; a q anywhere in the loop
// terminates the session immediately, whether or not a carriage return
// follows. Every other byte is ignored.
func (d *Dispatcher) command() (Signal, error) {
	for {
		b, ok, err := d.reader.PollKey(d.timeout)
		if err != nil {
			return SignalContinue, err
		}
		if !ok {
			continue
		}

		switch b {
		case 'q':
			return SignalQuit, nil
		case '\r':
			return SignalContinue, nil
		}
	}
}

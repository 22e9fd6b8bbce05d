package vix

// MockTerminal is a mock implementation of Terminal for testing.
// It captures flushed frames and counts raw mode transitions so tests can
// assert the enable/disable pairing and inspect rendered output.
type MockTerminal struct {
	cols, rows int
	inRawMode  bool
	frames     [][]byte

	// Transition counters for testing the raw mode lifecycle
	rawEnterCount int
	rawExitCount  int

	// Injectable failures
	enterRawErr error
	sizeErr     error
	writeErr    error
}

// Ensure MockTerminal implements Terminal.
var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a new mock terminal with the given dimensions.
func NewMockTerminal(cols, rows int) *MockTerminal {
	return &MockTerminal{
		cols: cols,
		rows: rows,
	}
}

// Write captures one flushed frame.
func (m *MockTerminal) Write(p []byte) (int, error) {
	if m.writeErr != nil {
		return 0, m.writeErr
	}
	frame := make([]byte, len(p))
	copy(frame, p)
	m.frames = append(m.frames, frame)
	return len(p), nil
}

// EnterRawMode simulates entering raw mode.
func (m *MockTerminal) EnterRawMode() error {
	if m.enterRawErr != nil {
		return m.enterRawErr
	}
	m.inRawMode = true
	m.rawEnterCount++
	return nil
}

// ExitRawMode simulates exiting raw mode.
func (m *MockTerminal) ExitRawMode() error {
	m.inRawMode = false
	m.rawExitCount++
	return nil
}

// Size returns the configured dimensions, or the injected failure.
func (m *MockTerminal) Size() (cols, rows int, err error) {
	if m.sizeErr != nil {
		return 0, 0, m.sizeErr
	}
	return m.cols, m.rows, nil
}

// InRawMode reports whether the mock is currently in raw mode.
func (m *MockTerminal) InRawMode() bool {
	return m.inRawMode
}

// RawEnterCount returns how many times EnterRawMode succeeded.
func (m *MockTerminal) RawEnterCount() int {
	return m.rawEnterCount
}

// RawExitCount returns how many times ExitRawMode was called.
func (m *MockTerminal) RawExitCount() int {
	return m.rawExitCount
}

// Frames returns every frame flushed so far, in order.
func (m *MockTerminal) Frames() [][]byte {
	return m.frames
}

// LastFrame returns the most recently flushed frame, or nil.
func (m *MockTerminal) LastFrame() []byte {
	if len(m.frames) == 0 {
		return nil
	}
	return m.frames[len(m.frames)-1]
}

// FailEnterRaw makes subsequent EnterRawMode calls return err.
func (m *MockTerminal) FailEnterRaw(err error) {
	m.enterRawErr = err
}

// FailSize makes subsequent Size calls return err.
func (m *MockTerminal) FailSize(err error) {
	m.sizeErr = err
}

// FailWrite makes subsequent Write calls return err.
func (m *MockTerminal) FailWrite(err error) {
	m.writeErr = err
}

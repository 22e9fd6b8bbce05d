package vix

import (
	"io"
	"time"
)

// mockKeyEvent is one scripted PollKey result: a byte or a timeout.
type mockKeyEvent struct {
	b       byte
	timeout bool
}

// MockKeyReader is a KeyReader for testing.
// Scripted events are returned in order by successive PollKey calls; once the
// script is exhausted PollKey reports io.EOF.
type MockKeyReader struct {
	events []mockKeyEvent
	index  int
}

// Ensure MockKeyReader implements KeyReader.
var _ KeyReader = (*MockKeyReader)(nil)

// NewMockKeyReader creates a MockKeyReader scripted with the given bytes.
func NewMockKeyReader(keys ...byte) *MockKeyReader {
	m := &MockKeyReader{}
	m.QueueKeys(keys...)
	return m
}

// QueueKeys appends key bytes to the script.
func (m *MockKeyReader) QueueKeys(keys ...byte) {
	for _, b := range keys {
		m.events = append(m.events, mockKeyEvent{b: b})
	}
}

// QueueTimeout appends a no-data poll result to the script.
func (m *MockKeyReader) QueueTimeout() {
	m.events = append(m.events, mockKeyEvent{timeout: true})
}

// PollKey returns the next scripted event, ignoring the timeout argument.
// Reports io.EOF once the script is exhausted.
func (m *MockKeyReader) PollKey(timeout time.Duration) (byte, bool, error) {
	if m.index >= len(m.events) {
		return 0, false, io.EOF
	}
	ev := m.events[m.index]
	m.index++
	if ev.timeout {
		return 0, false, nil
	}
	return ev.b, true, nil
}

// Remaining returns the number of events yet to be returned.
func (m *MockKeyReader) Remaining() int {
	return len(m.events) - m.index
}

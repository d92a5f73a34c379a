// Package logger provides the logging interface used by the SDK client.
// Messages are plain printf-style lines, the backend decides where they go.
package logger

import (
	"fmt"
	"log"
	"sync"
)

// Logger is implemented by every log backend the client accepts.
type Logger interface {
	// Debug logs request level details, e.g. "GET http://localhost/env -> 200 OK".
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
}

// StandardLogger wraps the stdlib *log.Logger for console output.
type StandardLogger struct {
	logger *log.Logger
}

// NewStandardLogger creates a logger that wraps the given *log.Logger.
func NewStandardLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l}
}

// Debug logs a message with [DEBUG] prefix.
func (s *StandardLogger) Debug(format string, args ...any) {
	s.logger.Printf("[DEBUG] "+format, args...)
}

// Info logs a message with [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...any) {
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs a message with [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...any) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs a message with [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...any) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// NopLogger discards all messages.
type NopLogger struct{}

func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

func (n *NopLogger) Debug(format string, args ...any)   {}
func (n *NopLogger) Info(format string, args ...any)    {}
func (n *NopLogger) Warning(format string, args ...any) {}
func (n *NopLogger) Error(format string, args ...any)   {}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)

// MockLogger records all log calls for verification in tests. It is safe
// for concurrent use.
type MockLogger struct {
	mu           sync.Mutex
	DebugCalls   []string
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
}

// NewMockLogger creates a new MockLogger for testing.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(calls *[]string, format string, args []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	*calls = append(*calls, fmt.Sprintf(format, args...))
}

// Debug records the formatted message.
func (m *MockLogger) Debug(format string, args ...any) {
	m.record(&m.DebugCalls, format, args)
}

// Info records the formatted message.
func (m *MockLogger) Info(format string, args ...any) {
	m.record(&m.InfoCalls, format, args)
}

// Warning records the formatted message.
func (m *MockLogger) Warning(format string, args ...any) {
	m.record(&m.WarningCalls, format, args)
}

// Error records the formatted message.
func (m *MockLogger) Error(format string, args ...any) {
	m.record(&m.ErrorCalls, format, args)
}

func (m *MockLogger) snapshot(calls *[]string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), *calls...)
}

// Debugs returns a copy of the recorded debug messages.
func (m *MockLogger) Debugs() []string { return m.snapshot(&m.DebugCalls) }

// Infos returns a copy of the recorded info messages.
func (m *MockLogger) Infos() []string { return m.snapshot(&m.InfoCalls) }

// Warnings returns a copy of the recorded warning messages.
func (m *MockLogger) Warnings() []string { return m.snapshot(&m.WarningCalls) }

// Errors returns a copy of the recorded error messages.
func (m *MockLogger) Errors() []string { return m.snapshot(&m.ErrorCalls) }

var _ Logger = (*MockLogger)(nil)

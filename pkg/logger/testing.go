package logger

import (
	"bytes"
	"strings"
)

type testingTB interface {
	Helper()
	Cleanup(func())
	Log(args ...any)
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
func Stub(tb testingTB) *bytes.Buffer {
	tb.Helper()
	og := Default.Out
	tb.Cleanup(func() { Default.Out = og })
	buf := &bytes.Buffer{}
	Default.Out = buf
	return buf
}

// Testing returns a logger that reports each log entry through the test's own log.
// The entries are only shown for failing or verbose test runs.
func Testing(tb testingTB, level Level) *Logger {
	tb.Helper()
	return &Logger{Out: tbWriter{TB: tb}, Level: level}
}

type tbWriter struct{ TB testingTB }

func (w tbWriter) Write(p []byte) (int, error) {
	w.TB.Helper()
	w.TB.Log(strings.TrimRight(string(p), "\r\n"))
	return len(p), nil
}

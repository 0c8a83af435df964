package logger

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	// Mutex for thread-safe logging across concurrent goroutines
	logMutex sync.Mutex

	// Dependency injection point for testing output.
	outStdout io.Writer = os.Stdout
)

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// LogLine prints one colorized line annotated with caller when cfg enables
// level. The message is formatted with fmt.Sprintf.
// Nothing is printed, and no formatting is done, when the level is disabled.
//
// Most code should use Errorf, Warnf, Infof or Debugf, which fill in color,
// tag and caller. LogLine is for wrappers that capture their own call site.
func LogLine(cfg *Config, level Level, colorCode, tag string, caller Caller, format string, args ...any) {
	if !cfg.Enabled(level) {
		return
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s%s %s : %s (%d)- ", colorCode, tag, caller.File, caller.Function, caller.Line)
	fmt.Fprintf(&buf, format, args...)
	buf.WriteString(ColorReset)
	buf.WriteByte('\n')
	write(buf.Bytes())
}

// LogRaw prints the formatted message verbatim when cfg.RawEnabled is set.
// No prefix, color or newline is added.
func LogRaw(cfg *Config, format string, args ...any) {
	if cfg == nil || !cfg.RawEnabled {
		return
	}
	write([]byte(fmt.Sprintf(format, args...)))
}

// write sends p to standard output in a single call and flushes it.
// Write errors are dropped.
func write(p []byte) {
	logMutex.Lock()
	defer logMutex.Unlock()

	_, _ = outStdout.Write(p)
	if f, ok := outStdout.(flusher); ok {
		_ = f.Flush()
	}
}

// logAt resolves the style for level and the call site two frames up.
// It must only be called directly from the exported level functions.
func logAt(cfg *Config, level Level, format string, args ...any) {
	if !cfg.Enabled(level) {
		return
	}
	s := styleFor(level)
	LogLine(cfg, level, s.color, s.tag, CallerAt(2), format, args...)
}

// Errorf logs an error message formatted with fmt.Sprintf.
func Errorf(cfg *Config, format string, args ...any) {
	logAt(cfg, ErrorLevel, format, args...)
}

// Warnf logs a warning message formatted with fmt.Sprintf.
func Warnf(cfg *Config, format string, args ...any) {
	logAt(cfg, WarnLevel, format, args...)
}

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(cfg *Config, format string, args ...any) {
	logAt(cfg, InfoLevel, format, args...)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func Debugf(cfg *Config, format string, args ...any) {
	logAt(cfg, DebugLevel, format, args...)
}

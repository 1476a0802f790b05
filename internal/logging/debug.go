package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"
)

// DebugEnv enables debug output. "false" and "0" leave it off; any other
// non-empty value turns it on.
const DebugEnv = "TASKLIST_DEBUG"

// Logger writes leveled lines to an io.Writer. Debug lines are dropped unless
// debug is enabled.
type Logger struct {
	mu        sync.Mutex
	out       io.Writer
	debug     bool
	component string
	now       func() time.Time
}

// New creates a logger writing to stderr, so a TUI on stdout is not disturbed.
func New() *Logger {
	return &Logger{
		out:   os.Stderr,
		debug: debugFromEnv(),
		now:   time.Now,
	}
}

func debugFromEnv() bool {
	v := os.Getenv(DebugEnv)
	if v == "" {
		return false
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return true
}

// WithComponent returns a logger sharing this logger's settings that prefixes
// lines with [component].
func (l *Logger) WithComponent(component string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		out:       l.out,
		debug:     l.debug,
		component: component,
		now:       l.now,
	}
}

// SetOutput redirects the logger.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// SetDebug turns debug lines on or off.
func (l *Logger) SetDebug(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = enabled
}

// DebugEnabled reports whether debug lines are written.
func (l *Logger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.DebugEnabled() {
		l.write("DEBUG", fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.write("INFO", fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write("ERROR", fmt.Sprintf(format, args...))
}

func (l *Logger) write(level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	ts := l.now().Format("15:04:05.000")
	if l.component != "" {
		fmt.Fprintf(l.out, "%s %-5s [%s] %s\n", ts, level, l.component, msg)
		return
	}
	fmt.Fprintf(l.out, "%s %-5s %s\n", ts, level, msg)
}

var std = New()

// Default returns the process-wide logger.
func Default() *Logger {
	return std
}

// DebugEnabled returns true if debug output is on for the default logger.
func DebugEnabled() bool {
	return std.DebugEnabled()
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	std.Debugf(format, args...)
}

// Errorf logs a system error on the default logger.
func Errorf(format string, args ...interface{}) {
	std.Errorf(format, args...)
}

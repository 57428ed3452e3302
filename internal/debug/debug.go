package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// logger writes timestamped lines to w. A nil w means logging is off.
type logger struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
}

var std logger

func (l *logger) swap(w io.Writer, c io.Closer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer != nil {
		_ = l.closer.Close()
	}
	l.w, l.closer = w, c
}

func (l *logger) on() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w != nil
}

func (l *logger) printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.w == nil {
		return
	}
	_, _ = fmt.Fprintf(l.w, "[%s] %s\n", time.Now().Format("15:04:05.000"), fmt.Sprintf(format, args...))
}

// Enable starts logging to the file at path, truncating it.
func Enable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}

	std.swap(f, f)
	Log("Debug logging enabled")
	return nil
}

// EnableWriter starts logging to w. Close leaves w open.
func EnableWriter(w io.Writer) {
	std.swap(w, nil)
}

// Close stops logging and closes the file opened by Enable.
func Close() {
	std.swap(nil, nil)
}

// IsEnabled reports whether logging is on.
func IsEnabled() bool {
	return std.on()
}

// Log writes one line when logging is on.
func Log(format string, args ...any) {
	std.printf(format, args...)
}

// Timed logs the start of name and returns a func logging its duration.
func Timed(name string) func() {
	if !std.on() {
		return func() {}
	}

	start := time.Now()
	Log("%s started", name)
	return func() {
		Log("%s completed in %v", name, time.Since(start))
	}
}

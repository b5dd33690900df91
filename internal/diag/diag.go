// Package diag is the editor's background diagnostic sink. A full-screen
// raw-mode program cannot log to stdout or stderr without corrupting its
// own frame, so crash and warning detail that doesn't fit in the status
// bar goes here instead, to a plain file the user can tail after the
// fact.
package diag

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Logger writes timestamped lines tagged with a per-process id, so
// multiple overlapping kigo runs writing to the same log file can be
// told apart.
type Logger struct {
	sessionID uuid.UUID
	inner     *log.Logger
	file      *os.File
}

// Open creates (or appends to) the process-wide diagnostic log under the
// OS temp directory. It never fails the caller's startup: if the log
// file cannot be opened, Open returns a Logger that discards everything.
func Open() *Logger {
	id := uuid.New()
	path := filepath.Join(os.TempDir(), "kigo.log")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &Logger{sessionID: id, inner: log.New(discard{}, "", 0)}
	}
	return &Logger{
		sessionID: id,
		inner:     log.New(f, fmt.Sprintf("[%s] ", id.String()[:8]), log.LstdFlags),
		file:      f,
	}
}

// Errorf records a formatted diagnostic line.
func (l *Logger) Errorf(format string, args ...any) {
	if l == nil || l.inner == nil {
		return
	}
	l.inner.Printf(format, args...)
}

// Close releases the underlying file handle, if any.
func (l *Logger) Close() {
	if l != nil && l.file != nil {
		l.file.Close()
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

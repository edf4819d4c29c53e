// Package joblog appends one-line run records to the shared log files the
// cron jobs write under /tmp. The files are plain append-only text so runs
// from different binaries interleave without coordination.
package joblog

import (
	"fmt"
	"os"
	"time"
)

// TimestampFormat is the prefix format used by every job log line.
const TimestampFormat = "2006-01-02 15:04:05"

// Writer appends timestamped lines to a single log file.
type Writer struct {
	path string
}

// NewWriter creates a writer for the given log file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the log file path.
func (w *Writer) Path() string {
	return w.path
}

// Append writes "<timestamp>: <message>\n" to the log file, creating it if
// needed. The file is opened, appended and closed per call.
func (w *Writer) Append(now time.Time, message string) error {
	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", w.path, err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s: %s\n", now.Format(TimestampFormat), message)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append to log file %s: %w", w.path, err)
	}

	return nil
}

// Appendf formats the message and appends it.
func (w *Writer) Appendf(now time.Time, format string, args ...interface{}) error {
	return w.Append(now, fmt.Sprintf(format, args...))
}

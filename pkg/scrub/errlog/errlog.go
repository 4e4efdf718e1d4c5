// Package errlog appends failure messages to the dated scrubber error log.
package errlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/itgscrub-go/pkg/scrub/policy"
)

// TimestampLayout formats the time of each entry.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Log is an append-only error log in one directory. The file is created on
// the first Append and opened only for the duration of each write.
type Log struct {
	dir string
	now func() time.Time
}

// New returns a log that writes into dir.
func New(dir string) *Log {
	return &Log{dir: dir, now: time.Now}
}

// Path returns the file the next entry is appended to.
func (l *Log) Path() string {
	return filepath.Join(l.dir, policy.ErrorLogName(l.now()))
}

// Append writes one entry: Error_<timestamp>_<message>.
func (l *Log) Append(message string) error {
	path := l.Path()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open error log: %w", err)
	}

	entry := Format(l.now(), message)
	if _, err := f.WriteString(entry); err != nil {
		f.Close()
		return fmt.Errorf("failed to write error log: %w", err)
	}
	return f.Close()
}

// Format renders one log entry, newline included.
func Format(at time.Time, message string) string {
	return fmt.Sprintf("Error_%s_%s\n", at.Format(TimestampLayout), strings.TrimRight(message, "\n"))
}

// Package errlog provides the append-only failure log shared by concurrent
// probers. Writes are serialized so partial lines never interleave.
package errlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Log is a line-atomic append-only file sink.
type Log struct {
	mu   sync.Mutex
	file *os.File
	path string
}

// Open creates or opens the log file for appending, creating parent
// directories as needed.
func Open(path string) (*Log, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("error log path is required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create error log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open error log: %w", err)
	}

	return &Log{file: file, path: path}, nil
}

// Append writes one line to the log. Embedded newlines are flattened so the
// entry stays a single record.
func (l *Log) Append(line string) error {
	if l == nil || l.file == nil {
		return fmt.Errorf("error log is not open")
	}

	line = strings.ReplaceAll(strings.TrimRight(line, "\n"), "\n", " ")

	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := l.file.WriteString(line + "\n")
	return err
}

// Path returns the log file location.
func (l *Log) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Close releases the underlying file.
func (l *Log) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.file.Close()
	l.file = nil
	return err
}

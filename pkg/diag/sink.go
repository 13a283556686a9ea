// pkg/diag/sink.go

// Package diag holds the process-wide diagnostic log: one entry per
// external-process invocation plus narrative error lines. The log is
// append-only and ordered; nothing in the core ever reads it back.
package diag

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// DefaultMaxSize triggers rotation once the active segment passes it.
	DefaultMaxSize = 4 << 20 // 4 MiB
)

// Sink is a file-backed append-only log. Appends never fail the caller;
// write errors are swallowed (the diagnostic log is best-effort by design).
type Sink struct {
	mu      sync.Mutex
	f       *os.File
	path    string
	size    int64
	maxSize int64
}

// Open creates or reopens the sink file at path, appending to existing
// content. Parent directories are created as needed.
func Open(path string) (*Sink, error) {
	return OpenWithMaxSize(path, DefaultMaxSize)
}

// OpenWithMaxSize is Open with an explicit rotation threshold in bytes.
func OpenWithMaxSize(path string, maxSize int64) (*Sink, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat log file: %w", err)
	}
	return &Sink{f: f, path: path, size: info.Size(), maxSize: maxSize}, nil
}

// Append writes one timestamped entry.
func (s *Sink) Append(entry string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return
	}

	line := fmt.Sprintf("%s %s\n", time.Now().Format(time.RFC3339), entry)
	n, err := s.f.WriteString(line)
	s.size += int64(n)
	if err != nil {
		return
	}
	if s.maxSize > 0 && s.size >= s.maxSize {
		s.rotateLocked()
	}
}

// Path returns the active segment path.
func (s *Sink) Path() string {
	return s.path
}

// Close flushes and closes the active segment.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

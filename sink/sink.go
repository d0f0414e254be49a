// Package sink provides the append-only destinations for formatted tokens.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"syscall"
)

// Sink receives finished tokens. Append must not return until the token
// has been flushed.
type Sink interface {
	Append(token string) error
}

// File appends tokens to a file, syncing after every write.
type File struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// Open opens path for appending, creating it and its directory if needed.
func Open(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return &File{f: f, path: path}, nil
}

// Path returns the file path passed to Open.
func (s *File) Path() string {
	return s.path
}

// Append writes token and syncs it to disk.
func (s *File) Append(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return os.ErrClosed
	}
	if _, err := io.WriteString(s.f, token); err != nil {
		return fmt.Errorf("append: %w", err)
	}
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}
	return nil
}

// Close closes the file. Further appends fail with os.ErrClosed.
func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

type flusher interface{ Flush() error }
type syncer interface{ Sync() error }

// Writer appends tokens to an arbitrary io.Writer, flushing it when it
// supports Flush or Sync.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Append writes token and flushes the underlying writer if possible.
func (s *Writer) Append(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.WriteString(s.w, token); err != nil {
		return err
	}
	switch w := s.w.(type) {
	case flusher:
		return w.Flush()
	case syncer:
		// Sync on a terminal or pipe reports EINVAL; the write already landed.
		if err := w.Sync(); err != nil && !isUnsyncable(err) {
			return err
		}
	}
	return nil
}

func isUnsyncable(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTSUP)
}

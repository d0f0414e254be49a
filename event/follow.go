package event

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Follower tails a recording file, emitting events as lines are appended.
type Follower struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

// Follow registers a watch on path. Failing to register is returned to the
// caller; the file itself must already exist.
func Follow(path string, logger *slog.Logger) (*Follower, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("stat recording: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory; editors and rotations replace the file itself.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Follower{path: abs, watcher: w, logger: logger}, nil
}

// Close releases the underlying watcher.
func (f *Follower) Close() error {
	return f.watcher.Close()
}

// Stream emits every complete line already in the file, then every line
// appended later, until ctx is cancelled or the file is removed.
func (f *Follower) Stream(ctx context.Context, emit func(Event) error) error {
	file, err := os.Open(f.path)
	if err != nil {
		return fmt.Errorf("open recording: %w", err)
	}
	defer file.Close()

	t := &tail{r: bufio.NewReader(file), emit: emit}
	if err := t.drain(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-f.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != f.path {
				continue
			}
			switch {
			case ev.Has(fsnotify.Write):
				if err := t.drain(); err != nil {
					return err
				}
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				f.logger.Info("recording went away, stopping", "path", f.path)
				return t.drain()
			}
		case err, ok := <-f.watcher.Errors:
			if !ok {
				return nil
			}
			f.logger.Warn("watcher error", "path", f.path, "error", err)
		}
	}
}

type tail struct {
	r       *bufio.Reader
	partial strings.Builder
	lineNo  int
	emit    func(Event) error
}

// drain consumes complete lines up to EOF. A trailing partial line is kept
// until its newline arrives.
func (t *tail) drain() error {
	for {
		chunk, err := t.r.ReadString('\n')
		t.partial.WriteString(chunk)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read recording: %w", err)
		}
		line := t.partial.String()
		t.partial.Reset()
		t.lineNo++

		ev, ok, err := decodeLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", t.lineNo, err)
		}
		if !ok {
			continue
		}
		if err := t.emit(ev); err != nil {
			return err
		}
	}
}

package event

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single recorded event line.
const maxLineSize = 64 * 1024

// NewReader returns a Source decoding one JSON event per line from r.
// Blank lines and lines starting with '#' are skipped.
func NewReader(r io.Reader) Source {
	return SourceFunc(func(ctx context.Context, emit func(Event) error) error {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 4096), maxLineSize)
		lineNo := 0
		for sc.Scan() {
			if err := ctx.Err(); err != nil {
				return err
			}
			lineNo++
			ev, ok, err := decodeLine(sc.Text())
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			if !ok {
				continue
			}
			if err := emit(ev); err != nil {
				return err
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read events: %w", err)
		}
		return nil
	})
}

// decodeLine parses a single recording line. ok is false for lines that
// carry no event.
func decodeLine(line string) (ev Event, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Event{}, false, nil
	}
	if err := json.Unmarshal([]byte(trimmed), &ev); err != nil {
		return Event{}, false, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return ev, true, nil
}

// Encode writes ev as a single recording line.
func Encode(w io.Writer, ev Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

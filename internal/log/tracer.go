package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// EventTracer writes one line per raw keyboard event, before translation.
type EventTracer interface {
	Trace(kind string, code uint16, flags uint64, inputSource string)
}

type eventTracer struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewTracer creates an EventTracer writing to w. If w is nil, the tracer is a no-op.
func NewTracer(w io.Writer) EventTracer {
	return &eventTracer{w: w, now: time.Now}
}

// Trace emits a single line with timestamp, kind, keycode and flag bits.
func (t *eventTracer) Trace(kind string, code uint16, flags uint64, inputSource string) {
	if t.w == nil {
		return
	}
	line := fmt.Sprintf("%s %-13s code=%3d (0x%02x) flags=0x%08x",
		t.now().Format("2006/01/02 15:04:05.000"),
		kind,
		code,
		code,
		flags)
	if inputSource != "" {
		line += " source=" + inputSource
	}
	line += "\n"

	t.mu.Lock()
	_, _ = io.WriteString(t.w, line)
	t.mu.Unlock()
}

package session

import (
	"context"
	"sync"

	"github.com/Alia5/keyglyph/event"
)

// LayoutQuery reports the currently active input-source id.
// It is called once per key-down, immediately before translation.
type LayoutQuery interface {
	InputSourceID() string
}

// LayoutQueryFunc adapts a function to LayoutQuery.
type LayoutQueryFunc func() string

// InputSourceID calls the underlying function.
func (f LayoutQueryFunc) InputSourceID() string { return f() }

// StaticLayout always reports the same id.
type StaticLayout string

// InputSourceID returns the fixed id.
func (s StaticLayout) InputSourceID() string { return string(s) }

// RecordedLayout reports the last input-source id seen on a recorded event
// stream, or a fallback until one has been observed.
type RecordedLayout struct {
	mu       sync.Mutex
	fallback string
	last     string
}

// NewRecordedLayout returns a RecordedLayout starting at fallback.
func NewRecordedLayout(fallback string) *RecordedLayout {
	return &RecordedLayout{fallback: fallback}
}

// Observe records id if it is non-empty.
func (r *RecordedLayout) Observe(id string) {
	if id == "" {
		return
	}
	r.mu.Lock()
	r.last = id
	r.mu.Unlock()
}

// InputSourceID implements LayoutQuery.
func (r *RecordedLayout) InputSourceID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last != "" {
		return r.last
	}
	return r.fallback
}

// Watch wraps src so every event's input-source id is observed before the
// event is emitted.
func (r *RecordedLayout) Watch(src event.Source) event.Source {
	return event.SourceFunc(func(ctx context.Context, emit func(event.Event) error) error {
		return src.Stream(ctx, func(ev event.Event) error {
			r.Observe(ev.InputSource)
			return emit(ev)
		})
	})
}

// Package event models the keyboard events consumed by a session and the
// sources that deliver them.
package event

import (
	"context"
	"fmt"

	"github.com/Alia5/keyglyph/keys"
)

// Kind identifies the event variant.
type Kind uint8

const (
	KindOther Kind = iota
	KindFlagsChanged
	KindKeyDown
)

func (k Kind) String() string {
	switch k {
	case KindFlagsChanged:
		return "flags_changed"
	case KindKeyDown:
		return "key_down"
	default:
		return "other"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unrecognised names
// decode to KindOther so recordings may carry events a session ignores.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "flags_changed":
		*k = KindFlagsChanged
	case "key_down":
		*k = KindKeyDown
	case "":
		return fmt.Errorf("%w: missing kind", ErrMalformed)
	default:
		*k = KindOther
	}
	return nil
}

// Event is a single keyboard event.
// Code is meaningful for key-down, Flags for flags-changed. InputSource
// optionally records the input-source id active when the event was captured.
type Event struct {
	Kind        Kind       `json:"kind"`
	Code        keys.Code  `json:"code,omitempty"`
	Flags       keys.Flags `json:"flags,omitempty"`
	InputSource string     `json:"input_source,omitempty"`
}

// KeyDown builds a key-down event.
func KeyDown(code keys.Code) Event {
	return Event{Kind: KindKeyDown, Code: code}
}

// FlagsChanged builds a flags-changed event.
func FlagsChanged(flags keys.Flags) Event {
	return Event{Kind: KindFlagsChanged, Flags: flags}
}

// Source delivers events serially to emit until it is exhausted, the
// context is cancelled, or emit returns an error.
type Source interface {
	Stream(ctx context.Context, emit func(Event) error) error
}

// SourceFunc adapts a function literal to the Source interface.
type SourceFunc func(ctx context.Context, emit func(Event) error) error

// Stream calls the underlying function.
func (f SourceFunc) Stream(ctx context.Context, emit func(Event) error) error {
	return f(ctx, emit)
}

// Slice returns a Source that replays the given events in order.
func Slice(events ...Event) Source {
	return SourceFunc(func(ctx context.Context, emit func(Event) error) error {
		for _, ev := range events {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := emit(ev); err != nil {
				return err
			}
		}
		return nil
	})
}

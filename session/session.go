// Package session wires modifier tracking, layout selection, translation
// and the log sink into a single event handler.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Alia5/keyglyph/event"
	"github.com/Alia5/keyglyph/internal/log"
	"github.com/Alia5/keyglyph/keys"
	"github.com/Alia5/keyglyph/layout"
	"github.com/Alia5/keyglyph/sink"
)

var (
	ErrNoSink        = errors.New("session requires a sink")
	ErrNoLayoutQuery = errors.New("session requires a layout query")
)

// Options configures a Session.
type Options struct {
	Sink   sink.Sink
	Layout LayoutQuery
	Logger *slog.Logger
	Tracer log.EventTracer
}

// Stats counts what a session has processed.
type Stats struct {
	KeyDowns     int
	FlagChanges  int
	Unregistered int
	Ignored      int
	BytesWritten int
}

// Session holds the state shared between events: the modifier state and
// the sink. Handle is safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	mods   keys.Modifiers
	stats  Stats
	sink   sink.Sink
	layout LayoutQuery
	logger *slog.Logger
	tracer log.EventTracer
}

// New validates opts and returns a Session with all modifiers released.
func New(opts Options) (*Session, error) {
	if opts.Sink == nil {
		return nil, ErrNoSink
	}
	if opts.Layout == nil {
		return nil, ErrNoLayoutQuery
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = log.NewTracer(nil)
	}
	return &Session{
		sink:   opts.Sink,
		layout: opts.Layout,
		logger: logger,
		tracer: tracer,
	}, nil
}

// Handle processes one event and returns it unchanged.
//
// Flags-changed events replace the modifier state. Key-down events are
// rendered with the layout active at that moment and appended to the sink;
// the append (including its flush) completes before Handle returns.
func (s *Session) Handle(ev event.Event) (event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracer.Trace(ev.Kind.String(), uint16(ev.Code), uint64(ev.Flags), ev.InputSource)

	switch ev.Kind {
	case event.KindFlagsChanged:
		m := s.mods.Update(ev.Flags)
		s.stats.FlagChanges++
		s.logger.Log(context.Background(), log.LevelTrace, "modifiers changed", "modifiers", m.String())
	case event.KindKeyDown:
		l := layout.Select(s.layout.InputSourceID())
		token := keys.Translate(ev.Code, l, s.mods.Shift)
		if token == "" {
			s.stats.Unregistered++
			s.logger.Debug("unregistered keycode", "code", uint16(ev.Code), "layout", l.String())
		}
		out := keys.Format(ev.Code, token, s.mods.Control, s.mods.Command)
		if err := s.sink.Append(out); err != nil {
			return ev, fmt.Errorf("append token: %w", err)
		}
		s.stats.KeyDowns++
		s.stats.BytesWritten += len(out)
	default:
		s.stats.Ignored++
	}
	return ev, nil
}

// Run streams events from src into Handle until the source is exhausted,
// ctx is cancelled, or the sink fails.
func (s *Session) Run(ctx context.Context, src event.Source) (Stats, error) {
	err := src.Stream(ctx, func(ev event.Event) error {
		_, err := s.Handle(ev)
		return err
	})
	return s.Stats(), err
}

// Modifiers returns a snapshot of the current modifier state.
func (s *Session) Modifiers() keys.Modifiers {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mods
}

// Stats returns a snapshot of the counters.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

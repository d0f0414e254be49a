package session_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/keyglyph/event"
	"github.com/Alia5/keyglyph/internal/log"
	"github.com/Alia5/keyglyph/keys"
	"github.com/Alia5/keyglyph/layout"
	"github.com/Alia5/keyglyph/session"
	"github.com/Alia5/keyglyph/sink"
)

type memSink struct {
	mu     sync.Mutex
	tokens []string
	err    error
}

func (m *memSink) Append(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.tokens = append(m.tokens, token)
	return nil
}

func (m *memSink) joined() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return strings.Join(m.tokens, "")
}

type countingQuery struct {
	id    string
	calls int
}

func (c *countingQuery) InputSourceID() string {
	c.calls++
	return c.id
}

func newSession(t *testing.T, s sink.Sink, q session.LayoutQuery) *session.Session {
	t.Helper()
	sess, err := session.New(session.Options{Sink: s, Layout: q})
	require.NoError(t, err)
	return sess
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := session.New(session.Options{Layout: session.StaticLayout("")})
	assert.ErrorIs(t, err, session.ErrNoSink)

	_, err = session.New(session.Options{Sink: &memSink{}})
	assert.ErrorIs(t, err, session.ErrNoLayoutQuery)
}

func TestHandleScenarios(t *testing.T) {
	tests := []struct {
		name   string
		events []event.Event
		want   string
	}{
		{
			name:   "plain a",
			events: []event.Event{event.KeyDown(keys.KeyA)},
			want:   "a",
		},
		{
			name:   "shift a",
			events: []event.Event{event.FlagsChanged(keys.FlagShift), event.KeyDown(keys.KeyA)},
			want:   "A",
		},
		{
			name:   "command a",
			events: []event.Event{event.FlagsChanged(keys.FlagCommand), event.KeyDown(keys.KeyA)},
			want:   "⌘a",
		},
		{
			name:   "control left arrow",
			events: []event.Event{event.FlagsChanged(keys.FlagControl), event.KeyDown(keys.KeyLeftArrow)},
			want:   "⌃←",
		},
		{
			name:   "unregistered",
			events: []event.Event{event.FlagsChanged(keys.FlagControl), event.KeyDown(999)},
			want:   "[unregistered keycode 999]",
		},
		{
			name: "shift persists until release",
			events: []event.Event{
				event.FlagsChanged(keys.FlagShift),
				event.KeyDown(keys.KeyH),
				event.KeyDown(keys.KeyI),
				event.FlagsChanged(0),
				event.KeyDown(keys.KeyI),
			},
			want: "HIi",
		},
		{
			name: "command and control both held",
			events: []event.Event{
				event.FlagsChanged(keys.FlagControl | keys.FlagCommand | keys.FlagShift),
				event.KeyDown(keys.KeyS),
			},
			want: "⌘S",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := &memSink{}
			sess := newSession(t, mem, session.StaticLayout(layout.UnicodeHexInputID))
			for _, ev := range tt.events {
				out, err := sess.Handle(ev)
				require.NoError(t, err)
				assert.Equal(t, ev, out)
			}
			assert.Equal(t, tt.want, mem.joined())
		})
	}
}

func TestHandleQueriesLayoutPerKeyDown(t *testing.T) {
	mem := &memSink{}
	q := &countingQuery{id: layout.UnicodeHexInputID}
	sess := newSession(t, mem, q)

	_, err := sess.Handle(event.FlagsChanged(keys.FlagShift))
	require.NoError(t, err)
	assert.Equal(t, 0, q.calls)

	_, err = sess.Handle(event.FlagsChanged(0))
	require.NoError(t, err)
	_, err = sess.Handle(event.KeyDown(keys.KeyS))
	require.NoError(t, err)
	q.id = layout.ColemakID
	_, err = sess.Handle(event.KeyDown(keys.KeyS))
	require.NoError(t, err)

	assert.Equal(t, 2, q.calls)
	assert.Equal(t, "sr", mem.joined())
}

func TestHandleIgnoresOtherKinds(t *testing.T) {
	mem := &memSink{}
	sess := newSession(t, mem, session.StaticLayout(""))
	ev := event.Event{Kind: event.KindOther, Code: keys.KeyA}
	out, err := sess.Handle(ev)
	require.NoError(t, err)
	assert.Equal(t, ev, out)
	assert.Empty(t, mem.joined())
	assert.Equal(t, 1, sess.Stats().Ignored)
}

func TestHandleSinkError(t *testing.T) {
	mem := &memSink{err: errors.New("disk full")}
	sess := newSession(t, mem, session.StaticLayout(""))
	_, err := sess.Handle(event.KeyDown(keys.KeyA))
	require.Error(t, err)
	assert.ErrorIs(t, err, mem.err)
	assert.Equal(t, 0, sess.Stats().KeyDowns)
}

func TestRunCollectsStats(t *testing.T) {
	var buf bytes.Buffer
	var trace bytes.Buffer
	sess, err := session.New(session.Options{
		Sink:   sink.NewWriter(&buf),
		Layout: session.StaticLayout(layout.ColemakID),
		Tracer: log.NewTracer(&trace),
	})
	require.NoError(t, err)

	src := event.Slice(
		event.KeyDown(keys.KeyE), // colemak f
		event.FlagsChanged(keys.FlagCommand),
		event.KeyDown(keys.KeyUpArrow),
		event.FlagsChanged(0),
		event.KeyDown(200),
		event.Event{Kind: event.KindOther},
	)
	stats, err := sess.Run(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, "f⌘↑[unregistered keycode 200]", buf.String())
	assert.Equal(t, session.Stats{
		KeyDowns:     3,
		FlagChanges:  2,
		Unregistered: 1,
		Ignored:      1,
		BytesWritten: len("f⌘↑[unregistered keycode 200]"),
	}, stats)
	assert.Equal(t, keys.Modifiers{}, sess.Modifiers())
	assert.Equal(t, 6, strings.Count(trace.String(), "\n"))
}

func TestRunStopsOnSinkError(t *testing.T) {
	mem := &memSink{err: errors.New("read-only")}
	sess := newSession(t, mem, session.StaticLayout(""))
	_, err := sess.Run(context.Background(), event.Slice(event.KeyDown(keys.KeyA), event.KeyDown(keys.KeyB)))
	assert.ErrorIs(t, err, mem.err)
}

func TestRecordedLayoutFollowsStream(t *testing.T) {
	mem := &memSink{}
	rec := session.NewRecordedLayout(layout.UnicodeHexInputID)
	sess := newSession(t, mem, rec)

	src := rec.Watch(event.Slice(
		event.KeyDown(keys.KeyS),
		event.Event{Kind: event.KindKeyDown, Code: keys.KeyS, InputSource: layout.ColemakID},
		event.KeyDown(keys.KeyS),
		event.Event{Kind: event.KindKeyDown, Code: keys.KeyS, InputSource: layout.UnicodeHexInputID},
	))
	_, err := sess.Run(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, "srrs", mem.joined())
}

func TestHandleConcurrentUse(t *testing.T) {
	mem := &memSink{}
	sess := newSession(t, mem, session.StaticLayout(layout.UnicodeHexInputID))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = sess.Handle(event.KeyDown(keys.KeyA))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 400, sess.Stats().KeyDowns)
	assert.Equal(t, strings.Repeat("a", 400), mem.joined())
}

func TestLayoutQueryFunc(t *testing.T) {
	q := session.LayoutQueryFunc(func() string { return "x" })
	assert.Equal(t, "x", q.InputSourceID())
	assert.Equal(t, "y", session.StaticLayout("y").InputSourceID())
}

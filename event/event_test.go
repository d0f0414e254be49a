package event_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/keyglyph/event"
	"github.com/Alia5/keyglyph/keys"
)

func collect(t *testing.T, src event.Source) ([]event.Event, error) {
	t.Helper()
	var got []event.Event
	err := src.Stream(context.Background(), func(ev event.Event) error {
		got = append(got, ev)
		return nil
	})
	return got, err
}

func TestReaderDecodesLines(t *testing.T) {
	input := strings.Join([]string{
		`# recorded session`,
		`{"kind":"flags_changed","flags":131072}`,
		``,
		`{"kind":"key_down","code":0,"input_source":"com.apple.keylayout.UnicodeHexInput"}`,
		`  {"kind":"mouse_moved"}  `,
		`{"kind":"key_down","code":123}`,
	}, "\n")

	got, err := collect(t, event.NewReader(strings.NewReader(input)))
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, event.FlagsChanged(keys.FlagShift), got[0])
	assert.Equal(t, event.Event{Kind: event.KindKeyDown, Code: keys.KeyA, InputSource: "com.apple.keylayout.UnicodeHexInput"}, got[1])
	assert.Equal(t, event.KindOther, got[2].Kind)
	assert.Equal(t, event.KeyDown(keys.KeyLeftArrow), got[3])
}

func TestReaderMalformedLine(t *testing.T) {
	input := "{\"kind\":\"key_down\",\"code\":1}\n{not json\n"
	got, err := collect(t, event.NewReader(strings.NewReader(input)))
	require.Error(t, err)
	assert.ErrorIs(t, err, event.ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")
	assert.Len(t, got, 1)
}

func TestReaderEmptyKind(t *testing.T) {
	_, err := collect(t, event.NewReader(strings.NewReader(`{"kind":""}`)))
	assert.ErrorIs(t, err, event.ErrMalformed)
}

func TestReaderStopsOnEmitError(t *testing.T) {
	input := "{\"kind\":\"key_down\"}\n{\"kind\":\"key_down\"}\n"
	sentinel := errors.New("boom")
	calls := 0
	err := event.NewReader(strings.NewReader(input)).Stream(context.Background(), func(event.Event) error {
		calls++
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}

func TestEncodeRoundTrip(t *testing.T) {
	events := []event.Event{
		event.FlagsChanged(keys.FlagCommand | keys.FlagShift),
		event.KeyDown(keys.KeyZ),
		{Kind: event.KindKeyDown, Code: keys.KeyUpArrow, InputSource: "com.apple.keylayout.Colemak"},
	}
	var buf bytes.Buffer
	for _, ev := range events {
		require.NoError(t, event.Encode(&buf, ev))
	}
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))

	got, err := collect(t, event.NewReader(&buf))
	require.NoError(t, err)
	assert.Equal(t, events, got)
}

func TestSliceHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := event.Slice(event.KeyDown(keys.KeyA)).Stream(ctx, func(event.Event) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKindText(t *testing.T) {
	for _, k := range []event.Kind{event.KindFlagsChanged, event.KindKeyDown} {
		b, err := k.MarshalText()
		require.NoError(t, err)
		var back event.Kind
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, k, back)
	}
	assert.Equal(t, "other", event.KindOther.String())
}

func TestFollowMissingFile(t *testing.T) {
	_, err := event.Follow(filepath.Join(t.TempDir(), "missing.jsonl"), nil)
	assert.Error(t, err)
}

func TestFollowEmitsAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rec.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{\"kind\":\"key_down\",\"code\":0}\n"), 0o644))

	f, err := event.Follow(path, nil)
	require.NoError(t, err)
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var mu sync.Mutex
	var got []event.Event
	done := make(chan error, 1)
	go func() {
		done <- f.Stream(ctx, func(ev event.Event) error {
			mu.Lock()
			got = append(got, ev)
			mu.Unlock()
			return nil
		})
	}()

	count := func() int {
		mu.Lock()
		defer mu.Unlock()
		return len(got)
	}
	require.Eventually(t, func() bool { return count() == 1 }, 2*time.Second, 10*time.Millisecond)

	w, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	// partial line first; it must not be emitted until completed
	_, err = w.WriteString(`{"kind":"key_down",`)
	require.NoError(t, err)
	_, err = w.WriteString("\"code\":123}\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	require.Eventually(t, func() bool { return count() == 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, event.KeyDown(keys.KeyLeftArrow), got[1])
}

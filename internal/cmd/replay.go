package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/Alia5/keyglyph/event"
	"github.com/Alia5/keyglyph/internal/configpaths"
	"github.com/Alia5/keyglyph/internal/log"
	"github.com/Alia5/keyglyph/layout"
	"github.com/Alia5/keyglyph/session"
	"github.com/Alia5/keyglyph/sink"
)

type Replay struct {
	Recording   string `arg:"" optional:"" help:"Recorded events, one JSON object per line. Empty or '-' reads stdin"`
	Follow      bool   `help:"Keep reading as the recording grows" env:"KEYGLYPH_FOLLOW"`
	InputSource string `help:"Input-source id assumed until the recording reports one" default:"com.apple.keylayout.UnicodeHexInput" env:"KEYGLYPH_INPUT_SOURCE"`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, tracer log.EventTracer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if r.readsStdin() && term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is a terminal; pipe a recording or pass a file")
	}

	stats, err := r.Execute(ctx, logger, tracer, os.Stdin)
	if err != nil {
		return err
	}
	logger.Info("Replay finished",
		"keys", stats.KeyDowns,
		"modifier_changes", stats.FlagChanges,
		"unregistered", stats.Unregistered,
		"ignored", stats.Ignored,
		"bytes", stats.BytesWritten)
	return nil
}

func (r *Replay) readsStdin() bool {
	return r.Recording == "" || r.Recording == "-"
}

// Execute opens the log and the event source, then runs a session until the
// source ends or ctx is cancelled. Failing to open either is returned
// before any event is processed.
func (r *Replay) Execute(ctx context.Context, logger *slog.Logger, tracer log.EventTracer, stdin io.Reader) (session.Stats, error) {
	logPath, err := configpaths.DefaultLogPath()
	if err != nil {
		return session.Stats{}, fmt.Errorf("failed to resolve log path: %w", err)
	}
	out, err := sink.Open(logPath)
	if err != nil {
		return session.Stats{}, fmt.Errorf("failed to open %s: %w", logPath, err)
	}
	defer out.Close()
	logger.Info("Logging to", "path", logPath)

	src, closeSrc, err := r.openSource(logger, stdin)
	if err != nil {
		return session.Stats{}, err
	}
	defer closeSrc()

	if layout.Select(r.InputSource) == layout.Secondary && r.InputSource != layout.ColemakID {
		logger.Debug("input source is not recognised, using secondary layout", "input_source", r.InputSource)
	}
	rec := session.NewRecordedLayout(r.InputSource)
	sess, err := session.New(session.Options{
		Sink:   out,
		Layout: rec,
		Logger: logger,
		Tracer: tracer,
	})
	if err != nil {
		return session.Stats{}, err
	}

	stats, err := sess.Run(ctx, rec.Watch(src))
	if errors.Is(err, context.Canceled) {
		logger.Info("Replay interrupted")
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("replay: %w", err)
	}
	return stats, nil
}

func (r *Replay) openSource(logger *slog.Logger, stdin io.Reader) (event.Source, func(), error) {
	if r.readsStdin() {
		if r.Follow {
			return nil, nil, errors.New("--follow needs a recording file")
		}
		logger.Debug("Reading events from stdin")
		return event.NewReader(stdin), func() {}, nil
	}
	if r.Follow {
		f, err := event.Follow(r.Recording, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to follow %s: %w", r.Recording, err)
		}
		logger.Info("Following recording", "path", r.Recording)
		return f, func() { _ = f.Close() }, nil
	}
	f, err := os.Open(r.Recording)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open recording: %w", err)
	}
	return event.NewReader(f), func() { _ = f.Close() }, nil
}

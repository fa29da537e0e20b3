package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Options configures a Watcher.
type Options struct {
	Interval  time.Duration
	Separator string
	Out       io.Writer
	Clock     Clock
	Logger    *slog.Logger
}

// DefaultOptions polls every 100ms and prints to stdout.
func DefaultOptions() *Options {
	return &Options{
		Interval:  100 * time.Millisecond,
		Separator: DefaultSeparator,
		Out:       os.Stdout,
		Clock:     RealClock(),
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithInterval sets the poll interval.
func (o *Options) WithInterval(d time.Duration) *Options {
	o.Interval = d
	return o
}

// WithSeparator sets the join separator.
func (o *Options) WithSeparator(sep string) *Options {
	o.Separator = sep
	return o
}

// WithOutput sets where COPY lines are printed.
func (o *Options) WithOutput(w io.Writer) *Options {
	o.Out = w
	return o
}

// WithClock replaces the clock used between polls.
func (o *Options) WithClock(c Clock) *Options {
	o.Clock = c
	return o
}

// WithLogger sets the logger.
func (o *Options) WithLogger(l *slog.Logger) *Options {
	if l != nil {
		o.Logger = l
	}
	return o
}

// Watcher polls a clipboard and rewrites new content with Join.
type Watcher struct {
	clip   Clipboard
	opts   *Options
	recent string
}

// NewWatcher creates a watcher over clip. A nil opts uses DefaultOptions.
func NewWatcher(clip Clipboard, opts *Options) *Watcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Watcher{clip: clip, opts: opts}
}

// Poll checks the clipboard once and rewrites it when the content changed
// since the last poll. It reports whether a rewrite happened.
func (w *Watcher) Poll() (bool, error) {
	current, err := w.clip.ReadAll()
	if err != nil {
		return false, fmt.Errorf("failed to read clipboard: %w", err)
	}
	if current == w.recent {
		return false, nil
	}

	joined := Join(current, w.opts.Separator)
	fmt.Fprintf(w.opts.Out, "COPY -> %s\n", joined)
	if err := w.clip.WriteAll(joined); err != nil {
		return false, fmt.Errorf("failed to write clipboard: %w", err)
	}
	// The rewritten value is what the next poll will read back.
	w.recent = joined
	w.opts.Logger.Debug("clipboard rewritten", slog.Int("bytes", len(joined)))
	return true, nil
}

// Run polls until ctx is cancelled. Cancellation is not an error.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		if _, err := w.Poll(); err != nil {
			return err
		}
		if err := w.opts.Clock.Sleep(ctx, w.opts.Interval); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

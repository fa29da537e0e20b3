// Package progress reports rename progress to a terminal or a log stream.
package progress

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/michaelscutari/mv123/internal/rename"
	"github.com/michaelscutari/mv123/internal/term"
)

// New returns a bar observer when w is a terminal and a line observer
// emitting at most one line per interval otherwise. A zero interval on a
// non-terminal disables output.
func New(w io.Writer, interval time.Duration) rename.Observer {
	if term.IsTerminal(w) {
		return NewBar(w)
	}
	if interval <= 0 {
		return rename.NopObserver()
	}
	return NewLines(w, interval)
}

// Bar draws a progress bar with the running rename count.
type Bar struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

// NewBar creates a bar observer writing to w.
func NewBar(w io.Writer) *Bar {
	return &Bar{w: w}
}

// Start implements rename.Observer.
func (b *Bar) Start(total int) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription("Renaming"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// Step implements rename.Observer.
func (b *Bar) Step(_ rename.Pair, changed int) {
	if b.bar == nil {
		return
	}
	b.bar.Describe(fmt.Sprintf("Renaming (%d changed)", changed))
	_ = b.bar.Add(1)
}

// Done implements rename.Observer.
func (b *Bar) Done(int) {
	if b.bar == nil {
		return
	}
	_ = b.bar.Finish()
}

// Lines writes PROGRESS lines for non-interactive output.
type Lines struct {
	w        io.Writer
	interval time.Duration
	now      func() time.Time

	total int
	done  int
	last  time.Time
}

// NewLines creates a line observer.
func NewLines(w io.Writer, interval time.Duration) *Lines {
	return &Lines{w: w, interval: interval, now: time.Now}
}

// Start implements rename.Observer.
func (l *Lines) Start(total int) {
	l.total = total
	l.done = 0
	l.last = l.now()
}

// Step implements rename.Observer.
func (l *Lines) Step(_ rename.Pair, changed int) {
	l.done++
	if now := l.now(); now.Sub(l.last) >= l.interval {
		l.emit(changed)
		l.last = now
	}
}

// Done implements rename.Observer.
func (l *Lines) Done(changed int) {
	l.emit(changed)
}

func (l *Lines) emit(changed int) {
	fmt.Fprintf(l.w, "PROGRESS done=%d total=%d changed=%d\n", l.done, l.total, changed)
}

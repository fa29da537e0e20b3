// Package clipboard rewrites multi-line clipboard text into a single
// separated line.
package clipboard

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// DefaultSeparator joins the trimmed lines.
const DefaultSeparator = ","

// Clipboard reads and writes the clipboard contents.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// System is the clipboard of the running desktop session.
type System struct{}

// ReadAll implements Clipboard.
func (System) ReadAll() (string, error) { return clipboard.ReadAll() }

// WriteAll implements Clipboard.
func (System) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Supported reports whether a clipboard backend is available.
func Supported() bool {
	return !clipboard.Unsupported
}

// Clock sleeps between polls. Sleep returns ctx.Err() if ctx ends first.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// RealClock returns a Clock backed by timers.
func RealClock() Clock {
	return realClock{}
}

// Join splits text on newlines, trims each line and joins them with sep.
// Empty lines are kept, so "a\n\nb" becomes "a,,b".
func Join(text, sep string) string {
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, sep)
}

package clipboard

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClipboard serves queued external copies; once drained it returns the
// last written value like a real clipboard.
type fakeClipboard struct {
	queue   []string
	current string
	writes  []string
	readErr error
}

func (f *fakeClipboard) ReadAll() (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	if len(f.queue) > 0 {
		f.current = f.queue[0]
		f.queue = f.queue[1:]
	}
	return f.current, nil
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.current = text
	f.writes = append(f.writes, text)
	return nil
}

// fakeClock cancels after a fixed number of sleeps.
type fakeClock struct {
	sleeps int
	limit  int
	cancel context.CancelFunc
	slept  time.Duration
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	c.sleeps++
	c.slept += d
	if c.sleeps >= c.limit {
		c.cancel()
	}
	return ctx.Err()
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "a,b,c", Join("a\n b \nc", ","))
	assert.Equal(t, "a,,b", Join("a\n\nb", ","))
	assert.Equal(t, "single", Join("  single  ", ","))
	assert.Equal(t, "x;y", Join("x\r\ny", ";"))
	assert.Equal(t, "", Join("", ","))
}

func TestWatcherRewritesOncePerChange(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clip := &fakeClipboard{queue: []string{"a\nb", "a\nb", "", "x \n y"}}
	clock := &fakeClock{limit: 8, cancel: cancel}
	var out bytes.Buffer

	opts := DefaultOptions().WithOutput(&out).WithClock(clock).WithInterval(time.Second)
	err := NewWatcher(clip, opts).Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"a,b", "a,b", "", "x,y"}, clip.writes)
	assert.Equal(t, "COPY -> a,b\nCOPY -> a,b\nCOPY -> \nCOPY -> x,y\n", out.String())
	assert.Equal(t, 8*time.Second, clock.slept)
}

func TestWatcherIgnoresInitialEmptyClipboard(t *testing.T) {
	clip := &fakeClipboard{}
	var out bytes.Buffer
	w := NewWatcher(clip, DefaultOptions().WithOutput(&out))

	changed, err := w.Poll()
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, out.String())
	assert.Empty(t, clip.writes)
}

func TestWatcherStableAfterRewrite(t *testing.T) {
	clip := &fakeClipboard{queue: []string{"1\n2"}}
	var out bytes.Buffer
	w := NewWatcher(clip, DefaultOptions().WithOutput(&out).WithSeparator(" | "))

	changed, err := w.Poll()
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = w.Poll()
	require.NoError(t, err)
	assert.False(t, changed, "reading back our own write is not a change")
	assert.Equal(t, []string{"1 | 2"}, clip.writes)
}

func TestWatcherReturnsReadErrors(t *testing.T) {
	boom := errors.New("no display")
	clip := &fakeClipboard{readErr: boom}
	w := NewWatcher(clip, DefaultOptions().WithOutput(&bytes.Buffer{}))

	err := w.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRealClockHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := RealClock().Sleep(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

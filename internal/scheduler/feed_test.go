package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/ottopomo/internal/logger"
)

func newFeed(t *testing.T, opts ...Option) *Feed {
	t.Helper()
	f := New(logger.New(logger.LevelOff, nil), opts...)
	t.Cleanup(f.Stop)
	return f
}

func TestFeedStoppedByDefault(t *testing.T) {
	f := newFeed(t)

	assert.False(t, f.running())
	assert.Nil(t, f.C())
	assert.Equal(t, DefaultInterval, f.Interval())
}

func TestFeedDeliversTicksWhileRunning(t *testing.T) {
	f := newFeed(t, WithInterval(10*time.Millisecond))

	f.Start()
	require.True(t, f.running())

	var last time.Time
	for i := 0; i < 3; i++ {
		select {
		case now := <-f.C():
			assert.False(t, now.Before(last), "ticks must be non-decreasing")
			last = now
		case <-time.After(time.Second):
			t.Fatalf("no tick %d within 1s", i)
		}
	}
}

func TestFeedStartStopIdempotent(t *testing.T) {
	f := newFeed(t, WithInterval(10*time.Millisecond))

	f.Start()
	c := f.C()
	f.Start()
	assert.Equal(t, c, f.C(), "second Start must keep the same ticker")

	f.Stop()
	f.Stop()
	assert.False(t, f.running())
	assert.Nil(t, f.C())
}

func TestFeedSync(t *testing.T) {
	f := newFeed(t, WithInterval(10*time.Millisecond))

	require.NotNil(t, f.Sync(true))
	assert.True(t, f.running())

	assert.Nil(t, f.Sync(false))
	assert.False(t, f.running())
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	f := newFeed(t, WithInterval(0), WithInterval(-time.Second))
	assert.Equal(t, DefaultInterval, f.Interval())
}

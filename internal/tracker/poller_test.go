package tracker

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitFlush(t *testing.T, sink *recordingSink) float64 {
	t.Helper()
	select {
	case h := <-sink.seen:
		return h
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for flush")
		return 0
	}
}

func TestPollerFlushesOnTicksAndStopsOnClose(t *testing.T) {
	sink := newRecordingSink()
	tr := New(sink)
	clock := &fakeClock{now: t0}
	ticks := make(chan time.Time)

	p := StartPoller(context.Background(), tr, clock, WithTicks(ticks), WithLogger(quietLogger()))
	require.True(t, tr.Active())

	ticks <- clock.Advance(65 * time.Second)
	assert.InDelta(t, 65.0/3600, waitFlush(t, sink), eps)

	clock.Advance(30 * time.Second)
	hours, err := p.Close(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 0.5/60, hours, eps)
	assert.False(t, tr.Active())
	assert.Len(t, sink.Calls(), 2)

	select {
	case <-p.Done():
	default:
		t.Fatal("poller goroutine should have exited")
	}

	// Second close is a no-op.
	hours, err = p.Close(context.Background())
	require.NoError(t, err)
	assert.Zero(t, hours)
	assert.Len(t, sink.Calls(), 2)
}

func TestPollerExitsWhenContextCancelled(t *testing.T) {
	sink := newRecordingSink()
	tr := New(sink)
	clock := &fakeClock{now: t0}

	ctx, cancel := context.WithCancel(context.Background())
	p := StartPoller(ctx, tr, clock, WithTicks(make(chan time.Time)), WithLogger(quietLogger()))
	cancel()

	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not exit after cancel")
	}

	// Close still performs the final stop.
	clock.Advance(10 * time.Second)
	_, err := p.Close(context.Background())
	require.NoError(t, err)
	assert.Len(t, sink.Calls(), 1)
}

func TestPollerRecordsFlushErrors(t *testing.T) {
	sink := newRecordingSink()
	sink.fail(assert.AnError)
	tr := New(sink)
	clock := &fakeClock{now: t0}
	ticks := make(chan time.Time)

	p := StartPoller(context.Background(), tr, clock, WithTicks(ticks), WithLogger(quietLogger()))
	ticks <- clock.Advance(2 * time.Minute)
	// A second send only completes once the first tick has been handled.
	ticks <- clock.Now()

	require.ErrorIs(t, p.Err(), assert.AnError)

	_, err := p.Close(context.Background())
	require.ErrorIs(t, err, assert.AnError)
}

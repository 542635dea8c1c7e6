package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSink captures every flush.
type recordingSink struct {
	mu    sync.Mutex
	calls []float64
	err   error
	seen  chan float64
}

func newRecordingSink() *recordingSink {
	return &recordingSink{seen: make(chan float64, 16)}
}

func (s *recordingSink) LogStudyTime(_ context.Context, hours float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.calls = append(s.calls, hours)
	s.seen <- hours
	return nil
}

func (s *recordingSink) Calls() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]float64(nil), s.calls...)
}

func (s *recordingSink) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

var t0 = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

const eps = 1e-9

func TestTickFlushesOncePerMinuteOrMore(t *testing.T) {
	sink := newRecordingSink()
	tr := New(sink)
	tr.Start(t0)
	ctx := context.Background()

	offsets := []time.Duration{60 * time.Second, 150 * time.Second, 215 * time.Second, 600 * time.Second}
	for _, off := range offsets {
		hours, err := tr.Tick(ctx, t0.Add(off))
		require.NoError(t, err)
		assert.Greater(t, hours, 0.0)
	}

	calls := sink.Calls()
	require.Len(t, calls, len(offsets))

	prev := time.Duration(0)
	var total float64
	for i, off := range offsets {
		want := (off - prev).Minutes() / 60
		assert.InDelta(t, want, calls[i], eps, "flush %d", i)
		total += calls[i]
		prev = off
	}

	sess, active := tr.Session()
	require.True(t, active)
	assert.InDelta(t, sess.LastFlushedAt.Sub(sess.StartedAt).Seconds()/3600, total, eps)
	assert.InDelta(t, total, tr.Totals().Flushed, eps)
}

func TestTickUnderAMinuteRetainsTime(t *testing.T) {
	sink := newRecordingSink()
	tr := New(sink)
	tr.Start(t0)
	ctx := context.Background()

	hours, err := tr.Tick(ctx, t0.Add(59*time.Second))
	require.NoError(t, err)
	assert.Zero(t, hours)
	assert.Empty(t, sink.Calls())

	sess, _ := tr.Session()
	assert.Equal(t, t0, sess.LastFlushedAt, "sub-minute tick must not advance LastFlushedAt")
	assert.Equal(t, 59*time.Second, tr.Totals().Pending)

	// The retained 59s counts toward the next tick.
	hours, err = tr.Tick(ctx, t0.Add(70*time.Second))
	require.NoError(t, err)
	assert.InDelta(t, 70.0/3600, hours, eps)
}

func TestStopGuard(t *testing.T) {
	tests := []struct {
		name      string
		sinceLast time.Duration
		wantCalls int
		wantHours float64
	}{
		{"2s after flush is dropped", 2 * time.Second, 0, 0},
		{"exactly 6s is dropped", 6 * time.Second, 0, 0},
		{"30s after flush is logged", 30 * time.Second, 1, 0.5 / 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := newRecordingSink()
			tr := New(sink)
			tr.Start(t0)
			ctx := context.Background()

			_, err := tr.Tick(ctx, t0.Add(2*time.Minute))
			require.NoError(t, err)
			require.Len(t, sink.Calls(), 1)

			hours, err := tr.Stop(ctx, t0.Add(2*time.Minute+tt.sinceLast))
			require.NoError(t, err)
			assert.InDelta(t, tt.wantHours, hours, eps)
			assert.Len(t, sink.Calls(), 1+tt.wantCalls)
			assert.False(t, tr.Active())
		})
	}
}

func TestLoginWaitLogoutEndToEnd(t *testing.T) {
	sink := newRecordingSink()
	tr := New(sink)
	ctx := context.Background()

	tr.Start(t0)
	for s := 10; s <= 60; s += 10 {
		_, err := tr.Tick(ctx, t0.Add(time.Duration(s)*time.Second))
		require.NoError(t, err)
	}
	require.Len(t, sink.Calls(), 1, "the 60s tick flushes")

	tr.Start(t0) // fresh login
	_, err := tr.Tick(ctx, t0.Add(65*time.Second))
	require.NoError(t, err)
	require.Len(t, sink.Calls(), 2)
	assert.InDelta(t, 65.0/3600, sink.Calls()[1], eps)

	_, err = tr.Stop(ctx, t0.Add(67*time.Second))
	require.NoError(t, err)
	assert.Len(t, sink.Calls(), 2, "logout within 2s of a flush must not log again")
}

func TestStopWithoutStartIsNoop(t *testing.T) {
	sink := newRecordingSink()
	tr := New(sink)

	hours, err := tr.Stop(context.Background(), t0)
	require.NoError(t, err)
	assert.Zero(t, hours)
	assert.Empty(t, sink.Calls())
}

func TestDoubleStopIsNoop(t *testing.T) {
	sink := newRecordingSink()
	tr := New(sink)
	tr.Start(t0)
	ctx := context.Background()

	_, err := tr.Stop(ctx, t0.Add(time.Minute))
	require.NoError(t, err)
	_, err = tr.Stop(ctx, t0.Add(5*time.Minute))
	require.NoError(t, err)
	assert.Len(t, sink.Calls(), 1)
}

func TestTickWhenIdleIsNoop(t *testing.T) {
	sink := newRecordingSink()
	tr := New(sink)
	hours, err := tr.Tick(context.Background(), t0.Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, hours)
	assert.Empty(t, sink.Calls())
}

func TestFlushFailurePropagates(t *testing.T) {
	boom := errors.New("disk full")
	sink := newRecordingSink()
	sink.fail(boom)
	tr := New(sink)
	tr.Start(t0)
	ctx := context.Background()

	_, err := tr.Tick(ctx, t0.Add(2*time.Minute))
	require.ErrorIs(t, err, boom)

	sess, _ := tr.Session()
	assert.Equal(t, t0, sess.LastFlushedAt, "failed flush must not advance LastFlushedAt")

	_, err = tr.Stop(ctx, t0.Add(3*time.Minute))
	require.ErrorIs(t, err, boom)
	assert.False(t, tr.Active(), "tracker is idle after stop even when the flush fails")
}

func TestClockGoingBackwardsLogsNothing(t *testing.T) {
	sink := newRecordingSink()
	tr := New(sink)
	tr.Start(t0)

	hours, err := tr.Tick(context.Background(), t0.Add(-5*time.Minute))
	require.NoError(t, err)
	assert.Zero(t, hours)
	assert.Zero(t, tr.Totals().Pending)
	assert.Empty(t, sink.Calls())
}

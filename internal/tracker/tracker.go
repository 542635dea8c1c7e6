package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	// PollInterval is how often a live session is checked for a flush.
	PollInterval = 10 * time.Second

	// FlushThreshold is the minimum unflushed time a tick will log.
	FlushThreshold = time.Minute

	// StopGuard is the minimum unflushed time logged on stop (0.1 minute).
	// A stop closer than this to the previous flush would double count it.
	StopGuard = 6 * time.Second
)

// StudyLogger receives flushed study time. LogStudyTime must accumulate.
type StudyLogger interface {
	LogStudyTime(ctx context.Context, hours float64) error
}

// Session is a snapshot of the tracker's bookkeeping.
type Session struct {
	StartedAt     time.Time
	LastFlushedAt time.Time
}

// Totals summarises what a session has reported so far.
type Totals struct {
	Flushed float64       // hours handed to the logger
	Pending time.Duration // elapsed since the last flush, as of the last call
}

// Tracker accrues study time for one login session and flushes it to a
// StudyLogger. It keeps no durable state; anything under StopGuard at stop
// is discarded.
type Tracker struct {
	mu      sync.Mutex
	sink    StudyLogger
	active  bool
	session Session
	flushed float64
	pending time.Duration
}

// New creates an idle tracker that flushes to sink.
func New(sink StudyLogger) *Tracker {
	return &Tracker{sink: sink}
}

// Start begins a session at now. Starting an active tracker restarts it.
func (t *Tracker) Start(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.active = true
	t.session = Session{StartedAt: now, LastFlushedAt: now}
	t.flushed = 0
	t.pending = 0
}

// Active reports whether a session is running.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Session returns the current session timestamps.
func (t *Tracker) Session() (Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session, t.active
}

// Totals returns flushed hours and the last observed unflushed time.
func (t *Tracker) Totals() Totals {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Totals{Flushed: t.flushed, Pending: t.pending}
}

// Tick flushes the time since the last flush once it reaches FlushThreshold.
// Shorter intervals are kept for a later tick. It returns the hours logged,
// zero when nothing was flushed. A failed flush leaves LastFlushedAt alone.
func (t *Tracker) Tick(ctx context.Context, now time.Time) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return 0, nil
	}
	elapsed := t.elapsed(now)
	t.pending = elapsed
	if elapsed < FlushThreshold {
		return 0, nil
	}
	return t.flush(ctx, now, elapsed)
}

// Stop ends the session. Time strictly above StopGuard is flushed; anything
// less is dropped. Stopping an idle tracker is a no-op. The tracker is idle
// afterwards even if the final flush fails.
func (t *Tracker) Stop(ctx context.Context, now time.Time) (float64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return 0, nil
	}
	t.active = false

	elapsed := t.elapsed(now)
	t.pending = 0
	if elapsed <= StopGuard {
		return 0, nil
	}
	return t.flush(ctx, now, elapsed)
}

// elapsed is clamped at zero so a clock step backwards never logs
// negative time.
func (t *Tracker) elapsed(now time.Time) time.Duration {
	d := now.Sub(t.session.LastFlushedAt)
	if d < 0 {
		return 0
	}
	return d
}

func (t *Tracker) flush(ctx context.Context, now time.Time, elapsed time.Duration) (float64, error) {
	hours := elapsed.Minutes() / 60
	if err := t.sink.LogStudyTime(ctx, hours); err != nil {
		return 0, fmt.Errorf("log study time: %w", err)
	}
	t.session.LastFlushedAt = now
	t.flushed += hours
	t.pending = 0
	return hours, nil
}

package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Poller ticks a Tracker from its own goroutine until closed. It is the
// scoped background task for a session outside the TUI event loop.
type Poller struct {
	tracker *Tracker
	clock   Clock
	log     *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu      sync.Mutex
	lastErr error
}

// PollerOption configures a Poller.
type PollerOption func(*pollerConfig)

type pollerConfig struct {
	interval time.Duration
	logger   *slog.Logger
	ticks    <-chan time.Time
}

// WithInterval overrides PollInterval.
func WithInterval(d time.Duration) PollerOption {
	return func(c *pollerConfig) { c.interval = d }
}

// WithLogger sets the logger used for flush failures.
func WithLogger(l *slog.Logger) PollerOption {
	return func(c *pollerConfig) { c.logger = l }
}

// WithTicks drives the poller from ch instead of a time.Ticker.
func WithTicks(ch <-chan time.Time) PollerOption {
	return func(c *pollerConfig) { c.ticks = ch }
}

// StartPoller starts the tracker's session at clock.Now() and ticks it until
// ctx is cancelled or Close is called.
func StartPoller(ctx context.Context, t *Tracker, clock Clock, opts ...PollerOption) *Poller {
	cfg := pollerConfig{interval: PollInterval, logger: slog.Default()}
	for _, o := range opts {
		o(&cfg)
	}

	ctx, cancel := context.WithCancel(ctx)
	p := &Poller{
		tracker: t,
		clock:   clock,
		log:     cfg.logger,
		cancel:  cancel,
		done:    make(chan struct{}),
	}

	t.Start(clock.Now())

	ticks := cfg.ticks
	var ticker *time.Ticker
	if ticks == nil {
		ticker = time.NewTicker(cfg.interval)
		ticks = ticker.C
	}

	go func() {
		defer close(p.done)
		if ticker != nil {
			defer ticker.Stop()
		}
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticks:
				hours, err := t.Tick(ctx, clock.Now())
				if err != nil {
					p.setErr(err)
					p.log.Warn("study time flush failed", "err", err)
					continue
				}
				if hours > 0 {
					p.log.Debug("study time flushed", "hours", hours)
				}
			}
		}
	}()

	return p
}

// Close cancels the poller, waits for it to exit and stops the tracker with a
// final flush. Safe to call more than once; later calls return nil.
func (p *Poller) Close(ctx context.Context) (float64, error) {
	var (
		hours float64
		err   error
	)
	p.once.Do(func() {
		p.cancel()
		<-p.done
		hours, err = p.tracker.Stop(ctx, p.clock.Now())
	})
	return hours, err
}

// Done is closed once the polling goroutine has exited.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

// Err returns the most recent flush error seen by the polling goroutine.
func (p *Poller) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

func (p *Poller) setErr(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lastErr = err
}

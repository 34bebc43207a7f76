// Package sequencer replays spanning tree steps one at a time with a fixed
// pause between them.
//
// A playback drives itself: every step schedules its successor through a
// Scheduler, and once the last pause has elapsed the completion callback
// receives the accumulated weight. The Scheduler decides where callbacks
// run. The default uses time.AfterFunc; a game loop can supply one that is
// pumped from its update function instead.
package sequencer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oliverbestmann/house-roads/mst"
	"go.uber.org/zap"
)

// DefaultInterval is the pause after each replayed step.
const DefaultInterval = 600 * time.Millisecond

var ErrCancelled = errors.New("sequencer: playback cancelled")

// EdgeFunc is called for every step, with the running total including the
// step's own weight.
type EdgeFunc func(index int, step mst.Step, total float64)

// Scheduler runs f once after d has elapsed. The returned function prevents
// f from running if it has not run yet.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (cancel func())
}

// WallClock schedules callbacks using time.AfterFunc. Callbacks run on
// their own goroutine.
type WallClock struct{}

func (WallClock) AfterFunc(d time.Duration, f func()) func() {
	timer := time.AfterFunc(d, f)
	return func() { timer.Stop() }
}

type options struct {
	interval   time.Duration
	scheduler  Scheduler
	onComplete func(total float64)
	logger     *zap.Logger
}

type Option func(*options)

func WithInterval(interval time.Duration) Option {
	return func(o *options) {
		o.interval = max(0, interval)
	}
}

func WithScheduler(scheduler Scheduler) Option {
	return func(o *options) {
		o.scheduler = scheduler
	}
}

// WithOnComplete registers a callback that receives the final total. It is
// not called for cancelled playbacks.
func WithOnComplete(fn func(total float64)) Option {
	return func(o *options) {
		o.onComplete = fn
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Playback is a handle to one replay started by Play.
type Playback struct {
	opts   options
	steps  mst.Result
	onEdge EdgeFunc

	mu        sync.Mutex
	next      int
	total     float64
	completed bool
	cancelled bool
	stopTimer func()
	done      chan struct{}
}

// Play starts replaying steps in order. The first step is replayed before
// Play returns. An empty sequence completes immediately with a total of 0.
func Play(steps mst.Result, onEdge EdgeFunc, opts ...Option) *Playback {
	p := &Playback{
		opts: options{
			interval:  DefaultInterval,
			scheduler: WallClock{},
			logger:    zap.NewNop(),
		},
		steps:  steps,
		onEdge: onEdge,
		done:   make(chan struct{}),
	}

	for _, opt := range opts {
		opt(&p.opts)
	}

	p.opts.logger.Debug("starting playback",
		zap.Int("steps", len(steps)),
		zap.Duration("interval", p.opts.interval))

	p.advance()

	return p
}

// advance replays the next step and schedules its successor, or completes
// the playback when no steps are left.
func (p *Playback) advance() {
	p.mu.Lock()

	if p.cancelled || p.completed {
		p.mu.Unlock()
		return
	}

	if p.next >= len(p.steps) {
		p.completed = true
		p.stopTimer = nil
		total := p.total
		p.mu.Unlock()

		p.opts.logger.Debug("playback complete", zap.Float64("total", total))

		if p.opts.onComplete != nil {
			p.opts.onComplete(total)
		}

		close(p.done)
		return
	}

	index := p.next
	step := p.steps[index]
	p.next++
	p.total += step.Weight
	total := p.total
	p.mu.Unlock()

	if p.onEdge != nil {
		p.onEdge(index, step, total)
	}

	// the edge callback may have cancelled us
	p.mu.Lock()
	cancelled := p.cancelled
	p.mu.Unlock()

	if cancelled {
		return
	}

	// the scheduler may run advance before AfterFunc returns, so it must be
	// called without holding the lock
	stop := p.opts.scheduler.AfterFunc(p.opts.interval, p.advance)

	p.mu.Lock()

	switch {
	case p.cancelled:
		p.mu.Unlock()
		stop()
		return

	case p.next == index+1 && !p.completed:
		p.stopTimer = stop
	}

	p.mu.Unlock()
}

// Cancel stops the playback. No further steps are replayed and the
// completion callback is not invoked. Cancel reports whether the playback
// was still running.
func (p *Playback) Cancel() bool {
	p.mu.Lock()

	if p.cancelled || p.completed {
		p.mu.Unlock()
		return false
	}

	p.cancelled = true
	stop := p.stopTimer
	p.stopTimer = nil
	p.mu.Unlock()

	if stop != nil {
		stop()
	}

	p.opts.logger.Debug("playback cancelled")

	close(p.done)
	return true
}

// Done is closed once the playback completed or was cancelled.
func (p *Playback) Done() <-chan struct{} {
	return p.done
}

// Total returns the final total. ok is false until the playback completed.
func (p *Playback) Total() (total float64, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.completed {
		return 0, false
	}

	return p.total, true
}

// Wait blocks until the playback ends and returns its total.
func (p *Playback) Wait(ctx context.Context) (float64, error) {
	select {
	case <-p.done:
	case <-ctx.Done():
		return 0, ctx.Err()
	}

	total, ok := p.Total()
	if !ok {
		return 0, ErrCancelled
	}

	return total, nil
}

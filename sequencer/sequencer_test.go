package sequencer

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/oliverbestmann/house-roads/mst"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type pendingCall struct {
	delay     time.Duration
	fn        func()
	cancelled bool
}

// manualScheduler queues callbacks until the test fires them.
type manualScheduler struct {
	mu        sync.Mutex
	pending   []*pendingCall
	scheduled int
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	call := &pendingCall{delay: d, fn: f}
	s.pending = append(s.pending, call)
	s.scheduled++

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		call.cancelled = true
	}
}

// fire runs the oldest pending callback. It reports false if nothing is
// pending.
func (s *manualScheduler) fire() bool {
	s.mu.Lock()
	for len(s.pending) > 0 && s.pending[0].cancelled {
		s.pending = s.pending[1:]
	}

	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}

	call := s.pending[0]
	s.pending = s.pending[1:]
	s.mu.Unlock()

	call.fn()
	return true
}

func (s *manualScheduler) live() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, call := range s.pending {
		if !call.cancelled {
			count++
		}
	}

	return count
}

// immediateScheduler runs callbacks synchronously, before AfterFunc returns.
type immediateScheduler struct{}

func (immediateScheduler) AfterFunc(_ time.Duration, f func()) func() {
	f()
	return func() {}
}

var twoSteps = mst.Result{
	{Parent: 0, Child: 1, Weight: 5},
	{Parent: 1, Child: 2, Weight: 3},
}

type recorder struct {
	indices   []int
	totals    []float64
	completed []float64
}

func (r *recorder) onEdge(index int, _ mst.Step, total float64) {
	r.indices = append(r.indices, index)
	r.totals = append(r.totals, total)
}

func (r *recorder) onComplete(total float64) {
	r.completed = append(r.completed, total)
}

func TestPlay_TwoSteps(t *testing.T) {
	scheduler := &manualScheduler{}
	rec := &recorder{}

	playback := Play(twoSteps, rec.onEdge,
		WithScheduler(scheduler),
		WithOnComplete(rec.onComplete),
		WithLogger(zaptest.NewLogger(t)))

	// first step is replayed synchronously
	assert.Equal(t, []int{0}, rec.indices)
	assert.Equal(t, []float64{5}, rec.totals)
	require.Equal(t, 1, scheduler.live())
	assert.Equal(t, DefaultInterval, scheduler.pending[0].delay)

	require.True(t, scheduler.fire())
	assert.Equal(t, []int{0, 1}, rec.indices)
	assert.Equal(t, []float64{5, 8}, rec.totals)
	assert.Empty(t, rec.completed)

	_, ok := playback.Total()
	assert.False(t, ok)

	require.True(t, scheduler.fire())
	assert.Equal(t, []float64{8}, rec.completed)
	assert.Equal(t, 2, scheduler.scheduled)

	// nothing left to schedule
	assert.False(t, scheduler.fire())

	total, ok := playback.Total()
	require.True(t, ok)
	assert.Equal(t, 8.0, total)

	total, err := playback.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8.0, total)
}

func TestPlay_Empty(t *testing.T) {
	scheduler := &manualScheduler{}
	rec := &recorder{}

	playback := Play(nil, rec.onEdge, WithScheduler(scheduler), WithOnComplete(rec.onComplete))

	assert.Empty(t, rec.indices)
	assert.Equal(t, []float64{0}, rec.completed)
	assert.Zero(t, scheduler.scheduled)

	select {
	case <-playback.Done():
	default:
		t.Fatal("empty playback must be done immediately")
	}
}

func TestPlay_CustomInterval(t *testing.T) {
	scheduler := &manualScheduler{}

	Play(twoSteps, nil, WithScheduler(scheduler), WithInterval(25*time.Millisecond))

	require.Equal(t, 1, scheduler.live())
	assert.Equal(t, 25*time.Millisecond, scheduler.pending[0].delay)
}

func TestPlay_Cancel(t *testing.T) {
	scheduler := &manualScheduler{}
	rec := &recorder{}

	playback := Play(twoSteps, rec.onEdge, WithScheduler(scheduler), WithOnComplete(rec.onComplete))

	require.True(t, playback.Cancel())
	assert.False(t, playback.Cancel())
	assert.Zero(t, scheduler.live())

	assert.False(t, scheduler.fire())
	assert.Equal(t, []int{0}, rec.indices)
	assert.Empty(t, rec.completed)

	_, err := playback.Wait(context.Background())
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestPlay_CancelFromEdgeCallback(t *testing.T) {
	scheduler := &manualScheduler{}

	var playback *Playback
	var calls int

	playback = Play(twoSteps, func(index int, _ mst.Step, _ float64) {
		calls++
		if index == 1 {
			playback.Cancel()
		}
	}, WithScheduler(scheduler), WithOnComplete(func(float64) {
		t.Fatal("cancelled playback must not complete")
	}))

	require.True(t, scheduler.fire())
	assert.False(t, scheduler.fire())
	assert.Equal(t, 2, calls)
}

func TestPlay_CancelAfterCompletion(t *testing.T) {
	playback := Play(nil, nil)
	assert.False(t, playback.Cancel())

	total, ok := playback.Total()
	assert.True(t, ok)
	assert.Zero(t, total)
}

func TestPlay_SynchronousScheduler(t *testing.T) {
	rec := &recorder{}

	Play(twoSteps, rec.onEdge, WithScheduler(immediateScheduler{}), WithOnComplete(rec.onComplete))

	assert.Equal(t, []float64{5, 8}, rec.totals)
	assert.Equal(t, []float64{8}, rec.completed)
}

func TestPlay_WallClock(t *testing.T) {
	var mu sync.Mutex
	var totals []float64

	playback := Play(twoSteps, func(_ int, _ mst.Step, total float64) {
		mu.Lock()
		defer mu.Unlock()
		totals = append(totals, total)
	}, WithInterval(time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	total, err := playback.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8.0, total)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []float64{5, 8}, totals)
}

func TestPlayback_WaitHonoursContext(t *testing.T) {
	playback := Play(twoSteps, nil, WithScheduler(&manualScheduler{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := playback.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayer_RestartCancelsPrevious(t *testing.T) {
	scheduler := &manualScheduler{}
	player := NewPlayer(WithScheduler(scheduler))

	first := &recorder{}
	firstPlayback := player.Play(twoSteps, first.onEdge, WithOnComplete(first.onComplete))
	assert.True(t, player.Busy())

	second := &recorder{}
	player.Play(twoSteps, second.onEdge, WithOnComplete(second.onComplete))

	select {
	case <-firstPlayback.Done():
	default:
		t.Fatal("first playback must be cancelled")
	}

	for scheduler.fire() {
	}

	assert.Equal(t, []int{0}, first.indices)
	assert.Empty(t, first.completed)
	assert.Equal(t, []int{0, 1}, second.indices)
	assert.Equal(t, []float64{8}, second.completed)
	assert.False(t, player.Busy())
}

func TestPlayer_Stop(t *testing.T) {
	player := NewPlayer(WithScheduler(&manualScheduler{}))
	assert.False(t, player.Stop())

	player.Play(twoSteps, nil)
	assert.True(t, player.Stop())
	assert.False(t, player.Busy())
}

func TestPlayer_OptionsDoNotLeakBetweenPlaybacks(t *testing.T) {
	scheduler := &manualScheduler{}
	player := NewPlayer(WithScheduler(scheduler))

	var completions int
	player.Play(nil, nil, WithOnComplete(func(float64) { completions++ }))
	player.Play(nil, nil)

	assert.Equal(t, 1, completions)
}

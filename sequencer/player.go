package sequencer

import (
	"sync"

	"github.com/oliverbestmann/house-roads/mst"
)

// Player runs at most one playback at a time. Starting a new playback
// cancels the one still in flight, so two replays never draw onto the same
// surface concurrently.
type Player struct {
	opts []Option

	mu      sync.Mutex
	current *Playback
}

// NewPlayer returns a Player that applies opts to every playback it starts.
func NewPlayer(opts ...Option) *Player {
	return &Player{opts: opts}
}

// Play cancels the current playback, if any, and starts a new one. Options
// given here are applied after the player's own options.
func (pl *Player) Play(steps mst.Result, onEdge EdgeFunc, opts ...Option) *Playback {
	pl.Stop()

	// the new playback may complete synchronously, so it must be started
	// without holding the lock
	playback := Play(steps, onEdge, append(pl.opts[:len(pl.opts):len(pl.opts)], opts...)...)

	pl.mu.Lock()
	pl.current = playback
	pl.mu.Unlock()

	return playback
}

// Stop cancels the current playback. It reports whether one was running.
func (pl *Player) Stop() bool {
	pl.mu.Lock()
	current := pl.current
	pl.current = nil
	pl.mu.Unlock()

	if current == nil {
		return false
	}

	return current.Cancel()
}

// Busy reports whether a playback is still replaying steps.
func (pl *Player) Busy() bool {
	pl.mu.Lock()
	current := pl.current
	pl.mu.Unlock()

	if current == nil {
		return false
	}

	select {
	case <-current.Done():
		return false
	default:
		return true
	}
}

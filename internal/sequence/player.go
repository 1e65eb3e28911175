// Package sequence drives timed, linear walkthroughs of discrete steps.
//
// A Player owns the current step index and a single auto-advance timer.
// Play starts the timer for the current step, each expiry moves to the next
// step, and reaching the end stops playback. Pause, Reset and Close cancel
// the pending timer before changing state, so a timer that was already
// firing can never mutate a later run.
package sequence

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/llehouerou/rentflow/internal/logging"
)

// Player steps through a fixed sequence on a clock.
type Player[T any] struct {
	mu sync.Mutex

	steps   []Step[T]
	index   int
	playing bool

	// timer is the single pending auto-advance, nil when none.
	timer *time.Timer
	// gen identifies the timer allowed to advance; bumped on every cancel.
	gen uint64

	subs   []*Subscription
	closed bool

	logger zerolog.Logger
}

// New creates a player over payloads, taking each step's duration from fn.
func New[T any](payloads []T, duration func(T) time.Duration) *Player[T] {
	steps := make([]Step[T], len(payloads))
	for i, p := range payloads {
		steps[i] = Step[T]{Duration: duration(p), Payload: p}
	}
	return NewSteps(steps)
}

// NewSteps creates a player over prepared steps. Indexes are reassigned to
// positions and negative durations are treated as zero.
func NewSteps[T any](steps []Step[T]) *Player[T] {
	owned := make([]Step[T], len(steps))
	for i, s := range steps {
		s.Index = i
		if s.Duration < 0 {
			s.Duration = 0
		}
		owned[i] = s
	}
	return &Player[T]{
		steps:  owned,
		logger: logging.Component("sequence"),
	}
}

// Snapshot returns the current player state.
func (p *Player[T]) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Player[T]) snapshotLocked() Snapshot {
	return Snapshot{
		Index:    p.index,
		Total:    len(p.steps),
		Playing:  p.playing,
		Complete: p.index == len(p.steps),
	}
}

// Steps returns a copy of the sequence.
func (p *Player[T]) Steps() []Step[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Step[T], len(p.steps))
	copy(out, p.steps)
	return out
}

// Len returns the number of steps.
func (p *Player[T]) Len() int {
	return len(p.steps)
}

// Current returns the current step, or false once the sequence is complete.
func (p *Player[T]) Current() (Step[T], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.index >= len(p.steps) {
		var zero Step[T]
		return zero, false
	}
	return p.steps[p.index], true
}

// Play starts or resumes auto-advance. Playing a completed sequence
// restarts it from the first step. Calling Play while playing is a no-op.
func (p *Player[T]) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.playing || len(p.steps) == 0 {
		return
	}
	prev := p.snapshotLocked()

	if p.index == len(p.steps) {
		p.index = 0
	}
	p.playing = true
	p.scheduleLocked()

	p.logger.Debug().Int("index", p.index).Bool("restart", prev.Complete).Msg("play")
	p.commitLocked(prev)
}

// Pause stops auto-advance and keeps the current step.
func (p *Player[T]) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || !p.playing {
		return
	}
	prev := p.snapshotLocked()

	p.cancelLocked()
	p.playing = false

	p.logger.Debug().Int("index", p.index).Msg("pause")
	p.commitLocked(prev)
}

// Reset stops auto-advance and rewinds to the first step.
func (p *Player[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	prev := p.snapshotLocked()

	p.cancelLocked()
	p.playing = false
	p.index = 0

	p.logger.Debug().Msg("reset")
	p.commitLocked(prev)
}

// Subscribe registers an observer. On a closed player the returned
// subscription is already done.
func (p *Player[T]) Subscribe() *Subscription {
	p.mu.Lock()
	defer p.mu.Unlock()

	sub := newSubscription()
	if p.closed {
		sub.close()
		return sub
	}
	p.subs = append(p.subs, sub)
	return sub
}

// Close cancels any pending timer and ends all subscriptions. No state
// change or notification happens afterwards.
func (p *Player[T]) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	p.cancelLocked()
	p.playing = false

	for _, sub := range p.subs {
		sub.close()
	}
	p.subs = nil
	return nil
}

// advance is the timer callback for generation gen.
func (p *Player[T]) advance(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// A cancel raced with the expiry: the timer fired but lost the lock.
	if p.closed || !p.playing || gen != p.gen {
		return
	}
	prev := p.snapshotLocked()

	p.timer = nil
	p.index++
	if p.index == len(p.steps) {
		p.playing = false
		p.logger.Debug().Int("steps", len(p.steps)).Msg("complete")
	} else {
		p.scheduleLocked()
	}
	p.commitLocked(prev)
}

// scheduleLocked arms the timer for the current step, superseding any
// previous one.
func (p *Player[T]) scheduleLocked() {
	p.cancelLocked()
	gen := p.gen
	p.timer = time.AfterFunc(p.steps[p.index].Duration, func() {
		p.advance(gen)
	})
}

func (p *Player[T]) cancelLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.gen++
}

// commitLocked notifies observers when the visible state moved.
func (p *Player[T]) commitLocked(prev Snapshot) {
	snap := p.snapshotLocked()
	if snap == prev {
		return
	}
	for _, sub := range p.subs {
		sub.send(snap)
	}
}

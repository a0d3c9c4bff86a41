// Package rope models the load on the miner's rope: stress accumulation with decay,
// break and repair, stress-derived hook penalties and the rope stock with its free grant
package rope

import (
	"errors"
	"time"

	"github.com/lixenwraith/gold-miner/clock"
	"github.com/lixenwraith/gold-miner/event"
)

var (
	// ErrInvalidPenalty rejects a penalty delta outside [0, PenaltyMaxDelta]
	ErrInvalidPenalty = errors.New("invalid penalty")

	// ErrInvalidUpgrade rejects an upgrade fraction outside [0, 1)
	ErrInvalidUpgrade = errors.New("invalid upgrade")
)

// Sink receives rope events, satisfied by *event.EventQueue
type Sink interface {
	Push(ev event.GameEvent)
}

// Scheduler runs callbacks on simulation time, satisfied by *clock.Scheduler
type Scheduler interface {
	After(d time.Duration, fn func()) *clock.Timer
}

// localClock is used when no scheduler is injected, advanced by the owner's Update
type localClock struct {
	own *clock.Scheduler
}

func resolveScheduler(s Scheduler) (Scheduler, localClock) {
	if s != nil {
		return s, localClock{}
	}
	own := clock.NewScheduler()
	return own, localClock{own: own}
}

func (l localClock) advance(dt time.Duration) {
	if l.own != nil {
		l.own.Advance(dt)
	}
}

func emit(sink Sink, t event.EventType, payload any) {
	if sink == nil {
		return
	}
	sink.Push(event.GameEvent{Type: t, Payload: payload})
}

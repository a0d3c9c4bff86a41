package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gold-miner/engine"
	"github.com/lixenwraith/gold-miner/event"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/status"
)

// HookSystem advances the hook and feeds it input and rope signals
type HookSystem struct {
	// Cached metric pointers
	statCasts    *atomic.Int64
	statBreaks   *atomic.Int64
	statRepairs  *atomic.Int64
	statRejected *atomic.Int64
}

func NewHookSystem(w *engine.World) *HookSystem {
	return &HookSystem{
		statCasts:    w.Status.Counter(status.HookCasts),
		statBreaks:   w.Status.Counter(status.RopeBreaks),
		statRepairs:  w.Status.Counter(status.RopeRepairs),
		statRejected: w.Status.Counter(status.PenaltyRejected),
	}
}

func (s *HookSystem) Priority() int { return parameter.PriorityHook }

func (s *HookSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventActivate,
		event.EventRopeBreak,
		event.EventRopeRepaired,
		event.EventStressPenalty,
	}
}

func (s *HookSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	if w.Hook == nil {
		return
	}
	switch ev.Type {
	case event.EventActivate:
		if w.Hook.Activate() {
			s.statCasts.Add(1)
		}
	case event.EventRopeBreak:
		s.statBreaks.Add(1)
		w.Hook.Break()
	case event.EventRopeRepaired:
		s.statRepairs.Add(1)
		w.Hook.Repaired()
	case event.EventStressPenalty:
		payload, ok := ev.Payload.(*event.StressPenaltyPayload)
		if !ok {
			log.Printf("system: stress penalty without payload")
			return
		}
		if err := w.Hook.ApplyPenalty(payload.Strength, payload.Speed); err != nil {
			s.statRejected.Add(1)
		}
		if payload.CausesBreak && w.Stress != nil {
			w.Stress.ForceBreak(event.CauseShear)
		}
	}
}

func (s *HookSystem) Update(w *engine.World, dt time.Duration) {
	if w.Hook != nil {
		w.Hook.Update(dt)
	}
}

package system

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gold-miner/engine"
	"github.com/lixenwraith/gold-miner/event"
	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/status"
)

// FeedbackSystem turns game events into floating text and blast rings, and drops destroyed objects
type FeedbackSystem struct {
	statFreeGrants *atomic.Int64
	statDelivered  *atomic.Int64
	statEscapes    *atomic.Int64
}

func NewFeedbackSystem(w *engine.World) *FeedbackSystem {
	return &FeedbackSystem{
		statFreeGrants: w.Status.Counter(status.RopeFreeGrants),
		statDelivered:  w.Status.Counter(status.HookDeliveries),
		statEscapes:    w.Status.Counter(status.HookEscapes),
	}
}

func (s *FeedbackSystem) Priority() int { return parameter.PriorityFeedback }

func (s *FeedbackSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFloatingText,
		event.EventExplosion,
		event.EventRopeCountChanged,
		event.EventRopeBreak,
		event.EventDelivered,
		event.EventCaught,
	}
}

func (s *FeedbackSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	switch ev.Type {
	case event.EventFloatingText:
		if p, ok := ev.Payload.(*event.FloatingTextPayload); ok {
			w.Overlay.AddText(vec(p.Position), p.Message)
		}
	case event.EventExplosion:
		if p, ok := ev.Payload.(*event.ExplosionPayload); ok {
			w.Overlay.AddBlast(vec(p.Center), p.Radius)
		}
	case event.EventRopeCountChanged:
		p, ok := ev.Payload.(*event.RopeCountPayload)
		if !ok {
			return
		}
		switch p.Reason {
		case event.RopeCountGrant:
			s.statFreeGrants.Add(1)
			w.Overlay.AddText(anchor(w), "Free Rope!")
		case event.RopeCountPurchase:
			w.Overlay.AddText(anchor(w), fmt.Sprintf("+%d Ropes!", p.Delta))
		}
	case event.EventRopeBreak:
		if p, ok := ev.Payload.(*event.RopeBreakPayload); ok && p.Cause == event.CauseStressLimit {
			w.Overlay.AddText(tip(w), "Stress Limit!")
		}
	case event.EventDelivered:
		s.statDelivered.Add(1)
	case event.EventCaught:
		if p, ok := ev.Payload.(*event.CaughtPayload); ok && p.Escape {
			s.statEscapes.Add(1)
		}
	}
}

func (s *FeedbackSystem) Update(w *engine.World, dt time.Duration) {
	w.Overlay.Age(dt)
	if w.Field != nil {
		w.Field.Prune()
	}
}

func vec(p event.Point) geom.Vec2 { return geom.V(p.X, p.Y) }

func anchor(w *engine.World) geom.Vec2 {
	if w.Hook == nil {
		return geom.Vec2{}
	}
	return w.Hook.Anchor()
}

func tip(w *engine.World) geom.Vec2 {
	if w.Hook == nil {
		return geom.Vec2{}
	}
	return w.Hook.Position()
}

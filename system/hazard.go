package system

import (
	"log"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gold-miner/engine"
	"github.com/lixenwraith/gold-miner/event"
	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/status"
)

// HazardSystem moves redworms, triggers stress zones under the hook tip and applies blast impulses
type HazardSystem struct {
	rng      *rand.Rand
	cooldown time.Duration

	statExplosions *atomic.Int64
}

func NewHazardSystem(w *engine.World) *HazardSystem {
	rng := w.RNG
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 0))
	}
	return &HazardSystem{
		rng:            rng,
		cooldown:       parameter.StressZoneCooldown,
		statExplosions: w.Status.Counter(status.HazardExplosions),
	}
}

func (s *HazardSystem) Priority() int { return parameter.PriorityHazard }

func (s *HazardSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventExplosion}
}

func (s *HazardSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.ExplosionPayload)
	if !ok {
		log.Printf("system: explosion without payload")
		return
	}
	s.statExplosions.Add(1)
	if w.Field == nil {
		return
	}
	center := geom.V(payload.Center.X, payload.Center.Y)
	w.Field.Impulse(center, payload.Radius, payload.Force, parameter.ExplosionImpulseScale)
}

func (s *HazardSystem) Update(w *engine.World, dt time.Duration) {
	if w.Field == nil {
		return
	}
	for _, obj := range w.Field.Objects() {
		obj.Wander(dt, w.Field.Bounds, s.rng)
	}

	if w.Hook == nil || w.Stress == nil || !w.Hook.Live() {
		return
	}
	zone := w.Field.ZoneAt(w.Hook.Position())
	if zone != nil && zone.Trigger(w.Clock, s.cooldown) {
		w.Stress.ApplyTypedStress(zone.Type, zone.Impact)
	}
}

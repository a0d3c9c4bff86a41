// Package system holds the per-tick game logic run by the engine world
package system

import (
	"time"

	"github.com/lixenwraith/gold-miner/engine"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/status"
)

// StressSystem records the peak stress of the run, then decays rope stress at the start of the tick
type StressSystem struct {
	statPeak *status.AtomicFloat
}

func NewStressSystem(w *engine.World) *StressSystem {
	return &StressSystem{statPeak: w.Status.Gauge(status.RopePeakStress)}
}

func (s *StressSystem) Priority() int { return parameter.PriorityStress }

func (s *StressSystem) Update(w *engine.World, dt time.Duration) {
	if w.Stress != nil {
		s.statPeak.Max(w.Stress.Value())
		w.Stress.Update(dt)
	}
	if w.Ropes != nil {
		w.Ropes.Update(dt)
	}
}

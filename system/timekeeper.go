package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/gold-miner/engine"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/status"
)

// TimekeeperSystem fires scheduled timers after the game logic of the tick
type TimekeeperSystem struct {
	statTicks *atomic.Int64
}

func NewTimekeeperSystem(w *engine.World) *TimekeeperSystem {
	return &TimekeeperSystem{statTicks: w.Status.Counter(status.EngineTicks)}
}

func (s *TimekeeperSystem) Priority() int { return parameter.PriorityTimekeeper }

func (s *TimekeeperSystem) Update(w *engine.World, dt time.Duration) {
	w.Clock.Advance(dt)
	s.statTicks.Add(1)
}

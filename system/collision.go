package system

import (
	"time"

	"github.com/lixenwraith/gold-miner/engine"
	"github.com/lixenwraith/gold-miner/hook"
	"github.com/lixenwraith/gold-miner/parameter"
)

// CollisionSystem pairs the extending hook tip with the first object it touches
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem { return &CollisionSystem{} }

func (s *CollisionSystem) Priority() int { return parameter.PriorityCollision }

func (s *CollisionSystem) Update(w *engine.World, dt time.Duration) {
	if w.Hook == nil || w.Field == nil || w.Hook.State() != hook.StateExtending {
		return
	}
	if obj := w.Field.CatchAt(w.Hook.Position(), w.Hook.Config().Reach); obj != nil {
		w.Hook.Catch(obj)
	}
}

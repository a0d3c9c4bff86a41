package system

import (
	"log"
	"time"

	"github.com/lixenwraith/gold-miner/engine"
	"github.com/lixenwraith/gold-miner/event"
	"github.com/lixenwraith/gold-miner/parameter"
)

// LevelSystem runs the level countdown and closes the level when it expires
type LevelSystem struct{}

func NewLevelSystem() *LevelSystem { return &LevelSystem{} }

func (s *LevelSystem) Priority() int { return parameter.PriorityLevel }

func (s *LevelSystem) Update(w *engine.World, dt time.Duration) {
	sess := w.Session
	if sess == nil || !sess.Tick(dt) {
		return
	}
	passed := sess.EndLevel()
	log.Printf("level %d ended: money %d goal %d passed %v", sess.Level(), sess.Money(), sess.Goal(), passed)
	w.PushEvent(event.EventLevelEnded, &event.LevelEndedPayload{
		Level:  sess.Level(),
		Money:  sess.Money(),
		Goal:   sess.Goal(),
		Passed: passed,
	})
}

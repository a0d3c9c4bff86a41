// Package engine holds the simulation world: shared resources, ordered systems and event dispatch
package engine

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/lixenwraith/gold-miner/clock"
	"github.com/lixenwraith/gold-miner/config"
	"github.com/lixenwraith/gold-miner/event"
	"github.com/lixenwraith/gold-miner/field"
	"github.com/lixenwraith/gold-miner/hook"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/rope"
	"github.com/lixenwraith/gold-miner/session"
	"github.com/lixenwraith/gold-miner/status"
	"github.com/lixenwraith/gold-miner/store"
)

// System is a unit of per-tick game logic
type System interface {
	Priority() int // Lower values run first
	Update(w *World, dt time.Duration)
}

// Handler is a system that also consumes events
type Handler = event.Handler[*World]

// Resources are the shared objects systems read and mutate
// Any pointer may be nil in tests; systems skip what they lack
type Resources struct {
	Config  *config.Config
	Clock   *clock.Scheduler
	Status  *status.Registry
	Session *session.Session
	Stress  *rope.Stress
	Ropes   *rope.Inventory
	Hook    *hook.Machine
	Field   *field.Field
	Store   *store.Store
	RNG     *rand.Rand
	Overlay *Overlay
}

// World runs systems in priority order and dispatches the events they emit
type World struct {
	Resources

	queue   *event.EventQueue
	router  *event.Router[*World]
	systems []System
	tick    int64
}

// NewWorld creates a world with its own event queue; nil Clock, Status and Overlay are created
func NewWorld(res Resources) *World {
	if res.Clock == nil {
		res.Clock = clock.NewScheduler()
	}
	if res.Status == nil {
		res.Status = status.NewRegistry()
	}
	if res.Overlay == nil {
		res.Overlay = &Overlay{}
	}
	q := event.NewEventQueue()
	return &World{
		Resources: res,
		queue:     q,
		router:    event.NewRouter[*World](q),
	}
}

// AddSystem adds a system, keeps systems sorted by priority and registers its event handlers
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	if h, ok := s.(Handler); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of the registered systems in run order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Observe adds a callback seeing every dispatched event
func (w *World) Observe(fn event.Observer) {
	w.router.Observe(fn)
}

// Update advances one tick: every system in order, then event dispatch
// dt is clamped to MaxTickDelta so a stalled frame cannot tunnel the hook
func (w *World) Update(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	dt = min(dt, parameter.MaxTickDelta)
	w.tick++
	for _, s := range w.systems {
		s.Update(w, dt)
	}
	return w.router.DispatchAll(w)
}

// Dispatch routes pending events without advancing time
func (w *World) Dispatch() int {
	return w.router.DispatchAll(w)
}

// Push stamps ev with the current tick and queues it, satisfying rope.Sink and hook.Sink
func (w *World) Push(ev event.GameEvent) {
	ev.Tick = w.tick
	w.queue.Push(ev)
}

// PushEvent queues an event of type t
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Push(event.GameEvent{Type: t, Payload: payload})
}

// Tick returns the number of completed updates
func (w *World) Tick() int64 { return w.tick }

// Pending returns the number of undispatched events
func (w *World) Pending() int { return w.queue.Len() }

// Package hook drives the swing, extend, retract, pull and broken cycle of the hook
package hook

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/event"
	"github.com/lixenwraith/gold-miner/fsm"
	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/rope"
)

// Hook states, Swinging through Pulling are children of Operational
const (
	StateOperational fsm.StateID = iota + 2
	StateSwinging
	StateExtending
	StateRetracting
	StatePulling
	StateBroken
)

// PullStress receives a pulling tick, satisfied by *rope.Stress
// Repairing reports a break the hook has not processed yet
type PullStress interface {
	AddPullStress(weight float64)
	Repairing() bool
}

// RopeStock is the rope inventory seen by the hook, satisfied by *rope.Inventory
type RopeStock interface {
	OnBreak()
	Count() int
}

// Sink receives hook events, satisfied by *event.EventQueue
type Sink interface {
	Push(ev event.GameEvent)
}

// Deps are the collaborators of a Machine; any nil entry skips its effect
type Deps struct {
	Stress PullStress
	Ropes  RopeStock
	Env    collectible.Env
	Sink   Sink
}

// Machine is the hook state machine
type Machine struct {
	cfg     Config
	fsm     *fsm.Machine[*Machine]
	penalty *rope.Penalty

	stress PullStress
	ropes  RopeStock
	env    collectible.Env
	sink   Sink

	pos      geom.Vec2
	angle    float64 // degrees from straight down
	swingDir float64
	dir      geom.Vec2
	traveled float64
	caught   collectible.Contract
	stun     time.Duration
	repaired bool
	dt       time.Duration
}

// New builds the machine and enters Swinging
func New(cfg Config, deps Deps) (*Machine, error) {
	m := &Machine{
		cfg:      cfg,
		fsm:      fsm.NewMachine[*Machine](),
		penalty:  rope.NewPenalty(),
		stress:   deps.Stress,
		ropes:    deps.Ropes,
		env:      deps.Env,
		sink:     deps.Sink,
		swingDir: 1,
	}
	m.build()
	if err := m.fsm.Init(m, StateSwinging); err != nil {
		return nil, fmt.Errorf("hook fsm: %w", err)
	}
	return m, nil
}

func (m *Machine) build() {
	f := m.fsm
	f.AddState(fsm.StateRoot, "Root", fsm.StateNone)

	f.AddState(StateOperational, "Operational", fsm.StateRoot).
		On(event.EventRopeBreak, StateBroken, nil)

	f.AddState(StateSwinging, "Swinging", StateOperational).
		Enter(enterSwinging).
		Update(updateSwinging).
		On(event.EventActivate, StateExtending, canFire)

	f.AddState(StateExtending, "Extending", StateOperational).
		Enter(enterExtending).
		Update(updateExtending).
		On(event.EventHookCatch, StatePulling, nil).
		On(event.EventHookEscape, StateRetracting, nil).
		On(event.EventNone, StateRetracting, reachedMax)

	f.AddState(StateRetracting, "Retracting", StateOperational).
		Update(updateRetracting).
		On(event.EventNone, StateSwinging, atRest)

	f.AddState(StatePulling, "Pulling", StateOperational).
		Update(updatePulling).
		Exit(dropCaught).
		On(event.EventNone, StateSwinging, delivered).
		On(event.EventNone, StateRetracting, caughtLost)

	f.AddState(StateBroken, "Broken", fsm.StateRoot).
		Enter(enterBroken).
		Exit(exitBroken).
		On(event.EventRopeRepaired, StateSwinging, hasRope).
		On(event.EventNone, StateSwinging, readyToResume)
}

// === Guards ===

func canFire(m *Machine) bool { return m.stun <= 0 }

func reachedMax(m *Machine) bool { return m.traveled >= m.Reach() }

func atRest(m *Machine) bool { return m.pos.Dist(m.cfg.Anchor) <= m.cfg.RestDistance }

func delivered(m *Machine) bool { return m.caught == nil && atRest(m) }

func caughtLost(m *Machine) bool { return m.caught == nil || !m.caught.Alive() }

func hasRope(m *Machine) bool { return m.ropes == nil || m.ropes.Count() > 0 }

func readyToResume(m *Machine) bool { return m.repaired && hasRope(m) }

// === Actions ===

func enterSwinging(m *Machine, _ any) {
	m.traveled = 0
	m.pos = m.swingPosition()
}

func updateSwinging(m *Machine, _ any) {
	m.angle += m.swingDir * m.cfg.SwingSpeed * m.dt.Seconds()
	if m.angle >= m.cfg.MaxSwingAngle {
		m.angle = m.cfg.MaxSwingAngle
		m.swingDir = -1
	} else if m.angle <= -m.cfg.MaxSwingAngle {
		m.angle = -m.cfg.MaxSwingAngle
		m.swingDir = 1
	}
	m.pos = m.swingPosition()
}

func enterExtending(m *Machine, _ any) {
	m.dir = geom.Down(m.angle)
	m.traveled = 0
}

func updateExtending(m *Machine, _ any) {
	step := m.moveSpeed() * m.dt.Seconds()
	if remaining := m.Reach() - m.traveled; step > remaining {
		step = max(remaining, 0)
	}
	m.pos = m.pos.Add(m.dir.Scale(step))
	m.traveled += step
}

func updateRetracting(m *Machine, _ any) {
	m.pos = m.pos.MoveToward(m.cfg.Anchor, m.moveSpeed()*m.dt.Seconds())
}

func updatePulling(m *Machine, _ any) {
	if caughtLost(m) {
		return
	}
	w := m.caught.Weight()
	speed := RetrievalSpeed(w, m.cfg.BasePullSpeed, m.penalty.Speed())
	m.pos = m.pos.MoveToward(m.cfg.Anchor, speed*m.dt.Seconds())
	m.caught.MoveTo(m.pos)
	if m.stress != nil {
		m.stress.AddPullStress(w)
		// A break on this pull drops the object when RopeBreak arrives
		if m.stress.Repairing() {
			return
		}
	}
	if atRest(m) {
		m.deliver()
	}
}

func dropCaught(m *Machine, _ any) {
	if m.caught == nil {
		return
	}
	if m.caught.Alive() {
		m.caught.Destroy()
	}
	m.caught = nil
}

func enterBroken(m *Machine, _ any) {
	m.repaired = false
	if m.ropes != nil {
		m.ropes.OnBreak()
	} else {
		log.Printf("hook: no rope inventory, break not counted")
	}
	m.emit(event.EventFloatingText, &event.FloatingTextPayload{Position: point(m.pos), Message: "Rope Broke!"})
}

func exitBroken(m *Machine, _ any) {
	m.angle = 0
	m.swingDir = 1
	m.repaired = false
}

// === Internals ===

func (m *Machine) swingPosition() geom.Vec2 {
	return m.cfg.Anchor.Add(geom.Down(m.angle).Scale(m.cfg.SwingRadius))
}

func (m *Machine) moveSpeed() float64 {
	return m.cfg.HookSpeed * (1 - m.penalty.Speed())
}

func (m *Machine) deliver() {
	obj := m.caught
	m.caught = nil
	value := obj.Resolve(m.env)
	m.emit(event.EventDelivered, &event.DeliveredPayload{Kind: obj.Kind().String(), Value: value, Position: point(m.pos)})
	if value != 0 {
		m.emit(event.EventFloatingText, &event.FloatingTextPayload{Position: point(m.pos), Message: money(value)})
	}
}

func (m *Machine) emit(t event.EventType, payload any) {
	if m.sink == nil {
		return
	}
	m.sink.Push(event.GameEvent{Type: t, Payload: payload})
}

func point(v geom.Vec2) event.Point { return event.Point{X: v.X, Y: v.Y} }

func money(v int) string {
	if v < 0 {
		return fmt.Sprintf("-$%d", -v)
	}
	return fmt.Sprintf("+$%d", v)
}

// === Inputs ===

// Update advances penalties, stun and the active state by dt
func (m *Machine) Update(dt time.Duration) {
	m.dt = dt
	m.penalty.Decay(dt)
	if m.stun > 0 {
		m.stun = max(m.stun-dt, 0)
	}
	m.fsm.Update(m, dt)
}

// Activate fires the hook; ignored unless Swinging and not stunned
func (m *Machine) Activate() bool {
	return m.fsm.HandleEvent(m, event.EventActivate)
}

// Catch pairs an object with the extending hook
// Outside Extending the catch is a no-op and returns false
func (m *Machine) Catch(obj collectible.Contract) bool {
	if m.fsm.Current() != StateExtending || obj == nil || !obj.Alive() {
		return false
	}
	escape := obj.Attach(m.env) == collectible.Escape
	m.emit(event.EventCaught, &event.CaughtPayload{Kind: obj.Kind().String(), Escape: escape})
	if escape {
		return m.fsm.HandleEvent(m, event.EventHookEscape)
	}
	m.caught = obj
	obj.MoveTo(m.pos)
	return m.fsm.HandleEvent(m, event.EventHookCatch)
}

// Break forces Broken from any operational state; ignored when already broken
func (m *Machine) Break() bool {
	return m.fsm.HandleEvent(m, event.EventRopeBreak)
}

// Repaired ends the repair; the hook resumes once a rope is available
func (m *Machine) Repaired() bool {
	m.repaired = true
	m.penalty.Reset()
	return m.fsm.HandleEvent(m, event.EventRopeRepaired)
}

// ApplyPenalty adds a typed stress penalty, rejecting out of range deltas
func (m *Machine) ApplyPenalty(strength, speed float64) error {
	if err := m.penalty.Apply(strength, speed); err != nil {
		log.Printf("hook: penalty rejected: %v", err)
		return err
	}
	return nil
}

// Stun blocks activation for d, longer stuns replace shorter ones
func (m *Machine) Stun(d time.Duration) {
	m.stun = max(m.stun, d)
}

// AddPullSpeed raises the base retrieval speed
func (m *Machine) AddPullSpeed(delta float64) {
	m.cfg.BasePullSpeed += delta
}

// Reset drops any caught object and returns to Swinging for a new level
func (m *Machine) Reset() error {
	m.penalty.Reset()
	m.stun = 0
	m.angle = 0
	m.swingDir = 1
	return m.fsm.Reset(m)
}

// OnTransition registers an observer of state changes
func (m *Machine) OnTransition(fn func(from, to fsm.StateID)) {
	m.fsm.OnTransition(fn)
}

// === Queries ===

// State returns the active leaf state
func (m *Machine) State() fsm.StateID { return m.fsm.Current() }

// StateName returns the active state's name for the HUD and logs
func (m *Machine) StateName() string { return m.fsm.CurrentName() }

// TimeInState returns the simulated time spent in the active state
func (m *Machine) TimeInState() time.Duration { return m.fsm.TimeInState() }

// Position returns the hook tip in world units
func (m *Machine) Position() geom.Vec2 { return m.pos }

// Anchor returns the rope's fixed end under the miner
func (m *Machine) Anchor() geom.Vec2 { return m.cfg.Anchor }

// Angle returns the swing angle in degrees from straight down
func (m *Machine) Angle() float64 { return m.angle }

// Caught returns the object being pulled, nil when empty
func (m *Machine) Caught() collectible.Contract { return m.caught }

// Penalty returns the strength and speed penalties in effect
func (m *Machine) Penalty() *rope.Penalty { return m.penalty }

// Stunned returns the stun time left
func (m *Machine) Stunned() time.Duration { return m.stun }

// Config returns the hook geometry and speeds
func (m *Machine) Config() Config { return m.cfg }

// Reach is the maximum extension under the current strength penalty
func (m *Machine) Reach() float64 {
	return m.cfg.MaxDistance * (1 - m.penalty.Strength())
}

// Live reports whether the hook tip can catch or trigger stress zones
func (m *Machine) Live() bool {
	s := m.fsm.Current()
	return s == StateExtending || s == StateRetracting || s == StatePulling
}

// Package game assembles the world, its systems and the level flow
package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/gold-miner/clock"
	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/config"
	"github.com/lixenwraith/gold-miner/engine"
	"github.com/lixenwraith/gold-miner/event"
	"github.com/lixenwraith/gold-miner/field"
	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/hook"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/rope"
	"github.com/lixenwraith/gold-miner/session"
	"github.com/lixenwraith/gold-miner/spawn"
	"github.com/lixenwraith/gold-miner/status"
	"github.com/lixenwraith/gold-miner/store"
	"github.com/lixenwraith/gold-miner/system"
)

// ErrNotInStore rejects a level advance outside the store
var ErrNotInStore = errors.New("not in store")

// Options are the runtime collaborators not covered by config
type Options struct {
	Player system.Player // nil runs silent
	Seed   uint64        // zero uses cfg.Spawn.Seed, then the clock
}

// Game is one run from level 1 to game over
type Game struct {
	World   *engine.World
	cfg     *config.Config
	opts    Options
	seed    uint64
	spawner *spawn.Spawner
}

// New builds a run and populates level 1
func New(cfg *config.Config, opts Options) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	table, err := loadTable(cfg.Spawn.Table)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = cfg.Spawn.Seed
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	spawner := spawn.NewSpawner(table, spawn.DefaultArea(), seed)

	w := engine.NewWorld(engine.Resources{
		Config:  cfg,
		Session: session.New(cfg.SessionConfig()),
		Field:   field.New(WormBounds()),
		RNG:     spawner.RNG(),
	})
	g := &Game{World: w, cfg: cfg, opts: opts, seed: seed, spawner: spawner}

	w.Stress = rope.NewStress(cfg.StressConfig(), w.Clock, w)
	w.Ropes = rope.NewInventory(cfg.Ropes.Starting, cfg.Ropes.FreeRopeDelay, w.Clock, w)
	h, err := hook.New(cfg.HookConfig(), hook.Deps{Stress: w.Stress, Ropes: w.Ropes, Env: g, Sink: w})
	if err != nil {
		return nil, fmt.Errorf("building hook: %w", err)
	}
	h.Penalty().DecayRate = cfg.Stress.PenaltyDecayRate
	w.Hook = h
	w.Store = store.New(w.Session, g)

	w.AddSystem(system.NewStressSystem(w))
	w.AddSystem(system.NewHookSystem(w))
	w.AddSystem(system.NewCollisionSystem())
	w.AddSystem(system.NewHazardSystem(w))
	w.AddSystem(system.NewLevelSystem())
	w.AddSystem(system.NewTimekeeperSystem(w))
	w.AddSystem(system.NewFeedbackSystem(w))
	w.AddSystem(system.NewAudioSystem(opts.Player))
	w.Observe(logEvent)

	g.populate()
	log.Printf("game: seed %d, %d systems", seed, len(w.Systems()))
	return g, nil
}

func loadTable(path string) (*spawn.Table, error) {
	if path == "" {
		return spawn.Default()
	}
	t, err := spawn.Load(path)
	if err != nil {
		return nil, fmt.Errorf("spawn table: %w", err)
	}
	return t, nil
}

// WormBounds is the rectangle redworms wander in
func WormBounds() geom.Rect {
	half := parameter.RedwormBoundaryWidth / 2
	return geom.Rect{
		Min: geom.V(-half, parameter.RedwormBoundaryBottom),
		Max: geom.V(half, parameter.RedwormBoundaryTop),
	}
}

func logEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventRopeBreak, event.EventRopeRepaired, event.EventDroughtStarted, event.EventLevelEnded, event.EventPurchase:
		log.Printf("tick %d: %s %+v", ev.Tick, ev.Type, ev.Payload)
	}
}

func (g *Game) populate() {
	objects, zones := g.spawner.Populate(g.World.Field, g.World.Session.Level())
	log.Printf("game: level %d spawned %d objects %d zones", g.World.Session.Level(), objects, zones)
}

// Seed returns the spawn seed of the run
func (g *Game) Seed() uint64 { return g.seed }

// Session returns the run's session
func (g *Game) Session() *session.Session { return g.World.Session }

// Tick advances the simulation while the level is running
func (g *Game) Tick(dt time.Duration) bool {
	if g.World.Session.State() != session.Running {
		return false
	}
	g.World.Update(dt)
	return true
}

// Activate queues a fire request for the next dispatch
func (g *Game) Activate() {
	if g.World.Session.State() == session.Running {
		g.World.PushEvent(event.EventActivate, nil)
	}
}

// TogglePause pauses or resumes the level
func (g *Game) TogglePause() {
	g.World.Session.TogglePause()
}

// Buy purchases an item in the store and reports the outcome as an event
func (g *Game) Buy(id store.ItemID) (store.Receipt, error) {
	w := g.World
	r, err := w.Store.Buy(id)
	w.PushEvent(event.EventPurchase, &event.PurchasePayload{Item: string(id), Price: r.Paid, OK: err == nil})
	if err == nil {
		w.Status.Inc(status.StoreSales)
	}
	w.Dispatch()
	return r, err
}

// NextLevel leaves the store and resets the field, rope and hook for the next level
// The rope stock is topped up to the starting count; bought ropes carry over
func (g *Game) NextLevel() error {
	w := g.World
	if !w.Session.NextLevel() {
		return ErrNotInStore
	}
	w.Clock.Clear()
	w.Stress.Reset()
	w.Ropes.Reset(max(w.Ropes.Count(), g.cfg.Ropes.Starting))
	if err := w.Hook.Reset(); err != nil {
		return fmt.Errorf("resetting hook: %w", err)
	}
	w.Field.Clear()
	w.Overlay.Clear()
	g.populate()
	w.Dispatch()
	return nil
}

// Restart returns a fresh run with the same config, seeded after this one
func (g *Game) Restart() (*Game, error) {
	opts := g.opts
	opts.Seed = g.seed + 1
	return New(g.cfg, opts)
}

// === collectible.Env ===

func (g *Game) AddMoney(delta int) { g.World.Session.AddMoney(delta) }

func (g *Game) ValueMultiplier() float64 { return g.World.Session.ValueMultiplier() }

func (g *Game) SetDiscount(d collectible.Discount) { g.World.Session.SetDiscount(d) }

func (g *Game) Penalize(d time.Duration, stun bool) {
	g.World.Session.Penalize(d)
	if stun {
		g.World.Hook.Stun(parameter.RedwormStunDuration)
	}
}

func (g *Game) After(d time.Duration, fn func()) *clock.Timer {
	return g.World.Clock.After(d, fn)
}

func (g *Game) Explode(center geom.Vec2, radius, force float64) {
	g.World.PushEvent(event.EventExplosion, &event.ExplosionPayload{
		Center: event.Point{X: center.X, Y: center.Y},
		Radius: radius,
		Force:  force,
	})
}

func (g *Game) Notify(pos geom.Vec2, msg string) {
	g.World.PushEvent(event.EventFloatingText, &event.FloatingTextPayload{
		Position: event.Point{X: pos.X, Y: pos.Y},
		Message:  msg,
	})
}

// === store.Upgrades ===

func (g *Game) AddPullSpeed(delta float64) { g.World.Hook.AddPullSpeed(delta) }

func (g *Game) ApplyReinforcement(pct float64) error { return g.World.Stress.ApplyReinforcement(pct) }

func (g *Game) ApplyBetterRope(pct float64) error { return g.World.Stress.ApplyBetterRope(pct) }

func (g *Game) AddRopes(n int) { g.World.Ropes.AddRopes(n) }

var (
	_ collectible.Env = (*Game)(nil)
	_ store.Upgrades  = (*Game)(nil)
)

package game

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/config"
	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/hook"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/session"
	"github.com/lixenwraith/gold-miner/status"
	"github.com/lixenwraith/gold-miner/store"
)

const tick = parameter.GameUpdateInterval

func newGame(t *testing.T, seed uint64) *Game {
	t.Helper()
	g, err := New(config.Default(), Options{Seed: seed})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// finishLevel gives the session money and runs the countdown out
func finishLevel(t *testing.T, g *Game, money int) {
	t.Helper()
	sess := g.Session()
	sess.AddMoney(money)
	sess.Penalize(sess.Remaining() - tick)
	g.Tick(tick)
	if sess.State() == session.Running {
		t.Fatalf("level should have ended")
	}
}

func TestNewPopulatesLevel(t *testing.T) {
	g := newGame(t, 42)
	if g.World.Field.Count() == 0 {
		t.Error("level 1 should have objects")
	}
	if g.World.Hook.State() != hook.StateSwinging {
		t.Errorf("hook starts %s", g.World.Hook.StateName())
	}
	if g.World.Ropes.Count() != parameter.StartingRopes {
		t.Errorf("ropes = %d", g.World.Ropes.Count())
	}
	if g.Seed() != 42 {
		t.Errorf("seed = %d", g.Seed())
	}
}

func TestNewRejectsMissingTable(t *testing.T) {
	cfg := config.Default()
	cfg.Spawn.Table = t.TempDir() + "/missing.yaml"
	if _, err := New(cfg, Options{Seed: 1}); err == nil {
		t.Error("missing spawn table should fail")
	}
}

func TestLevelFlow(t *testing.T) {
	g := newGame(t, 3)
	finishLevel(t, g, 2000)
	sess := g.Session()
	if sess.State() != session.Store {
		t.Fatalf("state = %s, want store", sess.State())
	}
	if g.Tick(tick) {
		t.Error("Tick must not advance outside Running")
	}

	if _, err := g.Buy(store.RopeBundle); err != nil {
		t.Fatalf("Buy: %v", err)
	}
	if g.World.Ropes.Count() != parameter.StartingRopes+parameter.RopeBundleSize {
		t.Errorf("ropes = %d", g.World.Ropes.Count())
	}
	if g.World.Status.Int(status.StoreSales) != 1 {
		t.Error("sale not counted")
	}

	g.World.Stress.AddStress(100)
	if err := g.NextLevel(); err != nil {
		t.Fatalf("NextLevel: %v", err)
	}
	if sess.Level() != 2 || sess.State() != session.Running {
		t.Errorf("level %d state %s", sess.Level(), sess.State())
	}
	if g.World.Ropes.Count() != parameter.StartingRopes+parameter.RopeBundleSize {
		t.Errorf("bought ropes should carry over, got %d", g.World.Ropes.Count())
	}
	if g.World.Stress.Value() != 0 {
		t.Errorf("stress should reset, got %v", g.World.Stress.Value())
	}
	if g.World.Field.Count() == 0 {
		t.Error("level 2 should be populated")
	}
	if err := g.NextLevel(); !errors.Is(err, ErrNotInStore) {
		t.Errorf("NextLevel while running = %v", err)
	}
}

func TestBuyErrors(t *testing.T) {
	g := newGame(t, 5)
	if _, err := g.Buy(store.HookEngine); !errors.Is(err, store.ErrClosed) {
		t.Errorf("Buy while running = %v", err)
	}
	finishLevel(t, g, parameter.LevelGoalBase)
	if _, err := g.Buy(store.GoldPolisher); !errors.Is(err, store.ErrInsufficientFunds) {
		t.Errorf("Buy unaffordable = %v", err)
	}
	if g.World.Status.Int(status.StoreSales) != 0 {
		t.Error("failed sale counted")
	}
}

func TestUpgradesWired(t *testing.T) {
	g := newGame(t, 9)
	finishLevel(t, g, 5000)
	pull := g.World.Hook.Config().BasePullSpeed
	perPull := g.World.Stress.Config().StressPerPull
	maxStress := g.World.Stress.Config().MaxStress

	for _, id := range []store.ItemID{store.HookEngine, store.RopeReinforcement, store.BetterRope, store.GoldPolisher} {
		if _, err := g.Buy(id); err != nil {
			t.Fatalf("Buy %s: %v", id, err)
		}
	}
	if got := g.World.Hook.Config().BasePullSpeed; math.Abs(got-pull-parameter.HookEngineBoost) > 1e-9 {
		t.Errorf("pull speed = %v", got)
	}
	if got := g.World.Stress.Config().StressPerPull; math.Abs(got-perPull*(1-parameter.ReinforcementReduction)) > 1e-9 {
		t.Errorf("stress per pull = %v", got)
	}
	if got := g.World.Stress.Config().MaxStress; got != math.Round(maxStress*(1+parameter.BetterRopeIncrease)) {
		t.Errorf("max stress = %v", got)
	}
	if got := g.Session().ValueMultiplier(); got != parameter.ValueBoosterRate {
		t.Errorf("value multiplier = %v", got)
	}
}

func TestEnvEffects(t *testing.T) {
	g := newGame(t, 11)
	w := g.World

	g.Explode(geom.V(0, -5), parameter.ExplosionRadius, parameter.ExplosionForce)
	g.Notify(geom.V(0, -5), "hello")
	w.Dispatch()
	if len(w.Overlay.Blasts) != 1 || len(w.Overlay.Texts) != 1 {
		t.Errorf("overlay = %+v", w.Overlay)
	}
	if w.Status.Int(status.HazardExplosions) != 1 {
		t.Error("explosion not routed to hazards")
	}

	before := g.Session().Remaining()
	g.Penalize(2*time.Second, true)
	if got := before - g.Session().Remaining(); got != 2*time.Second {
		t.Errorf("time penalty = %v", got)
	}
	if w.Hook.Stunned() != parameter.RedwormStunDuration {
		t.Errorf("stun = %v", w.Hook.Stunned())
	}

	fired := false
	g.After(time.Second, func() { fired = true })
	w.Clock.Advance(time.Second)
	if !fired {
		t.Error("After should schedule on the world clock")
	}
}

func TestActivateOnlyWhileRunning(t *testing.T) {
	g := newGame(t, 13)
	g.TogglePause()
	g.Activate()
	if g.World.Pending() != 0 {
		t.Error("activate while paused must be dropped")
	}
	g.TogglePause()
	g.Activate()
	g.Tick(tick)
	if g.World.Hook.State() != hook.StateExtending {
		t.Errorf("hook = %s, want Extending", g.World.Hook.StateName())
	}
}

func TestAutopilotTarget(t *testing.T) {
	g := newGame(t, 17)
	w := g.World
	w.Field.Clear()
	pilot := Autopilot{MinValue: 1}

	w.Field.Add(collectible.NewDynamite(geom.V(0, -4)))
	if pilot.ShouldFire(w) {
		t.Error("autopilot should skip dynamite")
	}
	gold := w.Field.Add(collectible.NewGold(collectible.Large, 1, geom.V(0, -6)))
	if pilot.Target(w) != gold || !pilot.ShouldFire(w) {
		t.Error("autopilot should fire at gold straight below")
	}
	gold.Pos = geom.V(5, -3)
	if pilot.ShouldFire(w) {
		t.Error("gold off the cast line is not a target")
	}
}

func TestHeadlessDeterministic(t *testing.T) {
	run := func() Report {
		return RunHeadless(context.Background(), newGame(t, 21), Autopilot{MinValue: 1}, 2)
	}
	a, b := run(), run()
	if a.Money != b.Money || a.Ticks != b.Ticks || a.Level != b.Level || a.Outcome != b.Outcome {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}
	if a.Ticks == 0 || a.Outcome == "" {
		t.Errorf("empty report %+v", a)
	}
}

func TestHeadlessCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep := RunHeadless(ctx, newGame(t, 1), Autopilot{}, 0)
	if rep.Outcome != "cancelled" || rep.Ticks != 0 {
		t.Errorf("report = %+v", rep)
	}
}

func TestRestartAdvancesSeed(t *testing.T) {
	g := newGame(t, 30)
	r, err := g.Restart()
	if err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if r.Seed() != 31 || r.Session().Level() != 1 {
		t.Errorf("restart seed %d level %d", r.Seed(), r.Session().Level())
	}
}

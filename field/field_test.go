package field

import (
	"testing"
	"time"

	"github.com/lixenwraith/gold-miner/clock"
	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/rope"
)

func testField() *Field {
	return New(geom.Rect{Min: geom.V(-6, -10), Max: geom.V(6, -2)})
}

func TestCatchAtSkipsAttached(t *testing.T) {
	f := testField()
	a := f.Add(collectible.NewGold(collectible.Small, 1, geom.V(0, -5)))
	b := f.Add(collectible.NewRock(collectible.Small, 1, geom.V(0.2, -5)))

	if got := f.CatchAt(geom.V(0, -5.4), 0.5); got != a {
		t.Fatalf("Expected first object, got %v", got)
	}
	a.Attach(nil)
	if got := f.CatchAt(geom.V(0, -5.4), 0.5); got != b {
		t.Errorf("Attached object must be skipped, got %v", got)
	}
	if f.CatchAt(geom.V(4, -9), 0.5) != nil {
		t.Error("Nothing within reach")
	}
	if a.ID == b.ID {
		t.Error("IDs must be unique")
	}
}

func TestZoneCooldown(t *testing.T) {
	f := testField()
	sched := clock.NewScheduler()
	z := f.AddZone(&Zone{Type: rope.Tension, Pos: geom.V(0, -4), Radius: 0.6, Impact: 40})

	if f.ZoneAt(geom.V(0, -4.5)) != z {
		t.Fatal("Zone should be found")
	}
	if !z.Trigger(sched, 1500*time.Millisecond) {
		t.Fatal("First trigger should succeed")
	}
	if z.Trigger(sched, 1500*time.Millisecond) || f.ZoneAt(geom.V(0, -4)) != nil {
		t.Error("Zone must cool down")
	}
	sched.Advance(1500 * time.Millisecond)
	if !z.Ready() {
		t.Error("Zone should re-arm after cooldown")
	}
}

func TestImpulseAndPrune(t *testing.T) {
	f := testField()
	near := f.Add(collectible.NewRock(collectible.Small, 1, geom.V(1, -5)))
	f.Add(collectible.NewRock(collectible.Small, 1, geom.V(5, -5)))
	dead := f.Add(collectible.NewGold(collectible.Small, 1, geom.V(-1, -5)))
	dead.Destroy()

	if n := f.Impulse(geom.V(0, -5), 1.5, 500, 0.004); n != 1 {
		t.Errorf("Expected one pushed object, got %d", n)
	}
	if near.Pos.X <= 1 {
		t.Errorf("Near rock should move right, got %v", near.Pos)
	}
	if removed := f.Prune(); removed != 1 || f.Count() != 2 {
		t.Errorf("Prune removed %d, count %d", removed, f.Count())
	}
}

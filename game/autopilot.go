package game

import (
	"math"

	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/engine"
	"github.com/lixenwraith/gold-miner/hook"
	"github.com/lixenwraith/gold-miner/store"
)

// Autopilot fires when the swing lines up with a worthwhile object and shops greedily
type Autopilot struct {
	// MinValue skips objects worth less, dynamite and redworms are always skipped
	MinValue int
}

// ShouldFire reports whether the hook, swinging now, would catch a target on a straight cast
func (a Autopilot) ShouldFire(w *engine.World) bool {
	h := w.Hook
	if h == nil || w.Field == nil || h.State() != hook.StateSwinging || h.Stunned() > 0 {
		return false
	}
	return a.Target(w) != nil
}

// Target returns the first wanted object on the current cast line within reach
func (a Autopilot) Target(w *engine.World) *collectible.Object {
	h := w.Hook
	start := h.Position()
	dir := start.Sub(h.Anchor()).Normalize()
	reach := h.Reach()
	for _, o := range w.Field.Objects() {
		if !o.Catchable() || !a.wants(o) {
			continue
		}
		rel := o.Pos.Sub(start)
		along := rel.X*dir.X + rel.Y*dir.Y
		if along < 0 || along > reach {
			continue
		}
		across := math.Abs(rel.X*dir.Y - rel.Y*dir.X)
		if across <= o.Radius+h.Config().Reach {
			return o
		}
	}
	return nil
}

func (a Autopilot) wants(o *collectible.Object) bool {
	switch o.Kind() {
	case collectible.Dynamite, collectible.Redworm:
		return false
	}
	return o.Value() >= a.MinValue
}

// Shop buys rope bundles while short of ropes, then the cheapest affordable upgrades
// Returns the receipts of completed purchases
func (a Autopilot) Shop(g *Game) []store.Receipt {
	var out []store.Receipt
	w := g.World
	if w.Ropes.Count() < 2 {
		if r, err := g.Buy(store.RopeBundle); err == nil {
			out = append(out, r)
		}
	}
	for _, id := range []store.ItemID{store.HookEngine, store.RopeReinforcement, store.GoldPolisher} {
		_, pay, err := w.Store.Quote(id)
		if err != nil || pay > w.Session.Money()-w.Session.Goal()/4 {
			continue
		}
		if r, err := g.Buy(id); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// Package field holds what lies in the mine: collectibles and stress zones
package field

import (
	"time"

	"github.com/lixenwraith/gold-miner/clock"
	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/rope"
)

// Zone is a region that stresses the rope when the hook passes through it
type Zone struct {
	ID     int
	Type   rope.StressType
	Pos    geom.Vec2
	Radius float64
	Impact float64

	cooling *clock.Timer
}

// Ready reports whether the zone can trigger again
func (z *Zone) Ready() bool { return !z.cooling.Active() }

// Contains reports whether p is inside the zone
func (z *Zone) Contains(p geom.Vec2) bool { return z.Pos.Dist(p) <= z.Radius }

// Trigger arms the cooldown; returns false while cooling
func (z *Zone) Trigger(sched *clock.Scheduler, cooldown time.Duration) bool {
	if !z.Ready() {
		return false
	}
	z.cooling = sched.After(cooldown, nil)
	return true
}

// Field is the set of objects and zones of the current level
type Field struct {
	Bounds  geom.Rect
	objects []*collectible.Object
	zones   []*Zone
	nextID  int
}

// New creates an empty field with wander bounds
func New(bounds geom.Rect) *Field {
	return &Field{Bounds: bounds}
}

// Add places an object and assigns its ID
func (f *Field) Add(obj *collectible.Object) *collectible.Object {
	f.nextID++
	obj.ID = f.nextID
	f.objects = append(f.objects, obj)
	return obj
}

// AddZone places a stress zone and assigns its ID
func (f *Field) AddZone(z *Zone) *Zone {
	f.nextID++
	z.ID = f.nextID
	f.zones = append(f.zones, z)
	return z
}

// Objects returns the live objects including attached ones
func (f *Field) Objects() []*collectible.Object { return f.objects }

// Zones returns the stress zones
func (f *Field) Zones() []*Zone { return f.zones }

// Count returns the number of live objects
func (f *Field) Count() int { return len(f.objects) }

// CatchAt returns the first catchable object within reach of p, nil if none
func (f *Field) CatchAt(p geom.Vec2, reach float64) *collectible.Object {
	for _, o := range f.objects {
		if o.Catchable() && o.Contains(p, reach) {
			return o
		}
	}
	return nil
}

// ZoneAt returns the first ready zone containing p, nil if none
func (f *Field) ZoneAt(p geom.Vec2) *Zone {
	for _, z := range f.zones {
		if z.Ready() && z.Contains(p) {
			return z
		}
	}
	return nil
}

// Impulse pushes free objects away from center and returns how many moved
func (f *Field) Impulse(center geom.Vec2, radius, force, scale float64) int {
	n := 0
	for _, o := range f.objects {
		if o.Push(center, radius, force, scale) {
			o.Pos = f.Bounds.Clamp(o.Pos)
			n++
		}
	}
	return n
}

// Prune drops destroyed objects, keeping order
func (f *Field) Prune() int {
	kept := f.objects[:0]
	for _, o := range f.objects {
		if o.Alive() {
			kept = append(kept, o)
		}
	}
	removed := len(f.objects) - len(kept)
	for i := len(kept); i < len(f.objects); i++ {
		f.objects[i] = nil
	}
	f.objects = kept
	return removed
}

// Clear removes everything for a new level
func (f *Field) Clear() {
	f.objects = nil
	f.zones = nil
}

package collectible

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/parameter"
)

// Wander moves a free redworm along its heading
// The heading is re-picked every turn interval, or toward the center when leaving bounds
func (o *Object) Wander(dt time.Duration, bounds geom.Rect, rng *rand.Rand) {
	if o.class != Escaping || !o.alive || o.attached {
		return
	}

	o.TurnTimer -= dt
	if o.TurnTimer <= 0 {
		o.Heading = geom.Heading(rng.Float64() * 360)
		o.TurnTimer = parameter.RedwormTurnInterval
	}

	next := o.Pos.Add(o.Heading.Scale(o.Speed * dt.Seconds()))
	if !bounds.Contains(next) {
		toCenter := bounds.Center().Sub(o.Pos).Angle()
		jitter := (rng.Float64()*2 - 1) * parameter.RedwormCenterJitterDeg
		o.Heading = geom.Heading(toCenter + jitter)
		o.TurnTimer = parameter.RedwormTurnInterval
		next = bounds.Clamp(next)
	}
	o.Pos = next
}

// Push displaces a free object away from center, fading linearly to zero at radius
func (o *Object) Push(center geom.Vec2, radius, force, scale float64) bool {
	if !o.Catchable() || radius <= 0 {
		return false
	}
	d := o.Pos.Dist(center)
	if d >= radius {
		return false
	}
	dir := o.Pos.Sub(center).Normalize()
	if dir == (geom.Vec2{}) {
		dir = geom.V(0, -1)
	}
	o.Pos = o.Pos.Add(dir.Scale(force * (1 - d/radius) * scale))
	return true
}

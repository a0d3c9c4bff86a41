// Package collectible defines the objects the hook can catch and how each class
// resolves: standard pickups, explosives, escaping hazards and modifiers
package collectible

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/gold-miner/clock"
	"github.com/lixenwraith/gold-miner/geom"
)

// Class selects the attach and resolve behavior
type Class int

const (
	Standard Class = iota
	Explosive
	Escaping
	Modifier
)

func (c Class) String() string {
	switch c {
	case Standard:
		return "standard"
	case Explosive:
		return "explosive"
	case Escaping:
		return "escaping"
	case Modifier:
		return "modifier"
	}
	return "unknown"
}

// Kind is the concrete object type
type Kind int

const (
	Gold Kind = iota
	Rock
	Dynamite
	Redworm
	CreditCard
)

func (k Kind) String() string {
	switch k {
	case Gold:
		return "gold"
	case Rock:
		return "rock"
	case Dynamite:
		return "dynamite"
	case Redworm:
		return "redworm"
	case CreditCard:
		return "card"
	}
	return "unknown"
}

// ParseKind maps a table name to a Kind
func ParseKind(s string) (Kind, error) {
	for k := Gold; k <= CreditCard; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown collectible kind %q", s)
}

// Disposition tells the hook what to do after attaching
type Disposition int

const (
	// Ride keeps the object on the hook for the pull
	Ride Disposition = iota
	// Escape leaves the hook empty-handed
	Escape
)

// Discount is a store modifier granted by a credit card
type Discount struct {
	Tier int
	Rate float64 // fraction taken off one purchase
	Debt float64 // fraction of money collected after that purchase
}

// Env is the session side of a catch
type Env interface {
	AddMoney(delta int)
	ValueMultiplier() float64
	SetDiscount(d Discount)
	Penalize(timePenalty time.Duration, stun bool)
	After(d time.Duration, fn func()) *clock.Timer
	Explode(center geom.Vec2, radius, force float64)
	Notify(pos geom.Vec2, msg string)
}

// Contract is what the hook needs from a caught object
type Contract interface {
	Kind() Kind
	Class() Class
	Weight() float64
	Value() int
	Position() geom.Vec2
	MoveTo(p geom.Vec2)
	Attach(env Env) Disposition
	Resolve(env Env) int
	Alive() bool
	Destroy()
}

// Object is a collectible in the mine
// Class-specific fields are only meaningful for their class
type Object struct {
	ID     int
	kind   Kind
	class  Class
	Tier   int
	Pos    geom.Vec2
	Radius float64

	weight float64
	value  int

	alive    bool
	attached bool

	// Explosive
	Fuse        time.Duration
	BlastRadius float64
	BlastForce  float64
	fuse        *clock.Timer

	// Escaping
	Speed       float64
	TimePenalty time.Duration
	Stun        bool
	Heading     geom.Vec2
	TurnTimer   time.Duration
	EscapeDelay time.Duration

	// Modifier
	Card Discount
}

var _ Contract = (*Object)(nil)

func (o *Object) Kind() Kind          { return o.kind }
func (o *Object) Class() Class        { return o.class }
func (o *Object) Weight() float64     { return o.weight }
func (o *Object) Value() int          { return o.value }
func (o *Object) Position() geom.Vec2 { return o.Pos }
func (o *Object) Alive() bool         { return o.alive }
func (o *Object) Attached() bool      { return o.attached }
func (o *Object) MoveTo(p geom.Vec2)  { o.Pos = p }
func (o *Object) Catchable() bool     { return o.alive && !o.attached }
func (o *Object) Contains(p geom.Vec2, reach float64) bool {
	return o.Pos.Dist(p) <= o.Radius+reach
}

// Destroy removes the object from play and stops its fuse
func (o *Object) Destroy() {
	o.alive = false
	o.fuse.Cancel()
}

// Attach runs the class behavior when the hook grabs the object
func (o *Object) Attach(env Env) Disposition {
	o.attached = true
	switch o.class {
	case Explosive:
		if env != nil {
			o.fuse = env.After(o.Fuse, func() { o.detonate(env) })
		}
		return Ride
	case Escaping:
		if env != nil {
			if o.value != 0 {
				env.AddMoney(o.value)
			}
			env.Penalize(o.TimePenalty, o.Stun)
			env.Notify(o.Pos, fmt.Sprintf("-%ds", int(o.TimePenalty.Seconds())))
			env.After(o.EscapeDelay, o.Destroy)
		} else {
			o.Destroy()
		}
		return Escape
	case Modifier:
		if env != nil {
			env.SetDiscount(o.Card)
			env.Notify(o.Pos, fmt.Sprintf("%d%% OFF!", int(math.Round(o.Card.Rate*100))))
		}
		return Ride
	}
	return Ride
}

// Resolve applies the value of an object that reached the miner and destroys it
// Returns the money credited
func (o *Object) Resolve(env Env) int {
	if !o.alive {
		return 0
	}
	if o.class == Explosive {
		o.fuse.Cancel()
		return o.detonate(env)
	}
	v := o.value
	if o.kind == Gold && env != nil {
		v = int(math.Round(float64(v) * env.ValueMultiplier()))
	}
	if env != nil && v != 0 {
		env.AddMoney(v)
	}
	o.Destroy()
	return v
}

func (o *Object) detonate(env Env) int {
	if !o.alive {
		return 0
	}
	if env != nil {
		env.AddMoney(o.value)
		env.Explode(o.Pos, o.BlastRadius, o.BlastForce)
	}
	o.Destroy()
	return o.value
}

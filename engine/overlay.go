package engine

import (
	"time"

	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/parameter"
)

// FloatingText is a short message drifting up from a world position
type FloatingText struct {
	Pos     geom.Vec2
	Message string
	Age     time.Duration
}

// Blast is the expanding ring of an explosion
type Blast struct {
	Center geom.Vec2
	Radius float64
	Age    time.Duration
}

// CurrentRadius returns the ring radius grown over the effect lifetime
func (b Blast) CurrentRadius() float64 {
	p := min(float64(b.Age)/float64(parameter.ExplosionEffectLife), 1)
	return b.Radius + parameter.ExplosionEffectGrowth*p
}

// Overlay holds transient feedback drawn over the field
type Overlay struct {
	Texts  []FloatingText
	Blasts []Blast
}

// AddText queues a floating message at pos
func (o *Overlay) AddText(pos geom.Vec2, msg string) {
	o.Texts = append(o.Texts, FloatingText{Pos: pos, Message: msg})
}

// AddBlast queues an explosion ring
func (o *Overlay) AddBlast(center geom.Vec2, radius float64) {
	o.Blasts = append(o.Blasts, Blast{Center: center, Radius: radius})
}

// Age advances every effect, drifts texts upward and drops expired entries
func (o *Overlay) Age(dt time.Duration) {
	texts := o.Texts[:0]
	for _, t := range o.Texts {
		t.Age += dt
		if t.Age >= parameter.FloatingTextLifetime {
			continue
		}
		t.Pos.Y += parameter.FloatingTextDrift * dt.Seconds()
		texts = append(texts, t)
	}
	o.Texts = texts

	blasts := o.Blasts[:0]
	for _, b := range o.Blasts {
		b.Age += dt
		if b.Age < parameter.ExplosionEffectLife {
			blasts = append(blasts, b)
		}
	}
	o.Blasts = blasts
}

// Clear drops all effects
func (o *Overlay) Clear() {
	o.Texts = nil
	o.Blasts = nil
}

// Package geom holds the world-space vector math of the mine
package geom

import "math"

// Vec2 is a point or direction in world units, Y grows upward
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a.X + b.X, a.Y + b.Y} }

func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a.X - b.X, a.Y - b.Y} }

func (a Vec2) Scale(k float64) Vec2 { return Vec2{a.X * k, a.Y * k} }

// Len returns the Euclidean length
func (a Vec2) Len() float64 { return math.Hypot(a.X, a.Y) }

// Dist returns the distance between two points
func (a Vec2) Dist(b Vec2) float64 { return a.Sub(b).Len() }

// Normalize returns the unit vector, zero stays zero
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// MoveToward steps from a toward b by at most step, never overshooting
func (a Vec2) MoveToward(b Vec2, step float64) Vec2 {
	d := b.Sub(a)
	l := d.Len()
	if l <= step || l == 0 {
		return b
	}
	return a.Add(d.Scale(step / l))
}

// Down returns the unit vector rotated deg degrees from straight down, positive swings right
func Down(deg float64) Vec2 {
	r := deg * math.Pi / 180
	return Vec2{math.Sin(r), -math.Cos(r)}
}

// Heading returns the unit vector at deg degrees counter-clockwise from +X
func Heading(deg float64) Vec2 {
	r := deg * math.Pi / 180
	return Vec2{math.Cos(r), math.Sin(r)}
}

// Angle returns the direction of a in degrees counter-clockwise from +X
func (a Vec2) Angle() float64 {
	return math.Atan2(a.Y, a.X) * 180 / math.Pi
}

// Rect is an axis-aligned world rectangle
type Rect struct {
	Min, Max Vec2
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Center returns the midpoint of r
func (r Rect) Center() Vec2 {
	return Vec2{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Clamp returns p moved inside r
func (r Rect) Clamp(p Vec2) Vec2 {
	return Vec2{clamp(p.X, r.Min.X, r.Max.X), clamp(p.Y, r.Min.Y, r.Max.Y)}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

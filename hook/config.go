package hook

import (
	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/parameter"
)

// Config holds hook geometry and speeds
type Config struct {
	Anchor        geom.Vec2
	SwingRadius   float64
	MaxSwingAngle float64 // degrees
	SwingSpeed    float64 // degrees per second
	HookSpeed     float64
	MaxDistance   float64
	RestDistance  float64
	Reach         float64 // catch radius of the hook tip
	BasePullSpeed float64
}

// DefaultConfig returns the stock hook with the anchor at the origin
func DefaultConfig() Config {
	return Config{
		SwingRadius:   parameter.SwingRadius,
		MaxSwingAngle: parameter.MaxSwingAngle,
		SwingSpeed:    parameter.SwingSpeed,
		HookSpeed:     parameter.HookSpeed,
		MaxDistance:   parameter.MaxHookDistance,
		RestDistance:  parameter.RestDistance,
		Reach:         parameter.HookRadius,
		BasePullSpeed: parameter.BasePullSpeed,
	}
}

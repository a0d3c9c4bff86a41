package rope

import "github.com/lixenwraith/gold-miner/parameter"

// StressType classifies an external stress source
type StressType int

const (
	Pressure StressType = iota
	Tension
	Shear
)

func (t StressType) String() string {
	switch t {
	case Pressure:
		return "pressure"
	case Tension:
		return "tension"
	case Shear:
		return "shear"
	default:
		return "unknown"
	}
}

// ParseStressType maps a table name to a StressType
func ParseStressType(s string) (StressType, bool) {
	switch s {
	case "pressure":
		return Pressure, true
	case "tension":
		return Tension, true
	case "shear":
		return Shear, true
	}
	return 0, false
}

// TypedEffect is the impact multiplier and hook penalty of a stress type
type TypedEffect struct {
	Multiplier  float64
	Strength    float64
	Speed       float64
	CausesBreak bool
}

// DefaultEffects returns the stock effect table
func DefaultEffects() map[StressType]TypedEffect {
	return map[StressType]TypedEffect{
		Pressure: {Multiplier: parameter.PressureMultiplier, Strength: parameter.PressureStrengthPenalty, Speed: parameter.PressureSpeedPenalty},
		Tension:  {Multiplier: parameter.TensionMultiplier, Strength: parameter.TensionStrengthPenalty, Speed: parameter.TensionSpeedPenalty},
		Shear:    {Multiplier: parameter.ShearMultiplier, Strength: parameter.ShearStrengthPenalty, Speed: parameter.ShearSpeedPenalty, CausesBreak: true},
	}
}

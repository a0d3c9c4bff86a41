package rope

import (
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/gold-miner/parameter"
)

// Penalty is the strength and speed reduction a stressed rope imposes on the hook
// Both values stay in [0, Cap] and recover linearly
type Penalty struct {
	strength float64
	speed    float64

	MaxDelta  float64
	Cap       float64
	DecayRate float64 // per second
}

// NewPenalty returns a penalty with stock bounds
func NewPenalty() *Penalty {
	return &Penalty{
		MaxDelta:  parameter.PenaltyMaxDelta,
		Cap:       parameter.PenaltyCap,
		DecayRate: parameter.PenaltyDecayRate,
	}
}

// Strength returns the reach reduction fraction
func (p *Penalty) Strength() float64 { return p.strength }

// Speed returns the speed reduction fraction
func (p *Penalty) Speed() float64 { return p.speed }

// Apply adds both deltas; a delta outside [0, MaxDelta] rejects the whole event
func (p *Penalty) Apply(strength, speed float64) error {
	if !p.validDelta(strength) || !p.validDelta(speed) {
		return fmt.Errorf("%w: strength %.3f speed %.3f", ErrInvalidPenalty, strength, speed)
	}
	p.strength = math.Min(p.strength+strength, p.Cap)
	p.speed = math.Min(p.speed+speed, p.Cap)
	return nil
}

func (p *Penalty) validDelta(v float64) bool {
	return v >= 0 && v <= p.MaxDelta
}

// Decay recovers both penalties toward zero
func (p *Penalty) Decay(dt time.Duration) {
	d := p.DecayRate * dt.Seconds()
	p.strength = math.Max(0, p.strength-d)
	p.speed = math.Max(0, p.speed-d)
}

// Reset clears both penalties
func (p *Penalty) Reset() {
	p.strength = 0
	p.speed = 0
}

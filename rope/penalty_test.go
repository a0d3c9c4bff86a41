package rope

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestPenaltyClamp(t *testing.T) {
	p := NewPenalty()
	for i := 0; i < 100; i++ {
		if err := p.Apply(0.08, 0.05); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}
	if p.Strength() > 0.9 || p.Speed() > 0.9 {
		t.Errorf("Penalties exceed cap: strength %v speed %v", p.Strength(), p.Speed())
	}
	if p.Strength() != 0.9 {
		t.Errorf("Expected strength pinned at 0.9, got %v", p.Strength())
	}
}

func TestPenaltyRejectsInvalid(t *testing.T) {
	tests := []struct {
		name            string
		strength, speed float64
	}{
		{"negative strength", -0.1, 0},
		{"strength too large", 0.6, 0},
		{"speed too large", 0, 0.51},
		{"NaN", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPenalty()
			err := p.Apply(tt.strength, tt.speed)
			if !errors.Is(err, ErrInvalidPenalty) {
				t.Errorf("Expected ErrInvalidPenalty, got %v", err)
			}
			if p.Strength() != 0 || p.Speed() != 0 {
				t.Error("Rejected penalty must not change state")
			}
		})
	}
}

func TestPenaltyBoundaryAccepted(t *testing.T) {
	p := NewPenalty()
	if err := p.Apply(0.5, 0); err != nil {
		t.Errorf("0.5 is within bounds: %v", err)
	}
}

func TestPenaltyDecay(t *testing.T) {
	p := NewPenalty()
	_ = p.Apply(0.3, 0.1)
	p.Decay(2 * time.Second)

	if math.Abs(p.Strength()-0.2) > 1e-9 {
		t.Errorf("Expected strength 0.2, got %v", p.Strength())
	}
	if p.Speed() != 0 {
		t.Errorf("Speed should floor at 0, got %v", p.Speed())
	}
	p.Reset()
	if p.Strength() != 0 {
		t.Error("Reset should clear")
	}
}

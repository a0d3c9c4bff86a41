package rope

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/lixenwraith/gold-miner/clock"
	"github.com/lixenwraith/gold-miner/event"
	"github.com/lixenwraith/gold-miner/parameter"
)

// StressConfig holds the accumulator tunables
type StressConfig struct {
	MaxStress           float64
	DecayRate           float64 // per second
	StressPerPull       float64
	StressPerWeightUnit float64
	PullCapRatio        float64 // single pull cap as a fraction of MaxStress
	BreakThreshold      float64 // multiple of MaxStress
	RepairTime          time.Duration
}

// DefaultStressConfig returns the stock tunables
func DefaultStressConfig() StressConfig {
	return StressConfig{
		MaxStress:           parameter.MaxStress,
		DecayRate:           parameter.StressDecayRate,
		StressPerPull:       parameter.StressPerPull,
		StressPerWeightUnit: parameter.StressPerWeightUnit,
		PullCapRatio:        parameter.StressPullCapRatio,
		BreakThreshold:      parameter.BreakThreshold,
		RepairTime:          parameter.RepairTime,
	}
}

// Limit returns the stress at which the rope breaks
func (c StressConfig) Limit() float64 { return c.MaxStress * c.BreakThreshold }

// Stress is the bounded rope load
// Values stay in [0, MaxStress*BreakThreshold]; a breach breaks the rope once and
// freezes accumulation until the repair timer completes
type Stress struct {
	cfg     StressConfig
	effects map[StressType]TypedEffect

	stress    float64
	repairing bool
	repair    *clock.Timer

	sched Scheduler
	local localClock
	sink  Sink
}

// NewStress creates an accumulator; nil sched uses a private clock advanced by Update
func NewStress(cfg StressConfig, sched Scheduler, sink Sink) *Stress {
	s := &Stress{cfg: cfg, effects: DefaultEffects(), sink: sink}
	s.sched, s.local = resolveScheduler(sched)
	return s
}

// SetEffects replaces the typed stress table
func (s *Stress) SetEffects(effects map[StressType]TypedEffect) {
	s.effects = effects
}

// Config returns the current tunables including applied upgrades
func (s *Stress) Config() StressConfig { return s.cfg }

// Value returns the current stress
func (s *Stress) Value() float64 { return s.stress }

// Limit returns the stress at which the rope breaks
func (s *Stress) Limit() float64 { return s.cfg.Limit() }

// Repairing reports whether the rope is in its repair interval
func (s *Stress) Repairing() bool { return s.repairing }

// RepairRemaining returns the time left in the repair interval
func (s *Stress) RepairRemaining() time.Duration { return s.repair.Remaining() }

// Percentage returns stress relative to MaxStress, may exceed 1 up to BreakThreshold
func (s *Stress) Percentage() float64 {
	if s.cfg.MaxStress <= 0 {
		return 0
	}
	return s.stress / s.cfg.MaxStress
}

// AddStress accumulates load; ignored while repairing or for non-positive amounts
func (s *Stress) AddStress(amount float64) {
	if s.repairing || amount <= 0 || math.IsNaN(amount) {
		return
	}
	s.stress += amount
	if limit := s.Limit(); s.stress >= limit {
		s.stress = limit
		s.breakRope(event.CauseStressLimit)
	}
}

// PullStress returns the load a single pulling tick registers for weight
func (s *Stress) PullStress(weight float64) float64 {
	base := s.cfg.StressPerPull
	if weight > 0 {
		base += math.Sqrt(weight) * s.cfg.StressPerWeightUnit
	}
	if limit := s.cfg.MaxStress * s.cfg.PullCapRatio; base > limit {
		base = limit
	}
	return base
}

// AddPullStress registers one pulling tick of the given weight
func (s *Stress) AddPullStress(weight float64) {
	s.AddStress(s.PullStress(weight))
}

// ApplyTypedStress scales impact by the type multiplier and emits the typed penalty
func (s *Stress) ApplyTypedStress(t StressType, impact float64) {
	if s.repairing {
		return
	}
	eff, ok := s.effects[t]
	if !ok {
		log.Printf("rope: unknown stress type %d ignored", t)
		return
	}
	s.AddStress(impact * eff.Multiplier)
	emit(s.sink, event.EventStressPenalty, &event.StressPenaltyPayload{
		StressType:  t.String(),
		Strength:    eff.Strength,
		Speed:       eff.Speed,
		CausesBreak: eff.CausesBreak,
	})
}

// ForceBreak breaks the rope outside of a stress breach
// Returns false when already repairing
func (s *Stress) ForceBreak(cause event.BreakCause) bool {
	return s.breakRope(cause)
}

func (s *Stress) breakRope(cause event.BreakCause) bool {
	if s.repairing {
		return false
	}
	s.repairing = true
	emit(s.sink, event.EventRopeBreak, &event.RopeBreakPayload{Cause: cause, Stress: s.stress})
	s.repair = s.sched.After(s.cfg.RepairTime, s.completeRepair)
	return true
}

func (s *Stress) completeRepair() {
	s.stress = 0
	s.repairing = false
	s.repair = nil
	emit(s.sink, event.EventRopeRepaired, nil)
}

// Update decays stress; frozen while repairing
func (s *Stress) Update(dt time.Duration) {
	if !s.repairing && s.stress > 0 {
		s.stress = math.Max(0, s.stress-s.cfg.DecayRate*dt.Seconds())
	}
	s.local.advance(dt)
}

// Reset clears stress and any pending repair for a level transition
func (s *Stress) Reset() {
	s.repair.Cancel()
	s.repair = nil
	s.stress = 0
	s.repairing = false
}

// ApplyReinforcement lowers pull stress coefficients by pct
func (s *Stress) ApplyReinforcement(pct float64) error {
	if pct < 0 || pct >= 1 {
		return fmt.Errorf("%w: reinforcement %.2f", ErrInvalidUpgrade, pct)
	}
	s.cfg.StressPerPull *= 1 - pct
	s.cfg.StressPerWeightUnit *= 1 - pct
	return nil
}

// ApplyBetterRope raises MaxStress by pct, rounded to a whole unit
func (s *Stress) ApplyBetterRope(pct float64) error {
	if pct < 0 || pct >= 1 {
		return fmt.Errorf("%w: better rope %.2f", ErrInvalidUpgrade, pct)
	}
	s.cfg.MaxStress = math.Round(s.cfg.MaxStress * (1 + pct))
	return nil
}

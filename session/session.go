// Package session tracks one run of the game: money, level, countdown and the
// modifiers that outlive a single catch
package session

import (
	"math"
	"time"

	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/parameter"
)

// State is the phase of the run
type State int

const (
	Running State = iota
	Paused
	Store
	GameOver
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Store:
		return "store"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Config holds level pacing
type Config struct {
	LevelDuration time.Duration
	GoalBase      int
	GoalStep      int
	StartMoney    int
}

// DefaultConfig returns the stock pacing
func DefaultConfig() Config {
	return Config{
		LevelDuration: parameter.LevelDuration,
		GoalBase:      parameter.LevelGoalBase,
		GoalStep:      parameter.LevelGoalStep,
	}
}

// Session is the per-run state shared by the hook, the store and the HUD
type Session struct {
	cfg Config

	money     int
	level     int
	remaining time.Duration
	expired   bool
	state     State

	multiplier float64
	discount   *collectible.Discount
	bonusTime  time.Duration
}

// New starts a run at level 1
func New(cfg Config) *Session {
	s := &Session{cfg: cfg}
	s.Reset()
	return s
}

// Reset starts a fresh run
func (s *Session) Reset() {
	s.money = s.cfg.StartMoney
	s.level = 1
	s.remaining = s.cfg.LevelDuration
	s.expired = false
	s.state = Running
	s.multiplier = 1
	s.discount = nil
	s.bonusTime = 0
}

func (s *Session) Money() int                      { return s.money }
func (s *Session) Level() int                      { return s.level }
func (s *Session) Remaining() time.Duration        { return s.remaining }
func (s *Session) State() State                    { return s.state }
func (s *Session) ValueMultiplier() float64        { return s.multiplier }
func (s *Session) BonusTime() time.Duration        { return s.bonusTime }
func (s *Session) Discount() *collectible.Discount { return s.discount }

// Goal returns the money target of the current level
func (s *Session) Goal() int {
	return s.cfg.GoalBase + s.cfg.GoalStep*(s.level-1)
}

// AddMoney applies a score delta; money never goes below zero
func (s *Session) AddMoney(delta int) {
	s.money = max(s.money+delta, 0)
}

// Spend deducts price if affordable
func (s *Session) Spend(price int) bool {
	if price < 0 || price > s.money {
		return false
	}
	s.money -= price
	return true
}

// Penalize removes time from the countdown
func (s *Session) Penalize(d time.Duration) {
	s.remaining = max(s.remaining-d, 0)
}

// ScaleValue multiplies the gold value multiplier
func (s *Session) ScaleValue(k float64) {
	s.multiplier *= k
}

// AddBonusTime extends the next level
func (s *Session) AddBonusTime(d time.Duration) {
	s.bonusTime += d
}

// SetDiscount holds a credit card until a purchase consumes it
func (s *Session) SetDiscount(d collectible.Discount) {
	s.discount = &d
}

// ApplyDiscount returns the discounted price without consuming the card
func (s *Session) ApplyDiscount(price int) int {
	if s.discount == nil {
		return price
	}
	return int(math.Round(float64(price) * (1 - s.discount.Rate)))
}

// CollectDebt consumes the card and takes its debt share of the current money
// Returns the amount collected
func (s *Session) CollectDebt() int {
	if s.discount == nil {
		return 0
	}
	debt := int(math.Round(float64(s.money) * s.discount.Debt))
	s.money -= debt
	s.discount = nil
	return debt
}

// Tick runs the countdown while Running and returns true exactly once per level, on the first
// running tick that finds it at zero, whether the clock or a penalty emptied it
func (s *Session) Tick(dt time.Duration) bool {
	if s.state != Running || s.expired {
		return false
	}
	s.remaining = max(s.remaining-dt, 0)
	if s.remaining > 0 {
		return false
	}
	s.expired = true
	return true
}

// Expired reports whether the level's expiry has been reported
func (s *Session) Expired() bool { return s.expired }

// EndLevel moves to Store when the goal is met, GameOver otherwise
func (s *Session) EndLevel() bool {
	passed := s.money >= s.Goal()
	if passed {
		s.state = Store
	} else {
		s.state = GameOver
	}
	return passed
}

// NextLevel leaves the store and starts the following level
func (s *Session) NextLevel() bool {
	if s.state != Store {
		return false
	}
	s.level++
	s.remaining = s.cfg.LevelDuration + s.bonusTime
	s.expired = false
	s.bonusTime = 0
	s.state = Running
	return true
}

// TogglePause switches between Running and Paused
func (s *Session) TogglePause() {
	switch s.state {
	case Running:
		s.state = Paused
	case Paused:
		s.state = Running
	}
}

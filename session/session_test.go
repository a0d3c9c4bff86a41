package session

import (
	"testing"
	"time"

	"github.com/lixenwraith/gold-miner/collectible"
)

func TestGoalProgression(t *testing.T) {
	s := New(DefaultConfig())
	if s.Goal() != 300 {
		t.Errorf("Level 1 goal = %d, want 300", s.Goal())
	}
	s.AddMoney(300)
	s.EndLevel()
	s.NextLevel()
	if s.Level() != 2 || s.Goal() != 575 {
		t.Errorf("Level %d goal %d, want 2 and 575", s.Level(), s.Goal())
	}
}

func TestCountdownEndsLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LevelDuration = time.Second
	s := New(cfg)

	s.Penalize(400 * time.Millisecond)
	if s.Tick(500 * time.Millisecond) {
		t.Fatal("Countdown ended early")
	}
	if !s.Tick(500 * time.Millisecond) {
		t.Fatal("Tick should report expiry")
	}
	if s.Tick(time.Second) {
		t.Error("Expiry reported twice")
	}

	if s.EndLevel() || s.State() != GameOver {
		t.Errorf("Below goal should end the game, state %v", s.State())
	}
	if s.NextLevel() {
		t.Error("NextLevel only leaves the store")
	}
}

func TestPenaltyLargerThanRemainingEndsLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LevelDuration = 2 * time.Second
	s := New(cfg)

	s.Tick(time.Second)
	s.Penalize(3 * time.Second)
	if s.Remaining() != 0 {
		t.Fatalf("Penalty should empty the countdown, got %v", s.Remaining())
	}

	ends := 0
	for i := 0; i < 100; i++ {
		if s.Tick(50 * time.Millisecond) {
			ends++
			s.EndLevel()
		}
	}
	if ends != 1 {
		t.Errorf("Expiry reported %d times, want 1", ends)
	}
	if s.State() != GameOver {
		t.Errorf("Level should have ended, state %v", s.State())
	}
}

func TestExpiryWaitsForRunning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LevelDuration = time.Second
	s := New(cfg)
	s.AddMoney(s.Goal())

	s.TogglePause()
	s.Penalize(2 * time.Second)
	if s.Tick(time.Millisecond) || s.Expired() {
		t.Fatal("Paused session must not expire")
	}
	s.TogglePause()
	if !s.Tick(time.Millisecond) || !s.Expired() {
		t.Fatal("Resumed session at zero should report expiry")
	}
	s.EndLevel()
	if !s.NextLevel() || s.Expired() {
		t.Error("NextLevel should rearm the countdown")
	}
}

func TestPauseFreezesCountdown(t *testing.T) {
	s := New(DefaultConfig())
	s.TogglePause()
	s.Tick(10 * time.Second)
	if s.Remaining() != 60*time.Second {
		t.Errorf("Paused countdown moved to %v", s.Remaining())
	}
	s.TogglePause()
	if s.State() != Running {
		t.Errorf("Expected running, got %v", s.State())
	}
}

func TestBonusTimeCarriesToNextLevel(t *testing.T) {
	s := New(DefaultConfig())
	s.AddMoney(1000)
	s.EndLevel()
	s.AddBonusTime(30 * time.Second)
	s.NextLevel()
	if s.Remaining() != 90*time.Second || s.BonusTime() != 0 {
		t.Errorf("Expected 90s with bonus consumed, got %v", s.Remaining())
	}
}

func TestMoneyFloor(t *testing.T) {
	s := New(DefaultConfig())
	s.AddMoney(20)
	s.AddMoney(-50)
	if s.Money() != 0 {
		t.Errorf("Money must not go negative, got %d", s.Money())
	}
	if s.Spend(1) {
		t.Error("Cannot spend without money")
	}
}

func TestDiscountAndDebt(t *testing.T) {
	s := New(DefaultConfig())
	s.AddMoney(1000)
	s.SetDiscount(collectible.Discount{Tier: collectible.Bronze, Rate: 0.25, Debt: 0.5})

	if got := s.ApplyDiscount(200); got != 150 {
		t.Errorf("Expected 150, got %d", got)
	}
	s.Spend(150)
	if debt := s.CollectDebt(); debt != 425 {
		t.Errorf("Expected debt 425 of 850, got %d", debt)
	}
	if s.Money() != 425 || s.Discount() != nil {
		t.Errorf("Card must be consumed, money %d", s.Money())
	}
	if s.ApplyDiscount(200) != 200 || s.CollectDebt() != 0 {
		t.Error("No discount without a card")
	}
}

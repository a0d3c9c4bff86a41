package store

import (
	"errors"
	"testing"

	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/session"
)

type fakeUpgrades struct {
	pull      float64
	reinforce float64
	better    float64
	ropes     int
	fail      error
}

func (f *fakeUpgrades) AddPullSpeed(d float64) { f.pull += d }
func (f *fakeUpgrades) ApplyReinforcement(p float64) error {
	if f.fail != nil {
		return f.fail
	}
	f.reinforce += p
	return nil
}
func (f *fakeUpgrades) ApplyBetterRope(p float64) error { f.better += p; return nil }
func (f *fakeUpgrades) AddRopes(n int)                  { f.ropes += n }

func openStore(money int) (*Store, *session.Session, *fakeUpgrades) {
	sess := session.New(session.DefaultConfig())
	sess.AddMoney(money)
	sess.EndLevel()
	up := &fakeUpgrades{}
	return New(sess, up), sess, up
}

func TestBuyAppliesEffects(t *testing.T) {
	s, sess, up := openStore(5000)

	for _, id := range []ItemID{HookEngine, TimeExtension, GoldPolisher, RopeReinforcement, BetterRope, RopeBundle} {
		if _, err := s.Buy(id); err != nil {
			t.Fatalf("Buy(%s): %v", id, err)
		}
	}
	if up.pull != 0.2 || up.reinforce != 0.2 || up.better != 0.25 || up.ropes != 2 {
		t.Errorf("Unexpected upgrades %+v", up)
	}
	if sess.BonusTime().Seconds() != 30 || sess.ValueMultiplier() != 1.25 {
		t.Errorf("Session effects missing: bonus %v multiplier %v", sess.BonusTime(), sess.ValueMultiplier())
	}
	if sess.Money() != 5000-1750 {
		t.Errorf("Expected 3250 left, got %d", sess.Money())
	}
}

func TestPriceGrowsWithLevel(t *testing.T) {
	s, sess, _ := openStore(1000)
	sess.NextLevel()
	sess.AddMoney(10000)
	sess.EndLevel()

	price, _, err := s.Quote(GoldPolisher)
	if err != nil {
		t.Fatal(err)
	}
	if price != 625 {
		t.Errorf("Level 2 price = %d, want 625", price)
	}
}

func TestBuyErrors(t *testing.T) {
	s, sess, _ := openStore(300)

	if _, err := s.Buy("diamond_drill"); !errors.Is(err, ErrUnknownItem) {
		t.Errorf("Expected ErrUnknownItem, got %v", err)
	}
	if _, err := s.Buy(GoldPolisher); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("Expected ErrInsufficientFunds, got %v", err)
	}
	if sess.Money() != 300 {
		t.Errorf("Failed purchase must not charge, money %d", sess.Money())
	}

	sess.NextLevel()
	if _, err := s.Buy(RopeBundle); !errors.Is(err, ErrClosed) {
		t.Errorf("Expected ErrClosed while running, got %v", err)
	}
}

func TestFailedUpgradeRefunds(t *testing.T) {
	s, sess, up := openStore(1000)
	up.fail = errors.New("boom")
	if _, err := s.Buy(RopeReinforcement); err == nil {
		t.Fatal("Expected error")
	}
	if sess.Money() != 1000 {
		t.Errorf("Expected refund, money %d", sess.Money())
	}
}

func TestCardDiscountThenDebt(t *testing.T) {
	s, sess, _ := openStore(1000)
	sess.SetDiscount(collectible.Discount{Tier: collectible.GoldCard, Rate: 0.75, Debt: 0.9})

	r, err := s.Buy(GoldPolisher)
	if err != nil {
		t.Fatal(err)
	}
	if r.Price != 500 || r.Paid != 125 {
		t.Errorf("Expected 500 discounted to 125, got %+v", r)
	}
	if r.Debt != 788 {
		t.Errorf("Expected 90%% of 875 = 788 debt, got %d", r.Debt)
	}
	if sess.Money() != 87 {
		t.Errorf("Expected 87 left, got %d", sess.Money())
	}

	r, err = s.Buy(RopeBundle)
	if err == nil {
		t.Errorf("Card is single use, full price 150 unaffordable, got %+v", r)
	}
}

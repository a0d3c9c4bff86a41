// Package store sells upgrades between levels
package store

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/session"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownItem       = errors.New("unknown item")
	ErrClosed            = errors.New("store closed")
)

// ItemID names a store item
type ItemID string

const (
	HookEngine        ItemID = "hook_engine"
	TimeExtension     ItemID = "time_extension"
	GoldPolisher      ItemID = "gold_polisher"
	RopeReinforcement ItemID = "rope_reinforcement"
	BetterRope        ItemID = "better_rope"
	RopeBundle        ItemID = "rope_bundle"
)

// Item is a catalog entry
type Item struct {
	ID          ItemID
	Name        string
	Description string
	BasePrice   int
}

// Catalog is the stock offer, in display order
var Catalog = []Item{
	{HookEngine, "Hook Engine", "Pull speed +0.2", 200},
	{TimeExtension, "Time Extension", "+30s next level", 300},
	{GoldPolisher, "Gold Polisher", "Gold value x1.25", 500},
	{RopeReinforcement, "Rope Reinforcement", "Pull stress -20%", 250},
	{BetterRope, "Better Rope", "Max stress +25%", 350},
	{RopeBundle, "Rope Bundle", "+2 ropes", 150},
}

// Upgrades receives purchased effects
type Upgrades interface {
	AddPullSpeed(delta float64)
	ApplyReinforcement(pct float64) error
	ApplyBetterRope(pct float64) error
	AddRopes(n int)
}

// Receipt records a completed purchase
type Receipt struct {
	Item  Item
	Price int // before discount
	Paid  int
	Debt  int // collected by a used credit card
}

// Store applies purchases against a session
type Store struct {
	sess   *session.Session
	up     Upgrades
	items  []Item
	growth float64
}

// New creates a store over the stock catalog
func New(sess *session.Session, up Upgrades) *Store {
	return &Store{sess: sess, up: up, items: Catalog, growth: parameter.StorePriceGrowth}
}

// Items returns the catalog
func (s *Store) Items() []Item { return s.items }

// Lookup finds an item by ID
func (s *Store) Lookup(id ItemID) (Item, error) {
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
}

// Price returns the level-scaled price of an item
func (s *Store) Price(it Item) int {
	level := max(s.sess.Level(), 1)
	return int(math.Round(float64(it.BasePrice) * (1 + s.growth*float64(level-1))))
}

// Quote returns the level-scaled and the discounted price
func (s *Store) Quote(id ItemID) (price, pay int, err error) {
	it, err := s.Lookup(id)
	if err != nil {
		return 0, 0, err
	}
	price = s.Price(it)
	return price, s.sess.ApplyDiscount(price), nil
}

// Buy charges the session and applies the item
// A held credit card discounts this purchase, then its debt is collected
func (s *Store) Buy(id ItemID) (Receipt, error) {
	if s.sess.State() != session.Store {
		return Receipt{}, ErrClosed
	}
	it, err := s.Lookup(id)
	if err != nil {
		return Receipt{}, err
	}
	price := s.Price(it)
	pay := s.sess.ApplyDiscount(price)
	if !s.sess.Spend(pay) {
		return Receipt{}, fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientFunds, it.Name, pay, s.sess.Money())
	}
	if err := s.apply(it.ID); err != nil {
		s.sess.AddMoney(pay)
		return Receipt{}, fmt.Errorf("applying %s: %w", it.Name, err)
	}
	return Receipt{Item: it, Price: price, Paid: pay, Debt: s.sess.CollectDebt()}, nil
}

func (s *Store) apply(id ItemID) error {
	switch id {
	case HookEngine:
		if s.up != nil {
			s.up.AddPullSpeed(parameter.HookEngineBoost)
		}
	case TimeExtension:
		s.sess.AddBonusTime(parameter.TimeExtension)
	case GoldPolisher:
		s.sess.ScaleValue(parameter.ValueBoosterRate)
	case RopeReinforcement:
		if s.up != nil {
			return s.up.ApplyReinforcement(parameter.ReinforcementReduction)
		}
	case BetterRope:
		if s.up != nil {
			return s.up.ApplyBetterRope(parameter.BetterRopeIncrease)
		}
	case RopeBundle:
		if s.up != nil {
			s.up.AddRopes(parameter.RopeBundleSize)
		}
	}
	return nil
}

// FormatDuration renders a bonus like "+30s"
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("+%ds", int(d.Seconds()))
}

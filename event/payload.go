package event

import "time"

// Point is a world position carried by payloads
// Kept local so leaf packages can emit without importing geometry
type Point struct {
	X, Y float64
}

// BreakCause identifies why the rope snapped
type BreakCause int

const (
	CauseStressLimit BreakCause = iota
	CauseShear
	CauseForced
)

func (c BreakCause) String() string {
	switch c {
	case CauseStressLimit:
		return "stress"
	case CauseShear:
		return "shear"
	default:
		return "forced"
	}
}

// RopeBreakPayload describes a rope break
type RopeBreakPayload struct {
	Cause  BreakCause
	Stress float64 // Stress at the moment of the break
}

// StressPenaltyPayload carries the deltas of a typed stress hit
type StressPenaltyPayload struct {
	StressType  string
	Strength    float64
	Speed       float64
	CausesBreak bool
}

// RopeCountReason describes what changed the rope stock
type RopeCountReason int

const (
	RopeCountBreak RopeCountReason = iota
	RopeCountGrant
	RopeCountPurchase
	RopeCountReset
)

// RopeCountPayload contains the new rope count and the change
type RopeCountPayload struct {
	Count  int
	Delta  int
	Reason RopeCountReason
}

// DroughtPayload contains the free rope countdown
type DroughtPayload struct {
	Duration time.Duration
}

// FloatingTextPayload requests text at a world position
type FloatingTextPayload struct {
	Position Point
	Message  string
}

// ExplosionPayload describes a detonation
type ExplosionPayload struct {
	Center Point
	Radius float64
	Force  float64
}

// DeliveredPayload describes an object reaching the miner
type DeliveredPayload struct {
	Kind     string
	Value    int
	Position Point
}

// CaughtPayload describes an object attached to the hook
type CaughtPayload struct {
	Kind   string
	Escape bool
}

// LevelEndedPayload contains the level result
type LevelEndedPayload struct {
	Level  int
	Money  int
	Goal   int
	Passed bool
}

// PurchasePayload contains a store purchase result
type PurchasePayload struct {
	Item  string
	Price int
	OK    bool
}

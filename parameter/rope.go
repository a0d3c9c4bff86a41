package parameter

import "time"

// Rope Stress
const (
	// MaxStress is the nominal stress capacity of a fresh rope
	MaxStress = 500.0

	// StressDecayRate is the stress shed per second while not repairing
	StressDecayRate = 2.0

	// StressPerPull is the flat stress added by each pulling tick
	StressPerPull = 0.1

	// StressPerWeightUnit scales the square root of the pulled weight
	StressPerWeightUnit = 0.01

	// StressPullCapRatio caps a single pull registration to this fraction of MaxStress
	StressPullCapRatio = 0.01

	// BreakThreshold is the multiple of MaxStress at which the rope snaps (200%)
	BreakThreshold = 2.0

	// RepairTime is the frozen interval after a break, not cancellable
	RepairTime = 1500 * time.Millisecond

	// StressWarningThreshold marks the rope as critical in the HUD (90% of MaxStress)
	StressWarningThreshold = 0.9
)

// Typed stress multipliers applied to the raw impact of a stress zone
const (
	PressureMultiplier = 0.25
	TensionMultiplier  = 0.4
	ShearMultiplier    = 0.6
)

// Typed stress penalties (strength delta, speed delta)
const (
	PressureStrengthPenalty = 0.02
	PressureSpeedPenalty    = 0.0
	TensionStrengthPenalty  = 0.05
	TensionSpeedPenalty     = 0.02
	ShearStrengthPenalty    = 0.08
	ShearSpeedPenalty       = 0.05
)

// Penalty bounds
const (
	// PenaltyMaxDelta is the largest single penalty increment accepted from a stress event
	PenaltyMaxDelta = 0.5

	// PenaltyCap bounds accumulated strength and speed penalties
	PenaltyCap = 0.9

	// PenaltyDecayRate is the linear recovery of each penalty per second
	PenaltyDecayRate = 0.05
)

// Rope Inventory
const (
	// StartingRopes is the rope stock at the beginning of every level
	StartingRopes = 3

	// FreeRopeDelay is the drought duration before a free rope is granted
	FreeRopeDelay = 3 * time.Second
)

// Rope upgrades sold in the store
const (
	// ReinforcementReduction lowers pull stress coefficients by this fraction
	ReinforcementReduction = 0.2

	// BetterRopeIncrease raises MaxStress by this fraction
	BetterRopeIncrease = 0.25

	// RopeBundleSize is the number of ropes in one store bundle
	RopeBundleSize = 2
)

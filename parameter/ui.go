package parameter

import "time"

// Layout & Margins
const (
	// TopMargin holds the HUD line
	TopMargin = 1

	// BottomMargin holds the key help line
	BottomMargin = 1

	// CellsPerUnitX maps world units to terminal columns (cells are roughly twice as tall as wide)
	CellsPerUnitX = 4.0

	// CellsPerUnitY maps world units to terminal rows
	CellsPerUnitY = 2.0
)

// Floating text
const (
	FloatingTextLifetime = 2 * time.Second
	FloatingTextDrift    = 0.5 // world units per second upward
)

// Rope stress color bands as fractions of MaxStress
const (
	StressBandLow    = 0.5
	StressBandMedium = 0.8
)

// HUD
const (
	StressBarWidth = 20
)

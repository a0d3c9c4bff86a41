package parameter

import "time"

// Level session
const (
	// LevelDuration is the countdown of a level before store or game over
	LevelDuration = 60 * time.Second

	// TimeExtension is the time bought by a single store extension
	TimeExtension = 30 * time.Second

	// LevelGoalBase is the money target of level 1
	LevelGoalBase = 300

	// LevelGoalStep is added to the target for each subsequent level
	LevelGoalStep = 275
)

// Spawn area, centered horizontally under the anchor
const (
	SpawnAreaWidth     = 12.0
	SpawnAreaHeight    = 5.0
	SpawnAreaYOffset   = -5.5
	SpawnMinSpacing    = 1.5
	SpawnMaxAttempts   = 20
	InitialObjectCount = 10
	StressZoneCount    = 2
)

// Store pricing
const (
	// StorePriceGrowth raises every price by this fraction per level past the first
	StorePriceGrowth = 0.25

	HookEngineBoost  = 0.2
	ValueBoosterRate = 1.25
)

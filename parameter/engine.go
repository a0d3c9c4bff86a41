package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the simulation tick, one tick per rendered frame
	GameUpdateInterval = time.Second / 60

	// MaxTickDelta caps a single simulation step after a stall (resize, suspend)
	MaxTickDelta = 100 * time.Millisecond
)

// Event Queue
const (
	// EventQueueBacklog is the initial queue capacity and the pending count that logs a backlog warning
	EventQueueBacklog = 512
)

// Logging
const (
	// LogDir is created relative to the working directory when debug logging is enabled
	LogDir = "logs"

	// LogFileName is the active log file inside LogDir
	LogFileName = "gold-miner.log"

	// MaxLogSize triggers rotation of the active log file on startup
	MaxLogSize = 10 * 1024 * 1024
)

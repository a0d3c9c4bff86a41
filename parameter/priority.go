package parameter

// System Execution Priorities (lower runs first)
// Order inside a tick: stress decay, hook evaluation and movement, collisions, hazards, timers, feedback
const (
	PriorityStress     = 10
	PriorityHook       = 20
	PriorityCollision  = 30
	PriorityHazard     = 40
	PriorityLevel      = 50
	PriorityTimekeeper = 900 // After game logic, fires scheduled timers
	PriorityFeedback   = 950 // After timers, ages floating text and effects
	PriorityAudio      = 960 // Event driven only
)

package parameter

// Hook geometry, world units with the miner anchor at the origin and depth along -Y
const (
	// SwingRadius is the hook distance from the anchor while swinging
	SwingRadius = 1.5

	// MaxSwingAngle bounds the pendulum in degrees on either side of straight down
	MaxSwingAngle = 80.0

	// SwingSpeed is the pendulum angular speed in degrees per second
	SwingSpeed = 60.0

	// HookSpeed is the extend and retract speed in units per second
	HookSpeed = 5.0

	// MaxHookDistance is the reach of an unpenalized rope
	MaxHookDistance = 10.0

	// RestDistance is the distance from the anchor at which a returning hook is home
	RestDistance = 1.0

	// HookRadius is the catch radius of the hook tip
	HookRadius = 0.5

	// BasePullSpeed is the retrieval base speed before weight and penalty adjustment
	BasePullSpeed = 3.0
)

// Retrieval speed curve breakpoints
const (
	RetrievalLightWeight = 10.0
	RetrievalHeavyWeight = 20.0
	RetrievalFloorRatio  = 0.4
)

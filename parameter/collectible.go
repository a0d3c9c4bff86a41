package parameter

import "time"

// Rock tiers, indexed by size (small, medium, large)
var (
	RockWeights = [3]float64{6.0, 12.0, 20.0}
	RockValues  = [3]int{5, 10, 15}
	RockRadii   = [3]float64{0.3, 0.45, 0.7}
)

// Gold tiers, indexed by size (small, medium, large)
var (
	GoldWeights = [3]float64{10.0, 18.0, 28.0}
	GoldValues  = [3]int{100, 200, 300}
	GoldRadii   = [3]float64{0.3, 0.45, 0.7}
)

// Per-level scaling factors
const (
	RockWeightPerLevel = 0.10
	RockValuePerLevel  = 0.15
	GoldWeightPerLevel = 0.15
	GoldValuePerLevel  = 0.25
)

// Dynamite
const (
	DynamiteDamage        = 50
	DynamiteWeight        = 0.5
	DynamiteRadius        = 0.35
	DynamiteFuse          = 200 * time.Millisecond
	ExplosionRadius       = 1.5
	ExplosionForce        = 500.0
	ExplosionImpulseScale = 0.004 // world units per unit of force at the blast center
	ExplosionEffectLife   = 500 * time.Millisecond
	ExplosionEffectGrowth = 2.0 // radius gained over the effect lifetime
)

// Redworm tiers, indexed by speed (slow, medium, fast)
var (
	RedwormSpeeds    = [3]float64{1.0, 2.0, 4.0}
	RedwormPenalties = [3]time.Duration{1 * time.Second, 2 * time.Second, 3 * time.Second}
	RedwormValues    = [3]int{0, -10, -20}
	RedwormStuns     = [3]bool{false, false, true}
)

// Redworm behavior
const (
	RedwormWeight          = 5.0
	RedwormRadius          = 0.4
	RedwormTurnInterval    = 2 * time.Second
	RedwormEscapeDelay     = 200 * time.Millisecond
	RedwormStunDuration    = 1 * time.Second
	RedwormBoundaryWidth   = 12.0
	RedwormBoundaryTop     = -2.5
	RedwormBoundaryBottom  = -9.0
	RedwormCenterJitterDeg = 30.0
)

// Credit card tiers, indexed by tier (bronze, silver, gold)
var (
	CardDiscounts = [3]float64{0.25, 0.50, 0.75}
	CardDebts     = [3]float64{0.50, 0.75, 0.90}
	CardValues    = [3]int{10, 20, 30}
)

// Credit card body
const (
	CardWeight = 3.0
	CardRadius = 0.35
)

// Stress zones
const (
	StressZoneRadius   = 0.6
	StressZoneCooldown = 1500 * time.Millisecond
	StressZoneImpact   = 40.0
)

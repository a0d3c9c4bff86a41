package collectible

import (
	"math"

	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/parameter"
)

// Size tiers for rocks and gold
const (
	Small = iota
	Medium
	Large
)

// Speed tiers for redworms
const (
	Slow = iota
	Moderate
	Fast
)

// Card tiers
const (
	Bronze = iota
	Silver
	GoldCard
)

func tier(t int) int {
	if t < 0 {
		return 0
	}
	if t > 2 {
		return 2
	}
	return t
}

// levelScale returns 1 + perLevel*(level-1), level 1 is unscaled
func levelScale(level int, perLevel float64) float64 {
	if level < 1 {
		level = 1
	}
	return 1 + perLevel*float64(level-1)
}

func newObject(kind Kind, class Class, pos geom.Vec2) *Object {
	return &Object{kind: kind, class: class, Pos: pos, alive: true}
}

// NewGold creates a gold nugget with level-scaled weight and value
func NewGold(size, level int, pos geom.Vec2) *Object {
	size = tier(size)
	o := newObject(Gold, Standard, pos)
	o.Tier = size
	o.Radius = parameter.GoldRadii[size]
	o.weight = parameter.GoldWeights[size] * levelScale(level, parameter.GoldWeightPerLevel)
	o.value = int(math.Round(float64(parameter.GoldValues[size]) * levelScale(level, parameter.GoldValuePerLevel)))
	return o
}

// NewRock creates a rock with level-scaled weight and value
func NewRock(size, level int, pos geom.Vec2) *Object {
	size = tier(size)
	o := newObject(Rock, Standard, pos)
	o.Tier = size
	o.Radius = parameter.RockRadii[size]
	o.weight = parameter.RockWeights[size] * levelScale(level, parameter.RockWeightPerLevel)
	o.value = int(math.Round(float64(parameter.RockValues[size]) * levelScale(level, parameter.RockValuePerLevel)))
	return o
}

// NewDynamite creates an explosive charge
func NewDynamite(pos geom.Vec2) *Object {
	o := newObject(Dynamite, Explosive, pos)
	o.Radius = parameter.DynamiteRadius
	o.weight = parameter.DynamiteWeight
	o.value = -parameter.DynamiteDamage
	o.Fuse = parameter.DynamiteFuse
	o.BlastRadius = parameter.ExplosionRadius
	o.BlastForce = parameter.ExplosionForce
	return o
}

// NewRedworm creates an escaping hazard; speed grows with the tier and the level
func NewRedworm(speedTier, level int, pos geom.Vec2) *Object {
	speedTier = tier(speedTier)
	o := newObject(Redworm, Escaping, pos)
	o.Tier = speedTier
	o.Radius = parameter.RedwormRadius
	o.weight = parameter.RedwormWeight
	o.value = parameter.RedwormValues[speedTier]
	o.Speed = parameter.RedwormSpeeds[speedTier] * levelScale(level, 0.1)
	o.TimePenalty = parameter.RedwormPenalties[speedTier]
	o.Stun = parameter.RedwormStuns[speedTier]
	o.EscapeDelay = parameter.RedwormEscapeDelay
	o.Heading = geom.V(1, 0)
	return o
}

// NewCreditCard creates a store modifier pickup
func NewCreditCard(cardTier int, pos geom.Vec2) *Object {
	cardTier = tier(cardTier)
	o := newObject(CreditCard, Modifier, pos)
	o.Tier = cardTier
	o.Radius = parameter.CardRadius
	o.weight = parameter.CardWeight
	o.value = parameter.CardValues[cardTier]
	o.Card = Discount{
		Tier: cardTier,
		Rate: parameter.CardDiscounts[cardTier],
		Debt: parameter.CardDebts[cardTier],
	}
	return o
}

// New builds an object of kind with the tier meaning of that kind
func New(kind Kind, t, level int, pos geom.Vec2) *Object {
	switch kind {
	case Gold:
		return NewGold(t, level, pos)
	case Rock:
		return NewRock(t, level, pos)
	case Dynamite:
		return NewDynamite(pos)
	case Redworm:
		return NewRedworm(t, level, pos)
	case CreditCard:
		return NewCreditCard(t, pos)
	}
	return nil
}

package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/rope"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbDimText    = tcell.NewRGBColor(140, 140, 140)
	RgbMiner      = tcell.NewRGBColor(255, 165, 0)
	RgbHook       = tcell.NewRGBColor(220, 220, 220)
	RgbSelected   = tcell.NewRGBColor(60, 60, 90)

	RgbStressLow    = tcell.NewRGBColor(0, 200, 0)
	RgbStressMedium = tcell.NewRGBColor(255, 215, 0)
	RgbStressHigh   = tcell.NewRGBColor(255, 80, 80)

	RgbGold     = tcell.NewRGBColor(255, 215, 0)
	RgbRock     = tcell.NewRGBColor(150, 140, 130)
	RgbDynamite = tcell.NewRGBColor(255, 60, 60)
	RgbRedworm  = tcell.NewRGBColor(200, 60, 120)
	RgbCard     = tcell.NewRGBColor(100, 150, 255)

	RgbZonePressure = tcell.NewRGBColor(30, 50, 90)
	RgbZoneTension  = tcell.NewRGBColor(90, 60, 20)
	RgbZoneShear    = tcell.NewRGBColor(90, 25, 25)
	RgbZoneCooling  = tcell.NewRGBColor(45, 45, 55)

	RgbBlast = tcell.NewRGBColor(255, 140, 0)
)

// StressColor maps a stress fraction of MaxStress to the rope color band
func StressColor(pct float64) tcell.Color {
	switch {
	case pct < parameter.StressBandLow:
		return RgbStressLow
	case pct < parameter.StressBandMedium:
		return RgbStressMedium
	default:
		return RgbStressHigh
	}
}

func objectGlyph(k collectible.Kind) (rune, tcell.Color) {
	switch k {
	case collectible.Gold:
		return '$', RgbGold
	case collectible.Rock:
		return '#', RgbRock
	case collectible.Dynamite:
		return '!', RgbDynamite
	case collectible.Redworm:
		return '~', RgbRedworm
	case collectible.CreditCard:
		return '=', RgbCard
	}
	return '?', RgbStatusText
}

func zoneColor(t rope.StressType) tcell.Color {
	switch t {
	case rope.Pressure:
		return RgbZonePressure
	case rope.Tension:
		return RgbZoneTension
	case rope.Shear:
		return RgbZoneShear
	}
	return RgbZoneCooling
}

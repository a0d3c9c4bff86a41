package render

import (
	"math"

	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/parameter"
)

// Viewport maps world units to terminal cells
// The anchor sits centered one row below the HUD, world Y grows upward
type Viewport struct {
	Width, Height    int
	OriginX, OriginY int
}

// NewViewport centers the world origin for a screen of w by h cells
func NewViewport(w, h int) Viewport {
	return Viewport{Width: w, Height: h, OriginX: w / 2, OriginY: parameter.TopMargin + 1}
}

// ToCell returns the cell holding world point p
func (v Viewport) ToCell(p geom.Vec2) (int, int) {
	x := v.OriginX + int(math.Round(p.X*parameter.CellsPerUnitX))
	y := v.OriginY - int(math.Round(p.Y*parameter.CellsPerUnitY))
	return x, y
}

// ToWorld returns the world point at the center of cell (x, y)
func (v Viewport) ToWorld(x, y int) geom.Vec2 {
	return geom.V(
		float64(x-v.OriginX)/parameter.CellsPerUnitX,
		float64(v.OriginY-y)/parameter.CellsPerUnitY,
	)
}

// InField reports whether the cell lies between the HUD and the help line
func (v Viewport) InField(x, y int) bool {
	return x >= 0 && x < v.Width && y >= parameter.TopMargin && y < v.Height-parameter.BottomMargin
}

// Line returns the cells of a straight segment, endpoints included
func Line(x0, y0, x1, y1 int) [][2]int {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	cells := make([][2]int, 0, max(dx, -dy)+1)
	for {
		cells = append(cells, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return cells
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Package render draws the game world, HUD and menus on a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/gold-miner/engine"
	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/hook"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/session"
)

const helpText = "space/j fire  p pause  m mute  q quit"

// Renderer draws frames on a tcell screen
type Renderer struct {
	screen tcell.Screen
	view   Viewport
	base   tcell.Style
}

// NewRenderer creates a renderer sized to the screen
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusText),
	}
	r.Resize()
	return r
}

// Resize re-reads the screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.view = NewViewport(w, h)
}

// Viewport returns the current world to cell mapping
func (r *Renderer) Viewport() Viewport { return r.view }

// Draw renders the running game and shows the frame
func (r *Renderer) Draw(w *engine.World) {
	r.clear()
	r.drawZones(w)
	r.drawObjects(w)
	r.drawRope(w)
	r.drawOverlay(w)
	r.drawHUD(w)
	r.drawHelp(helpText)
	if w.Session != nil && w.Session.State() == session.Paused {
		r.centered(r.view.Height/2, " PAUSED ", r.base.Reverse(true))
	}
	r.screen.Show()
}

func (r *Renderer) clear() {
	r.screen.SetStyle(r.base)
	r.screen.Clear()
	for y := 0; y < r.view.Height; y++ {
		for x := 0; x < r.view.Width; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.base)
		}
	}
}

func (r *Renderer) drawZones(w *engine.World) {
	if w.Field == nil {
		return
	}
	for _, z := range w.Field.Zones() {
		bg := zoneColor(z.Type)
		if !z.Ready() {
			bg = RgbZoneCooling
		}
		r.fillDisc(z.Pos, z.Radius, '░', r.base.Background(bg).Foreground(RgbDimText))
	}
}

func (r *Renderer) drawObjects(w *engine.World) {
	if w.Field == nil {
		return
	}
	for _, o := range w.Field.Objects() {
		if !o.Alive() {
			continue
		}
		ch, fg := objectGlyph(o.Kind())
		r.fillDisc(o.Pos, o.Radius, ch, r.base.Foreground(fg).Bold(o.Attached()))
	}
}

// fillDisc paints every field cell whose center lies within radius of c, at least the center cell
func (r *Renderer) fillDisc(c geom.Vec2, radius float64, ch rune, style tcell.Style) {
	cx, cy := r.view.ToCell(c)
	rx := int(math.Ceil(radius * parameter.CellsPerUnitX))
	ry := int(math.Ceil(radius * parameter.CellsPerUnitY))
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if !r.view.InField(x, y) {
				continue
			}
			if (x == cx && y == cy) || r.view.ToWorld(x, y).Dist(c) <= radius {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}
}

func (r *Renderer) drawRope(w *engine.World) {
	h := w.Hook
	if h == nil {
		return
	}
	ax, ay := r.view.ToCell(h.Anchor())
	r.put(ax, ay-1, 'M', r.base.Foreground(RgbMiner).Bold(true))

	if h.State() == hook.StateBroken {
		r.put(ax, ay, 'x', r.base.Foreground(RgbStressHigh))
		return
	}

	color := RgbStressLow
	if w.Stress != nil {
		color = StressColor(w.Stress.Percentage())
	}
	hx, hy := r.view.ToCell(h.Position())
	ropeStyle := r.base.Foreground(color)
	cells := Line(ax, ay, hx, hy)
	for _, c := range cells[:len(cells)-1] {
		r.put(c[0], c[1], '·', ropeStyle)
	}
	r.put(hx, hy, 'J', r.base.Foreground(RgbHook).Bold(true))
}

func (r *Renderer) drawOverlay(w *engine.World) {
	blast := r.base.Foreground(RgbBlast)
	for _, b := range w.Overlay.Blasts {
		rad := b.CurrentRadius()
		for deg := 0; deg < 360; deg += 10 {
			p := b.Center.Add(geom.Heading(float64(deg)).Scale(rad))
			x, y := r.view.ToCell(p)
			r.put(x, y, '*', blast)
		}
	}
	for _, t := range w.Overlay.Texts {
		x, y := r.view.ToCell(t.Pos)
		x -= runewidth.StringWidth(t.Message) / 2
		if y < parameter.TopMargin || y >= r.view.Height-parameter.BottomMargin {
			continue
		}
		r.text(x, y, t.Message, r.base.Bold(true))
	}
}

func (r *Renderer) drawHUD(w *engine.World) {
	for x := 0; x < r.view.Width; x++ {
		r.screen.SetContent(x, 0, ' ', nil, r.base)
	}
	x := 0
	if s := w.Session; s != nil {
		secs := int(math.Ceil(s.Remaining().Seconds()))
		x = r.text(x, 0, fmt.Sprintf("$%d/$%d  L%d  %ds  ", s.Money(), s.Goal(), s.Level(), secs), r.base)
	}
	if w.Ropes != nil {
		x = r.text(x, 0, fmt.Sprintf("Ropes %d  ", w.Ropes.Count()), r.base)
		if w.Ropes.DroughtActive() {
			x = r.text(x, 0, fmt.Sprintf("free rope %.0fs  ", math.Ceil(w.Ropes.DroughtRemaining().Seconds())), r.base.Foreground(RgbStressMedium))
		}
	}
	if w.Stress != nil {
		x = r.drawStressBar(x, w.Stress.Value()/w.Stress.Limit(), w.Stress.Percentage())
		if w.Stress.Repairing() {
			r.text(x, 0, " repairing", r.base.Foreground(RgbStressHigh))
		}
	}
}

// drawStressBar draws fill as a share of the break limit colored by pct of MaxStress
func (r *Renderer) drawStressBar(x int, fill, pct float64) int {
	n := int(math.Round(min(max(fill, 0), 1) * parameter.StressBarWidth))
	style := r.base.Foreground(StressColor(pct))
	x = r.text(x, 0, "Stress [", r.base)
	for i := 0; i < parameter.StressBarWidth; i++ {
		ch := '░'
		if i < n {
			ch = '█'
		}
		r.put(x, 0, ch, style)
		x++
	}
	return r.text(x, 0, fmt.Sprintf("] %d%%", int(math.Round(pct*100))), r.base)
}

func (r *Renderer) drawHelp(help string) {
	y := r.view.Height - 1
	for x := 0; x < r.view.Width; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.base)
	}
	r.text(0, y, runewidth.Truncate(help, r.view.Width, "…"), r.base.Foreground(RgbDimText))
}

func (r *Renderer) put(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.view.Width || y >= r.view.Height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

// text writes s at (x, y) honoring wide runes and returns the next free column
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.put(x, y, ch, style)
		x += runewidth.RuneWidth(ch)
	}
	return x
}

func (r *Renderer) centered(y int, s string, style tcell.Style) {
	r.text((r.view.Width-runewidth.StringWidth(s))/2, y, s, style)
}

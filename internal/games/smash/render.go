package smash

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-smash/internal/core"
)

// Visual characters for rendering
const (
	ActorChar      = '◆'
	TargetChar     = '▓'
	BrokenChar     = '░'
	ShardChar      = '✶'
	StrikeChar     = '━'
	ChargeChar     = '·'
	MeterFillChar  = '█'
	MeterEmptyChar = '·'
	MeterMarkChar  = '┃'
)

// Layout constants
const (
	cellAspect = 2.0 // Terminal cells are about twice as tall as wide
	meterWidth = 24
	minScreenW = 20
	minScreenH = 10
)

// viewport maps play-field units onto screen cells inside the track box.
type viewport struct {
	x, y       int // Top-left cell of the field interior
	cols, rows int
	sx, sy     float64 // Cells per play-field unit
}

func (g *Game) viewport(w, h int) viewport {
	track := g.sim.Config().Track

	// Row 0 is the HUD, the last row is the meter, the box border takes one more on each side.
	rows := h - 4
	cols := int(math.Round(float64(rows) * track.Width / track.Height * cellAspect))
	cols = core.Clamp(cols, 1, w-2)
	rows = core.Max(rows, 1)

	return viewport{
		x:    (w - cols) / 2,
		y:    2,
		cols: cols,
		rows: rows,
		sx:   float64(cols) / track.Width,
		sy:   float64(rows) / track.Height,
	}
}

// cell converts a play-field point to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	return v.x + int(math.Floor(x*v.sx)), v.y + int(math.Floor(y*v.sy))
}

// rect converts a play-field rectangle to screen cells, at least one cell in each direction.
func (v viewport) rect(r core.Rect) (x, y, w, h int) {
	x, y = v.cell(r.X, r.Y)
	w = core.Max(int(math.Round(r.W*v.sx)), 1)
	h = core.Max(int(math.Round(r.H*v.sy)), 1)
	return x, y, w, h
}

// clip trims a cell rectangle to the field interior so wrapped or tall
// objects never draw over the border.
func (v viewport) clip(x, y, w, h int) (int, int, int, int) {
	x0, y0 := core.Max(x, v.x), core.Max(y, v.y)
	x1, y1 := core.Min(x+w, v.x+v.cols), core.Min(y+h, v.y+v.rows)
	return x0, y0, x1 - x0, y1 - y0
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	v := g.viewport(w, h)
	dst.DrawBox(v.x-1, v.y-1, v.cols+2, v.rows+2, core.ColorGray)

	g.drawLanes(dst, v)
	g.drawTargets(dst, v)
	g.drawStrike(dst, v)
	g.drawActor(dst, v)
	g.drawHUD(dst)
	g.drawMeter(dst, h-1)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.sim.Cleared() {
		drawCenteredMessage(dst, "CLEARED", fmt.Sprintf("All %d targets smashed  |  Press R to restart", len(g.sim.Targets())))
	}
}

func (g *Game) drawLanes(dst *core.Screen, v viewport) {
	cfg := g.sim.Config().Targets
	for _, lane := range []float64{cfg.LaneLeft, cfg.LaneRight} {
		x, _ := v.cell(lane+cfg.HitboxWidth/2, 0)
		dst.DrawVLine(x, v.y, v.rows, '┊', core.ColorGray)
	}
}

func (g *Game) drawTargets(dst *core.Screen, v viewport) {
	for i, t := range g.sim.Targets() {
		x, y, w, h := v.clip(v.rect(g.sim.TargetHitbox(i)))

		switch {
		case g.broken[i] > 0:
			dst.FillRect(x, y, w, h, ShardChar, core.ColorBrightRed)
		case t.Active():
			dst.FillRect(x, y, w, h, TargetChar, core.ColorYellow)
		default:
			dst.FillRect(x, y, w, h, BrokenChar, core.ColorGray)
		}
	}
}

func (g *Game) drawStrike(dst *core.Screen, v viewport) {
	actor := g.sim.Actor()

	var r rune
	var c core.Color
	switch {
	case g.swingTicks > 0:
		r, c = StrikeChar, core.ColorMagenta
	case actor.StrikeArmed():
		r, c = StrikeChar, core.ColorOrange
	case actor.Holding() > 0:
		r, c = ChargeChar, core.ColorGray
	default:
		return
	}

	x, y, w, h := v.clip(v.rect(actor.StrikeRegion()))
	dst.FillRect(x, y, w, h, r, c)
}

func (g *Game) drawActor(dst *core.Screen, v viewport) {
	ax, ay := g.sim.Actor().Position()
	x, y := v.cell(ax, ay)
	c := core.ColorCyan
	if g.sim.Actor().Holding() > 0 {
		c = core.ColorBrightYellow
	}
	dst.SetColored(x, y, ActorChar, c)
}

func (g *Game) drawHUD(dst *core.Screen) {
	status := fmt.Sprintf(" Targets: %d/%d ", g.sim.ActiveCount(), len(g.sim.Targets()))
	dst.DrawText(1, 0, status)

	title := " " + strings.ToUpper(g.Title()) + " "
	dst.DrawTextColored(dst.Width()-len(title)-1, 0, title, core.ColorCyan)
}

func (g *Game) drawMeter(dst *core.Screen, y int) {
	actor := g.sim.Actor()
	filled := int(actor.Charge() * meterWidth)
	mark := int(math.Ceil(actor.ArmThreshold() * meterWidth))

	fillColor := core.ColorYellow
	if actor.StrikeArmed() {
		fillColor = core.ColorGreen
	}

	label := " Charge "
	x := (dst.Width() - len(label) - meterWidth - 2) / 2
	dst.DrawText(x, y, label)
	x += len(label)

	dst.Set(x, y, '[')
	for i := 0; i < meterWidth; i++ {
		switch {
		case i < filled:
			dst.SetColored(x+1+i, y, MeterFillChar, fillColor)
		case i == mark:
			dst.SetColored(x+1+i, y, MeterMarkChar, core.ColorRed)
		default:
			dst.SetColored(x+1+i, y, MeterEmptyChar, core.ColorGray)
		}
	}
	dst.Set(x+1+meterWidth, y, ']')
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorDefault)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

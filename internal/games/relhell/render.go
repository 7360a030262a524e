package relhell

import (
	"fmt"
	"math"
	"sort"

	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/spacetime"
	"github.com/vovakirdan/relhell/internal/world"
)

// viewRadius is the stereographic radius that fits half the screen height.
const viewRadius = 0.6

// headingGlyphs are indexed by the heading in eighths of a turn.
var headingGlyphs = []rune("→↗↑↖←↙↓↘")

// projector maps stereographic coordinates to screen cells. Screen rows grow
// downwards, so the ship heading 90° points up.
type projector struct {
	cx, cy float64
	unit   float64
	cos    float64
	sin    float64
	w, h   int
}

func (g *Game) projector(dst *core.Screen) projector {
	w, h := dst.Width(), dst.Height()
	playH := float64(h - 2)
	unit := math.Min(float64(w)/4, playH/2) / viewRadius
	p := projector{
		cx:   float64(w) / 2,
		cy:   1 + playH/2,
		unit: unit,
		cos:  1,
		w:    w,
		h:    h,
	}
	if g.autoRotate {
		beta := spacetime.Degrees(g.ang - 90)
		p.cos, p.sin = math.Cos(beta), math.Sin(beta)
	}
	return p
}

// cell returns the screen cell of p; ok is false far off screen.
func (p projector) cell(pt core.Point) (x, y int, ok bool) {
	rx := pt.X*p.cos - pt.Y*p.sin
	ry := pt.X*p.sin + pt.Y*p.cos
	fx := p.cx + rx*p.unit*2
	fy := p.cy + ry*p.unit
	if math.IsNaN(fx) || math.IsNaN(fy) || math.Abs(fx) > float64(4*p.w) || math.Abs(fy) > float64(4*p.h) {
		return 0, 0, false
	}
	return int(math.Round(fx)), int(math.Round(fy)), true
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	p := g.projector(dst)

	if g.canvas {
		g.drawBackdrop(dst, p)
	}

	if cone, complete := g.LightCone(); cone != nil {
		col := core.ColorGray
		if complete {
			col = core.ColorRed
		}
		for _, cr := range cone {
			if x, y, ok := p.cell(cr.Stereo()); ok {
				dst.SetColored(x, y, '·', col)
			}
		}
	}

	shown := append([]*world.Object(nil), g.frame.Shown...)
	sort.SliceStable(shown, func(i, j int) bool {
		return shown[i].Kind.Priority() < shown[j].Kind.Priority()
	})
	for _, o := range shown {
		g.drawObject(dst, p, o)
	}

	for _, gh := range g.Ghosts() {
		g.drawOutline(dst, p, gh.Pts, gh.Main, 'x', core.ColorGray)
		if g.viewTimes {
			g.drawTime(dst, p, gh.Main, gh.ProperTime, core.ColorWhite)
		}
	}

	if !g.gameOver && !g.paused {
		x, y, _ := p.cell(core.Point{})
		idx := 2
		if !g.autoRotate {
			idx = (int(math.Round(g.ang/45))%8 + 8) % 8
		}
		glyph := headingGlyphs[idx]
		col := world.ColorShip.Terminal()
		if g.shipPT < g.invincibleUntil && g.tickCount/8%2 == 0 {
			col = world.ResourceHull.Color().Terminal()
		}
		dst.SetColored(x, y, glyph, col)
	}

	g.drawHUD(dst)

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("%s  |  Score: %.2f  |  Press R to restart", g.reason, g.player.Score))
	} else if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "[ ] scrub time  |  Shift+move rotates  |  P resumes")
	}
}

// drawBackdrop draws rings at fixed distances from the ship.
func (g *Game) drawBackdrop(dst *core.Screen, p projector) {
	for _, d := range []float64{.25, .5, 1} {
		r := math.Tan(d / 2)
		for a := 0; a < 360; a += 4 {
			rad := spacetime.Degrees(float64(a))
			if x, y, ok := p.cell(core.Point{X: r * math.Cos(rad), Y: r * math.Sin(rad)}); ok {
				dst.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}
}

func glyphFor(o *world.Object) rune {
	switch o.Kind {
	case world.KindParticle:
		return '.'
	case world.KindMissile:
		return '•'
	case world.KindMainRock:
		return '@'
	case world.KindResource:
		switch o.Resource {
		case world.ResourceHull:
			return 'H'
		case world.ResourceGold:
			return 'G'
		case world.ResourceAmmo:
			return 'A'
		case world.ResourceFuel:
			return 'F'
		case world.ResourceOxygen:
			return 'O'
		}
		return '?'
	default:
		return '#'
	}
}

func (g *Game) drawObject(dst *core.Screen, p projector, o *world.Object) {
	glyph := glyphFor(o)
	col := o.Color.Terminal()
	g.drawOutline(dst, p, o.Pts, o.Main, glyph, col)
	if o.Kind == world.KindResource {
		if x, y, ok := p.cell(o.Main.Stereo()); ok {
			dst.SetColored(x, y, glyph, col)
		}
	}
	if g.viewTimes && o.Kind != world.KindParticle {
		t := o.Main.Shift
		if o.Kind == world.KindMainRock {
			t += g.current.Shift
		}
		g.drawTime(dst, p, o.Main, t, core.ColorYellow)
	}
}

// drawOutline connects the projected outline; outlines smaller than a cell
// collapse to a single glyph.
func (g *Game) drawOutline(dst *core.Screen, p projector, pts []spacetime.CrossResult, main spacetime.CrossResult, glyph rune, col core.Color) {
	cells := make([][2]int, 0, len(pts))
	for _, cr := range pts {
		x, y, ok := p.cell(cr.Stereo())
		if !ok {
			return
		}
		cells = append(cells, [2]int{x, y})
	}
	if len(cells) == 0 {
		return
	}

	minX, maxX, minY, maxY := cells[0][0], cells[0][0], cells[0][1], cells[0][1]
	for _, c := range cells {
		minX, maxX = min(minX, c[0]), max(maxX, c[0])
		minY, maxY = min(minY, c[1]), max(maxY, c[1])
	}
	if maxX-minX <= 1 && maxY-minY <= 1 {
		if x, y, ok := p.cell(main.Stereo()); ok {
			dst.SetColored(x, y, glyph, col)
		}
		return
	}

	for i := range cells {
		a, b := cells[i], cells[(i+1)%len(cells)]
		dst.DrawLine(a[0], a[1], b[0], b[1], glyph, col)
	}
}

func (g *Game) drawTime(dst *core.Screen, p projector, main spacetime.CrossResult, t float64, col core.Color) {
	if x, y, ok := p.cell(main.Stereo()); ok {
		dst.DrawTextColored(x+2, y, fmt.Sprintf("%.1f", t), col)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	pd := g.player
	top := fmt.Sprintf(" Hull %d  Ammo %d  Fuel %.0f  O2 %.0f  Gold %d  Score %.2f ",
		pd.Hull, pd.Ammo, pd.Fuel, pd.Oxygen, pd.Gold, pd.Score)
	dst.DrawText(1, 0, top)

	bottom := fmt.Sprintf(" τ %.2f  hits %d  %s ", g.shipPT, pd.RocksHit, g.mode)
	if g.paused {
		bottom = fmt.Sprintf(" τ %.2f  view %+.2f  %s ", g.shipPT, g.viewPT, g.mode)
	}
	dst.DrawText(1, dst.Height()-1, bottom)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW, subW := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(titleW, subW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-titleW)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subW)/2, boxY+3, subtitle)
}

package swarm

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/swarm/internal/assets"
	"github.com/vovakirdan/swarm/internal/core"
)

var controlsHelp = []string{
	"Right click   move",
	"Left click    shoot",
	"F             shoot at cursor",
	"Space         melee attack",
	"S             stop",
	"Esc / P       pause",
	"Tab           scoreboard",
	"Ctrl+S        screenshot",
}

// drawTextAt centres text horizontally on the cell containing the field point p.
func drawTextAt(dst *core.Screen, view core.Viewport, p core.Vec, text string, c core.Color) {
	col, row := view.ToCell(p)
	dst.DrawTextColor(col-len([]rune(text))/2, row, text, c)
}

// drawCircle outlines a field-space circle.
func drawCircle(dst *core.Screen, view core.Viewport, center core.Vec, radius float64, ch rune, c core.Color) {
	r := view.ToCellRect(core.SquareAt(center, radius*2))
	dst.DrawEllipse(r, ch, c)
}

func renderBackground(s *Session, dst *core.Screen, view core.Viewport, name string) {
	bg := s.assets.Image(name)
	if bg.Placeholder || bg.Glyph == ' ' {
		return
	}
	area := view.Area()
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			if (x-area.X)%4 == 0 && (y-area.Y)%2 == 0 {
				dst.SetColor(x, y, bg.Glyph, bg.Color)
			}
		}
	}
}

func renderHUD(s *Session, dst *core.Screen) {
	p := s.Player
	if p == nil {
		return
	}

	const barWidth = 20
	frac := 0.0
	if p.MaxHealth > 0 {
		frac = core.ClampF(float64(p.Health)/float64(p.MaxHealth), 0, 1)
	}
	filled := int(math.Round(frac * barWidth))

	barColor := core.ColorGreen
	switch {
	case frac <= 0.25:
		barColor = core.ColorRed
	case frac <= 0.5:
		barColor = core.ColorYellow
	}

	dst.DrawTextColor(1, 0, "HP", core.ColorWhite)
	dst.DrawTextColor(4, 0, strings.Repeat("█", filled), barColor)
	dst.DrawTextColor(4+filled, 0, strings.Repeat("░", barWidth-filled), core.ColorDarkRed)
	x := 5 + barWidth
	hp := fmt.Sprintf("%3d/%d   ", max(p.Health, 0), p.MaxHealth)
	dst.DrawTextColor(x, 0, hp, core.ColorWhite)
	x += len(hp)
	score := fmt.Sprintf("Score: %d", p.Score)
	dst.DrawTextColor(x, 0, score, core.ColorGold)
	x += len(score)
	dst.DrawTextColor(x, 0, fmt.Sprintf("   Enemies: %d", len(s.Enemies)), core.ColorWhite)
}

// spriteFor resolves an image, falling back to a generic name, then to a
// solid block in the given color.
func spriteFor(s *Session, c core.Color, names ...string) assets.Sprite {
	for _, n := range names {
		if sp := s.assets.Image(n); !sp.Placeholder {
			if sp.Color == core.ColorDefault {
				sp.Color = c
			}
			return sp
		}
	}
	return assets.Sprite{Glyph: '█', Color: c, Placeholder: true}
}

func renderPlaying(s *Session, dst *core.Screen, view core.Viewport) {
	renderBackground(s, dst, view, "background")

	for _, ind := range s.Indicators.Items() {
		ch := '○'
		if ind.Alpha < 128 {
			ch = '·'
		}
		drawCircle(dst, view, ind.Pos, ind.Radius, ch, core.ColorGreen)
	}

	shot := spriteFor(s, core.ColorYellow, "projectile")
	for _, p := range s.Projectiles {
		col, row := view.ToCell(p.Pos)
		dst.SetColor(col, row, shot.Glyph, shot.Color)
	}

	renderPlayer(s, dst, view)

	for _, e := range s.Enemies {
		renderEnemy(s, dst, view, e)
	}

	renderHUD(s, dst)
}

func renderPlayer(s *Session, dst *core.Screen, view core.Viewport) {
	p := s.Player
	sp := spriteFor(s, core.ColorBrightBlue, "player")
	dst.FillRect(view.ToCellRect(p.Rect()), sp.Glyph, sp.Color)

	if t, ok := p.Target(); ok {
		col, row := view.ToCell(t)
		dst.SetColor(col, row, '+', core.ColorYellow)
	}
	if p.Attacking() {
		drawCircle(dst, view, p.Center(), p.Size*1.5, '∙', core.ColorBrightRed)
	}
}

func renderEnemy(s *Session, dst *core.Screen, view core.Viewport, e *Enemy) {
	st := e.Stats()
	sp := spriteFor(s, st.Color, "enemy_"+e.Type().String(), "enemy")
	r := e.Rect()

	switch st.Shape {
	case ShapeTriangle:
		// Apex up; cell coordinates keep the field's proportions
		ax, ay := view.ToCellF(core.V(r.X+r.W/2, r.Y))
		lx, ly := view.ToCellF(core.V(r.X, r.Bottom()))
		rx, ry := view.ToCellF(core.V(r.Right(), r.Bottom()))
		dst.FillTriangle(ax, ay, lx, ly, rx, ry, sp.Glyph, sp.Color)
		// Tiny triangles may cover no cell centre
		col, row := view.ToCell(e.Center())
		dst.SetColor(col, row, sp.Glyph, sp.Color)
	case ShapeCircle:
		dst.FillEllipse(view.ToCellRect(r), sp.Glyph, sp.Color)
	default:
		dst.FillRect(view.ToCellRect(r), sp.Glyph, sp.Color)
	}
}

func renderParticles(s *Session, dst *core.Screen, view core.Viewport) {
	for _, p := range s.Particles.Items() {
		ch := '*'
		if p.Fade() < 0.5 {
			ch = '.'
		}
		col, row := view.ToCell(p.Pos)
		if view.Contains(col, row) {
			dst.SetColor(col, row, ch, p.Color)
		}
	}
}

func renderButtons(dst *core.Screen, view core.Viewport, m *Menu) {
	for i, b := range m.Buttons {
		color := core.ColorBlue
		if b.Hovered || i == m.Selected {
			color = core.ColorBrightYellow
		}
		r := view.ToCellRect(b.Rect)
		if r.H >= 3 {
			dst.DrawBoxColor(r, color)
			drawTextAt(dst, view, b.Rect.Center(), b.Label, color)
			continue
		}
		// Too small for a box: bracket the label instead
		drawTextAt(dst, view, b.Rect.Center(), "[ "+b.Label+" ]", color)
	}
}

func renderMenu(s *Session, dst *core.Screen, view core.Viewport) {
	renderBackground(s, dst, view, "menu_bg")
	f := s.field

	title := s.assets.Font("title").Render("Swarm")
	drawTextAt(dst, view, core.V(f.W/2, 100), title, core.ColorBrightCyan)
	drawTextAt(dst, view, core.V(f.W/2, 160), "survive the swarm", core.ColorGray)

	if s.showControls {
		renderControls(dst, view, f)
		return
	}
	renderButtons(dst, view, s.menu)
}

func renderControls(dst *core.Screen, view core.Viewport, f Field) {
	panel := core.NewRectF(f.W/2-220, 220, 440, 340)
	r := view.ToCellRect(panel)
	dst.FillRect(r, ' ', core.ColorDefault)
	dst.DrawBoxColor(r, core.ColorCyan)

	_, top := view.ToCell(core.V(0, panel.Y))
	col, _ := view.ToCell(core.V(panel.X, 0))
	for i, line := range controlsHelp {
		dst.DrawTextColor(col+2, top+1+i, line, core.ColorWhite)
	}
	drawTextAt(dst, view, core.V(f.W/2, panel.Bottom()-20), "press any key", core.ColorGray)
}

func renderPauseOverlay(s *Session, dst *core.Screen, view core.Viewport) {
	f := s.field
	// Dim the frozen game behind the menu
	area := view.Area()
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			c := dst.GetCell(x, y)
			dst.SetColor(x, y, c.Rune, core.ColorGray)
		}
	}

	title := s.assets.Font("main").Render("Paused")
	drawTextAt(dst, view, core.V(f.W/2, 100), title, core.ColorWhite)
	renderButtons(dst, view, s.pauseMenu)
}

func renderEnd(s *Session, dst *core.Screen, view core.Viewport, victory bool) {
	f := s.field
	font := s.assets.Font("main")

	text, color := "Game Over", core.ColorRed
	if victory {
		text, color = "Victory!", core.ColorGold
	}
	drawTextAt(dst, view, core.V(f.W/2, f.H/2-50), font.Render(text), color)
	drawTextAt(dst, view, core.V(f.W/2, f.H/2+20), fmt.Sprintf("Final Score: %d", s.Score()), core.ColorWhite)
	drawTextAt(dst, view, core.V(f.W/2, f.H/2+80), "Press any key to return to menu", core.ColorWhite)
}

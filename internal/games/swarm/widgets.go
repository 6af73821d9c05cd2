package swarm

import "github.com/vovakirdan/swarm/internal/core"

// Button is a clickable menu entry laid out in play-field units.
type Button struct {
	Label   string
	Rect    core.RectF
	Hovered bool
}

// Menu is a vertical list of buttons with keyboard selection.
type Menu struct {
	Buttons  []Button
	Selected int
}

const (
	buttonWidth  = 200
	buttonHeight = 50
	buttonGap    = 70
)

// NewMenu lays out buttons centred horizontally, starting at top.
func NewMenu(field Field, top float64, labels ...string) *Menu {
	m := &Menu{}
	x := field.W/2 - buttonWidth/2
	for i, label := range labels {
		m.Buttons = append(m.Buttons, Button{
			Label: label,
			Rect:  core.NewRectF(x, top+float64(i)*buttonGap, buttonWidth, buttonHeight),
		})
	}
	return m
}

// Hover updates hover flags for the pointer at pos.
// A hovered button also becomes the keyboard selection.
func (m *Menu) Hover(pos core.Vec) {
	for i := range m.Buttons {
		b := &m.Buttons[i]
		b.Hovered = b.Rect.Contains(pos)
		if b.Hovered {
			m.Selected = i
		}
	}
}

// Click returns the index of the button under pos.
func (m *Menu) Click(pos core.Vec) (int, bool) {
	for i, b := range m.Buttons {
		if b.Rect.Contains(pos) {
			return i, true
		}
	}
	return 0, false
}

// Move shifts the keyboard selection, wrapping around.
func (m *Menu) Move(delta int) {
	n := len(m.Buttons)
	if n == 0 {
		return
	}
	m.Selected = ((m.Selected+delta)%n + n) % n
}

// Reset clears hover state and selects the first button.
func (m *Menu) Reset() {
	m.Selected = 0
	for i := range m.Buttons {
		m.Buttons[i].Hovered = false
	}
}

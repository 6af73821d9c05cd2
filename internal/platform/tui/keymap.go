package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swarm/internal/core"
)

// KeyMap holds the bindings handled by the platform itself.
// Everything else is forwarded to the game as a key event.
type KeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
	Scores     key.Binding
}

// DefaultKeyMap returns the default platform bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "run history"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scores, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MapKey translates a key message into a game key event.
// Returns false for keys that carry no name.
func MapKey(msg tea.KeyMsg) (core.Event, bool) {
	var k core.Key
	switch msg.Type {
	case tea.KeyEsc:
		k = core.KeyEscape
	case tea.KeyEnter:
		k = core.KeyEnter
	case tea.KeySpace:
		k = core.KeySpace
	case tea.KeyTab:
		k = core.KeyTab
	case tea.KeyUp:
		k = core.KeyUp
	case tea.KeyDown:
		k = core.KeyDown
	case tea.KeyLeft:
		k = core.KeyLeft
	case tea.KeyRight:
		k = core.KeyRight
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return core.Event{}, false
		}
		if msg.Runes[0] == ' ' {
			k = core.KeySpace
		} else {
			k = core.Key(string(msg.Runes))
		}
	default:
		return core.Event{}, false
	}
	return core.Event{Kind: core.EventKeyDown, Key: k}, true
}

// MouseTracker converts mouse messages to pointer events, remembering the
// last position so motion events carry a relative offset.
type MouseTracker struct {
	col, row int
	seen     bool
}

// Map translates a mouse message. Releases and wheel events are dropped.
func (t *MouseTracker) Map(msg tea.MouseMsg) (core.Event, bool) {
	dcol, drow := 0, 0
	if t.seen {
		dcol, drow = msg.X-t.col, msg.Y-t.row
	}
	t.col, t.row, t.seen = msg.X, msg.Y, true

	switch msg.Action {
	case tea.MouseActionPress:
		button := mapButton(msg.Button)
		if button == core.MouseNone {
			return core.Event{}, false
		}
		return core.Event{
			Kind:   core.EventMouseDown,
			Button: button,
			Col:    msg.X,
			Row:    msg.Y,
		}, true
	case tea.MouseActionMotion:
		return core.Event{
			Kind: core.EventMouseMotion,
			Col:  msg.X,
			Row:  msg.Y,
			DCol: dcol,
			DRow: drow,
		}, true
	}
	return core.Event{}, false
}

func mapButton(b tea.MouseButton) core.MouseButton {
	switch b {
	case tea.MouseButtonLeft:
		return core.MouseLeft
	case tea.MouseButtonRight:
		return core.MouseRight
	case tea.MouseButtonMiddle:
		return core.MouseMiddle
	default:
		return core.MouseNone
	}
}

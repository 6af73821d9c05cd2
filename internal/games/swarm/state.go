package swarm

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/swarm/internal/core"
)

// StateID names one of the fixed game states.
type StateID int

const (
	StateMenu StateID = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateVictory

	stateCount
)

var stateNames = [stateCount]string{"MENU", "PLAYING", "PAUSED", "GAME_OVER", "VICTORY"}

// String returns the canonical upper-case state name.
func (s StateID) String() string {
	if !s.valid() {
		return fmt.Sprintf("StateID(%d)", int(s))
	}
	return stateNames[s]
}

func (s StateID) valid() bool {
	return s >= 0 && s < stateCount
}

// ParseState looks up a state by name, ignoring case.
func ParseState(name string) (StateID, error) {
	for i, n := range stateNames {
		if strings.EqualFold(n, name) {
			return StateID(i), nil
		}
	}
	return 0, fmt.Errorf("swarm: unknown state %q", name)
}

// Event is an input event translated to play-field units.
type Event struct {
	Kind   core.EventKind
	Key    core.Key
	Button core.MouseButton
	Pos    core.Vec
	Rel    core.Vec
}

// Transition is what a state handler asks the machine to do next.
type Transition struct {
	To     StateID
	Change bool // Switch to To
	Quit   bool // Stop the game
}

// Stay keeps the current state.
func Stay() Transition { return Transition{} }

// Goto requests a switch to another state.
func Goto(to StateID) Transition { return Transition{To: to, Change: true} }

// Quit requests the game to stop.
func Quit() Transition { return Transition{Quit: true} }

// State handles one screen of the game. Handlers get the session explicitly
// and report transitions instead of switching states themselves.
type State interface {
	Enter(s *Session, from StateID)
	Exit(s *Session)
	HandleEvents(s *Session, events []Event) Transition
	Update(s *Session) Transition
	Render(s *Session, dst *core.Screen, view core.Viewport)
}

// Machine holds the active state and runs transitions.
type Machine struct {
	states   [stateCount]State
	current  StateID
	previous StateID
}

// NewMachine creates a machine with every state registered, starting in Menu.
// Enter is not called for the initial state.
func NewMachine() *Machine {
	return &Machine{
		states: [stateCount]State{
			StateMenu:     &menuState{},
			StatePlaying:  &playingState{},
			StatePaused:   &pausedState{},
			StateGameOver: &endState{outcome: StateGameOver},
			StateVictory:  &endState{outcome: StateVictory},
		},
		current:  StateMenu,
		previous: StateMenu,
	}
}

// Current returns the active state's ID.
func (m *Machine) Current() StateID {
	return m.current
}

// Previous returns the state active before the last transition.
func (m *Machine) Previous() StateID {
	return m.previous
}

// Active returns the handler of the active state.
func (m *Machine) Active() State {
	return m.states[m.current]
}

// Set exits the current state and enters to. Entering Playing from any
// state but Paused resets the session afterwards.
// Set panics on an unknown state: the state table is fixed.
func (m *Machine) Set(s *Session, to StateID) {
	if !to.valid() {
		panic(fmt.Sprintf("swarm: unknown state %d", int(to)))
	}

	m.previous = m.current
	m.states[m.current].Exit(s)
	m.current = to
	m.states[to].Enter(s, m.previous)

	if to == StatePlaying && m.previous != StatePaused {
		s.Reset()
	}

	s.log.Debug("state transition", "from", m.previous, "to", to)
}

// Apply performs a transition returned by a handler.
// It returns true if the handler asked to quit.
func (m *Machine) Apply(s *Session, t Transition) bool {
	if t.Quit {
		return true
	}
	if t.Change {
		m.Set(s, t.To)
	}
	return false
}

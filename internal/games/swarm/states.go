package swarm

import "github.com/vovakirdan/swarm/internal/core"

// Menu button indexes
const (
	menuStart = iota
	menuControls
	menuQuit
)

// Pause menu button indexes
const (
	pauseResume = iota
	pauseMainMenu
	pauseQuit
)

func isUp(k core.Key) bool   { return k == core.KeyUp || k == "w" || k == "k" }
func isDown(k core.Key) bool { return k == core.KeyDown || k == "s" || k == "j" }
func isConfirm(k core.Key) bool {
	return k == core.KeyEnter || k == core.KeySpace
}

// navigate applies keyboard and mouse input to a button menu.
// It returns the index of an activated button.
func navigate(s *Session, m *Menu, e Event) (int, bool) {
	switch e.Kind {
	case core.EventKeyDown:
		switch {
		case isUp(e.Key):
			m.Move(-1)
		case isDown(e.Key):
			m.Move(1)
		case isConfirm(e.Key):
			s.playSound(SoundClick)
			return m.Selected, true
		}
	case core.EventMouseMotion:
		m.Hover(e.Pos)
	case core.EventMouseDown:
		if e.Button != core.MouseLeft {
			return 0, false
		}
		if i, ok := m.Click(e.Pos); ok {
			s.playSound(SoundClick)
			return i, true
		}
	}
	return 0, false
}

// menuState is the title screen.
type menuState struct{}

func (menuState) Enter(s *Session, _ StateID) {
	s.menu.Reset()
	s.showControls = false
	if s.mouseKnown {
		s.menu.Hover(s.Mouse)
	}
}

func (menuState) Exit(*Session) {}

func (menuState) HandleEvents(s *Session, events []Event) Transition {
	for _, e := range events {
		if e.Kind == core.EventQuit {
			return Quit()
		}
		if s.showControls {
			// Any key or click closes the controls panel
			if e.Kind == core.EventKeyDown || e.Kind == core.EventMouseDown {
				s.showControls = false
			}
			continue
		}
		if e.Kind == core.EventKeyDown && e.Key == "q" {
			return Quit()
		}
		i, ok := navigate(s, s.menu, e)
		if !ok {
			continue
		}
		switch i {
		case menuStart:
			return Goto(StatePlaying)
		case menuControls:
			s.showControls = true
		case menuQuit:
			return Quit()
		}
	}
	return Stay()
}

func (menuState) Update(*Session) Transition { return Stay() }

func (menuState) Render(s *Session, dst *core.Screen, view core.Viewport) {
	renderMenu(s, dst, view)
}

// playingState runs the simulation.
type playingState struct{}

func (playingState) Enter(s *Session, _ StateID) {
	s.Player.StopMovement()
	s.Indicators.Clear()
}

func (playingState) Exit(*Session) {}

func (playingState) HandleEvents(s *Session, events []Event) Transition {
	for _, e := range events {
		switch e.Kind {
		case core.EventQuit:
			return Quit()

		case core.EventKeyDown:
			switch e.Key {
			case core.KeyEscape, "p":
				return Goto(StatePaused)
			case core.KeySpace:
				s.Player.Attack()
			case "f":
				// Shoot at the last known pointer position
				if s.mouseKnown {
					s.Indicators.Add(s.Mouse)
					s.FireAt(s.Mouse)
				}
			case "s":
				s.Player.StopMovement()
			}

		case core.EventMouseDown:
			switch e.Button {
			case core.MouseLeft:
				s.Indicators.Add(e.Pos)
				s.FireAt(e.Pos)
			case core.MouseRight:
				s.Indicators.Add(e.Pos)
				s.Player.SetTarget(e.Pos)
			}
		}
	}
	return Stay()
}

func (playingState) Update(s *Session) Transition {
	out := s.simulate()
	s.Indicators.Update()

	if out.PlayerDefeated {
		return Goto(StateGameOver)
	}
	if out.Victory {
		return Goto(StateVictory)
	}
	return Stay()
}

func (playingState) Render(s *Session, dst *core.Screen, view core.Viewport) {
	renderPlaying(s, dst, view)
}

// pausedState freezes the run behind a menu.
type pausedState struct{}

func (pausedState) Enter(s *Session, _ StateID) {
	s.pauseMenu.Reset()
	if s.mouseKnown {
		s.pauseMenu.Hover(s.Mouse)
	}
}

func (pausedState) Exit(*Session) {}

func (pausedState) HandleEvents(s *Session, events []Event) Transition {
	for _, e := range events {
		if e.Kind == core.EventQuit {
			return Quit()
		}
		if e.Kind == core.EventKeyDown && (e.Key == core.KeyEscape || e.Key == "p") {
			return Goto(StatePlaying)
		}
		i, ok := navigate(s, s.pauseMenu, e)
		if !ok {
			continue
		}
		switch i {
		case pauseResume:
			return Goto(StatePlaying)
		case pauseMainMenu:
			return Goto(StateMenu)
		case pauseQuit:
			return Quit()
		}
	}
	return Stay()
}

func (pausedState) Update(*Session) Transition { return Stay() }

func (pausedState) Render(s *Session, dst *core.Screen, view core.Viewport) {
	renderPlaying(s, dst, view)
	renderPauseOverlay(s, dst, view)
}

// endState shows the result of a run until any key is pressed.
type endState struct {
	outcome StateID // StateGameOver or StateVictory
}

func (st *endState) Enter(s *Session, _ StateID) {
	if st.outcome == StateVictory {
		s.playSound(SoundVictory)
	} else {
		s.playSound(SoundGameOver)
	}
	s.log.Info("run finished", "outcome", st.outcome, "score", s.Score(), "ticks", s.Ticks())
}

func (st *endState) Exit(*Session) {}

func (st *endState) HandleEvents(s *Session, events []Event) Transition {
	for _, e := range events {
		switch e.Kind {
		case core.EventQuit:
			return Quit()
		case core.EventKeyDown:
			return Goto(StateMenu)
		}
	}
	return Stay()
}

func (st *endState) Update(*Session) Transition { return Stay() }

func (st *endState) Render(s *Session, dst *core.Screen, view core.Viewport) {
	renderEnd(s, dst, view, st.outcome == StateVictory)
}

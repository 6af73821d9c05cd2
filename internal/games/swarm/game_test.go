package swarm

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/swarm/internal/core"
	"github.com/vovakirdan/swarm/internal/registry"
)

func screenText(s *core.Screen) string {
	return s.String()
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q not registered", GameID)
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Swarm" {
		t.Errorf("Title() = %q, expected Swarm", g.Title())
	}
}

func TestGameStartsInMenu(t *testing.T) {
	g := newTestGame(nil)
	st := g.State()
	if !st.InMenu || st.Phase != "MENU" {
		t.Errorf("State() = %+v, expected the menu", st)
	}
}

func TestGameStartFromMenu(t *testing.T) {
	g := newTestGame(nil)

	res := g.Step(frame(keyDown(core.KeyEnter)))

	if res.State.Phase != "PLAYING" {
		t.Fatalf("Phase = %s, expected PLAYING", res.State.Phase)
	}
	if res.State.Enemies != 5 || res.State.Health != 100 {
		t.Errorf("State() = %+v, expected 5 enemies and full health", res.State)
	}
	if res.State.Ticks != 1 {
		t.Errorf("Ticks = %d, expected the first tick to simulate", res.State.Ticks)
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs must give identical runs
	script := make([]core.InputFrame, 400)
	for i := range script {
		script[i] = core.NewInputFrame()
		switch {
		case i == 0:
			script[i].Add(keyDown(core.KeyEnter))
		case i%50 == 1:
			script[i].Add(click(core.MouseRight, 10+i%60, 5+i%20))
		case i%7 == 0:
			script[i].Add(click(core.MouseLeft, 40, 16))
		case i%45 == 0:
			script[i].Add(keyDown(core.KeySpace))
		}
	}

	run := func() ([]Snapshot, *Game) {
		g := newTestGame(nil)
		var snaps []Snapshot
		for _, in := range script {
			g.Step(in)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps, g
	}

	a, g1 := run()
	b, _ := run()

	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			t.Fatalf("tick %d diverged:\n%+v\n%+v", i, a[i], b[i])
		}
	}
	if g1.Snapshot().Ticks == 0 {
		t.Error("script never simulated a tick")
	}
}

func TestGameDifferentSeedsDiffer(t *testing.T) {
	g1 := newTestGame(nil)
	g2 := NewWithOptions(Options{})
	g2.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 31, TickRate: 60, Seed: 8})

	g1.Step(frame(keyDown(core.KeyEnter)))
	g2.Step(frame(keyDown(core.KeyEnter)))

	if reflect.DeepEqual(g1.Snapshot().Enemies, g2.Snapshot().Enemies) {
		t.Error("different seeds produced the same enemy layout")
	}
}

func TestGameClickMapsThroughViewport(t *testing.T) {
	g := newTestGame(nil)
	g.SetState(StatePlaying)

	// Column 40, row 16 is the cell holding field point (405, 310)
	g.Step(frame(click(core.MouseRight, 40, 16)))

	target, ok := g.Session().Player.Target()
	if !ok {
		t.Fatal("right click should set a target")
	}
	if !near(target.X, 405) || !near(target.Y, 310) {
		t.Errorf("Target() = %v, expected (405, 310)", target)
	}
}

func TestGameIgnoresClicksOutsideField(t *testing.T) {
	g := NewWithOptions(Options{})
	// 200 columns letterbox the field into columns 60..139
	g.Reset(core.RuntimeConfig{ScreenW: 200, ScreenH: 31, TickRate: 60, Seed: 1})
	g.SetState(StatePlaying)

	g.Step(frame(click(core.MouseLeft, 5, 10)))
	if n := len(g.Session().Projectiles); n != 0 {
		t.Fatalf("click in the letterbox fired %d projectiles", n)
	}
	if len(g.Session().Indicators.Items()) != 0 {
		t.Error("click in the letterbox left an indicator")
	}

	g.Step(frame(click(core.MouseLeft, 100, 10)))
	if n := len(g.Session().Projectiles); n != 1 {
		t.Errorf("click inside the field fired %d projectiles, expected 1", n)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := newTestGame(nil)
	g.Step(frame(keyDown(core.KeyEnter)))
	g.Session().Player.Score = 30
	enemies := len(g.Session().Enemies)
	shots := len(g.Session().Projectiles)
	g.Step(frame(keyDown(core.KeyEscape)))

	if !g.State().Paused {
		t.Fatalf("Phase = %s, expected PAUSED", g.State().Phase)
	}
	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("simulation advanced while paused")
	}

	g.Step(frame(keyDown("p")))
	if g.State().Phase != "PLAYING" || g.Session().Runs() != 1 {
		t.Errorf("resume: Phase %s, runs %d, expected PLAYING and the same run", g.State().Phase, g.Session().Runs())
	}
	s := g.Session()
	if s.Score() != 30 || len(s.Enemies) != enemies || len(s.Projectiles) != shots {
		t.Errorf("resume: score %d, enemies %d, projectiles %d, expected 30, %d, %d",
			s.Score(), len(s.Enemies), len(s.Projectiles), enemies, shots)
	}
}

func TestGameVictory(t *testing.T) {
	a := &recordingAssets{}
	g := newTestGame(a)
	g.SetState(StatePlaying)
	g.Session().Enemies = nil

	st := g.Step(core.NewInputFrame()).State
	if !st.Victory || !st.RunEnded() {
		t.Fatalf("State() = %+v, expected victory", st)
	}
	if !a.played(SoundVictory) {
		t.Error("victory sound not played")
	}

	st = g.Step(frame(keyDown("x"))).State
	if !st.InMenu {
		t.Errorf("Phase = %s, expected MENU after a key", st.Phase)
	}
}

func TestGameOver(t *testing.T) {
	a := &recordingAssets{}
	g := newTestGame(a)
	g.SetState(StatePlaying)
	s := g.Session()
	s.Player.Health = 1
	s.Enemies[0].Pos = s.Player.Pos

	st := g.Step(core.NewInputFrame()).State
	if !st.GameOver || st.Victory {
		t.Fatalf("State() = %+v, expected game over", st)
	}
	if st.Health != 0 {
		t.Errorf("Health = %d, expected 0 once defeated", st.Health)
	}
	if !a.played(SoundGameOver) {
		t.Error("game over sound not played")
	}

	// The run is frozen until a key is pressed
	ticks := st.Ticks
	g.Step(core.NewInputFrame())
	if g.State().Ticks != ticks {
		t.Error("simulation advanced on the game over screen")
	}
}

func TestGameQuitFromMenu(t *testing.T) {
	g := newTestGame(nil)

	st := g.Step(frame(keyDown("q"))).State
	if !st.Quit {
		t.Fatal("q in the menu should quit")
	}
	st = g.Step(frame(keyDown(core.KeyEnter))).State
	if !st.Quit || !st.InMenu {
		t.Errorf("State() = %+v, a quit game should ignore input", st)
	}
}

func TestGameParticlesOnKill(t *testing.T) {
	g := newTestGame(nil)
	g.SetState(StatePlaying)
	s := g.Session()
	// Park one basic enemy next to the player and swing at it
	e := s.Enemies[0]
	s.Enemies = []*Enemy{e}
	e.Health = 1
	e.Pos = s.Player.Center().Add(core.V(30, -e.Size/2))
	g.Step(frame(keyDown(core.KeySpace)))

	if s.Particles.Len() != 20 {
		t.Errorf("Particles.Len() = %d, expected 20", s.Particles.Len())
	}
	if !g.State().Victory {
		t.Errorf("Phase = %s, expected VICTORY", g.State().Phase)
	}

	// Particles keep fading on the victory screen
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	if s.Particles.Len() != 0 {
		t.Errorf("Particles.Len() = %d after 2s, expected 0", s.Particles.Len())
	}
}

func TestGameResizeKeepsRun(t *testing.T) {
	g := newTestGame(nil)
	g.Step(frame(keyDown(core.KeyEnter)))
	before := g.Snapshot()

	g.Resize(160, 50)

	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("Resize() changed the simulation")
	}
	if g.view.Rows != 49 || g.view.Cols != 130 {
		t.Errorf("viewport = %dx%d, expected 130x49", g.view.Cols, g.view.Rows)
	}
}

func TestGameRenderEveryState(t *testing.T) {
	tests := []struct {
		state StateID
		want  string
	}{
		{StateMenu, "Start Game"},
		{StatePlaying, "Score:"},
		{StatePaused, "Resume"},
		{StateGameOver, "GAME OVER"},
		{StateVictory, "VICTORY!"},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			g := newTestGame(nil)
			if tt.state != StateMenu {
				g.SetState(StatePlaying)
			}
			if tt.state != StatePlaying && tt.state != StateMenu {
				g.SetState(tt.state)
			}

			screen := core.NewScreen(80, 31)
			g.Render(screen)

			if text := screenText(screen); !strings.Contains(text, tt.want) {
				t.Errorf("%v screen does not contain %q:\n%s", tt.state, tt.want, text)
			}
		})
	}
}

func TestGameRenderAdaptsToScreen(t *testing.T) {
	g := newTestGame(nil)
	g.SetState(StatePlaying)

	g.Render(core.NewScreen(120, 41))

	if g.screenW != 120 || g.screenH != 41 {
		t.Errorf("screen size = %dx%d, expected 120x41", g.screenW, g.screenH)
	}
}

func TestGameResetEntersStartState(t *testing.T) {
	g := NewWithOptions(Options{Start: StatePlaying})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 31, TickRate: 60, Seed: 3})

	st := g.State()
	if st.Phase != "PLAYING" || st.Enemies != 5 || st.Score != 0 {
		t.Errorf("State() = %+v, expected a fresh run with 5 enemies", st)
	}
	if g.Session().Runs() != 1 {
		t.Errorf("Runs() = %d, expected 1", g.Session().Runs())
	}
}

func TestGameHUDColours(t *testing.T) {
	g := newTestGame(nil)
	g.SetState(StatePlaying)
	g.Session().Player.Health = 50

	scr := core.NewScreen(80, 31)
	g.Render(scr)

	row := []rune(scr.Row(0))
	at := -1
	for i := 0; i+6 <= len(row); i++ {
		if string(row[i:i+6]) == "Score:" {
			at = i
			break
		}
	}
	if at < 0 {
		t.Fatalf("HUD row %q has no score", scr.Row(0))
	}
	if c := scr.GetCell(at, 0).Color; c != core.ColorGold {
		t.Errorf("score colour = %v, expected gold", c)
	}
	if c := scr.GetCell(4+19, 0).Color; c != core.ColorDarkRed {
		t.Errorf("empty health track colour = %v, expected dark red", c)
	}
}

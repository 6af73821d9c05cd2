package swarm

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swarm/internal/assets"
	"github.com/vovakirdan/swarm/internal/config"
	"github.com/vovakirdan/swarm/internal/core"
	"github.com/vovakirdan/swarm/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "swarm"

// hudRows is the number of screen rows reserved above the play-field.
const hudRows = 1

// Options are the collaborators and settings of a game instance.
type Options struct {
	Config config.SwarmConfig
	Assets Assets
	Logger *log.Logger
	Start  StateID // State entered by Reset; the zero value is the main menu
}

var (
	defaultsMu sync.RWMutex
	defaults   Options
)

// Configure sets the options used by instances created through the registry.
// Call it once at startup, before any game is created.
func Configure(opts Options) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = opts
}

func currentDefaults() Options {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game on top of the state machine.
type Game struct {
	opts    Options
	session *Session
	machine *Machine
	view    core.Viewport

	screenW, screenH int
	quit             bool
}

// New creates a game using the options set by Configure.
func New() *Game {
	return NewWithOptions(currentDefaults())
}

// NewWithOptions creates a game with explicit options.
// Zero-valued options fall back to the default config, placeholder assets
// and a discarding logger.
func NewWithOptions(opts Options) *Game {
	if opts.Config == (config.SwarmConfig{}) {
		opts.Config = config.DefaultSwarmConfig()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Assets == nil {
		opts.Assets = assets.NewProvider(assets.Options{Logger: opts.Logger})
	}
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Swarm"
}

// Reset discards the current session and enters the configured start state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	tickDur := time.Duration(cfg.TickSeconds() * float64(time.Second))

	g.session = newSession(g.opts.Config, rng, g.opts.Assets, g.opts.Logger, tickDur)
	g.machine = NewMachine()
	g.quit = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	if g.opts.Start != StateMenu {
		g.machine.Set(g.session, g.opts.Start)
	}
}

// Resize refits the play-field into a screen of w x h cells.
// The simulation is unaffected; only the cell mapping changes.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	area := core.NewRect(0, hudRows, w, core.Max(h-hudRows, 0))
	g.view = core.NewViewport(g.opts.Config.Field.Width, g.opts.Config.Field.Height, area)
}

// Step runs one tick: the active state consumes the input batch, then
// updates. Particles advance in every state.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	s := g.session

	if !g.quit {
		events := g.translate(in)
		g.quit = g.machine.Apply(s, g.machine.Active().HandleEvents(s, events))
	}
	if !g.quit {
		g.quit = g.machine.Apply(s, g.machine.Active().Update(s))
	}

	s.Particles.Update(s.tickDur.Seconds())
	s.advanceClock()

	return core.StepResult{State: g.State()}
}

// translate converts cell-space input to play-field events.
// Pointer events outside the letterboxed field are dropped.
func (g *Game) translate(in core.InputFrame) []Event {
	events := make([]Event, 0, len(in.Events))
	for _, e := range in.Events {
		switch e.Kind {
		case core.EventQuit:
			events = append(events, Event{Kind: e.Kind})
		case core.EventKeyDown:
			events = append(events, Event{Kind: e.Kind, Key: e.Key})
		case core.EventMouseDown, core.EventMouseMotion:
			pos, inside := g.view.ToField(e.Col, e.Row)
			if !inside {
				continue
			}
			g.session.Mouse = pos
			g.session.mouseKnown = true
			events = append(events, Event{
				Kind:   e.Kind,
				Button: e.Button,
				Pos:    pos,
				Rel:    g.view.ScaleRel(e.DCol, e.DRow),
			})
		}
	}
	return events
}

// Render draws the active state, then particles on top.
func (g *Game) Render(dst *core.Screen) {
	if g.session == nil {
		return
	}
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.Resize(dst.Width(), dst.Height())
	}
	g.machine.Active().Render(g.session, dst, g.view)
	renderParticles(g.session, dst, g.view)
}

// State returns the current game status.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: StateMenu.String(), InMenu: true}
	}
	s := g.session
	cur := g.machine.Current()
	health := 0
	if s.Player != nil && s.Player.Alive() {
		health = s.Player.Health
	}
	return core.GameState{
		Phase:    cur.String(),
		Score:    s.Score(),
		Health:   health,
		Enemies:  len(s.Enemies),
		Ticks:    s.Ticks(),
		GameOver: cur == StateGameOver,
		Victory:  cur == StateVictory,
		Paused:   cur == StatePaused,
		InMenu:   cur == StateMenu,
		Quit:     g.quit,
	}
}

// SetState switches the state machine explicitly.
func (g *Game) SetState(to StateID) {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	g.machine.Set(g.session, to)
}

// Session exposes the running session.
func (g *Game) Session() *Session {
	return g.session
}

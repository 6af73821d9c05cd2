package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swarm/internal/core"
	"github.com/vovakirdan/swarm/internal/registry"
	"github.com/vovakirdan/swarm/internal/storage"
)

// Options configure a Model.
type Options struct {
	Player    string      // Name recorded with finished runs
	SessionID string      // Identifies the terminal session in logs
	Logger    *log.Logger // Nil discards log output
}

// footerRows is the number of terminal rows below the game used for help.
const footerRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// gameRows returns the rows left for the game on a terminal of height h.
func gameRows(h int) int {
	return core.Max(h-footerRows, 1)
}

// resizer is implemented by games that can refit to a new screen size
// without resetting.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	log        *log.Logger
	keys       KeyMap
	help       help.Model
	mouse      *MouseTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	scores     *ScoreboardModel // Non-nil while the run history is shown
	quitting   bool
	runSaved   bool // Whether the current finished run has been recorded
	lastRunID  string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.SessionID != "" {
		logger = logger.With("session", opts.SessionID)
	}
	h := help.New()
	h.Width = cfg.ScreenW
	cfg.ScreenH = gameRows(cfg.ScreenH)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		log:        logger,
		keys:       DefaultKeyMap(),
		help:       h,
		mouse:      &MouseTracker{},
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.log.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		return m.handleResize(wsm)
	}

	if m.scores != nil {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if e, ok := m.mouse.Map(msg); ok {
			m.inputFrame.Add(e)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Scores) && m.gameState.InMenu && m.store != nil:
		sb := NewScoreboardModel(m.store, m.game.ID(), m.config.ScreenW, m.config.ScreenH+footerRows)
		m.scores = &sb
		return m, nil
	}

	if e, ok := MapKey(msg); ok {
		m.inputFrame.Add(e)
	}
	return m, nil
}

// updateScores routes messages to the run history overlay.
// Ticks keep flowing so the game loop stays alive underneath.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, tickCmd(m.config.TickRate)
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	updated, cmd := m.scores.Update(msg)
	sb := updated.(ScoreboardModel)
	if sb.IsGoingBack() {
		m.scores = nil
		return m, nil
	}
	m.scores = &sb
	return m, cmd
}

// handleResize processes window resize events.
// The game keeps its state; only the cell mapping changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = gameRows(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	}
	if m.scores != nil {
		updated, _ := m.scores.Update(msg)
		sb := updated.(ScoreboardModel)
		m.scores = &sb
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	prev := m.gameState
	m.gameState = result.State
	if prev.Phase != m.gameState.Phase {
		m.log.Debug("phase changed", "from", prev.Phase, "to", m.gameState.Phase)
	}

	if m.gameState.RunEnded() {
		m.recordRun()
	} else {
		m.runSaved = false
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run once.
func (m *Model) recordRun() {
	if m.runSaved {
		return
	}
	m.runSaved = true

	outcome := storage.OutcomeGameOver
	if m.gameState.Victory {
		outcome = storage.OutcomeVictory
	}
	m.log.Info("run finished",
		"outcome", outcome,
		"score", m.gameState.Score,
		"ticks", m.gameState.Ticks,
	)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveRun(storage.Run{
		GameID:  m.game.ID(),
		Player:  m.opts.Player,
		Score:   m.gameState.Score,
		Outcome: outcome,
		Ticks:   m.gameState.Ticks,
	})
	if err != nil {
		m.log.Warn("could not record run", "error", err)
		return
	}
	m.lastRunID = id
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".swarm", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("cannot save screenshot", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.gameState
}

// LastRunID returns the ID of the most recently recorded run.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover and click events
	)

	_, err := p.Run()
	return err
}

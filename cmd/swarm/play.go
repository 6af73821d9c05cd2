package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/swarm/internal/assets"
	"github.com/vovakirdan/swarm/internal/audio"
	"github.com/vovakirdan/swarm/internal/core"
	"github.com/vovakirdan/swarm/internal/games/swarm"
	"github.com/vovakirdan/swarm/internal/platform/tui"
	"github.com/vovakirdan/swarm/internal/registry"
	"github.com/vovakirdan/swarm/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal. Mouse support is required.

Controls:
  Right click  - Move to the clicked point
  Left click   - Shoot at the clicked point
  F            - Shoot at the mouse cursor
  Space        - Melee attack
  S            - Stop moving
  P/Esc        - Pause
  Tab          - Run history (from the main menu)
  Ctrl+S       - Save a screenshot
  Ctrl+C       - Quit

Difficulty options:
  easy   - Fewer, slower enemies and a grace period after each hit
  normal - The default swarm
  hard   - More and faster enemies
  fixed  - Use the config values unchanged

Examples:
  swarm play
  swarm play --difficulty easy
  swarm play --config ./my-swarm.yaml --seed 42
  swarm play --start playing`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var flagStart string

func init() {
	playCmd.Flags().StringVar(&flagStart, "start", "menu", "Initial screen: menu or playing")
}

// parseStart resolves the --start flag. Only the main menu and a new run
// are valid entry points; an empty name means the menu.
func parseStart(name string) (swarm.StateID, error) {
	if name == "" {
		return swarm.StateMenu, nil
	}
	st, err := swarm.ParseState(name)
	if err != nil {
		return 0, err
	}
	if st != swarm.StateMenu && st != swarm.StatePlaying {
		return 0, fmt.Errorf("cannot start in %s (want menu or playing)", st)
	}
	return st, nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	start, err := parseStart(flagStart)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()

	var sound assets.SoundPlayer
	if !flagMute {
		player := audio.New(logger)
		if initErr := player.Init(); initErr != nil {
			logger.Warn("audio disabled", "error", initErr)
		} else {
			defer player.Close()
			sound = player
		}
	}

	swarm.Configure(swarm.Options{
		Config: cfg,
		Assets: assets.NewProvider(assets.Options{Dir: flagAssets, Sound: sound, Logger: logger}),
		Logger: logger,
		Start:  start,
	})

	game, err := registry.Create(swarm.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Run history lives for this process only.
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run history disabled", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	sessionID := uuid.NewString()
	logger.Info("starting", "session", sessionID, "difficulty", flagDifficulty, "enemies", cfg.Enemies.Count)

	if err := tui.Run(game, store, rc, tui.Options{
		Player:    os.Getenv("USER"),
		SessionID: sessionID,
		Logger:    logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swarm/internal/assets"
	"github.com/vovakirdan/swarm/internal/games/swarm"
	"github.com/vovakirdan/swarm/internal/platform/tui"
	"github.com/vovakirdan/swarm/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the swarm SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Sound is disabled for remote players.
The run history is shared by everyone connected and kept in memory until
the server stops.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.swarm/host_key

Examples:
  swarm serve                           # Listen on :23234 with auto-generated key
  swarm serve --ssh :2222               # Listen on port 2222
  swarm serve --difficulty hard         # Every session plays on hard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	swarm.Configure(swarm.Options{
		Config: cfg,
		Assets: assets.NewProvider(assets.Options{Dir: flagAssets, Logger: logger}),
		Logger: logger,
	})

	store, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer store.Close()

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.GameID = swarm.GameID
	srvCfg.TickRate = flagFPS
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(srvCfg, store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting swarm SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

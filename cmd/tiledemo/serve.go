package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiledemo/internal/platform/tui"
	"github.com/vovakirdan/tiledemo/internal/tiles"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tiledemo SSH server",
	Long: `Start an SSH server that lets users connect and watch effects.

Each SSH connection gets its own session with an effect picker menu and
its own demo; the grid is sized to the client's terminal.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tiledemo/host_key

Examples:
  tiledemo serve                           # Listen on :23234 with auto-generated key
  tiledemo serve --ssh :2222               # Listen on port 2222
  tiledemo serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	demoCfg, err := loadConfig(cmd)
	if err != nil {
		fail(err)
	}

	atlas, err := tiles.Default()
	if err != nil {
		fail(err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(atlas, demoCfg, cfg)
	if err != nil {
		fail(fmt.Errorf("creating server: %w", err))
	}

	fmt.Printf("Starting tiledemo SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail(fmt.Errorf("server: %w", err))
	}
}

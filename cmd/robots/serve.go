package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-robots/internal/config"
	"github.com/vovakirdan/tui-robots/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the robots SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a problem menu and its own
puzzle state. Clears are stored per server (all users share the records).

Host key handling:
  - If --host-key or ssh.host_key is set, uses that key file
  - Otherwise, auto-generates a key at ~/.robots/ssh_host_ed25519

Examples:
  robots serve                           # Listen on the configured address
  robots serve --ssh :2222               # Listen on port 2222
  robots serve --host-key ./my_host_key  # Use specific host key
  robots serve --db ./robots.db          # Use specific database

Users can connect with:
  ssh localhost -p 2323`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle time before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	a, err := loadApp(cmd, func(cfg *config.Config) {
		if flags.Changed("ssh") {
			cfg.SSH.Address = flagSSHAddr
		}
		if flags.Changed("host-key") {
			cfg.SSH.HostKey = flagHostKey
		}
		if flags.Changed("idle-timeout") {
			cfg.SSH.IdleTimeout = flagIdleTimeout
		}
	})
	if err != nil {
		return err
	}

	store := a.openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfigFrom(a.cfg), a.catalog, store, a.logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting robots SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

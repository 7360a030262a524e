package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/relhell/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve [variant]",
	Short: "Start the SSH server",
	Long: `Start an SSH server where every connection flies its own session of
the given variant (default: relhell). Runs are stored per server, so all
pilots share the same scoreboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.relhell/host_key

Examples:
  relhell serve
  relhell serve --ssh :2222
  relhell serve relhell-bare --host-key ./my_host_key

Pilots connect with:
  ssh localhost -p 23234`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, args []string) error {
	variant, err := variantArg(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "relhell-ssh")
	if err != nil {
		return err
	}
	if err := configureGames(logger); err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		Variant:     variant,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Starting relhell SSH server on %s\n", flagSSHAddr)
	fmt.Println("Press Ctrl+C to stop")
	return server.ListenAndServe()
}

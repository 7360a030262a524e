package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/relhell/internal/audio"
	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/games/relhell"
	"github.com/vovakirdan/relhell/internal/platform/tui"
	"github.com/vovakirdan/relhell/internal/registry"
	"github.com/vovakirdan/relhell/internal/storage"
)

var (
	flagRecord string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start a session of the given variant (default: relhell).

Controls:
  WASD/Arrows   - Thrust
  Space         - Fire
  P             - Pause; while paused [ and ] scrub time,
                  Shift+movement turns the view
  T             - Show proper times
  O             - Auto-rotate view with the ship
  Esc           - Toggle full help
  R             - Restart (after game over)
  Q/Ctrl+C      - Quit

Examples:
  relhell play
  relhell play relhell-bare
  relhell play --difficulty easy --mute
  relhell play --record ./flight.msgpack`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write the flight log to this path on exit")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) error {
	variant, err := variantArg(args)
	if err != nil {
		return err
	}

	f, err := logFile()
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer f.Close()
	logger, err := newLogger(f, "relhell")
	if err != nil {
		return err
	}
	if err := configureGames(logger); err != nil {
		return err
	}

	sound := audio.NewManager(audio.Muted(flagMute))
	if err := sound.Initialize(); err != nil {
		logger.Warn("playing without sound", "err", err)
	}
	defer sound.Close()
	relhell.SetSound(sound)

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, cfg, tui.Options{RecordPath: flagRecord, Logger: logger})
}

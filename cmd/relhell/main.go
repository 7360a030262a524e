// relhell is a shooter in de Sitter space, played in the terminal.
//
// Usage:
//
//	relhell list              - List game variants
//	relhell play [variant]    - Play a variant (default: relhell)
//	relhell sim [variant]     - Fly a headless autopilot session
//	relhell serve             - Start SSH server for remote play
//	relhell scores [variant]  - Show the furthest flights
//	relhell inspect <file>    - Summarise a recorded flight log
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible sessions
//	--db <path>           - Set database path (default: ~/.relhell/runs.db)
//	--config <path>       - Custom YAML or TOML config
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/relhell/internal/config"
	"github.com/vovakirdan/relhell/internal/games/relhell"
	"github.com/vovakirdan/relhell/internal/registry"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "relhell",
	Short: "Relative Hell - a shooter in de Sitter space",
	Long: `Relative Hell is a terminal shooter set in de Sitter space. Stars
drift along fixed worldlines; what you see is where they cross your present.
Fly as far into the global future as your oxygen allows.

Available commands:
  list     - Show the game variants
  play     - Play a variant
  sim      - Run a headless autopilot session
  serve    - Start SSH server for remote play
  scores   - View the furthest flights
  inspect  - Summarise a recorded flight log

Examples:
  relhell play
  relhell play relhell-bare --difficulty hard
  relhell sim --ticks 3000 --record ./flight.msgpack
  relhell serve --ssh :2222
  relhell scores --stats
  relhell inspect ./flight.msgpack`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.relhell/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(inspectCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// logFile opens ~/.relhell/relhell.log for sessions that own the terminal.
func logFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".relhell")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "relhell.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// configureGames applies the config flags to games created by the registry.
func configureGames(logger *log.Logger) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	relhell.SetConfigPath(flagConfig)
	relhell.SetDifficultyPreset(preset)
	relhell.SetLogger(logger)
	return nil
}

// variantArg returns the variant named in args, checking it exists.
func variantArg(args []string) (string, error) {
	id := relhell.IDCanvas
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q, run 'relhell list' to see them", id)
	}
	return id, nil
}

package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/relhell/internal/core"
	"github.com/vovakirdan/relhell/internal/flightlog"
	"github.com/vovakirdan/relhell/internal/platform/tui"
	"github.com/vovakirdan/relhell/internal/registry"
	"github.com/vovakirdan/relhell/internal/storage"
)

var (
	flagTicks     int
	flagSimRecord string
	flagSave      bool
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Fly a headless autopilot session",
	Long: `Run a session without a terminal UI. The autopilot thrusts in a slowly
turning direction and fires at a steady rate until the ship is lost or the
tick limit is reached. Useful for checking configs and seeds.

Examples:
  relhell sim --seed 42
  relhell sim --ticks 10000 --difficulty hard
  relhell sim --record ./flight.msgpack --save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 6000, "Maximum number of ticks")
	simCmd.Flags().StringVar(&flagSimRecord, "record", "", "Write the flight log to this path")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Store the run in the database")
}

// autopilot returns the input for tick i.
func autopilot(i int) core.InputFrame {
	in := core.NewInputFrame()
	if i%120 < 20 {
		a := float64(i) / 600 * 2 * math.Pi
		in.SetMove(math.Cos(a), math.Sin(a))
	}
	if i%30 == 0 {
		in.Set(core.ActionFire)
	}
	return in
}

func runSim(cmd *cobra.Command, args []string) error {
	variant, err := variantArg(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "relhell-sim")
	if err != nil {
		return err
	}
	if err := configureGames(logger); err != nil {
		return err
	}

	game, err := registry.Create(variant)
	if err != nil {
		return err
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})

	ticks := 0
	for ; ticks < flagTicks && !game.State().GameOver; ticks++ {
		res := game.Step(autopilot(ticks))
		for _, e := range res.Events {
			logger.Debug("event", "tick", ticks, "kind", e.Kind, "detail", e.Detail)
		}
	}

	st := core.RunStats{Score: float64(game.State().Score), Reason: game.State().Reason}
	if r, ok := game.(registry.StatsReporter); ok {
		st = r.Stats()
	}
	reason := st.Reason
	if reason == "" {
		reason = "tick limit"
	}

	fmt.Printf("Variant:      %s\n", variant)
	fmt.Printf("Seed:         %d\n", seed)
	fmt.Printf("Ticks:        %d\n", ticks)
	fmt.Printf("Score:        %.3f\n", st.Score)
	fmt.Printf("Proper time:  %.3f\n", st.ProperTime)
	fmt.Printf("Rocks hit:    %d\n", st.RocksHit)
	fmt.Printf("Resources:    %d (gold %d)\n", st.Resources, st.Gold)
	fmt.Printf("Ended:        %s\n", reason)

	if flagSimRecord != "" {
		rec, ok := game.(tui.Recorder)
		if !ok {
			return fmt.Errorf("variant %q cannot record its flight", variant)
		}
		if err := flightlog.Save(flagSimRecord, rec.Record()); err != nil {
			return err
		}
		fmt.Printf("Flight log:   %s\n", flagSimRecord)
	}

	if flagSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.SaveRun(variant, seed, st)
		if err != nil {
			return err
		}
		fmt.Printf("Saved run:    %s\n", id)
	}
	return nil
}

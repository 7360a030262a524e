package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/relhell/internal/flightlog"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Summarise a recorded flight log",
	Long: `Load a flight log written by 'play --record' or 'sim --record' and
print what it holds.

Examples:
  relhell sim --seed 42 --record ./flight.msgpack
  relhell inspect ./flight.msgpack`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	l, err := flightlog.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reason := l.Reason
	if reason == "" {
		reason = "still flying"
	}

	fmt.Fprintf(out, "File:         %s\n", args[0])
	fmt.Fprintf(out, "Variant:      %s\n", l.Variant)
	fmt.Fprintf(out, "Seed:         %d\n", l.Seed)
	fmt.Fprintf(out, "Mode:         %s\n", l.Mode)
	fmt.Fprintf(out, "Score:        %.3f\n", l.Score)
	fmt.Fprintf(out, "Ended:        %s\n", reason)
	fmt.Fprintf(out, "Proper time:  %.3f\n", l.ProperTime())
	fmt.Fprintf(out, "Entries:      %d\n", len(l.Entries))
	if n := len(l.Entries); n > 0 {
		first, last := l.Entries[0], l.Entries[n-1]
		fmt.Fprintf(out, "Heading:      %.0f° to %.0f°\n", first.Ang, last.Ang)
		fmt.Fprintf(out, "Global time:  %.3f to %.3f\n", first.Shift, last.Shift)
	}
	return nil
}

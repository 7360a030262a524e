package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/relhell/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Println("Variants:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", idW, g.ID, titleW, g.Title, g.Description)
	}
	fmt.Println()
	fmt.Println("Run 'relhell play <id>' to play, 'relhell inspect <file>' to read a flight log.")
}

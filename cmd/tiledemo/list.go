package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiledemo/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available effects",
	Long:  `Shows a list of all effects registered in the demo.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	effects := registry.List()

	if len(effects) == 0 {
		fmt.Println("No effects available.")
		return
	}

	fmt.Println("Available effects:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, e := range effects {
		if len(e.ID) > maxIDLen {
			maxIDLen = len(e.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, e := range effects {
		fmt.Printf("  %-*s  %s\n", maxIDLen, e.ID, e.Title)
	}

	fmt.Println()
	fmt.Println("Run 'tiledemo play <id>...' to run effects; later effects draw over earlier ones.")
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiledemo/internal/platform/tui"
	"github.com/vovakirdan/tiledemo/internal/tiles"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick effects interactively",
	Long: `Opens an effect picker. Mark several effects with Space to run them
together, or press Enter to run the one under the cursor.

Returns to the menu when the demo is left with B.`,
	Run: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail(err)
	}

	atlas, err := tiles.Default()
	if err != nil {
		fail(err)
	}

	width, height := terminalSize()
	for {
		result, err := tui.RunMenu(width, height)
		if err != nil {
			fail(err)
		}
		if result.Quit {
			return
		}
		width, height = result.Width, result.Height

		back, err := tui.RunForMenu(atlas, cfg, result.Effects, width, height)
		if err != nil {
			fail(err)
		}
		if !back {
			return
		}
	}
}

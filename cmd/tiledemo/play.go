package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tiledemo/internal/platform/tui"
	"github.com/vovakirdan/tiledemo/internal/tiles"
)

var playCmd = &cobra.Command{
	Use:   "play [effect...]",
	Short: "Run effects in the terminal",
	Long: `Run the given effects in the terminal, or the configured ones when
none are given. Several effects run in order each tick.

The grid is shrunk to fit the terminal; each cell row shows two pixel rows.

Controls:
  N/Tab      - Next effect
  Shift+Tab  - Previous effect
  Space/P    - Pause
  R          - Restart
  Ctrl+S     - Save a PNG screenshot to ~/.tiledemo/screenshots
  Q/Esc      - Quit

Examples:
  tiledemo play
  tiledemo play fire
  tiledemo play gradient flower --fps 30
  tiledemo play fire --seed 42`,
	Run: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail(err)
	}
	if err := checkEffects(args); err != nil {
		fail(err)
	}

	atlas, err := tiles.Default()
	if err != nil {
		fail(err)
	}

	width, height := terminalSize()
	if err := tui.Run(atlas, cfg, args, width, height); err != nil {
		fail(err)
	}
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return width, height
}

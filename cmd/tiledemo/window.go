package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiledemo/internal/demo"
	"github.com/vovakirdan/tiledemo/internal/platform/window"
	"github.com/vovakirdan/tiledemo/internal/tiles"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window [effect...]",
	Short: "Run effects in a desktop window",
	Long: `Open a desktop window showing the given effects, or the configured ones
when none are given. The window is the framebuffer size times --scale.

Controls:
  Space/P  - Pause
  R        - Restart
  Q/Esc    - Quit

Examples:
  tiledemo window
  tiledemo window fire --scale 3
  tiledemo window gradient rainbow`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 0, "Window pixels per framebuffer pixel (0 = from config)")
}

func runWindow(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail(err)
	}
	if flagScale > 0 {
		cfg.Window.Scale = flagScale
	}
	if err := checkEffects(args); err != nil {
		fail(err)
	}

	atlas, err := tiles.Default()
	if err != nil {
		fail(err)
	}

	d, err := demo.Build(atlas, cfg, demo.RuntimeConfig(cfg), args...)
	if err != nil {
		fail(err)
	}
	if err := window.Run(d, cfg); err != nil {
		fail(err)
	}
}

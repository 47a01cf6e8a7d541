// tiledemo is a real-time tile-graphics demo: a 1-bit tile atlas is
// composited every tick into a framebuffer that effects animate.
//
// Usage:
//
//	tiledemo list                  - List available effects
//	tiledemo play [effect...]      - Run effects in the terminal
//	tiledemo menu                  - Pick effects interactively
//	tiledemo window [effect...]    - Run effects in a desktop window
//	tiledemo serve                 - Start SSH server for remote viewing
//	tiledemo convert <img> <raw>   - Pack an image into the atlas format
//	tiledemo export <png>          - Write the embedded atlas as PNG
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default from config: 60)
//	--seed <value>   - Set RNG seed for reproducible effects
//	--config <path>  - Load a custom demo config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiledemo/internal/config"
	// Import effects to register them
	_ "github.com/vovakirdan/tiledemo/internal/effects/fire"
	_ "github.com/vovakirdan/tiledemo/internal/effects/flower"
	_ "github.com/vovakirdan/tiledemo/internal/effects/gradient"
	_ "github.com/vovakirdan/tiledemo/internal/effects/rainbow"
	"github.com/vovakirdan/tiledemo/internal/registry"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiledemo",
	Short: "tiledemo - animated tile graphics in the terminal or a window",
	Long: `tiledemo decodes a packed 1-bit tile atlas and animates a grid of
coloured tiles with procedural effects at a fixed tick rate.

Available commands:
  list     - Show all available effects
  play     - Run effects in the terminal
  menu     - Interactive effect picker
  window   - Run effects in a desktop window
  serve    - Start SSH server for remote viewing
  convert  - Pack an image into the atlas format
  export   - Write the embedded atlas as PNG

Examples:
  tiledemo list
  tiledemo play fire
  tiledemo window gradient flower
  tiledemo serve --ssh :2222
  tiledemo convert tiles.png tiles.raw`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom demo config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadConfig loads the demo config and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.DemoConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	return cfg, cfg.Validate()
}

// checkEffects reports the first unknown effect ID.
func checkEffects(ids []string) error {
	for _, id := range ids {
		if !registry.Exists(id) {
			return fmt.Errorf("unknown effect %q", id)
		}
	}
	return nil
}

// fail prints err the way every subcommand does and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

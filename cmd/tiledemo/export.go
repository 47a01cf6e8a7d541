package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiledemo/internal/tiles"
)

var (
	flagExportInput string
	flagExportScale int
)

var exportCmd = &cobra.Command{
	Use:   "export <out.png>",
	Short: "Write the atlas as a PNG image",
	Long: `Decode the embedded atlas (or a packed file given with --input) and
write it as a black and white PNG sheet; set bits are white.

Examples:
  tiledemo export atlas.png
  tiledemo export atlas.png --scale 4
  tiledemo export check.png --input tiles.raw`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportInput, "input", "", "Packed atlas file (default: embedded atlas)")
	exportCmd.Flags().IntVar(&flagExportScale, "scale", 1, "Integer scale factor")
}

func runExport(_ *cobra.Command, args []string) {
	var (
		atlas *tiles.Atlas
		err   error
	)
	if flagExportInput != "" {
		raw, readErr := os.ReadFile(flagExportInput)
		if readErr != nil {
			fail(readErr)
		}
		atlas, err = tiles.Decode(raw, tiles.DefaultLayout)
	} else {
		atlas, err = tiles.Default()
	}
	if err != nil {
		fail(err)
	}

	f, err := os.Create(args[0])
	if err != nil {
		fail(err)
	}
	if err := png.Encode(f, tiles.Enlarge(atlas.Image(), flagExportScale)); err != nil {
		f.Close()
		fail(err)
	}
	if err := f.Close(); err != nil {
		fail(err)
	}

	b := atlas.Image().Bounds()
	fmt.Printf("Wrote %s (%dx%d, %d tiles)\n", args[0], b.Dx()*max(flagExportScale, 1), b.Dy()*max(flagExportScale, 1), atlas.Len())
}

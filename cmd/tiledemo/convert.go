package main

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tiledemo/internal/tiles"
)

var flagResize bool

var convertCmd = &cobra.Command{
	Use:   "convert <image> <out.raw>",
	Short: "Pack an image into the atlas format",
	Long: `Convert a PNG, GIF, JPEG or BMP tile sheet into the packed 1-bit atlas
format: pixels brighter than 127 become set bits, eight pixels per byte,
most significant bit first, in raster order over the whole sheet.

The image must be 128x128 (16x16 tiles of 8x8) unless --resize is given.

Examples:
  tiledemo convert tiles.png internal/tiles/assets/tiles.raw
  tiledemo convert scan.jpg tiles.raw --resize`,
	Args: cobra.ExactArgs(2),
	Run:  runConvert,
}

func init() {
	convertCmd.Flags().BoolVar(&flagResize, "resize", false, "Resample the image to the atlas size")
}

func runConvert(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "tiledemo-convert"})
	in, out := args[0], args[1]
	layout := tiles.DefaultLayout

	f, err := os.Open(in)
	if err != nil {
		fail(err)
	}
	m, format, err := tiles.DecodeImage(f)
	f.Close()
	if err != nil {
		fail(err)
	}

	if flagResize {
		m = tiles.Fit(m, layout)
	} else if err := tiles.CheckImage(m, layout); err != nil {
		fail(fmt.Errorf("%w (use --resize)", err))
	}

	data, err := pack(m, layout)
	if err != nil {
		fail(err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		fail(err)
	}

	logger.Info("converted",
		"input", in,
		"format", format,
		"output", out,
		"bytes", len(data),
		"tiles", layout.Tiles(),
	)
}

// pack encodes m and checks the result decodes as an atlas of layout.
func pack(m image.Image, layout tiles.Layout) ([]byte, error) {
	var buf bytes.Buffer
	if err := tiles.Encode(&buf, m); err != nil {
		return nil, err
	}
	if _, err := tiles.Decode(buf.Bytes(), layout); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

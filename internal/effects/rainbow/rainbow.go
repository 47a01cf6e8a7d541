// Package rainbow cycles a hue wheel diagonally across the grid while
// stepping each cell through a range of atlas glyphs.
package rainbow

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tiledemo/internal/config"
	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/registry"
	"github.com/vovakirdan/tiledemo/internal/scene"
)

// PaletteSize is the number of hues in the palette texture.
const PaletteSize = 256

// Effect samples a wrapping palette texture each tick.
type Effect struct {
	cfg     config.RainbowConfig
	palette *core.Texture[core.Color]
}

// New creates a rainbow effect with default settings.
func New() *Effect {
	return &Effect{
		cfg:     config.DefaultDemoConfig().Rainbow,
		palette: Palette(PaletteSize),
	}
}

func init() {
	registry.Register("rainbow", func() registry.Effect {
		return New()
	})
}

// Configure applies the rainbow section of the demo config.
// Non-positive glyph settings keep their previous values.
func (e *Effect) Configure(cfg config.RainbowConfig) {
	if cfg.GlyphCount <= 0 {
		cfg.GlyphCount = e.cfg.GlyphCount
	}
	if cfg.GlyphStep <= 0 {
		cfg.GlyphStep = e.cfg.GlyphStep
	}
	e.cfg = cfg
}

// ID returns the registry identifier.
func (e *Effect) ID() string { return "rainbow" }

// Title returns the display name.
func (e *Effect) Title() string { return "Rainbow" }

// Reset does nothing; the palette is fixed at construction.
func (e *Effect) Reset(core.RuntimeConfig) {}

// Advance paints every cell from the palette and glyph cycle for tick.
func (e *Effect) Advance(grid *scene.Grid, tick uint64) {
	w, h := grid.Width(), grid.Height()
	span := float64(w + h)
	shift := float64(tick) * e.cfg.Speed
	step := tick / uint64(e.cfg.GlyphStep)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			u := float64(x+y)/span + shift
			glyph := (uint64(x+y) + step) % uint64(e.cfg.GlyphCount)
			grid.Set(x, y, scene.ColoredTile{
				Index: e.cfg.GlyphFirst + int(glyph),
				FG:    e.palette.Sample(u, 0),
				BG:    core.Black,
			})
		}
	}
}

// Palette returns a 1-texel-high texture of n fully saturated hues.
func Palette(n int) *core.Texture[core.Color] {
	data := make([]core.Color, n)
	for i := range data {
		c := colorful.Hsv(360*float64(i)/float64(n), 1, 1)
		data[i] = core.RGB(c.RGB255())
	}
	tex, err := core.NewTexture(data, n, 1)
	if err != nil {
		panic(err)
	}
	return tex
}

// Package fire implements a procedural heat effect: random heat is fed into
// the bottom row and rises by averaging the three cells below each cell.
package fire

import (
	"math/rand"

	"github.com/vovakirdan/tiledemo/internal/config"
	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/registry"
	"github.com/vovakirdan/tiledemo/internal/scene"
)

// Source supplies random numbers. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Effect holds the heat buffer between ticks.
type Effect struct {
	src      Source
	injected bool
	green    uint8
	glyph    int

	width  int
	height int
	heat   []uint8
}

// New creates a fire effect seeded from the runtime config on Reset.
func New() *Effect {
	d := config.DefaultDemoConfig().Fire
	return &Effect{green: d.Green, glyph: d.Glyph}
}

// NewWithSource creates a fire effect that draws from src. Reset keeps src.
func NewWithSource(src Source) *Effect {
	e := New()
	e.src = src
	e.injected = true
	return e
}

func init() {
	registry.Register("fire", func() registry.Effect {
		return New()
	})
}

// Configure applies the fire section of the demo config.
func (e *Effect) Configure(cfg config.FireConfig) {
	e.green = cfg.Green
	e.glyph = cfg.Glyph
}

// ID returns the registry identifier.
func (e *Effect) ID() string { return "fire" }

// Title returns the display name.
func (e *Effect) Title() string { return "Fire" }

// Reset zeroes the heat buffer for the configured grid and reseeds the source.
func (e *Effect) Reset(cfg core.RuntimeConfig) {
	e.width = cfg.GridW
	e.height = cfg.GridH
	e.heat = make([]uint8, cfg.Cells())
	if !e.injected {
		e.src = rand.New(rand.NewSource(cfg.Seed))
	}
}

// Heat returns the heat at (x, y).
func (e *Effect) Heat(x, y int) uint8 {
	return e.heat[x+y*e.width]
}

// Advance feeds the bottom row, propagates heat upward and paints the grid.
func (e *Effect) Advance(grid *scene.Grid, _ uint64) {
	if e.heat == nil {
		cfg := core.DefaultConfig()
		cfg.GridW, cfg.GridH = grid.Width(), grid.Height()
		e.Reset(cfg)
	}
	w, h := e.width, e.height

	bottom := (h - 1) * w
	for x := 0; x < w; x++ {
		e.heat[bottom+x] = uint8(e.src.Intn(256))
	}

	// Top to bottom, so every row reads the row below as it was last tick
	// (the bottom row excepted, which was just refilled).
	for y := 0; y < h-1; y++ {
		row := y * w
		below := row + w
		for x := 1; x < w-1; x++ {
			e.heat[row+x] = e.heat[below+x-1]/3 + e.heat[below+x]/3 + e.heat[below+x+1]/3
		}
	}

	for i, v := range e.heat {
		grid.SetIndex(i, scene.ColoredTile{
			Index: e.glyph,
			FG:    core.Black,
			BG:    core.RGB(v, e.green, 0),
		})
	}
}

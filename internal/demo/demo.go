package demo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tiledemo/internal/config"
	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/registry"
	"github.com/vovakirdan/tiledemo/internal/render"
	"github.com/vovakirdan/tiledemo/internal/scene"
	"github.com/vovakirdan/tiledemo/internal/tiles"
)

// Blank is the cell every grid starts with.
var Blank = scene.ColoredTile{Index: 0, FG: core.White, BG: core.Black}

// Demo owns one run of the pipeline. It is not safe for concurrent use;
// hosts that serve several viewers create one Demo each.
type Demo struct {
	cfg     core.RuntimeConfig
	seq     *Sequencer
	comp    *render.Compositor
	grid    *scene.Grid
	fb      *core.Framebuffer
	workers int
	tick    uint64
}

// New creates a demo that draws effects with atlas. workers > 1 renders
// rows concurrently from a snapshot of the grid.
func New(atlas *tiles.Atlas, cfg core.RuntimeConfig, workers int, effects ...registry.Effect) (*Demo, error) {
	if len(effects) == 0 {
		return nil, errors.New("demo: no effects")
	}
	grid, err := scene.New(cfg.GridW, cfg.GridH, Blank)
	if err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}

	d := &Demo{
		cfg:     cfg,
		seq:     NewSequencer(effects...),
		comp:    render.NewCompositor(atlas),
		grid:    grid,
		workers: workers,
	}
	d.fb = d.comp.NewFramebuffer(grid)
	d.seq.Reset(cfg)
	return d, nil
}

// Step advances the effects for the current tick, renders the grid and
// increments the tick. The returned framebuffer is reused by the next Step.
func (d *Demo) Step() (*core.Framebuffer, error) {
	return d.StepContext(context.Background())
}

// StepContext is Step with a context for the parallel compositor.
func (d *Demo) StepContext(ctx context.Context) (*core.Framebuffer, error) {
	d.seq.Advance(d.grid, d.tick)

	var err error
	if d.workers > 1 {
		err = d.comp.RenderParallel(ctx, d.grid.Clone(), d.fb, d.workers)
	} else {
		err = d.comp.Render(d.grid, d.fb)
	}
	if err != nil {
		return nil, fmt.Errorf("demo: tick %d: %w", d.tick, err)
	}

	d.tick++
	return d.fb, nil
}

// Restart clears the grid and framebuffer, resets every effect and rewinds
// the tick.
func (d *Demo) Restart() {
	d.grid.Reset(Blank)
	d.fb.Fill(Blank.BG)
	d.seq.Reset(d.cfg)
	d.tick = 0
}

// Tick returns the number of completed steps.
func (d *Demo) Tick() uint64 {
	return d.tick
}

// Grid returns the scene grid.
func (d *Demo) Grid() *scene.Grid {
	return d.grid
}

// Framebuffer returns the framebuffer written by Step.
func (d *Demo) Framebuffer() *core.Framebuffer {
	return d.fb
}

// Config returns the runtime config the effects were reset with.
func (d *Demo) Config() core.RuntimeConfig {
	return d.cfg
}

// Sequencer returns the effect sequencer.
func (d *Demo) Sequencer() *Sequencer {
	return d.seq
}

// Title returns the display title of the running effects.
func (d *Demo) Title() string {
	return d.seq.Title()
}

// RuntimeConfig derives the effect runtime config from cfg. A zero seed is
// replaced with the current time.
func RuntimeConfig(cfg config.DemoConfig) core.RuntimeConfig {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		GridW:    cfg.Grid.Width,
		GridH:    cfg.Grid.Height,
		TickRate: cfg.TickRate,
		Seed:     seed,
	}
}

// Configure hands each effect the config section it understands.
func Configure(effects []registry.Effect, cfg config.DemoConfig) {
	for _, e := range effects {
		switch c := e.(type) {
		case interface{ Configure(config.FireConfig) }:
			c.Configure(cfg.Fire)
		case interface{ Configure(config.RainbowConfig) }:
			c.Configure(cfg.Rainbow)
		}
	}
}

// Build creates, configures and wires the effects named by ids. An empty
// ids uses cfg.Effects. The grid size comes from rt.
func Build(atlas *tiles.Atlas, cfg config.DemoConfig, rt core.RuntimeConfig, ids ...string) (*Demo, error) {
	if len(ids) == 0 {
		ids = cfg.Effects
	}
	if err := checkGlyphs(cfg, atlas.Len()); err != nil {
		return nil, err
	}
	effects, err := registry.CreateAll(ids)
	if err != nil {
		return nil, err
	}
	Configure(effects, cfg)
	return New(atlas, rt, cfg.Render.Workers, effects...)
}

// checkGlyphs reports configured glyphs outside an atlas of n tiles.
func checkGlyphs(cfg config.DemoConfig, n int) error {
	if g := cfg.Fire.Glyph; g < 0 || g >= n {
		return fmt.Errorf("demo: fire.glyph %d outside atlas of %d tiles: %w", g, n, render.ErrTileIndex)
	}
	r := cfg.Rainbow
	if r.GlyphFirst < 0 || r.GlyphCount <= 0 || r.GlyphFirst+r.GlyphCount > n {
		return fmt.Errorf("demo: rainbow glyphs %d..%d outside atlas of %d tiles: %w",
			r.GlyphFirst, r.GlyphFirst+r.GlyphCount-1, n, render.ErrTileIndex)
	}
	return nil
}

package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tiledemo/internal/config"
	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/effects/fire"
	"github.com/vovakirdan/tiledemo/internal/effects/flower"
	"github.com/vovakirdan/tiledemo/internal/effects/gradient"
	_ "github.com/vovakirdan/tiledemo/internal/effects/rainbow"
	"github.com/vovakirdan/tiledemo/internal/registry"
	"github.com/vovakirdan/tiledemo/internal/render"
	"github.com/vovakirdan/tiledemo/internal/scene"
	"github.com/vovakirdan/tiledemo/internal/tiles"
)

// recorder logs the ticks it sees and stamps one cell.
type recorder struct {
	id     string
	index  int
	resets int
	ticks  []uint64
}

func (r *recorder) ID() string               { return r.id }
func (r *recorder) Title() string            { return r.id }
func (r *recorder) Reset(core.RuntimeConfig) { r.resets++ }
func (r *recorder) Advance(g *scene.Grid, tick uint64) {
	r.ticks = append(r.ticks, tick)
	g.Set(0, 0, scene.ColoredTile{Index: r.index, FG: core.White, BG: core.Black})
}

func smallConfig() core.RuntimeConfig {
	return core.RuntimeConfig{GridW: 4, GridH: 4, TickRate: 60, Seed: 7}
}

func TestSequencerOrder(t *testing.T) {
	a := &recorder{id: "a", index: 1}
	b := &recorder{id: "b", index: 2}
	seq := NewSequencer(a, b)
	seq.Reset(smallConfig())

	g, err := scene.New(4, 4, Blank)
	require.NoError(t, err)
	seq.Advance(g, 5)

	assert.Equal(t, 2, g.At(0, 0).Index, "later effect wins")
	assert.Equal(t, []uint64{5}, a.ticks)
	assert.Equal(t, []uint64{5}, b.ticks)
	assert.Equal(t, "a + b", seq.Title())
	assert.Len(t, seq.Effects(), 2)
}

func TestStepTicks(t *testing.T) {
	atlas, err := tiles.Default()
	require.NoError(t, err)

	r := &recorder{id: "r", index: 1}
	d, err := New(atlas, smallConfig(), 1, r)
	require.NoError(t, err)
	assert.Equal(t, 1, r.resets)
	assert.Equal(t, uint64(0), d.Tick())

	for i := 0; i < 3; i++ {
		fb, err := d.Step()
		require.NoError(t, err)
		assert.Same(t, d.Framebuffer(), fb)
	}
	assert.Equal(t, []uint64{0, 1, 2}, r.ticks)
	assert.Equal(t, uint64(3), d.Tick())

	d.Restart()
	assert.Equal(t, uint64(0), d.Tick())
	assert.Equal(t, 2, r.resets)
	assert.Equal(t, Blank, d.Grid().At(0, 0))
	for i, c := range d.Framebuffer().Pix() {
		require.Equal(t, Blank.BG, c, "pixel %d not cleared", i)
	}
}

func TestStepFramebufferSize(t *testing.T) {
	atlas, err := tiles.Default()
	require.NoError(t, err)

	d, err := New(atlas, smallConfig(), 1, flower.New())
	require.NoError(t, err)
	fb, err := d.Step()
	require.NoError(t, err)
	assert.Equal(t, 32, fb.Width())
	assert.Equal(t, 32, fb.Height())
}

func TestStepBadTileIndex(t *testing.T) {
	atlas, err := tiles.Default()
	require.NoError(t, err)

	d, err := New(atlas, smallConfig(), 1, &recorder{id: "bad", index: 1000})
	require.NoError(t, err)
	_, err = d.Step()
	require.Error(t, err)
	assert.Equal(t, uint64(0), d.Tick(), "failed step must not advance the tick")
}

func TestParallelMatchesSequential(t *testing.T) {
	atlas, err := tiles.Default()
	require.NoError(t, err)

	cfg := core.RuntimeConfig{GridW: 16, GridH: 12, TickRate: 60, Seed: 99}
	seq, err := New(atlas, cfg, 1, gradient.New(), fire.New())
	require.NoError(t, err)
	par, err := New(atlas, cfg, 4, gradient.New(), fire.New())
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		a, err := seq.Step()
		require.NoError(t, err)
		b, err := par.Step()
		require.NoError(t, err)
		require.Equal(t, a.Pix(), b.Pix(), "tick %d", i)
	}
}

func TestNewErrors(t *testing.T) {
	atlas, err := tiles.Default()
	require.NoError(t, err)

	_, err = New(atlas, smallConfig(), 1)
	assert.Error(t, err)

	_, err = New(atlas, core.RuntimeConfig{GridW: 0, GridH: 4}, 1, flower.New())
	assert.ErrorIs(t, err, scene.ErrDimensions)
}

func TestBuild(t *testing.T) {
	atlas, err := tiles.Default()
	require.NoError(t, err)

	cfg := config.DefaultDemoConfig()
	cfg.Fire.Green = 99
	cfg.Seed = 3

	d, err := Build(atlas, cfg, RuntimeConfig(cfg), "gradient", "fire")
	require.NoError(t, err)
	assert.Equal(t, "Gradient + Fire", d.Title())
	assert.Equal(t, int64(3), d.Config().Seed)

	_, err = d.Step()
	require.NoError(t, err)
	_, g, _ := d.Grid().At(5, 5).BG.RGB()
	assert.Equal(t, uint8(99), g, "fire config applied")

	_, err = Build(atlas, cfg, RuntimeConfig(cfg), "nope")
	assert.Error(t, err)

	d, err = Build(atlas, cfg, RuntimeConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, "Flower", d.Title())
}

func TestRuntimeConfigSeed(t *testing.T) {
	cfg := config.DefaultDemoConfig()
	cfg.Seed = 0
	assert.NotZero(t, RuntimeConfig(cfg).Seed)

	cfg.Seed = 11
	rt := RuntimeConfig(cfg)
	assert.Equal(t, int64(11), rt.Seed)
	assert.Equal(t, 32, rt.GridW)
	assert.True(t, registry.Exists("rainbow"))
}

func TestBuildRejectsGlyphsOutsideAtlas(t *testing.T) {
	atlas, err := tiles.Default()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*config.DemoConfig)
	}{
		{"fire glyph past end", func(c *config.DemoConfig) { c.Fire.Glyph = 300 }},
		{"fire glyph at len", func(c *config.DemoConfig) { c.Fire.Glyph = 256 }},
		{"rainbow range past end", func(c *config.DemoConfig) { c.Rainbow.GlyphFirst = 200; c.Rainbow.GlyphCount = 57 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultDemoConfig()
			cfg.Seed = 1
			tt.mutate(&cfg)

			_, err := Build(atlas, cfg, RuntimeConfig(cfg), "fire")
			assert.ErrorIs(t, err, render.ErrTileIndex)
		})
	}

	cfg := config.DefaultDemoConfig()
	cfg.Fire.Glyph = 255
	cfg.Rainbow.GlyphFirst, cfg.Rainbow.GlyphCount = 200, 56
	_, err = Build(atlas, cfg, RuntimeConfig(cfg), "fire", "rainbow")
	assert.NoError(t, err, "glyphs up to the last tile are valid")
}

// Package config provides YAML-based configuration loading for the demo.
package config

import (
	"errors"
	"fmt"
)

// DemoConfig contains all configuration for a demo run.
type DemoConfig struct {
	Grid     GridConfig    `yaml:"grid"`
	TickRate int           `yaml:"tick_rate"`
	Seed     int64         `yaml:"seed"`
	Effects  []string      `yaml:"effects"`
	Window   WindowConfig  `yaml:"window"`
	Render   RenderConfig  `yaml:"render"`
	Fire     FireConfig    `yaml:"fire"`
	Rainbow  RainbowConfig `yaml:"rainbow"`
}

// GridConfig defines the scene size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WindowConfig defines parameters of the desktop window host.
type WindowConfig struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"` // Window pixels per framebuffer pixel
}

// RenderConfig tunes the compositor.
type RenderConfig struct {
	Workers int `yaml:"workers"` // Row workers; 1 renders on the calling goroutine
}

// FireConfig tunes the heat effect.
type FireConfig struct {
	Green uint8 `yaml:"green"` // Fixed green channel of every flame cell
	Glyph int   `yaml:"glyph"` // Atlas tile drawn in every cell
}

// RainbowConfig tunes the cycling palette effect.
type RainbowConfig struct {
	Speed      float64 `yaml:"speed"`       // Palette offset per tick
	GlyphFirst int     `yaml:"glyph_first"` // First atlas tile of the cycle
	GlyphCount int     `yaml:"glyph_count"` // Number of tiles in the cycle
	GlyphStep  int     `yaml:"glyph_step"`  // Ticks per glyph change
}

// Validate reports configuration values the demo cannot run with.
func (c DemoConfig) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if len(c.Effects) == 0 {
		errs = append(errs, errors.New("at least one effect is required"))
	}
	if c.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %d", c.Window.Scale))
	}
	if c.Rainbow.GlyphCount <= 0 || c.Rainbow.GlyphStep <= 0 {
		errs = append(errs, errors.New("rainbow.glyph_count and rainbow.glyph_step must be positive"))
	}
	if c.Fire.Glyph < 0 {
		errs = append(errs, fmt.Errorf("fire.glyph must not be negative, got %d", c.Fire.Glyph))
	}
	if c.Rainbow.GlyphFirst < 0 {
		errs = append(errs, fmt.Errorf("rainbow.glyph_first must not be negative, got %d", c.Rainbow.GlyphFirst))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

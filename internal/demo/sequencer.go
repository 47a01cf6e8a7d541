// Package demo ties the pipeline together: a Sequencer of effects mutates
// the scene grid, then the compositor draws it into a framebuffer.
package demo

import (
	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/registry"
	"github.com/vovakirdan/tiledemo/internal/scene"
)

// Sequencer applies effects in order. Later effects overwrite cells written
// by earlier ones.
type Sequencer struct {
	effects []registry.Effect
}

// NewSequencer creates a sequencer over effects.
func NewSequencer(effects ...registry.Effect) *Sequencer {
	return &Sequencer{effects: effects}
}

// Reset resets every effect for cfg.
func (s *Sequencer) Reset(cfg core.RuntimeConfig) {
	for _, e := range s.effects {
		e.Reset(cfg)
	}
}

// Advance runs every effect once for tick.
func (s *Sequencer) Advance(grid *scene.Grid, tick uint64) {
	for _, e := range s.effects {
		e.Advance(grid, tick)
	}
}

// Effects returns the effects in application order.
func (s *Sequencer) Effects() []registry.Effect {
	return s.effects
}

// Title joins the effect titles for display.
func (s *Sequencer) Title() string {
	title := ""
	for i, e := range s.effects {
		if i > 0 {
			title += " + "
		}
		title += e.Title()
	}
	return title
}

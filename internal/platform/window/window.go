// Package window hosts the demo in a desktop window using ebiten.
// The framebuffer is uploaded to an ebiten image every tick and scaled by
// ebiten to the window size.
package window

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tiledemo/internal/config"
	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/demo"
)

// fpsInterval is the number of ticks between fps log lines.
const fpsInterval = 60

// Game adapts a demo to ebiten.Game.
type Game struct {
	demo    *demo.Demo
	img     *ebiten.Image
	pix     []byte
	counter *core.FrameCounter
	logger  *log.Logger
	paused  bool
}

// NewGame creates a window game for d.
func NewGame(d *demo.Demo, logger *log.Logger) *Game {
	fb := d.Framebuffer()
	return &Game{
		demo:    d,
		img:     ebiten.NewImage(fb.Width(), fb.Height()),
		pix:     make([]byte, 4*fb.Width()*fb.Height()),
		counter: core.NewFrameCounter(fpsInterval),
		logger:  logger,
	}
}

// Update handles input and steps the demo once per tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.demo.Restart()
	}
	if g.paused {
		return nil
	}

	fb, err := g.demo.Step()
	if err != nil {
		return err
	}
	fb.WriteRGBA(g.pix)
	g.img.WritePixels(g.pix)

	g.counter.Tick(time.Now())
	if g.counter.Frames()%fpsInterval == 0 {
		g.logger.Info("frame", "tick", g.demo.Tick(), "fps", fmt.Sprintf("%.1f", g.counter.FPS()), "tps", fmt.Sprintf("%.1f", ebiten.ActualTPS()))
	}
	return nil
}

// Draw copies the last frame to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen at framebuffer size.
func (g *Game) Layout(_, _ int) (int, int) {
	fb := g.demo.Framebuffer()
	return fb.Width(), fb.Height()
}

// Run opens a window for d and blocks until it is closed or quit.
func Run(d *demo.Demo, cfg config.DemoConfig) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiledemo-window",
	})

	fb := d.Framebuffer()
	ebiten.SetWindowSize(fb.Width()*cfg.Window.Scale, fb.Height()*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TickRate)

	logger.Info("window opened", "effects", d.Title(), "width", fb.Width(), "height", fb.Height(), "scale", cfg.Window.Scale)
	err := ebiten.RunGame(NewGame(d, logger))
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("window closed", "ticks", d.Tick())
	return nil
}

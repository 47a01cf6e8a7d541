package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tiledemo/internal/config"
	"github.com/vovakirdan/tiledemo/internal/core"
	"github.com/vovakirdan/tiledemo/internal/demo"
	"github.com/vovakirdan/tiledemo/internal/registry"
	"github.com/vovakirdan/tiledemo/internal/tiles"
)

// statusLines is the number of terminal rows reserved below the picture.
const statusLines = 2

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for running a demo.
type Model struct {
	atlas      *tiles.Atlas
	config     config.DemoConfig
	effects    []string // Effects of the running demo
	playlist   []string // Registered effect IDs cycled by next/prev
	current    int      // Index into playlist, -1 for a custom composition
	demo       *demo.Demo
	counter    *core.FrameCounter
	keyMapper  *KeyMapper
	help       help.Model
	renderer   *lipgloss.Renderer
	inputFrame core.InputFrame
	width      int
	height     int
	paused     bool
	quitting   bool
	backToMenu bool
	message    string
	err        error
}

// NewModel creates a demo model running effects (cfg.Effects when empty).
// width and height are the terminal size in cells; zero uses the configured grid.
func NewModel(atlas *tiles.Atlas, cfg config.DemoConfig, effects []string, width, height int) (Model, error) {
	if len(effects) == 0 {
		effects = cfg.Effects
	}

	m := Model{
		atlas:      atlas,
		config:     cfg,
		effects:    effects,
		current:    -1,
		counter:    core.NewFrameCounter(cfg.TickRate),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		width:      width,
		height:     height,
	}
	for _, info := range registry.List() {
		if len(effects) == 1 && info.ID == effects[0] {
			m.current = len(m.playlist)
		}
		m.playlist = append(m.playlist, info.ID)
	}

	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// WithRenderer sets the lipgloss renderer used to draw frames.
func (m Model) WithRenderer(r *lipgloss.Renderer) Model {
	m.renderer = r
	m.help.Styles.ShortKey = r.NewStyle().Foreground(lipgloss.Color("250"))
	m.help.Styles.ShortDesc = r.NewStyle().Foreground(lipgloss.Color("241"))
	return m
}

// ForMenu enables the back-to-menu key for demos opened from a menu.
func (m Model) ForMenu() Model {
	m.keyMapper.SetBackEnabled(true)
	return m
}

// WithoutScreenshots disables saving frames, for viewers that do not own
// the disk the demo runs on.
func (m Model) WithoutScreenshots() Model {
	m.keyMapper.SetScreenshotEnabled(false)
	return m
}

// rebuild replaces the running demo with one sized for the terminal.
func (m *Model) rebuild() error {
	rt := demo.RuntimeConfig(m.config)
	rt.GridW, rt.GridH = FitGrid(m.config.Grid, m.atlas.Layout(), m.width, m.height)

	d, err := demo.Build(m.atlas, m.config, rt, m.effects...)
	if err != nil {
		return err
	}
	m.demo = d
	return nil
}

// FitGrid returns the largest grid no bigger than limit whose pixels fit
// a width×height terminal drawn with half blocks. Zero sizes return limit.
func FitGrid(limit config.GridConfig, layout tiles.Layout, width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return limit.Width, limit.Height
	}
	w := width / layout.TileWidth
	h := (height - statusLines) * 2 / layout.TileHeight
	return core.Clamp(w, 1, limit.Width), core.Clamp(h, 1, limit.Height)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.keyMapper.IsBack(msg) {
		// The session model swallows this quit and shows its menu.
		m.backToMenu = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize rebuilds the demo for the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	if err := m.rebuild(); err != nil {
		m.err = err
		return m, tea.Quit
	}
	return m, nil
}

// handleTick applies pending input and steps the demo.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if cmd := m.applyInput(); cmd != nil {
		return m, cmd
	}
	m.inputFrame.Clear()

	if !m.paused {
		if _, err := m.demo.Step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.counter.Tick(now)
	}

	return m, tickCmd(m.config.TickRate)
}

// applyInput handles the actions collected since the last tick.
func (m *Model) applyInput() tea.Cmd {
	in := m.inputFrame

	if in.Has(core.ActionPause) {
		m.paused = !m.paused
	}
	if in.Has(core.ActionRestart) {
		m.demo.Restart()
	}
	if in.Has(core.ActionScreenshot) {
		path, err := m.saveScreenshot()
		if err != nil {
			m.message = "screenshot failed: " + err.Error()
		} else {
			m.message = "saved " + path
		}
	}

	step := 0
	if in.Has(core.ActionNext) {
		step++
	}
	if in.Has(core.ActionPrev) {
		step--
	}
	if step != 0 && len(m.playlist) > 0 {
		switch {
		case m.current >= 0:
			m.current = (m.current + step + len(m.playlist)) % len(m.playlist)
		case step > 0:
			m.current = 0
		default:
			m.current = len(m.playlist) - 1
		}
		m.effects = []string{m.playlist[m.current]}
		if err := m.rebuild(); err != nil {
			m.err = err
			return tea.Quit
		}
		m.message = ""
	}
	return nil
}

// saveScreenshot writes the last frame as a PNG and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	dir := filepath.Join(os.Getenv("HOME"), ".tiledemo", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.png", strings.Join(m.effects, "+"), timestamp)
	path := filepath.Join(dir, filename)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, m.demo.Framebuffer().Image()); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// View renders the last frame and the status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderFramebuffer(m.renderer, m.demo.Framebuffer()))
	b.WriteString("\n")

	status := fmt.Sprintf("%s  tick %d  %.1f fps", m.demo.Title(), m.demo.Tick(), m.counter.FPS())
	if m.paused {
		status += "  [paused]"
	}
	if m.message != "" {
		status += "  " + m.message
	}
	b.WriteString(m.style().Render(status))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keyMapper.Keys()))

	return b.String()
}

func (m Model) style() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle().Inherit(statusStyle)
	}
	return statusStyle
}

// Err returns the error that stopped the demo, if any.
func (m Model) Err() error {
	return m.err
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Demo returns the running demo.
func (m Model) Demo() *demo.Demo {
	return m.demo
}

// Run starts the Bubble Tea program for the given effects.
func Run(atlas *tiles.Atlas, cfg config.DemoConfig, effects []string, width, height int) error {
	_, err := runModel(atlas, cfg, effects, width, height, false)
	return err
}

// RunForMenu is Run for demos started from the menu. It reports whether the
// user asked to go back to the menu.
func RunForMenu(atlas *tiles.Atlas, cfg config.DemoConfig, effects []string, width, height int) (bool, error) {
	m, err := runModel(atlas, cfg, effects, width, height, true)
	if err != nil {
		return false, err
	}
	return m.BackToMenu(), nil
}

func runModel(atlas *tiles.Atlas, cfg config.DemoConfig, effects []string, width, height int, forMenu bool) (Model, error) {
	model, err := NewModel(atlas, cfg, effects, width, height)
	if err != nil {
		return Model{}, err
	}
	if forMenu {
		model = model.ForMenu()
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return Model{}, nil
	}
	return fm, fm.Err()
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tiledemo/internal/config"
	"github.com/vovakirdan/tiledemo/internal/tiles"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.tiledemo/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the demo over SSH. Every session runs its own demo;
// the atlas is decoded once and shared read-only.
type SSHServer struct {
	config SSHServerConfig
	demo   config.DemoConfig
	atlas  *tiles.Atlas
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(atlas *tiles.Atlas, demoCfg config.DemoConfig, cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tiledemo-ssh",
	})

	srv := &SSHServer{
		config: cfg,
		demo:   demoCfg,
		atlas:  atlas,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tiledemo", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model := s.newSession(bubbletea.MakeRenderer(sshSession), pty.Window.Width, pty.Window.Height)
	model.logger = s.logger.With("user", sshSession.User())

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// newSession creates the session model for one connection. A zero
// configured seed is resolved per demo, so sessions differ unless a seed
// was given.
func (s *SSHServer) newSession(r *lipgloss.Renderer, width, height int) SessionModel {
	return NewSessionModel(s.atlas, s.demo, r, width, height)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full session flow: menu -> demo -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	atlas     *tiles.Atlas
	config    config.DemoConfig
	renderer  *lipgloss.Renderer
	logger    *log.Logger
	width     int
	height    int
	menu      MenuModel
	demoModel *Model
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(atlas *tiles.Atlas, cfg config.DemoConfig, r *lipgloss.Renderer, width, height int) SessionModel {
	return SessionModel{
		atlas:    atlas,
		config:   cfg,
		renderer: r,
		logger:   log.Default(),
		width:    width,
		height:   height,
		menu:     NewMenuModel(width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.demoModel != nil {
		return m.updateDemo(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		dm, err := NewModel(m.atlas, m.config, selected, m.width, m.height)
		if err != nil {
			m.logger.Error("cannot start demo", "effects", selected, "error", err)
			m.menu = NewMenuModel(m.width, m.height)
			return m, nil
		}
		// Frames stay with the viewer; screenshots would land on the server.
		dm = dm.ForMenu().WithoutScreenshots()
		if m.renderer != nil {
			dm = dm.WithRenderer(m.renderer)
		}
		m.logger.Info("demo started", "effects", selected)
		m.demoModel = &dm
		return m, m.demoModel.Init()
	}

	return m, cmd
}

// updateDemo handles updates when a demo is running.
func (m SessionModel) updateDemo(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.demoModel.Update(msg)
	if dm, ok := newModel.(Model); ok {
		m.demoModel = &dm
	}

	if err := m.demoModel.Err(); err != nil {
		m.logger.Error("demo stopped", "error", err)
		m.quitting = true
		return m, tea.Quit
	}

	if m.demoModel.BackToMenu() {
		m.demoModel = nil
		m.menu = NewMenuModel(m.width, m.height)
		return m, m.menu.Init()
	}

	if m.demoModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.demoModel != nil {
		return m.demoModel.View()
	}

	return m.menu.View()
}

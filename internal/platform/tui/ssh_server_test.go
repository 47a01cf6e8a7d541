package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiledemo/internal/config"
	"github.com/vovakirdan/tiledemo/internal/tiles"
)

func newTestServer(t *testing.T, seed int64) *SSHServer {
	t.Helper()
	atlas, err := tiles.Default()
	if err != nil {
		t.Fatalf("tiles.Default: %v", err)
	}
	cfg := config.DefaultDemoConfig()
	cfg.Seed = seed
	return &SSHServer{atlas: atlas, demo: cfg, logger: log.New(io.Discard)}
}

// startDemo picks the first menu entry.
func startDemo(t *testing.T, sm SessionModel) SessionModel {
	t.Helper()
	sm.logger = log.New(io.Discard)
	next, _ := sm.Update(keyMsg("enter"))
	sm = next.(SessionModel)
	if sm.demoModel == nil {
		t.Fatal("enter did not start a demo")
	}
	return sm
}

func TestSessionKeepsConfiguredSeed(t *testing.T) {
	srv := newTestServer(t, 42)
	for i := 0; i < 2; i++ {
		sm := startDemo(t, srv.newSession(nil, 80, 24))
		if got := sm.demoModel.Demo().Config().Seed; got != 42 {
			t.Errorf("session %d seed = %d, want 42", i, got)
		}
	}
}

func TestSessionDemoKeys(t *testing.T) {
	sm := startDemo(t, newTestServer(t, 1).newSession(nil, 80, 24))
	keys := sm.demoModel.keyMapper.Keys()
	if !keys.Back.Enabled() {
		t.Error("back disabled in session demo")
	}
	if keys.Screenshot.Enabled() {
		t.Error("screenshot enabled in session demo")
	}

	next, _ := sm.Update(keyMsg("b"))
	sm = next.(SessionModel)
	if sm.demoModel != nil || sm.quitting {
		t.Error("b did not return the session to its menu")
	}
}

package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-smash/internal/config"
)

func testServerConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.Logger = log.New(io.Discard)
	return cfg
}

func TestNewSSHServerCreatesHostKey(t *testing.T) {
	cfg := testServerConfig(t)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.server == nil || srv.server.Addr != cfg.Address {
		t.Errorf("server not configured for %q", cfg.Address)
	}
	if _, err := os.Stat(filepath.Dir(cfg.HostKeyPath)); err != nil {
		t.Errorf("host key directory not created: %v", err)
	}
}

func TestDefaultSSHServerConfigUsesInputDefaults(t *testing.T) {
	want := config.DefaultSmashConfig().Input
	got := DefaultSSHServerConfig()

	if got.ChargeTicks != want.ChargeTicks || got.HoldReleaseTicks != want.HoldReleaseTicks {
		t.Errorf("latch ticks = %d/%d, expected %d/%d",
			got.ChargeTicks, got.HoldReleaseTicks, want.ChargeTicks, want.HoldReleaseTicks)
	}
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.GameID = "missing"

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("NewSSHServer() should fail for an unregistered game")
	}
}

func TestSSHRuntimeConfig(t *testing.T) {
	cfg := testServerConfig(t)
	cfg.Seed = 99

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatal(err)
	}

	rc := srv.runtimeConfig(120, 40)
	if rc.ScreenW != 120 || rc.ScreenH != 40 || rc.Seed != 99 || rc.TickRate != DefaultTickRate {
		t.Errorf("runtimeConfig() = %+v", rc)
	}

	srv.config.Seed = 0
	if srv.runtimeConfig(80, 24).Seed == 0 {
		t.Error("a zero seed should be replaced per session")
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tasklist/internal/config"
)

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFile), []byte(body), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if got := cfg.Server.Address(); got != "127.0.0.1:8080" {
		t.Errorf("expected default address, got %q", got)
	}
	if cfg.Server.IdleTimeout != 30*time.Second {
		t.Errorf("expected idle timeout 30s, got %v", cfg.Server.IdleTimeout)
	}
	if cfg.Logger.Level != "info" {
		t.Errorf("expected level info, got %q", cfg.Logger.Level)
	}
	if len(cfg.Logger.OutputPaths) != 1 || cfg.Logger.OutputPaths[0] != "stderr" {
		t.Errorf("expected stderr output, got %v", cfg.Logger.OutputPaths)
	}
	if cfg.Display.Color != config.ColorAuto {
		t.Errorf("expected color auto, got %q", cfg.Display.Color)
	}
}

func TestNew_DefaultDirFromXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	cfg, err := config.New("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(xdg, config.AppName); cfg.Dir != want {
		t.Errorf("expected %q, got %q", want, cfg.Dir)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HasConfigFile() {
		t.Error("expected no config file")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
server:
  host: 0.0.0.0
  port: 9000
  read_timeout: 2s
logger:
  level: debug
display:
  color: never
`)

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.Server.Address(); got != "0.0.0.0:9000" {
		t.Errorf("expected 0.0.0.0:9000, got %q", got)
	}
	if cfg.Server.ReadTimeout != 2*time.Second {
		t.Errorf("expected read timeout 2s, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 5*time.Second {
		t.Errorf("expected default write timeout, got %v", cfg.Server.WriteTimeout)
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("expected debug, got %q", cfg.Logger.Level)
	}
	if cfg.Display.Color != config.ColorNever {
		t.Errorf("expected never, got %q", cfg.Display.Color)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server:\n  port: 9000\n")
	t.Setenv("TASKLIST_SERVER_PORT", "9191")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("expected env port 9191, got %d", cfg.Server.Port)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "server: [unterminated\n")

	_, err := config.Load(dir)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_InvalidColor(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "display:\n  color: rainbow\n")

	_, err := config.Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid color")
	}
	if !strings.Contains(err.Error(), "display.color") {
		t.Errorf("unexpected error: %v", err)
	}
}

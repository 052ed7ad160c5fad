package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage == nil || cfg.Storage.Path == "" {
		t.Fatalf("expected a default storage path, got %#v", cfg.Storage)
	}
	if !strings.HasSuffix(cfg.Storage.Path, filepath.Join(".tasktrack", "tasks.db")) {
		t.Fatalf("unexpected default storage path: %q", cfg.Storage.Path)
	}
	if cfg.Logging == nil || cfg.Logging.Level != "info" {
		t.Fatalf("expected default logging config, got %#v", cfg.Logging)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "storage:\n  path: /tmp/elsewhere.db\nlogging:\n  level: debug\n  format: json\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.Path != "/tmp/elsewhere.db" {
		t.Fatalf("storage path not overridden: %q", cfg.Storage.Path)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging not overridden: %#v", cfg.Logging)
	}
}

func TestLoadRejectsEmptyStoragePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage:\n  path: \"\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for empty storage.path")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("storage: ["), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

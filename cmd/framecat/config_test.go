package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != "" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if !cfg.ShowBody {
		t.Fatalf("expected body printing enabled by default")
	}
}

func TestLoadConfigExample(t *testing.T) {
	cfg, err := loadConfig("ex.config.toml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != "127.0.0.1:61613" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if cfg.ShowBody {
		t.Fatalf("expected body printing disabled")
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("addr = \" 10.0.0.1:61613 \"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Addr != "10.0.0.1:61613" {
		t.Fatalf("unexpected addr: %q", cfg.Addr)
	}
	if !cfg.ShowBody {
		t.Fatalf("show_body default should survive a partial config")
	}
}

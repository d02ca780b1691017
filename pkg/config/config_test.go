package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.UI.Theme != "dark" || cfg.UI.DefaultTab != "work" {
		t.Fatalf("expected defaults, got %+v", cfg.UI)
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSaveToAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.DataPath = "/data/portfolio.yaml"
	cfg.UI.Theme = "light"
	cfg.Portfolios = []Portfolio{
		{Name: "main", Path: "/data/portfolio.yaml"},
		{Name: "labs", Path: "/data/labs.yaml"},
	}

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.UI.Theme != "light" || loaded.DataPath != "/data/portfolio.yaml" {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
	if len(loaded.Portfolios) != 2 || loaded.Portfolios[1].Name != "labs" {
		t.Fatalf("portfolios mismatch: %+v", loaded.Portfolios)
	}
}

func TestFindPortfolio(t *testing.T) {
	cfg := Config{Portfolios: []Portfolio{{Name: "Main", Path: "/a"}}}

	if p := cfg.FindPortfolio("main"); p == nil || p.Path != "/a" {
		t.Fatalf("case-insensitive lookup failed: %+v", p)
	}
	if cfg.FindPortfolio("other") != nil {
		t.Fatal("expected nil for unknown name")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir")
	}
	if got := expandHome("~/data.yaml"); got != filepath.Join(home, "data.yaml") {
		t.Fatalf("expandHome = %q", got)
	}
	if got := expandHome("/abs/data.yaml"); got != "/abs/data.yaml" {
		t.Fatalf("absolute path must pass through, got %q", got)
	}
}

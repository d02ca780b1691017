package datasource

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
title: Jane Doe
subtitle: Maker of things
about: |
  # Hi
  I build things.
contact:
  email: jane@example.com
cards:
  - id: p1
    title: Weather Station
    category: hardware
    tools: [go, " rust ", ""]
    summary: Solar-powered sensor node.
  - id: ""
    title: Dropped (no id)
  - id: p2
    title: Brand Refresh
    category: design
    tools: [figma]
`

const sampleJSON = `{
  "title": "Jane Doe",
  "cards": [
    {"id": "p1", "title": "Weather Station", "tools": ["go", "docker"]},
    {"id": "p3", "title": "CLI Toybox", "category": "tools"}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "portfolio.yaml", sampleYAML)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Title != "Jane Doe" || p.Contact.Email != "jane@example.com" {
		t.Fatalf("chrome mismatch: %+v", p)
	}
	// Card without id is dropped; order preserved.
	if len(p.Cards) != 2 || p.Cards[0].ID != "p1" || p.Cards[1].ID != "p2" {
		t.Fatalf("cards = %+v", p.Cards)
	}
	// Tool keys trimmed, empties dropped.
	if len(p.Cards[0].Tools) != 2 || p.Cards[0].Tools[1] != "rust" {
		t.Fatalf("tools = %v", p.Cards[0].Tools)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "portfolio.json", sampleJSON)

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Cards) != 2 || p.Cards[1].ID != "p3" {
		t.Fatalf("cards = %+v", p.Cards)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := Load(writeFile(t, dir, "bad.yaml", "{nope")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
	if _, err := Load(writeFile(t, dir, "data.txt", "x")); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	if _, err := Discover(dir); err == nil {
		t.Fatal("expected error for empty dir")
	}

	// json present
	writeFile(t, dir, "portfolio.json", sampleJSON)
	src, err := Discover(dir)
	if err != nil || src.Type != SourceTypeJSON {
		t.Fatalf("Discover = %v, %v", src, err)
	}

	// yaml outranks json
	writeFile(t, dir, "portfolio.yaml", sampleYAML)
	src, err = Discover(dir)
	if err != nil || src.Type != SourceTypeYAML {
		t.Fatalf("Discover = %v, %v", src, err)
	}
}

func TestLoadAllMergesFirstWins(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", sampleYAML)    // p1, p2
	b := writeFile(t, dir, "b.json", sampleJSON)    // p1 (dup), p3

	p, err := LoadAll([]string{a, b})
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if p.Title != "Jane Doe" {
		t.Fatalf("chrome should come from first path, got %q", p.Title)
	}
	var ids []string
	for _, c := range p.Cards {
		ids = append(ids, c.ID)
	}
	if len(ids) != 3 || ids[0] != "p1" || ids[1] != "p2" || ids[2] != "p3" {
		t.Fatalf("merged ids = %v", ids)
	}
	// Duplicate p1 keeps the first file's version.
	if len(p.Cards[0].Tools) != 2 || p.Cards[0].Tools[0] != "go" || p.Cards[0].Tools[1] != "rust" {
		t.Fatalf("dup resolution wrong: %v", p.Cards[0].Tools)
	}
}

func TestLoadAllPropagatesErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "a.yaml", sampleYAML)

	if _, err := LoadAll([]string{good, filepath.Join(dir, "missing.json")}); err == nil {
		t.Fatal("expected error when any source fails")
	}
	if _, err := LoadAll(nil); err == nil {
		t.Fatal("expected error for empty path list")
	}
}

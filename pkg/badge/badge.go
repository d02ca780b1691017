// Package badge maps tool keys found on portfolio cards to renderable badge
// descriptors. The table is fixed: unknown keys are skipped, never an error.
package badge

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Descriptor describes how a single recognized tool is rendered.
type Descriptor struct {
	Key   string // normalized tool key
	Label string // accessible full name
	Short string // short text label for narrow cells
	Color string // hex accent color for the badge
	Icon  bool   // true when the badge renders as an icon glyph, false for plain text
}

// Glyphs for icon-style badges. Kept separate from the table so text-only
// terminals can fall back to Short.
var glyphs = map[string]string{
	"go":         "🐹",
	"rust":       "🦀",
	"python":     "🐍",
	"javascript": "JS",
	"typescript": "TS",
	"figma":      "✏️",
	"docker":     "🐳",
	"kubernetes": "☸",
	"postgres":   "🐘",
	"sqlite":     "🗄",
	"react":      "⚛",
	"blender":    "🌀",
}

// table is the fixed tool-key lookup. Keys are already normalized.
var table = map[string]Descriptor{
	"go":         {Key: "go", Label: "Go", Short: "Go", Color: "#00ADD8", Icon: true},
	"rust":       {Key: "rust", Label: "Rust", Short: "Rs", Color: "#DEA584", Icon: true},
	"python":     {Key: "python", Label: "Python", Short: "Py", Color: "#3572A5", Icon: true},
	"javascript": {Key: "javascript", Label: "JavaScript", Short: "JS", Color: "#F1E05A", Icon: false},
	"typescript": {Key: "typescript", Label: "TypeScript", Short: "TS", Color: "#3178C6", Icon: false},
	"html":       {Key: "html", Label: "HTML", Short: "HTML", Color: "#E34C26", Icon: false},
	"css":        {Key: "css", Label: "CSS", Short: "CSS", Color: "#563D7C", Icon: false},
	"figma":      {Key: "figma", Label: "Figma", Short: "Fig", Color: "#F24E1E", Icon: true},
	"docker":     {Key: "docker", Label: "Docker", Short: "Dkr", Color: "#2496ED", Icon: true},
	"kubernetes": {Key: "kubernetes", Label: "Kubernetes", Short: "K8s", Color: "#326CE5", Icon: true},
	"postgres":   {Key: "postgres", Label: "PostgreSQL", Short: "PG", Color: "#336791", Icon: true},
	"sqlite":     {Key: "sqlite", Label: "SQLite", Short: "SQL", Color: "#003B57", Icon: true},
	"react":      {Key: "react", Label: "React", Short: "Re", Color: "#61DAFB", Icon: true},
	"svelte":     {Key: "svelte", Label: "Svelte", Short: "Sv", Color: "#FF3E00", Icon: false},
	"blender":    {Key: "blender", Label: "Blender", Short: "Bl", Color: "#EA7600", Icon: true},
	"photoshop":  {Key: "photoshop", Label: "Photoshop", Short: "Ps", Color: "#31A8FF", Icon: false},
	"illustrator": {Key: "illustrator", Label: "Illustrator", Short: "Ai", Color: "#FF9A00", Icon: false},
	"terraform":  {Key: "terraform", Label: "Terraform", Short: "Tf", Color: "#7B42BC", Icon: false},
	"aws":        {Key: "aws", Label: "AWS", Short: "AWS", Color: "#FF9900", Icon: false},
	"gcp":        {Key: "gcp", Label: "Google Cloud", Short: "GCP", Color: "#4285F4", Icon: false},
}

// Normalize lowercases and trims a raw tool key as it appears in card data.
func Normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// Lookup returns the descriptor for a raw tool key. ok is false for keys the
// table does not recognize; callers skip those silently.
func Lookup(key string) (Descriptor, bool) {
	d, ok := table[Normalize(key)]
	return d, ok
}

// ForTools resolves an ordered tool list into descriptors. Output order equals
// input order restricted to recognized keys; unrecognized keys contribute
// nothing.
func ForTools(tools []string) []Descriptor {
	if len(tools) == 0 {
		return nil
	}
	out := make([]Descriptor, 0, len(tools))
	for _, t := range tools {
		if d, ok := Lookup(t); ok {
			out = append(out, d)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Known reports whether the table recognizes the given raw key.
func Known(key string) bool {
	_, ok := table[Normalize(key)]
	return ok
}

// Keys returns all recognized keys. Order is unspecified; callers sort.
func Keys() []string {
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	return out
}

// Glyph returns the icon glyph for an icon-style descriptor, or its Short
// label when no glyph exists or the descriptor is text-style.
func (d Descriptor) Glyph() string {
	if d.Icon {
		if g, ok := glyphs[d.Key]; ok {
			return g
		}
	}
	return d.Short
}

// Render produces a single styled badge cell using the given renderer.
func Render(d Descriptor, r *lipgloss.Renderer) string {
	style := r.NewStyle().
		Foreground(lipgloss.Color(d.Color)).
		Bold(true).
		Padding(0, 1)
	return style.Render(d.Glyph())
}

// RenderAll renders badges side by side in descriptor order.
func RenderAll(ds []Descriptor, r *lipgloss.Renderer) string {
	if len(ds) == 0 {
		return ""
	}
	parts := make([]string, 0, len(ds))
	for _, d := range ds {
		parts = append(parts, Render(d, r))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

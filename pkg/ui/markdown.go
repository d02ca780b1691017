package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer wraps glamour with a fixed word-wrap width. Rebuilt on
// (debounced) resize rather than per render.
type MarkdownRenderer struct {
	tr    *glamour.TermRenderer
	width int
}

// NewMarkdownRenderer creates a renderer wrapping at the given width.
func NewMarkdownRenderer(width int) *MarkdownRenderer {
	if width < 20 {
		width = 20
	}
	tr, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	return &MarkdownRenderer{tr: tr, width: width}
}

// Width returns the wrap width the renderer was built with.
func (r *MarkdownRenderer) Width() int {
	return r.width
}

// Render renders markdown to styled terminal text. On any renderer failure
// the raw text comes back unchanged; worst case is unstyled content.
func (r *MarkdownRenderer) Render(md string) string {
	if r == nil || r.tr == nil || md == "" {
		return md
	}
	out, err := r.tr.Render(md)
	if err != nil {
		return md
	}
	// Glamour pads with trailing newlines; the caller controls spacing.
	return strings.TrimRight(out, "\n")
}

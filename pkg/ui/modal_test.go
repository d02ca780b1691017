package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/folio/pkg/model"
)

func testModal() (ProjectModal, *MarkdownRenderer) {
	m := NewProjectModal(DefaultTheme(lipgloss.DefaultRenderer()))
	m.SetSize(100, 32)
	return m, NewMarkdownRenderer(60)
}

func sampleCard() model.Card {
	return model.Card{
		ID:       "alpha",
		Title:    "Alpha",
		Category: "design",
		Tools:    []string{"figma", "css", "bogus"},
		Summary:  "a small thing",
		Details:  "Built over a **weekend**.",
		Link:     "https://example.com/alpha",
	}
}

func TestModalOpenShowsAllRecognizedBadges(t *testing.T) {
	m, md := testModal()
	m.Open(sampleCard(), model.ContactInfo{}, md)

	if !m.Visible() {
		t.Fatal("modal should be visible after open")
	}
	// Unlike the grid row, the modal shows the FULL badge row. Unknown tool
	// keys are skipped, not errored.
	if m.BadgeCount() != 2 {
		t.Fatalf("expected 2 recognized badges, got %d", m.BadgeCount())
	}
}

func TestModalPlaceholderImage(t *testing.T) {
	m, md := testModal()
	m.Open(sampleCard(), model.ContactInfo{}, md)

	if !strings.Contains(m.imageURL, "picsum.photos/seed/alpha") {
		t.Fatalf("card without image gets the seeded placeholder, got %q", m.imageURL)
	}

	c := sampleCard()
	c.Image = "https://cdn.example.com/alpha.png"
	m.Open(c, model.ContactInfo{}, md)
	if m.imageURL != c.Image {
		t.Fatalf("explicit image should win, got %q", m.imageURL)
	}
}

func TestModalCloseIsStaged(t *testing.T) {
	m, md := testModal()
	m.Open(sampleCard(), model.ContactInfo{}, md)

	cmd := m.Close()
	if cmd == nil {
		t.Fatal("close from visible should return a fade command")
	}
	if m.Visible() {
		t.Fatal("overlay hides immediately on close")
	}
	// Content is retained until the fade tick lands.
	if m.BadgeCount() == 0 {
		t.Fatal("content should be retained during the closing stage")
	}

	msg := cmd().(ModalFadeMsg)
	m.FinishClose(msg.Seq)
	if m.BadgeCount() != 0 || m.CardID() != "" {
		t.Fatal("fade tick should clear content")
	}

	if m.Close() != nil {
		t.Fatal("close on a hidden modal is a no-op")
	}
}

func TestModalStaleFadeIgnored(t *testing.T) {
	m, md := testModal()
	m.Open(sampleCard(), model.ContactInfo{}, md)
	cmd := m.Close()
	stale := cmd().(ModalFadeMsg)

	c := sampleCard()
	c.ID = "beta"
	m.Open(c, model.ContactInfo{}, md)

	m.FinishClose(stale.Seq)
	if !m.Visible() || m.CardID() != "beta" {
		t.Fatal("stale fade seq must not clear a reopened modal")
	}
}

func TestModalViewContent(t *testing.T) {
	m, md := testModal()

	if m.View() != "" {
		t.Fatal("hidden modal renders nothing")
	}

	m.Open(sampleCard(), model.ContactInfo{Email: "hi@example.com"}, md)
	out := m.View()
	for _, want := range []string{"Alpha", "picsum.photos/seed/alpha", "example.com/alpha", "hi@example.com"} {
		if !strings.Contains(out, want) {
			t.Fatalf("modal view missing %q", want)
		}
	}
}

func TestModalScrollKeys(t *testing.T) {
	m, md := testModal()
	c := sampleCard()
	c.Details = strings.Repeat("line\n\n", 40)
	m.Open(c, model.ContactInfo{}, md)
	m.SetSize(80, 12)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.scroll != 1 {
		t.Fatalf("down should scroll, offset = %d", m.scroll)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if m.scroll != 0 {
		t.Fatalf("home should reset, offset = %d", m.scroll)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.scroll != 0 {
		t.Fatalf("up at the top stays put, offset = %d", m.scroll)
	}
}

package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/folio/pkg/badge"
	"github.com/vanderheijden86/folio/pkg/model"
)

// ModalFadeDuration is the delay between hiding the overlay and clearing its
// content, mirroring the short fade a CSS transition would take.
const ModalFadeDuration = 200 * time.Millisecond

// ModalFadeMsg finalizes a staged close. Seq guards against a reopen racing
// the pending tick: a stale sequence is ignored.
type ModalFadeMsg struct {
	Seq int
}

type modalStage int

const (
	modalHidden modalStage = iota
	modalVisible
	modalClosing // overlay hidden, content retained until the fade tick
)

// ProjectModal is the project detail overlay. It renders one card's title,
// image line, full badge row, details markdown, and the contact hint.
//
// The modal owns only its visual state; open/close transitions and history
// synchronization are driven by the Model's controller methods.
type ProjectModal struct {
	stage modalStage
	seq   int // bumped on every transition; invalidates pending fade ticks

	card     model.Card
	imageURL string
	badges   []badge.Descriptor
	details  string // pre-rendered markdown
	contact  model.ContactInfo

	scroll int // detail scroll offset in lines

	width  int
	height int
	theme  Theme
}

// NewProjectModal creates a hidden modal.
func NewProjectModal(theme Theme) ProjectModal {
	return ProjectModal{theme: theme}
}

// Open populates the modal from a card and shows it. Opening over an already
// open modal is last-write-wins: content is replaced, any pending fade is
// invalidated.
func (m *ProjectModal) Open(card model.Card, contact model.ContactInfo, md *MarkdownRenderer) {
	m.card = card
	m.imageURL = card.ImageURL()
	m.badges = badge.ForTools(card.Tools)
	m.details = md.Render(card.Details)
	m.contact = contact
	m.scroll = 0
	m.stage = modalVisible
	m.seq++
}

// Close hides the overlay immediately and schedules the content clear behind
// the fade delay. Returns the one-shot tick command, or nil if already hidden.
func (m *ProjectModal) Close() tea.Cmd {
	if m.stage != modalVisible {
		return nil
	}
	m.stage = modalClosing
	m.seq++
	seq := m.seq
	return tea.Tick(ModalFadeDuration, func(time.Time) tea.Msg {
		return ModalFadeMsg{Seq: seq}
	})
}

// FinishClose clears retained content once the fade tick lands. Stale ticks
// (the modal was reopened meanwhile) are ignored.
func (m *ProjectModal) FinishClose(seq int) {
	if m.stage != modalClosing || seq != m.seq {
		return
	}
	m.card = model.Card{}
	m.imageURL = ""
	m.badges = nil
	m.details = ""
	m.stage = modalHidden
}

// Visible reports whether the overlay is shown.
func (m ProjectModal) Visible() bool {
	return m.stage == modalVisible
}

// CardID returns the open card's id, or "" when hidden.
func (m ProjectModal) CardID() string {
	if m.stage != modalVisible {
		return ""
	}
	return m.card.ID
}

// BadgeCount returns the number of rendered badges.
func (m ProjectModal) BadgeCount() int {
	return len(m.badges)
}

// Rewrap re-renders the details markdown after a width change.
func (m *ProjectModal) Rewrap(md *MarkdownRenderer) {
	if m.stage == modalVisible {
		m.details = md.Render(m.card.Details)
	}
}

// SetSize sets the terminal dimensions the modal centers itself in.
func (m *ProjectModal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles scrolling keys while the modal is visible. Open/close keys
// are owned by the Model.
func (m ProjectModal) Update(msg tea.Msg) (ProjectModal, tea.Cmd) {
	if m.stage != modalVisible {
		return m, nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			m.scroll++
		case "home", "g":
			m.scroll = 0
		}
	}
	return m, nil
}

// View renders the centered overlay, or "" while hidden/closing.
func (m ProjectModal) View() string {
	if m.stage != modalVisible {
		return ""
	}

	t := m.theme

	boxWidth := m.width - 10
	if boxWidth < 50 {
		boxWidth = 50
	}
	if boxWidth > 90 {
		boxWidth = 90
	}
	innerWidth := boxWidth - 6 // box padding and border

	var content strings.Builder
	content.WriteString(t.TitleText.Render(m.card.Title))
	content.WriteString("\n")
	content.WriteString(t.MutedText.Render(m.card.CategoryOrDefault()))
	content.WriteString("\n\n")

	content.WriteString(t.SecondaryText.Render("⛶ " + truncateCells(m.imageURL, innerWidth-2, "…")))
	content.WriteString("\n")

	if len(m.badges) > 0 {
		content.WriteString(badge.RenderAll(m.badges, t.Renderer))
		content.WriteString("\n")
	}

	if m.details != "" {
		content.WriteString("\n")
		content.WriteString(m.detailsWindow())
		content.WriteString("\n")
	}

	if m.card.Link != "" {
		content.WriteString("\n")
		content.WriteString(t.SecondaryText.Render("↗ " + m.card.Link))
		content.WriteString("\n")
	}
	if m.contact.Email != "" {
		content.WriteString(t.MutedText.Render("✉ " + m.contact.Email))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(t.MutedText.Render("[esc] close   [y] copy link   [↑/↓] scroll   [[/]] history"))

	box := t.ModalBox.Width(boxWidth).Render(content.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// detailsWindow returns the visible slice of the rendered details, honoring
// the scroll offset and the space the chrome leaves us.
func (m ProjectModal) detailsWindow() string {
	lines := strings.Split(m.details, "\n")

	maxLines := m.height - 16
	if maxLines < 3 {
		maxLines = 3
	}
	if len(lines) <= maxLines {
		return m.details
	}

	start := m.scroll
	if start > len(lines)-maxLines {
		start = len(lines) - maxLines
	}
	if start < 0 {
		start = 0
	}
	window := strings.Join(lines[start:start+maxLines], "\n")
	return window + "\n" + m.theme.MutedText.Render(fmt.Sprintf("… %d/%d", start+maxLines, len(lines)))
}

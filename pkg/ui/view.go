package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/folio/pkg/stats"
)

// View renders the full frame. When the modal is visible it covers the page;
// the underlying tab state is untouched and reappears on close.
func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}

	if m.modal.Visible() {
		return m.modal.View()
	}

	var b strings.Builder
	b.WriteString(m.viewTabs())
	b.WriteString("\n")

	switch m.activeTab {
	case tabAbout:
		b.WriteString(m.viewAbout())
	case tabContact:
		b.WriteString(m.viewContact())
	default:
		b.WriteString(m.list.View())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewTabs() string {
	labels := []string{"Work", "About", "Contact"}
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := m.theme.TabInactive
		if tab(i) == m.activeTab {
			style = m.theme.TabActive
		}
		parts = append(parts, style.Render(fmt.Sprintf(" %d %s ", i+1, label)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)

	title := m.portfolio.Title
	if title == "" {
		title = "folio"
	}
	header := m.theme.TitleText.Render(title)
	if cat := m.currentCategory(); cat != "" && m.activeTab == tabWork {
		header += "  " + m.theme.AccentText.Render("["+cat+"]")
	}
	return header + "\n" + row
}

func (m Model) viewAbout() string {
	var b strings.Builder
	if m.portfolio.Subtitle != "" {
		b.WriteString(m.theme.SecondaryText.Render(m.portfolio.Subtitle))
		b.WriteString("\n\n")
	}
	if m.portfolio.About != "" {
		b.WriteString(m.md.Render(m.portfolio.About))
		b.WriteString("\n")
	}
	s := stats.Summarize(m.portfolio.Cards)
	b.WriteString(m.theme.MutedText.Render(fmt.Sprintf(
		"%d projects · %d categories · %d tools · %.0f%% recognized",
		s.Cards, len(s.Categories), s.DistinctTools, s.RecognizedPct*100)))
	return m.fitBody(b.String())
}

func (m Model) viewContact() string {
	c := m.portfolio.Contact
	var b strings.Builder
	b.WriteString(m.theme.TitleText.Render("Get in touch"))
	b.WriteString("\n\n")
	if c.Email != "" {
		b.WriteString(m.theme.SecondaryText.Render("✉ "+c.Email) + "\n")
	}
	if c.Location != "" {
		b.WriteString(m.theme.MutedText.Render("⌂ "+c.Location) + "\n")
	}
	for _, link := range c.Links {
		b.WriteString(m.theme.AccentText.Render("↗ "+link) + "\n")
	}
	if c.Email == "" && c.Location == "" && len(c.Links) == 0 {
		b.WriteString(m.theme.MutedText.Render("no contact details"))
	}
	return m.fitBody(b.String())
}

// fitBody pads or trims content so the footer stays pinned to the last row.
func (m Model) fitBody(content string) string {
	lines := strings.Split(content, "\n")
	h := m.bodyHeight()
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// viewFooter shows the current deep link (the shareable location), the
// transient status, and a key hint.
func (m Model) viewFooter() string {
	link := m.history.Current().String()
	if link == "" {
		link = "~"
	} else {
		link = "?" + link
	}
	left := m.theme.AccentText.Render(link)

	status := ""
	if m.statusMsg != "" {
		if m.statusIsError {
			status = m.theme.ErrorText.Render(m.statusMsg)
		} else {
			status = m.theme.SecondaryText.Render(m.statusMsg)
		}
	}

	hint := m.theme.MutedText.Render("enter open · c filter · [ ] history · y copy link · q quit")

	line := left
	if status != "" {
		line += "  " + status
	}
	pad := m.width - lipgloss.Width(line) - lipgloss.Width(hint)
	if pad < 2 {
		return m.theme.FooterBar.Render(truncateCells(line, m.width, "…"))
	}
	return m.theme.FooterBar.Render(line + strings.Repeat(" ", pad) + hint)
}

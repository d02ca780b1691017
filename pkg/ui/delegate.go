package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/folio/pkg/badge"
)

// CardDelegate renders card rows in the grid list.
//
// Rows follow the card display rule: only the FIRST recognized tool badge is
// shown, with a "+N" marker for the rest. The full badge row lives in the
// project modal.
type CardDelegate struct {
	Theme Theme
}

func (d CardDelegate) Height() int {
	return 2
}

func (d CardDelegate) Spacing() int {
	return 1
}

func (d CardDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d CardDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(CardItem)
	if !ok {
		return
	}

	t := d.Theme
	width := m.Width()
	if width <= 0 {
		width = 80
	}
	// Keep one cell off the edge to avoid terminal wrapping.
	width--

	isSelected := index == m.Index()

	selector := "  "
	titleStyle := t.Renderer.NewStyle().Bold(true)
	if isSelected {
		selector = t.TitleText.Render("▸ ")
		titleStyle = titleStyle.Foreground(t.Primary)
	}

	catBadge := t.AccentText.Render("[" + i.Card.CategoryOrDefault() + "]")

	badgeCell := d.firstBadgeCell(i)
	badgeWidth := lipgloss.Width(badgeCell)

	titleWidth := width - 2 - lipgloss.Width(catBadge) - badgeWidth - 2
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := titleStyle.Render(padRight(truncateCells(i.Card.Title, titleWidth, "…"), titleWidth))

	line1 := fmt.Sprintf("%s%s %s %s", selector, title, catBadge, badgeCell)

	summary := truncateCells(i.Description(), width-4, "…")
	line2 := "  " + t.MutedText.Render(summary)

	fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// firstBadgeCell applies the first-badge-only rule: the first recognized tool
// renders as a badge, the remainder collapse into a "+N" count. Cards whose
// tools are all unrecognized get no badge cell at all.
func (d CardDelegate) firstBadgeCell(i CardItem) string {
	ds := badge.ForTools(i.Card.Tools)
	if len(ds) == 0 {
		return ""
	}
	cell := badge.Render(ds[0], d.Theme.Renderer)
	if len(ds) > 1 {
		cell += d.Theme.MutedText.Render(fmt.Sprintf("+%d", len(ds)-1))
	}
	return cell
}

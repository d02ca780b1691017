// Package ui implements the folio terminal interface: a tabbed page with a
// filterable card grid, a deep-linkable project modal, and live data reload.
package ui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/folio/internal/datasource"
	"github.com/vanderheijden86/folio/pkg/config"
	"github.com/vanderheijden86/folio/pkg/deeplink"
	"github.com/vanderheijden86/folio/pkg/model"
	"github.com/vanderheijden86/folio/pkg/watcher"
)

// tab identifies the active page section.
type tab int

const (
	tabWork tab = iota
	tabAbout
	tabContact
	numTabs
)

func (t tab) String() string {
	switch t {
	case tabAbout:
		return "about"
	case tabContact:
		return "contact"
	default:
		return "work"
	}
}

func tabByName(name string) tab {
	switch name {
	case "about":
		return tabAbout
	case "contact":
		return tabContact
	default:
		return tabWork
	}
}

// resizeDebounce is the trailing delay before expensive re-layout work
// (markdown re-wrap) runs after a window size burst.
const resizeDebounce = 150 * time.Millisecond

// FileChangedMsg is sent when the portfolio data file changes on disk.
type FileChangedMsg struct{}

// resizeDebounceMsg fires after the resize debounce delay. Seq identifies the
// burst; a stale Seq means another resize arrived meanwhile and this tick is
// dropped (cancel-and-reschedule).
type resizeDebounceMsg struct {
	Seq int
}

// WatchFileCmd blocks until the watcher reports a change, then emits
// FileChangedMsg. Re-issued after every receive.
func WatchFileCmd(w *watcher.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		<-w.Changed()
		return FileChangedMsg{}
	}
}

// Model is the root Bubble Tea model for the viewer.
type Model struct {
	// Data
	portfolio *model.Portfolio
	dataPath  string
	watcher   *watcher.Watcher

	// Components
	list  list.Model
	modal ProjectModal
	md    *MarkdownRenderer
	theme Theme

	// Deep-link state. history is never nil; its current entry always agrees
	// with the modal after a controller-initiated transition settles.
	history *deeplink.History

	// View state
	activeTab   tab
	categories  []string // distinct categories, cycled by the filter key
	categoryIdx int      // 0 = all
	width       int
	height      int
	ready       bool
	resizeSeq   int

	// Status line
	statusMsg     string
	statusIsError bool
}

// NewModel creates the root model for a loaded portfolio.
func NewModel(p *model.Portfolio, dataPath string) Model {
	theme := DefaultTheme(lipgloss.DefaultRenderer())
	return newModelWithTheme(p, dataPath, theme)
}

func newModelWithTheme(p *model.Portfolio, dataPath string, theme Theme) Model {
	if p == nil {
		p = &model.Portfolio{}
	}
	m := Model{
		portfolio: p,
		dataPath:  dataPath,
		theme:     theme,
		history:   deeplink.NewHistory(deeplink.Location{}),
		md:        NewMarkdownRenderer(76),
		// Default dimensions until the first WindowSizeMsg arrives.
		width:  100,
		height: 32,
		ready:  true,
	}

	m.categories = categoryChoices(p)

	l := list.New(cardItems(p, ""), CardDelegate{Theme: theme}, m.width, m.bodyHeight())
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	m.list = l

	m.modal = NewProjectModal(theme)
	m.modal.SetSize(m.width, m.height)

	return m
}

// WithConfig applies app configuration (theme, default tab).
func (m Model) WithConfig(cfg config.Config) Model {
	m.theme = ThemeByName(cfg.UI.Theme, lipgloss.DefaultRenderer())
	m.list.SetDelegate(CardDelegate{Theme: m.theme})
	m.modal.theme = m.theme
	m.activeTab = tabByName(cfg.UI.DefaultTab)
	return m
}

// WithWatcher wires a started file watcher for live reload.
func (m Model) WithWatcher(w *watcher.Watcher) Model {
	m.watcher = w
	return m
}

// WithLink seeds the history with a startup deep link and replays it: a
// matching project parameter opens the modal immediately without creating an
// extra history entry. An unknown id deep-links to nothing, silently.
func (m Model) WithLink(loc deeplink.Location) Model {
	m.history = deeplink.NewHistory(loc)
	m.openFromLink(false)
	return m
}

// Stop releases background resources.
func (m Model) Stop() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

// Init starts the watch loop.
func (m Model) Init() tea.Cmd {
	return WatchFileCmd(m.watcher)
}

func (m Model) bodyHeight() int {
	h := m.height - 2 - 1 // tab bar, footer
	if h < 3 {
		h = 3
	}
	return h
}

// Update is the single event loop: every message is a discrete inbound event
// and all state transitions happen here.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Geometry applies immediately; the markdown re-wrap waits out the
		// burst behind the debounce tick.
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.list.SetSize(m.width, m.bodyHeight())
		m.modal.SetSize(m.width, m.height)
		m.resizeSeq++
		seq := m.resizeSeq
		return m, tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
			return resizeDebounceMsg{Seq: seq}
		})

	case resizeDebounceMsg:
		if msg.Seq != m.resizeSeq {
			return m, nil // superseded by a newer resize
		}
		wrap := m.width - 20
		if wrap > 96 {
			wrap = 96
		}
		m.md = NewMarkdownRenderer(wrap)
		m.modal.Rewrap(m.md)
		return m, nil

	case ModalFadeMsg:
		m.modal.FinishClose(msg.Seq)
		return m, nil

	case FileChangedMsg:
		cmds = append(cmds, m.reloadData(), WatchFileCmd(m.watcher))
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the list's built-in filter prompt is active, it owns the keys.
	if m.activeTab == tabWork && m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	key := msg.String()

	// History navigation works everywhere: back/forward replay the deep-link
	// stack exactly like browser navigation would.
	switch key {
	case "[":
		return m, m.navigateHistory(-1)
	case "]":
		return m, m.navigateHistory(+1)
	}

	if m.modal.Visible() {
		return m.handleModalKey(msg)
	}

	switch key {
	case "ctrl+c", "q":
		m.Stop()
		return m, tea.Quit

	case "tab":
		m.activeTab = (m.activeTab + 1) % numTabs
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab + numTabs - 1) % numTabs
		return m, nil
	case "1":
		m.activeTab = tabWork
		return m, nil
	case "2":
		m.activeTab = tabAbout
		return m, nil
	case "3":
		m.activeTab = tabContact
		return m, nil

	case "y":
		m.yankLink()
		return m, nil
	}

	if m.activeTab != tabWork {
		return m, nil
	}

	switch key {
	case "c":
		m.cycleCategory()
		return m, nil

	case "enter", " ", "space":
		if card := m.selectedCard(); card != nil {
			m.openCard(card, true)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleModalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, m.closeModal(false)

	case "y":
		m.yankLink()
		return m, nil

	case "o":
		// Placeholder action until terminals agree on link opening.
		if link := m.modal.card.Link; link != "" {
			m.setStatus(fmt.Sprintf("open %s in your browser", link), false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// reloadData re-reads the data file after a change notification. The open
// modal follows the data: its card is re-resolved by id, and a vanished card
// closes the overlay without touching history.
func (m *Model) reloadData() tea.Cmd {
	if m.dataPath == "" {
		return nil
	}
	p, err := datasource.Load(m.dataPath)
	if err != nil {
		m.setStatus(fmt.Sprintf("reload failed: %v", err), true)
		return nil
	}
	m.portfolio = p
	m.categories = categoryChoices(p)
	if m.categoryIdx >= len(m.categories) {
		m.categoryIdx = 0
	}
	m.applyCategory()

	var cmd tea.Cmd
	if id := m.modal.CardID(); id != "" {
		if card := m.portfolio.FindCard(id); card != nil {
			m.modal.Open(*card, m.portfolio.Contact, m.md)
		} else {
			cmd = m.closeModal(true)
		}
	}
	m.setStatus("data reloaded", false)
	return cmd
}

func (m *Model) yankLink() {
	link := m.history.Current().String()
	if err := clipboard.WriteAll(link); err != nil {
		m.setStatus(fmt.Sprintf("clipboard error: %v", err), true)
		return
	}
	if link == "" {
		link = "(home)"
	}
	m.setStatus(fmt.Sprintf("copied %s", link), false)
}

func (m *Model) cycleCategory() {
	if len(m.categories) == 0 {
		return
	}
	m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
	m.applyCategory()
}

func (m *Model) applyCategory() {
	m.list.SetItems(cardItems(m.portfolio, m.currentCategory()))
	m.list.ResetSelected()
}

func (m Model) currentCategory() string {
	if m.categoryIdx == 0 || m.categoryIdx >= len(m.categories) {
		return ""
	}
	return m.categories[m.categoryIdx]
}

func (m Model) selectedCard() *model.Card {
	item, ok := m.list.SelectedItem().(CardItem)
	if !ok {
		return nil
	}
	return m.portfolio.FindCard(item.Card.ID)
}

func (m *Model) setStatus(msg string, isError bool) {
	m.statusMsg = msg
	m.statusIsError = isError
}

// categoryChoices returns the cycle order: "" (all) followed by the distinct
// categories in first-seen order.
func categoryChoices(p *model.Portfolio) []string {
	return append([]string{""}, p.Categories()...)
}

func cardItems(p *model.Portfolio, category string) []list.Item {
	if p == nil {
		return nil
	}
	var items []list.Item
	for _, c := range p.Cards {
		if category != "" && c.CategoryOrDefault() != category {
			continue
		}
		items = append(items, CardItem{Card: c})
	}
	return items
}

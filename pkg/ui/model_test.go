package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/folio/pkg/deeplink"
	"github.com/vanderheijden86/folio/pkg/model"
)

func testPortfolio() *model.Portfolio {
	return &model.Portfolio{
		Title:    "Studio",
		Subtitle: "small things, carefully",
		About:    "I make **interfaces**.",
		Contact:  model.ContactInfo{Email: "hi@example.com"},
		Cards: []model.Card{
			{ID: "alpha", Title: "Alpha", Category: "design", Tools: []string{"figma", "css"}},
			{ID: "beta", Title: "Beta", Category: "code", Tools: []string{"go", "postgres", "docker"}},
			{ID: "gamma", Title: "Gamma", Category: "design", Tools: []string{"unknown-tool"}},
		},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func apply(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestOpenPushesProjectLocation(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})

	m = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.modal.Visible() {
		t.Fatal("modal should be visible after enter")
	}
	if m.modal.CardID() != "alpha" {
		t.Fatalf("expected alpha open, got %q", m.modal.CardID())
	}
	id, ok := m.history.Current().Project()
	if !ok || id != "alpha" {
		t.Fatalf("current location should carry project=alpha, got %q ok=%v", id, ok)
	}
	if m.history.Len() != 2 {
		t.Fatalf("open should push exactly one entry, history len = %d", m.history.Len())
	}
}

func TestCloseRemovesProjectParam(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32},
		tea.KeyMsg{Type: tea.KeyEnter})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(Model)
	if m.modal.Visible() {
		t.Fatal("modal should hide on esc")
	}
	if cmd == nil {
		t.Fatal("close should schedule the fade tick")
	}
	if _, ok := m.history.Current().Project(); ok {
		t.Fatalf("closed location must have no project param, got %q", m.history.Current().String())
	}
	if m.history.Len() != 3 {
		t.Fatalf("close should push, not replace: len = %d", m.history.Len())
	}
}

func TestSequentialOpensPushTwice(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})
	before := m.history.Len()

	m.openCard(m.portfolio.FindCard("alpha"), true)
	m.openCard(m.portfolio.FindCard("beta"), true)

	if got := m.history.Len() - before; got != 2 {
		t.Fatalf("two opens must create two entries, got %d", got)
	}
	if m.modal.CardID() != "beta" {
		t.Fatalf("last open wins, got %q", m.modal.CardID())
	}
	id, _ := m.history.Current().Project()
	if id != "beta" {
		t.Fatalf("current location should be beta, got %q", id)
	}
}

func TestStartupLinkOpensWithoutExtraEntry(t *testing.T) {
	loc := deeplink.Location{}.WithProject("beta")
	m := NewModel(testPortfolio(), "").WithLink(loc)

	if !m.modal.Visible() || m.modal.CardID() != "beta" {
		t.Fatalf("startup link should open beta, visible=%v id=%q",
			m.modal.Visible(), m.modal.CardID())
	}
	if m.history.Len() != 1 {
		t.Fatalf("startup replay must not push, len = %d", m.history.Len())
	}
}

func TestStartupLinkUnknownIDStaysClosed(t *testing.T) {
	loc := deeplink.Location{}.WithProject("does-not-exist")
	m := NewModel(testPortfolio(), "").WithLink(loc)

	if m.modal.Visible() {
		t.Fatal("unknown project id must not open the modal")
	}
	// The link itself is preserved: copying it still yields the original URL.
	id, ok := m.history.Current().Project()
	if !ok || id != "does-not-exist" {
		t.Fatalf("location should keep the unknown id, got %q", id)
	}
}

func TestBackReopensPriorProject(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})

	m.openCard(m.portfolio.FindCard("alpha"), true)
	m.closeModal(false)
	m.openCard(m.portfolio.FindCard("beta"), true)

	// back: beta -> closed
	m = apply(t, m, keyRunes("["))
	if m.modal.Visible() {
		t.Fatal("first back should land on the closed state")
	}
	// back again: closed -> alpha
	m = apply(t, m, keyRunes("["))
	if !m.modal.Visible() || m.modal.CardID() != "alpha" {
		t.Fatalf("second back should reopen alpha, visible=%v id=%q",
			m.modal.Visible(), m.modal.CardID())
	}
	// replay must not grow the stack
	if m.history.Len() != 4 {
		t.Fatalf("history replay must not push, len = %d", m.history.Len())
	}
	// forward returns to the closed state, then to beta
	m = apply(t, m, keyRunes("]"))
	if m.modal.Visible() {
		t.Fatal("forward should land on the closed state")
	}
	m = apply(t, m, keyRunes("]"))
	if !m.modal.Visible() || m.modal.CardID() != "beta" {
		t.Fatalf("forward should reopen beta, got %q", m.modal.CardID())
	}
}

func TestPushAfterBackTruncatesForwardTail(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})

	m.openCard(m.portfolio.FindCard("alpha"), true)
	m.openCard(m.portfolio.FindCard("beta"), true)
	m = apply(t, m, keyRunes("[")) // back to alpha

	m.openCard(m.portfolio.FindCard("gamma"), true)
	if m.history.CanForward() {
		t.Fatal("push after back must drop the forward tail")
	}
	m = apply(t, m, keyRunes("]"))
	if m.modal.CardID() != "gamma" {
		t.Fatalf("forward past the end must be a no-op, got %q", m.modal.CardID())
	}
}

func TestModalFadeClearsContent(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})
	m.openCard(m.portfolio.FindCard("alpha"), true)

	cmd := m.closeModal(false)
	if cmd == nil {
		t.Fatal("expected fade command")
	}
	msg, ok := cmd().(ModalFadeMsg)
	if !ok {
		t.Fatalf("expected ModalFadeMsg, got %T", cmd())
	}
	m = apply(t, m, msg)
	if m.modal.BadgeCount() != 0 {
		t.Fatal("fade tick should clear retained modal content")
	}
}

func TestReopenInvalidatesPendingFade(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})
	m.openCard(m.portfolio.FindCard("alpha"), true)

	cmd := m.closeModal(false)
	staleMsg := cmd().(ModalFadeMsg)

	m.openCard(m.portfolio.FindCard("beta"), true)
	m = apply(t, m, staleMsg)
	if !m.modal.Visible() || m.modal.CardID() != "beta" {
		t.Fatal("stale fade tick must not close a reopened modal")
	}
}

func TestCategoryCycle(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})

	if got := len(m.list.Items()); got != 3 {
		t.Fatalf("all cards shown initially, got %d", got)
	}
	m = apply(t, m, keyRunes("c")) // -> design
	if m.currentCategory() != "design" {
		t.Fatalf("expected design, got %q", m.currentCategory())
	}
	if got := len(m.list.Items()); got != 2 {
		t.Fatalf("design has 2 cards, got %d", got)
	}
	m = apply(t, m, keyRunes("c")) // -> code
	if got := len(m.list.Items()); got != 1 {
		t.Fatalf("code has 1 card, got %d", got)
	}
	m = apply(t, m, keyRunes("c")) // -> all again
	if m.currentCategory() != "" || len(m.list.Items()) != 3 {
		t.Fatalf("cycle should wrap to all, cat=%q n=%d", m.currentCategory(), len(m.list.Items()))
	}
}

func TestTabSwitching(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})

	m = apply(t, m, keyRunes("2"))
	if m.activeTab != tabAbout {
		t.Fatalf("expected about tab, got %v", m.activeTab)
	}
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeTab != tabContact {
		t.Fatalf("tab should advance to contact, got %v", m.activeTab)
	}
	m = apply(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeTab != tabWork {
		t.Fatalf("tab should wrap to work, got %v", m.activeTab)
	}
	// Enter on a non-work tab must not open the modal.
	m = apply(t, m, keyRunes("2"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.modal.Visible() {
		t.Fatal("enter outside the work tab must not open a project")
	}
}

func TestResizeDebounceDropsStaleTick(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})
	firstSeq := m.resizeSeq

	m = apply(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.resizeSeq == firstSeq {
		t.Fatal("each resize must bump the sequence")
	}

	mdBefore := m.md
	m = apply(t, m, resizeDebounceMsg{Seq: firstSeq})
	if m.md != mdBefore {
		t.Fatal("stale debounce tick must not re-wrap")
	}
	m = apply(t, m, resizeDebounceMsg{Seq: m.resizeSeq})
	if m.md == mdBefore {
		t.Fatal("current debounce tick should rebuild the renderer")
	}
}

func TestViewRendersTabsAndFooterLink(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32},
		resizeDebounceMsg{Seq: 1})

	out := m.View()
	if !strings.Contains(out, "Work") || !strings.Contains(out, "Studio") {
		t.Fatal("view should render the title and tab bar")
	}

	m.openCard(m.portfolio.FindCard("alpha"), true)
	out = m.View()
	if !strings.Contains(out, "Alpha") {
		t.Fatal("modal view should render the open card title")
	}

	m.closeModal(false)
	out = m.View()
	if strings.Contains(out, "picsum.photos/seed/alpha") {
		t.Fatal("closed modal content must not leak into the page view")
	}
}

func TestViewContactTab(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32}, keyRunes("3"))
	out := m.View()
	if !strings.Contains(out, "hi@example.com") {
		t.Fatal("contact tab should render the email")
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(testPortfolio(), "")
	m = apply(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})

	_, cmd := m.Update(keyRunes("q"))
	if cmd == nil {
		t.Fatal("q should quit from the page")
	}

	// q while the modal is open closes it instead of quitting.
	m.openCard(m.portfolio.FindCard("alpha"), true)
	updated, _ := m.Update(keyRunes("q"))
	m = updated.(Model)
	if m.modal.Visible() {
		t.Fatal("q should close the modal first")
	}
}

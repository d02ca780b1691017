package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/folio/pkg/deeplink"
	"github.com/vanderheijden86/folio/pkg/model"
)

// Controller methods: every modal transition funnels through here so the
// modal, the history stack, and the footer link can never disagree.
//
// The rules mirror browser-style deep linking:
//   - user actions PUSH a new location (never replace), truncating any
//     forward tail;
//   - history navigation REPLAYS the stored location without pushing;
//   - the visible modal is always a pure function of the current location.

// openCard shows the modal for a card. When push is set the new location is
// appended to history; replay paths pass push=false.
func (m *Model) openCard(c *model.Card, push bool) {
	if c == nil {
		return
	}
	m.modal.Open(*c, m.portfolio.Contact, m.md)
	m.modal.SetSize(m.width, m.height)
	if push {
		m.history.Push(m.history.Current().WithProject(c.ID))
	}
}

// closeModal hides the modal. A user-initiated close pushes the project-less
// location so back can return to the open state; fromHistory closes are
// replays and must not touch the stack.
func (m *Model) closeModal(fromHistory bool) tea.Cmd {
	cmd := m.modal.Close()
	if !fromHistory {
		m.history.Push(m.history.Current().WithoutProject())
	}
	return cmd
}

// openFromLink resolves the current history location against the loaded
// cards. A known project id opens its modal and the method reports true; an
// absent or unknown id leaves the modal closed. Replay callers pass
// push=false so resolving never grows the stack.
func (m *Model) openFromLink(push bool) bool {
	id, ok := m.history.Current().Project()
	if !ok {
		return false
	}
	card := m.portfolio.FindCard(id)
	if card == nil {
		return false
	}
	m.openCard(card, push)
	return true
}

// navigateHistory moves the cursor by delta steps (negative = back) and
// replays the landed-on location. Landing on a location without a project, or
// with an id that no longer resolves, closes the modal.
func (m *Model) navigateHistory(delta int) tea.Cmd {
	var loc deeplink.Location
	var ok bool
	switch {
	case delta < 0:
		loc, ok = m.history.Back()
	case delta > 0:
		loc, ok = m.history.Forward()
	}
	if !ok {
		return nil
	}
	if _, has := loc.Project(); !has {
		if m.modal.Visible() {
			return m.closeModal(true)
		}
		return nil
	}
	if !m.openFromLink(false) && m.modal.Visible() {
		return m.closeModal(true)
	}
	return nil
}

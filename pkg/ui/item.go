package ui

import (
	"strings"

	"github.com/vanderheijden86/folio/pkg/model"
)

// CardItem wraps model.Card to implement list.Item.
type CardItem struct {
	Card model.Card
}

func (i CardItem) Title() string {
	return i.Card.Title
}

func (i CardItem) Description() string {
	if i.Card.Summary != "" {
		return i.Card.Summary
	}
	return i.Card.CategoryOrDefault()
}

// FilterValue feeds the list's built-in fuzzy filter: title, id, category,
// and tool keys are all matchable.
func (i CardItem) FilterValue() string {
	var sb strings.Builder
	sb.WriteString(i.Card.Title)
	sb.WriteString(" ")
	sb.WriteString(i.Card.ID)
	sb.WriteString(" ")
	sb.WriteString(i.Card.CategoryOrDefault())
	if len(i.Card.Tools) > 0 {
		sb.WriteString(" ")
		sb.WriteString(strings.Join(i.Card.Tools, " "))
	}
	return sb.String()
}

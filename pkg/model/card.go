// Package model defines the portfolio data types shared across folio.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Card is a single portfolio entry. ID doubles as the deep-link key: the
// shareable link "project=<id>" resolves back to this card by exact match.
type Card struct {
	ID        string    `yaml:"id" json:"id"`
	Title     string    `yaml:"title" json:"title"`
	Category  string    `yaml:"category,omitempty" json:"category,omitempty"`
	Image     string    `yaml:"image,omitempty" json:"image,omitempty"`
	Tools     []string  `yaml:"tools,omitempty" json:"tools,omitempty"`
	Summary   string    `yaml:"summary,omitempty" json:"summary,omitempty"`
	Details   string    `yaml:"details,omitempty" json:"details,omitempty"`
	Link      string    `yaml:"link,omitempty" json:"link,omitempty"`
	CreatedAt time.Time `yaml:"created_at,omitempty" json:"created_at,omitempty"`
}

// ContactInfo is the contact block rendered in the contact tab and at the
// bottom of the project modal.
type ContactInfo struct {
	Email    string   `yaml:"email,omitempty" json:"email,omitempty"`
	Location string   `yaml:"location,omitempty" json:"location,omitempty"`
	Links    []string `yaml:"links,omitempty" json:"links,omitempty"`
}

// Portfolio is a full loaded data set: page chrome plus the card collection.
type Portfolio struct {
	Title    string      `yaml:"title,omitempty" json:"title,omitempty"`
	Subtitle string      `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	About    string      `yaml:"about,omitempty" json:"about,omitempty"`
	Contact  ContactInfo `yaml:"contact,omitempty" json:"contact,omitempty"`
	Cards    []Card      `yaml:"cards" json:"cards"`
}

// FindCard returns the card whose ID exactly matches id, or nil.
// Lookup is case-sensitive: deep links must round-trip byte-for-byte.
func (p *Portfolio) FindCard(id string) *Card {
	if p == nil || id == "" {
		return nil
	}
	for i := range p.Cards {
		if p.Cards[i].ID == id {
			return &p.Cards[i]
		}
	}
	return nil
}

// Categories returns the distinct card categories in first-seen order.
// Cards without a category are grouped under "other".
func (p *Portfolio) Categories() []string {
	if p == nil {
		return nil
	}
	seen := make(map[string]bool, len(p.Cards))
	var out []string
	for _, c := range p.Cards {
		cat := c.CategoryOrDefault()
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

// CategoryOrDefault returns the card's category, or "other" when unset.
func (c Card) CategoryOrDefault() string {
	cat := strings.TrimSpace(strings.ToLower(c.Category))
	if cat == "" {
		return "other"
	}
	return cat
}

// ImageURL returns the card's image, falling back to a deterministic
// placeholder derived from the card id when no image is set.
func (c Card) ImageURL() string {
	if strings.TrimSpace(c.Image) != "" {
		return c.Image
	}
	return PlaceholderImage(c.ID)
}

// PlaceholderImage builds a deterministic placeholder URL seeded by the card
// id. An empty id uses the seed "long" so the result is still stable.
func PlaceholderImage(id string) string {
	seed := strings.TrimSpace(id)
	if seed == "" {
		seed = "long"
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s/960/540", seed)
}

// ParseTools splits a comma-separated tool list into an order-preserving
// slice. Entries are trimmed; empties are dropped. A blank input yields nil.
func ParseTools(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

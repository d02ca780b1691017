// Package export renders a static share snapshot of the card grid as SVG or
// PNG, for embedding in a README or sharing where no terminal is available.
package export

import (
	"github.com/vanderheijden86/folio/pkg/badge"
	"github.com/vanderheijden86/folio/pkg/model"
	"github.com/vanderheijden86/folio/pkg/stats"
)

// Options configures a snapshot export.
type Options struct {
	Path     string // output file; extension decides format in WriteAuto
	Title    string // header title, falls back to the portfolio title
	Category string // keep only this category ("" = all)
	Columns  int    // grid columns, default 3
}

const (
	cardW    = 280
	cardH    = 96
	gutter   = 16
	headerH  = 72
	footerH  = 56
	marginX  = 24
	marginY  = 24
	maxBadge = 5 // badges shown per card before the +N overflow marker
)

type layoutCard struct {
	Card   model.Card
	Badges []badge.Descriptor
	More   int // recognized badges beyond maxBadge
	X, Y   int
}

type layoutResult struct {
	Width, Height int
	Title         string
	Subtitle      string
	Cards         []layoutCard
	Summary       stats.Summary
}

// buildLayout places the (optionally filtered) cards on a fixed grid.
func buildLayout(p *model.Portfolio, opts Options) layoutResult {
	cols := opts.Columns
	if cols <= 0 {
		cols = 3
	}

	title := opts.Title
	if title == "" {
		title = p.Title
	}
	if title == "" {
		title = "Portfolio"
	}

	var cards []model.Card
	for _, c := range p.Cards {
		if opts.Category != "" && c.CategoryOrDefault() != opts.Category {
			continue
		}
		cards = append(cards, c)
	}

	res := layoutResult{
		Title:    title,
		Subtitle: p.Subtitle,
		Summary:  stats.Summarize(cards),
	}

	for i, c := range cards {
		col := i % cols
		row := i / cols
		ds := badge.ForTools(c.Tools)
		more := 0
		if len(ds) > maxBadge {
			more = len(ds) - maxBadge
			ds = ds[:maxBadge]
		}
		res.Cards = append(res.Cards, layoutCard{
			Card:   c,
			Badges: ds,
			More:   more,
			X:      marginX + col*(cardW+gutter),
			Y:      headerH + marginY + row*(cardH+gutter),
		})
	}

	rows := (len(cards) + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}
	res.Width = marginX*2 + cols*cardW + (cols-1)*gutter
	res.Height = headerH + marginY*2 + rows*cardH + (rows-1)*gutter + footerH
	return res
}

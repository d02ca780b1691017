// Package stats computes small descriptive summaries of a card collection
// for the about tab and export footer.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/vanderheijden86/folio/pkg/badge"
	"github.com/vanderheijden86/folio/pkg/model"
)

// CategoryCount is one category with its card count, sorted by count desc.
type CategoryCount struct {
	Category string
	Count    int
}

// Summary describes a card collection.
type Summary struct {
	Cards          int
	Categories     []CategoryCount
	ToolsMean      float64 // mean number of listed tools per card
	ToolsStdDev    float64 // population std dev of tools per card
	RecognizedPct  float64 // share of listed tool keys the badge table knows, 0-1
	DistinctTools  int     // distinct normalized recognized tools across all cards
}

// Summarize computes a Summary for the given cards. An empty collection
// yields the zero Summary.
func Summarize(cards []model.Card) Summary {
	s := Summary{Cards: len(cards)}
	if len(cards) == 0 {
		return s
	}

	counts := make(map[string]int)
	toolCounts := make([]float64, 0, len(cards))
	distinct := make(map[string]bool)
	var listed, recognized int

	for _, c := range cards {
		counts[c.CategoryOrDefault()]++
		toolCounts = append(toolCounts, float64(len(c.Tools)))
		for _, raw := range c.Tools {
			listed++
			if badge.Known(raw) {
				recognized++
				distinct[badge.Normalize(raw)] = true
			}
		}
	}

	for cat, n := range counts {
		s.Categories = append(s.Categories, CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		if s.Categories[i].Count != s.Categories[j].Count {
			return s.Categories[i].Count > s.Categories[j].Count
		}
		return s.Categories[i].Category < s.Categories[j].Category
	})

	s.ToolsMean = stat.Mean(toolCounts, nil)
	s.ToolsStdDev = stat.PopStdDev(toolCounts, nil)
	if listed > 0 {
		s.RecognizedPct = float64(recognized) / float64(listed)
	}
	s.DistinctTools = len(distinct)
	return s
}

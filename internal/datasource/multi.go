package datasource

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/folio/pkg/model"
)

// LoadAll loads several portfolio files concurrently and merges them into one
// collection. Chrome (title, about, contact) comes from the first path; cards
// are concatenated in path order with duplicate ids resolved first-wins, so a
// deep link stays unambiguous across the merged set.
func LoadAll(paths []string) (*model.Portfolio, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no data files given")
	}
	if len(paths) == 1 {
		return Load(paths[0])
	}

	loaded := make([]*model.Portfolio, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			p, err := Load(path)
			if err != nil {
				return err
			}
			loaded[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := loaded[0]
	seen := make(map[string]bool, len(merged.Cards))
	for _, c := range merged.Cards {
		seen[c.ID] = true
	}
	for _, p := range loaded[1:] {
		for _, c := range p.Cards {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			merged.Cards = append(merged.Cards, c)
		}
	}
	return merged, nil
}

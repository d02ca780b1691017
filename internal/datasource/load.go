package datasource

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/folio/pkg/model"
)

// Load reads a portfolio from an explicit path, dispatching on the detected
// source type.
func Load(path string) (*model.Portfolio, error) {
	source, err := Detect(path)
	if err != nil {
		return nil, err
	}
	return LoadFromSource(source)
}

// LoadFromSource reads a portfolio from a resolved DataSource.
func LoadFromSource(source DataSource) (*model.Portfolio, error) {
	switch source.Type {
	case SourceTypeYAML:
		return loadYAML(source.Path)
	case SourceTypeJSON:
		return loadJSON(source.Path)
	case SourceTypeSQLite:
		reader, err := NewSQLiteReader(source)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite source %s: %w", source.Path, err)
		}
		defer reader.Close()
		return reader.LoadPortfolio()
	default:
		return nil, fmt.Errorf("unknown source type: %s", source.Type)
	}
}

func loadYAML(path string) (*model.Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var p model.Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	normalize(&p)
	return &p, nil
}

func loadJSON(path string) (*model.Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var p model.Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	normalize(&p)
	return &p, nil
}

// normalize drops cards without an id (they cannot be deep-linked or
// distinguished) and trims tool keys in place. Order is preserved.
func normalize(p *model.Portfolio) {
	kept := p.Cards[:0]
	for _, c := range p.Cards {
		if c.ID == "" {
			continue
		}
		tools := c.Tools[:0]
		for _, t := range c.Tools {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				tools = append(tools, trimmed)
			}
		}
		c.Tools = tools
		kept = append(kept, c)
	}
	p.Cards = kept
}

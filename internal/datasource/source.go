// Package datasource detects and loads portfolio data files. A portfolio can
// live in YAML (hand-authored), JSON (tool-exported), or a SQLite database;
// detection is by file extension, discovery by preferred file name.
package datasource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SourceType identifies the format of a data file.
type SourceType string

const (
	// SourceTypeYAML is a YAML portfolio file (portfolio.yaml).
	SourceTypeYAML SourceType = "yaml"
	// SourceTypeJSON is a JSON portfolio file (portfolio.json).
	SourceTypeJSON SourceType = "json"
	// SourceTypeSQLite is a SQLite database (portfolio.db).
	SourceTypeSQLite SourceType = "sqlite"
)

// PreferredNames lists discovery candidates in preference order.
var PreferredNames = []string{
	"portfolio.yaml",
	"portfolio.yml",
	"portfolio.json",
	"portfolio.db",
}

// DataSource is a resolved data file with its detected type.
type DataSource struct {
	Type SourceType
	Path string
}

// String returns a human-readable description of the source.
func (s DataSource) String() string {
	return fmt.Sprintf("%s (%s)", s.Path, s.Type)
}

// Detect classifies a path by extension.
func Detect(path string) (DataSource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return DataSource{}, err
	}
	switch strings.ToLower(filepath.Ext(abs)) {
	case ".yaml", ".yml":
		return DataSource{Type: SourceTypeYAML, Path: abs}, nil
	case ".json":
		return DataSource{Type: SourceTypeJSON, Path: abs}, nil
	case ".db", ".sqlite", ".sqlite3":
		return DataSource{Type: SourceTypeSQLite, Path: abs}, nil
	default:
		return DataSource{}, fmt.Errorf("unsupported data file %s (want .yaml, .json, or .db)", path)
	}
}

// Discover finds the preferred portfolio file in dir. Empty dir means the
// current directory.
func Discover(dir string) (DataSource, error) {
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return DataSource{}, fmt.Errorf("resolving working directory: %w", err)
		}
	}
	for _, name := range PreferredNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return Detect(path)
		}
	}
	return DataSource{}, fmt.Errorf("no portfolio file found in %s (tried %s)",
		dir, strings.Join(PreferredNames, ", "))
}

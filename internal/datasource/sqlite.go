package datasource

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vanderheijden86/folio/pkg/model"
)

// SQLiteReader provides read access to a portfolio SQLite database.
//
// Expected schema:
//
//	meta(key TEXT PRIMARY KEY, value TEXT)          -- title, subtitle, about, email, location
//	cards(id TEXT PRIMARY KEY, title TEXT, category TEXT, image TEXT,
//	      tools TEXT, summary TEXT, details TEXT, link TEXT, created_at TEXT)
//
// tools is a comma-separated list, matching the card attribute format.
type SQLiteReader struct {
	db   *sql.DB
	path string
}

// NewSQLiteReader opens a SQLite database for reading.
func NewSQLiteReader(source DataSource) (*SQLiteReader, error) {
	if source.Type != SourceTypeSQLite {
		return nil, fmt.Errorf("source is not SQLite: %s", source.Type)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", source.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}

	return &SQLiteReader{db: db, path: source.Path}, nil
}

// Close closes the database connection.
func (r *SQLiteReader) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// LoadPortfolio reads the full portfolio from the database. A missing meta
// table degrades to an untitled portfolio; the cards table is required.
func (r *SQLiteReader) LoadPortfolio() (*model.Portfolio, error) {
	p := &model.Portfolio{}
	r.loadMeta(p)

	cards, err := r.loadCards()
	if err != nil {
		return nil, err
	}
	p.Cards = cards
	return p, nil
}

// loadMeta fills page chrome from the meta table. Best effort: any error
// leaves the corresponding field empty.
func (r *SQLiteReader) loadMeta(p *model.Portfolio) {
	rows, err := r.db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value sql.NullString
		if err := rows.Scan(&key, &value); err != nil {
			continue
		}
		switch key {
		case "title":
			p.Title = value.String
		case "subtitle":
			p.Subtitle = value.String
		case "about":
			p.About = value.String
		case "email":
			p.Contact.Email = value.String
		case "location":
			p.Contact.Location = value.String
		}
	}
}

func (r *SQLiteReader) loadCards() ([]model.Card, error) {
	rows, err := r.db.Query(`
		SELECT id, title, category, image, tools, summary, details, link, created_at
		FROM cards
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		var c model.Card
		var category, image, tools, summary, details, link, createdAt sql.NullString

		if err := rows.Scan(&c.ID, &c.Title, &category, &image, &tools,
			&summary, &details, &link, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}
		if c.ID == "" {
			continue
		}

		c.Category = category.String
		c.Image = image.String
		c.Tools = model.ParseTools(tools.String)
		c.Summary = summary.String
		c.Details = details.String
		c.Link = link.String
		if createdAt.Valid {
			if t, err := time.Parse(time.RFC3339, createdAt.String); err == nil {
				c.CreatedAt = t
			}
		}

		cards = append(cards, c)
	}
	return cards, rows.Err()
}

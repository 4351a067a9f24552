package library

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Repository stores named board layout sources. Only the layout text is
// persisted; live board state never touches the database.
type Repository struct {
	Db *sql.DB
}

func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening layout database: %w", err)
	}
	return NewRepository(db)
}

func NewRepository(db *sql.DB) (*Repository, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS layout (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			source TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("creating layout table: %w", err)
	}
	return &Repository{Db: db}, nil
}

type Layout struct {
	Id     int64
	Name   string
	Source string
}

func (repo *Repository) AddLayout(name, source string) (*Layout, error) {
	row := repo.Db.QueryRow(
		"INSERT INTO layout(name, source) VALUES(?, ?) ON CONFLICT(name) DO UPDATE SET source = excluded.source RETURNING id",
		name, source)
	layout := Layout{Name: name, Source: source}
	if err := row.Scan(&layout.Id); err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	return &layout, nil
}

// FindLayout returns nil when no layout has that name.
func (repo *Repository) FindLayout(name string) (*Layout, error) {
	row := repo.Db.QueryRow("SELECT id, name, source FROM layout WHERE name = ? LIMIT 1", name)
	var layout Layout
	if err := row.Scan(&layout.Id, &layout.Name, &layout.Source); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	return &layout, nil
}

func (repo *Repository) ListLayouts() ([]*Layout, error) {
	rows, err := repo.Db.Query("SELECT id, name, source FROM layout ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("error in db execution: %w", err)
	}
	defer rows.Close()
	var layouts []*Layout
	for rows.Next() {
		var layout Layout
		if err := rows.Scan(&layout.Id, &layout.Name, &layout.Source); err != nil {
			return nil, fmt.Errorf("error in db execution: %w", err)
		}
		layouts = append(layouts, &layout)
	}
	return layouts, rows.Err()
}

func (repo *Repository) DeleteLayout(name string) error {
	return repo.execWrap("DELETE FROM layout WHERE name = ?", name)
}

func (repo *Repository) Close() error {
	return repo.Db.Close()
}

func (repo *Repository) execWrap(query string, args ...any) error {
	if _, err := repo.Db.Exec(query, args...); err != nil {
		return fmt.Errorf("error in db execution: %w", err)
	}
	return nil
}

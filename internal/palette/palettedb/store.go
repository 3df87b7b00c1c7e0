// Package palettedb persists palette catalogs in sqlite, so a site can
// keep locally curated schemes alongside the built-in registry. The
// interchange CSV remains the authoritative transfer format; this store
// is a convenience catalog, not a second source of truth.
package palettedb

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/banshee-data/bivariate.report/internal/palette"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is a sqlite-backed palette catalog.
type Store struct {
	db *sql.DB
}

// Meta identifies one stored palette without loading its colour table.
type Meta struct {
	Name   string
	K      int
	Legacy bool
	Tag    string
}

// Open opens (creating if needed) the catalog at path and applies any
// pending schema migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open palette db: %w", err)
	}
	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("prepare migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("prepare migrations: %w", err)
	}
	// Note: m is not closed here because that would close the
	// underlying DB connection.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate palette db: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores a palette, replacing any existing variant with the same
// (name, k, legacy) identity.
func (s *Store) Put(p *palette.Palette) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store palette %q: %w", p.Name, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM palettes WHERE name = ? AND k = ? AND legacy = ?",
		p.Name, p.K, boolInt(p.Legacy),
	); err != nil {
		return fmt.Errorf("store palette %q: %w", p.Name, err)
	}
	for _, e := range p.Entries() {
		if _, err := tx.Exec(
			"INSERT INTO palettes (name, k, legacy, tag, code, color) VALUES (?, ?, ?, ?, ?, ?)",
			p.Name, p.K, boolInt(p.Legacy), p.Tag, e.Code, e.Color,
		); err != nil {
			return fmt.Errorf("store palette %q code %d: %w", p.Name, e.Code, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store palette %q: %w", p.Name, err)
	}
	return nil
}

// Get loads one palette variant. An absent palette yields
// palette.UnknownPaletteError, matching the registry contract.
func (s *Store) Get(name string, k int, legacy bool) (*palette.Palette, error) {
	rows, err := s.db.Query(
		"SELECT tag, code, color FROM palettes WHERE name = ? AND k = ? AND legacy = ? ORDER BY code",
		name, k, boolInt(legacy),
	)
	if err != nil {
		return nil, fmt.Errorf("load palette %q: %w", name, err)
	}
	defer rows.Close()

	var tag string
	colors := make(map[int]string)
	for rows.Next() {
		var code int
		var color string
		if err := rows.Scan(&tag, &code, &color); err != nil {
			return nil, fmt.Errorf("load palette %q: %w", name, err)
		}
		colors[code] = color
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load palette %q: %w", name, err)
	}
	if len(colors) == 0 {
		return nil, &palette.UnknownPaletteError{Name: name}
	}
	return palette.New(name, tag, k, legacy, colors)
}

// List enumerates the stored palettes.
func (s *Store) List() ([]Meta, error) {
	rows, err := s.db.Query(
		"SELECT DISTINCT name, k, legacy, tag FROM palettes ORDER BY name, k, legacy",
	)
	if err != nil {
		return nil, fmt.Errorf("list palettes: %w", err)
	}
	defer rows.Close()

	var out []Meta
	for rows.Next() {
		var m Meta
		var legacy int
		if err := rows.Scan(&m.Name, &m.K, &legacy, &m.Tag); err != nil {
			return nil, fmt.Errorf("list palettes: %w", err)
		}
		m.Legacy = legacy != 0
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list palettes: %w", err)
	}
	return out, nil
}

// Delete removes one palette variant. Deleting an absent palette is
// not an error.
func (s *Store) Delete(name string, k int, legacy bool) error {
	if _, err := s.db.Exec(
		"DELETE FROM palettes WHERE name = ? AND k = ? AND legacy = ?",
		name, k, boolInt(legacy),
	); err != nil {
		return fmt.Errorf("delete palette %q: %w", name, err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

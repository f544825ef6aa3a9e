// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteCache stores one row per word; position preserves source order
// within a tag.
type sqliteCache struct {
	path string
}

func (c *sqliteCache) Path() string { return c.path }

func (c *sqliteCache) Exists() bool {
	info, err := os.Stat(c.path)
	return err == nil && !info.IsDir() && info.Size() > 0
}

func (c *sqliteCache) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", c.path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening lexicon database: %w", err)
	}
	return db, nil
}

func (c *sqliteCache) Load(ctx context.Context) (Lexicon, error) {
	db, err := c.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT tag, spelling FROM words ORDER BY tag, position`)
	if err != nil {
		return nil, fmt.Errorf("querying lexicon database: %w", err)
	}
	defer rows.Close()

	lex := make(Lexicon)
	for rows.Next() {
		var tag, spelling string
		if err := rows.Scan(&tag, &spelling); err != nil {
			return nil, fmt.Errorf("scanning lexicon row: %w", err)
		}
		lex[tag] = append(lex[tag], spelling)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading lexicon rows: %w", err)
	}
	if len(lex) == 0 {
		return nil, fmt.Errorf("lexicon database %s is empty", filepath.Base(c.path))
	}
	return lex, nil
}

// Save replaces the words table inside a single transaction.
func (c *sqliteCache) Save(ctx context.Context, lex Lexicon) error {
	lex, err := normalized(lex)
	if err != nil {
		return fmt.Errorf("saving lexicon database: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	db, err := c.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS words (
			tag TEXT NOT NULL,
			position INTEGER NOT NULL,
			spelling TEXT NOT NULL,
			PRIMARY KEY (tag, position)
		)`,
		`DELETE FROM words`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("preparing words table: %w", err)
		}
	}

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO words (tag, position, spelling) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer insert.Close()

	for _, tag := range lex.Tags() {
		for i, spelling := range lex[tag] {
			if _, err := insert.ExecContext(ctx, tag, i, spelling); err != nil {
				return fmt.Errorf("inserting %q: %w", spelling, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing lexicon: %w", err)
	}
	return nil
}

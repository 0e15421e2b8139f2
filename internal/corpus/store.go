// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus provides local access to the WordNet lexical database.
// The first run downloads the Princeton dict package and loads its noun
// and adjective synsets into a SQLite index; later runs read the index.
package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const dbFile = "wordnet.db"

// Store manages the SQLite corpus index.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the corpus index at dataDir/wordnet.db,
// creating dataDir and the schema if they do not exist.
func OpenStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS lemmas (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			synset_offset INTEGER NOT NULL,
			pos TEXT NOT NULL,
			lemma TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lemmas_pos ON lemmas(pos)`,
		`CREATE TABLE IF NOT EXISTS corpus_meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Reset removes all indexed lemmas and metadata so a fresh install can run.
func (s *Store) Reset(ctx context.Context) error {
	for _, stmt := range []string{
		`DELETE FROM lemmas`,
		`DELETE FROM corpus_meta`,
	} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("resetting index: %w", err)
		}
	}
	return nil
}

// Ingest parses one WordNet data file and inserts its synsets into the
// index within a single transaction. It returns the number of synsets
// loaded. Insertion order follows the data-file order, which fixes the
// traversal order Lemmas later reports.
func (s *Store) Ingest(ctx context.Context, r io.Reader) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO lemmas (synset_offset, pos, lemma) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	synsets := 0
	err = ParseData(r, func(syn Synset) error {
		for _, lemma := range syn.Lemmas {
			if _, err := stmt.ExecContext(ctx, syn.Offset, string(syn.POS), lemma); err != nil {
				return fmt.Errorf("inserting lemma %q: %w", lemma, err)
			}
		}
		synsets++
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing ingest: %w", err)
	}
	return synsets, nil
}

// HasLemma reports whether the index contains lemma under the given part
// of speech. Used as the installation probe.
func (s *Store) HasLemma(ctx context.Context, lemma string, pos PartOfSpeech) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM lemmas WHERE lemma = ? AND pos = ? LIMIT 1`,
		lemma, string(pos),
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("probing index: %w", err)
	}
	return true, nil
}

// Lemmas returns every lemma string indexed under pos, in insertion order.
// Duplicates across synsets are returned as stored; callers deduplicate.
func (s *Store) Lemmas(ctx context.Context, pos PartOfSpeech) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT lemma FROM lemmas WHERE pos = ? ORDER BY id`, string(pos))
	if err != nil {
		return nil, fmt.Errorf("querying lemmas: %w", err)
	}
	defer rows.Close()

	var lemmas []string
	for rows.Next() {
		var lemma string
		if err := rows.Scan(&lemma); err != nil {
			return nil, fmt.Errorf("scanning lemma: %w", err)
		}
		lemmas = append(lemmas, lemma)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lemmas: %w", err)
	}
	return lemmas, nil
}

// CountLemmas returns the number of indexed lemma entries for pos.
func (s *Store) CountLemmas(ctx context.Context, pos PartOfSpeech) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT count(*) FROM lemmas WHERE pos = ?`, string(pos)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting lemmas: %w", err)
	}
	return n, nil
}

// SetMeta records a key/value pair in the corpus metadata table.
func (s *Store) SetMeta(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO corpus_meta (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value)
	if err != nil {
		return fmt.Errorf("setting metadata %s: %w", key, err)
	}
	return nil
}

// Meta returns the metadata value for key, or "" if unset.
func (s *Store) Meta(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM corpus_meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading metadata %s: %w", key, err)
	}
	return value, nil
}

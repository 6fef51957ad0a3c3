// Package store persists extracted features in a SQLite index so
// repeated lookups across many records don't re-parse the flat files.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"gbkit/internal/writers"
)

// Store is a SQLite-backed feature index. Use ":memory:" as the path
// for an in-memory database (useful in tests).
type Store struct {
	db *sql.DB
}

// Open opens or creates the index at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store: path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// AddRecord registers a record; re-adding the same accession is a
// no-op.
func (s *Store) AddRecord(accession, locus string, length int) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO records (accession, locus, length) VALUES (?, ?, ?)",
		accession, locus, length,
	)
	if err != nil {
		return fmt.Errorf("store: inserting record: %w", err)
	}
	return nil
}

// AddFeature stores one feature row plus its resolved subsequence
// (empty when the location could not be resolved).
func (s *Store) AddFeature(r writers.Row, seq string) error {
	quals, err := json.Marshal(r.Qualifiers)
	if err != nil {
		return fmt.Errorf("store: marshaling qualifiers: %w", err)
	}
	_, err = s.db.Exec(`
		INSERT INTO features (accession, key, location, strand, start_pos, end_pos, length, seq, qualifiers_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.Accession, r.Key, r.Location, r.Strand, r.Start, r.End, r.Length, seq, string(quals),
	)
	if err != nil {
		return fmt.Errorf("store: inserting feature: %w", err)
	}
	return nil
}

// Features returns the stored rows for one accession, in insertion
// order, or for all accessions when accession is empty.
func (s *Store) Features(accession string) ([]writers.Row, error) {
	query := "SELECT accession, key, location, strand, start_pos, end_pos, length, qualifiers_json FROM features"
	args := []any{}
	if accession != "" {
		query += " WHERE accession = ?"
		args = append(args, accession)
	}
	query += " ORDER BY id"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("store: querying features: %w", err)
	}
	defer rows.Close()

	var out []writers.Row
	for rows.Next() {
		var r writers.Row
		var quals string
		if err := rows.Scan(&r.Accession, &r.Key, &r.Location, &r.Strand, &r.Start, &r.End, &r.Length, &quals); err != nil {
			return nil, fmt.Errorf("store: scanning feature: %w", err)
		}
		if quals != "" && quals != "null" {
			if err := json.Unmarshal([]byte(quals), &r.Qualifiers); err != nil {
				return nil, fmt.Errorf("store: decoding qualifiers: %w", err)
			}
			r.Product = r.Qualifiers["product"]
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Seq returns the stored subsequence of the nth feature with this key.
func (s *Store) Seq(accession, key string, occurrence int) (string, error) {
	var seq string
	err := s.db.QueryRow(`
		SELECT seq FROM features
		WHERE accession = ? AND key = ?
		ORDER BY id LIMIT 1 OFFSET ?
	`, accession, key, occurrence).Scan(&seq)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("store: no feature %q (occurrence %d) for %s", key, occurrence, accession)
	}
	if err != nil {
		return "", fmt.Errorf("store: querying seq: %w", err)
	}
	return seq, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS records (
			accession TEXT PRIMARY KEY NOT NULL,
			locus     TEXT NOT NULL,
			length    INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS features (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			accession       TEXT NOT NULL REFERENCES records(accession),
			key             TEXT NOT NULL,
			location        TEXT NOT NULL,
			strand          TEXT NOT NULL,
			start_pos       INTEGER NOT NULL,
			end_pos         INTEGER NOT NULL,
			length          INTEGER NOT NULL,
			seq             TEXT,
			qualifiers_json TEXT
		)
	`)
	return err
}

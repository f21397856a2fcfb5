package placement

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/austencloud/kinetics/core"
)

// The authoring workflow persists overrides in a single SQLite table; the
// engine only ever loads it wholesale into a Store and, for authoring
// round-trips, writes a Store back.

const placementTableDDL = `
CREATE TABLE IF NOT EXISTS special_placements (
	grid_mode       TEXT NOT NULL,
	orientation_key TEXT NOT NULL,
	letter          TEXT NOT NULL,
	turns_tuple     TEXT NOT NULL,
	arrow_key       TEXT NOT NULL,
	x               REAL NOT NULL,
	y               REAL NOT NULL,
	PRIMARY KEY (grid_mode, orientation_key, letter, turns_tuple, arrow_key)
)`

// OpenSQLite opens (creating if needed) a placement database at path.
// Use ":memory:" for an ephemeral database in tests.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("placement: open sqlite: %w", err)
	}
	if _, err = db.Exec(placementTableDDL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("placement: init sqlite schema: %w", err)
	}
	return db, nil
}

// LoadSQLite reads every persisted override from db into a fresh Store.
func LoadSQLite(db *sql.DB) (*Store, error) {
	rows, err := db.Query(
		`SELECT grid_mode, orientation_key, letter, turns_tuple, arrow_key, x, y
		 FROM special_placements`)
	if err != nil {
		return nil, fmt.Errorf("placement: query overrides: %w", err)
	}
	defer rows.Close()

	s := NewStore()
	for rows.Next() {
		var (
			modeName, oriKey, letterName, tuple, arrowKey string
			x, y                                          float64
		)
		if err = rows.Scan(&modeName, &oriKey, &letterName, &tuple, &arrowKey, &x, &y); err != nil {
			return nil, fmt.Errorf("placement: scan override: %w", err)
		}
		mode, perr := core.ParseGridMode(modeName)
		if perr != nil {
			return nil, fmt.Errorf("%w: %w", ErrDocumentInvalid, perr)
		}
		letter := core.Letter(letterName)
		if !letter.Valid() {
			return nil, fmt.Errorf("%w: unknown letter %q", ErrDocumentInvalid, letterName)
		}
		s.Set(OverrideKey{
			GridMode:       mode,
			OrientationKey: oriKey,
			Letter:         letter,
			TurnsTuple:     tuple,
			ArrowKey:       arrowKey,
		}, core.Offset{X: x, Y: y})
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("placement: read overrides: %w", err)
	}
	return s, nil
}

// SaveSQLite upserts every override of s into db inside one transaction.
func SaveSQLite(db *sql.DB, s *Store) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("placement: begin save: %w", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO special_placements
		   (grid_mode, orientation_key, letter, turns_tuple, arrow_key, x, y)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (grid_mode, orientation_key, letter, turns_tuple, arrow_key)
		 DO UPDATE SET x = excluded.x, y = excluded.y`)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("placement: prepare save: %w", err)
	}
	defer stmt.Close()

	for k, off := range s.Entries() {
		if _, err = stmt.Exec(
			k.GridMode.String(), k.OrientationKey, string(k.Letter),
			k.TurnsTuple, k.ArrowKey, off.X, off.Y,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("placement: save override: %w", err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("placement: commit save: %w", err)
	}
	return nil
}

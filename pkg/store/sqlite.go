package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/df07/go-probe-relocator/pkg/relocate"
)

// SQLiteStore persists relocation snapshots in a sqlite database, keeping a
// history of runs; Read restores the most recent one.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) a sqlite-backed store at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS relocation_snapshots (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			taken_unix_nanos BIGINT,
			count_x INTEGER,
			count_y INTEGER,
			count_z INTEGER,
			payload BLOB
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create relocation schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Write inserts a new snapshot row for the probes
func (s *SQLiteStore) Write(probes []relocate.Probe, grid relocate.Grid) error {
	_, err := s.db.Exec(
		"INSERT INTO relocation_snapshots (run_id, taken_unix_nanos, count_x, count_y, count_z, payload) VALUES (?, ?, ?, ?, ?, ?)",
		uuid.New().String(), time.Now().UnixNano(),
		grid.Count[0], grid.Count[1], grid.Count[2], encodeProbes(probes),
	)
	if err != nil {
		return fmt.Errorf("insert relocation snapshot: %w", err)
	}
	return nil
}

// Read restores the probes of the most recent snapshot for the given grid
func (s *SQLiteStore) Read(grid relocate.Grid) ([]relocate.Probe, error) {
	var countX, countY, countZ int
	var payload []byte
	err := s.db.QueryRow(
		"SELECT count_x, count_y, count_z, payload FROM relocation_snapshots ORDER BY id DESC LIMIT 1",
	).Scan(&countX, &countY, &countZ, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("query relocation snapshot: %w", err)
	}

	if countX != grid.Count[0] || countY != grid.Count[1] || countZ != grid.Count[2] {
		return nil, fmt.Errorf("%w: snapshot %dx%dx%d, grid %dx%dx%d",
			ErrDimensionMismatch, countX, countY, countZ,
			grid.Count[0], grid.Count[1], grid.Count[2])
	}
	return decodeProbes(payload, grid)
}

// Clear discards all persisted snapshots
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM relocation_snapshots"); err != nil {
		return fmt.Errorf("clear relocation snapshots: %w", err)
	}
	return nil
}

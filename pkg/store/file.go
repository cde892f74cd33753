package store

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/df07/go-probe-relocator/pkg/relocate"
)

// Snapshot is the persisted relocation volume plus the grid shape and run
// metadata it was generated for
type Snapshot struct {
	RunID          string
	TakenUnixNanos int64
	CountX         int
	CountY         int
	CountZ         int
	Payload        []byte // half-precision probe tuples
}

// serializeSnapshot compresses a snapshot using gob encoding and gzip
func serializeSnapshot(snap *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	enc := gob.NewEncoder(gz)
	if err := enc.Encode(snap); err != nil {
		gz.Close()
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// deserializeSnapshot decompresses and decodes a snapshot blob
func deserializeSnapshot(blob []byte) (*Snapshot, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("empty snapshot blob")
	}
	gz, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gz.Close()

	var snap Snapshot
	dec := gob.NewDecoder(gz)
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

// FileStore persists relocation snapshots as a single gob+gzip file
type FileStore struct {
	Path string
}

// NewFileStore creates a file store writing to the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Write replaces the snapshot file with the encoded probes
func (fs *FileStore) Write(probes []relocate.Probe, grid relocate.Grid) error {
	snap := &Snapshot{
		RunID:          uuid.New().String(),
		TakenUnixNanos: time.Now().UnixNano(),
		CountX:         grid.Count[0],
		CountY:         grid.Count[1],
		CountZ:         grid.Count[2],
		Payload:        encodeProbes(probes),
	}

	blob, err := serializeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("serialize relocation snapshot: %w", err)
	}
	if err := os.WriteFile(fs.Path, blob, 0644); err != nil {
		return fmt.Errorf("write relocation snapshot: %w", err)
	}
	return nil
}

// Read restores the probes for the given grid from the snapshot file
func (fs *FileStore) Read(grid relocate.Grid) ([]relocate.Probe, error) {
	blob, err := os.ReadFile(fs.Path)
	if os.IsNotExist(err) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read relocation snapshot: %w", err)
	}

	snap, err := deserializeSnapshot(blob)
	if err != nil {
		return nil, err
	}
	if snap.CountX != grid.Count[0] || snap.CountY != grid.Count[1] || snap.CountZ != grid.Count[2] {
		return nil, fmt.Errorf("%w: snapshot %dx%dx%d, grid %dx%dx%d",
			ErrDimensionMismatch, snap.CountX, snap.CountY, snap.CountZ,
			grid.Count[0], grid.Count[1], grid.Count[2])
	}
	return decodeProbes(snap.Payload, grid)
}

// Clear removes the snapshot file if present
func (fs *FileStore) Clear() error {
	err := os.Remove(fs.Path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear relocation snapshot: %w", err)
	}
	return nil
}

// Package store persists per-probe relocation results as a grid-shaped
// volume of half-precision 4-tuples (offset x/y/z plus an active flag),
// tagged with the grid dimensions it was generated for. Snapshots whose
// dimensions disagree with the current grid are rejected wholesale and
// treated as absent; there is no partial load.
package store

import (
	"errors"

	"github.com/df07/go-probe-relocator/pkg/relocate"
)

// ErrNoSnapshot is returned by Read when nothing has been persisted yet
var ErrNoSnapshot = errors.New("no relocation snapshot")

// ErrDimensionMismatch is returned by Read when the persisted snapshot was
// generated for a different grid shape
var ErrDimensionMismatch = errors.New("relocation snapshot dimensions do not match grid")

// Store persists and restores per-probe relocation results
type Store interface {
	// Write replaces the persisted snapshot with the given probes
	Write(probes []relocate.Probe, grid relocate.Grid) error
	// Read restores the probes for the given grid. Returns ErrNoSnapshot
	// when nothing is persisted and ErrDimensionMismatch when the snapshot
	// was generated for different grid dimensions.
	Read(grid relocate.Grid) ([]relocate.Probe, error)
	// Clear discards the persisted snapshot
	Clear() error
}

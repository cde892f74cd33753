package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-probe-relocator/pkg/core"
	"github.com/df07/go-probe-relocator/pkg/relocate"
)

func testProbes() []relocate.Probe {
	return []relocate.Probe{
		{Offset: core.NewVec3(0.25, 0, -0.5), Active: true},
		{Offset: core.Vec3{}, Active: false},
		{Offset: core.NewVec3(0, 0.125, 0), Active: true},
		{Offset: core.Vec3{}, Active: true},
		{Offset: core.NewVec3(-0.25, 0.25, 0.25), Active: true},
		{Offset: core.Vec3{}, Active: true},
		{Offset: core.Vec3{}, Active: false},
		{Offset: core.Vec3{}, Active: true},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	grid := relocate.NewGrid(2, 2, 2, core.Vec3{}, core.NewVec3(1, 1, 1))
	fs := NewFileStore(filepath.Join(t.TempDir(), "relocation.bin"))

	require.NoError(t, fs.Write(testProbes(), grid))

	probes, err := fs.Read(grid)
	require.NoError(t, err)
	require.Len(t, probes, 8)

	// Offsets chosen to be exactly representable in half precision
	assert.Equal(t, testProbes(), probes)
}

func TestFileStore_ReadMissing(t *testing.T) {
	grid := relocate.NewGrid(2, 2, 2, core.Vec3{}, core.NewVec3(1, 1, 1))
	fs := NewFileStore(filepath.Join(t.TempDir(), "missing.bin"))

	_, err := fs.Read(grid)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileStore_DimensionMismatch(t *testing.T) {
	grid := relocate.NewGrid(2, 2, 2, core.Vec3{}, core.NewVec3(1, 1, 1))
	fs := NewFileStore(filepath.Join(t.TempDir(), "relocation.bin"))
	require.NoError(t, fs.Write(testProbes(), grid))

	other := relocate.NewGrid(2, 2, 3, core.Vec3{}, core.NewVec3(1, 1, 1))
	_, err := fs.Read(other)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFileStore_WriteReplaces(t *testing.T) {
	grid := relocate.NewGrid(1, 1, 1, core.Vec3{}, core.NewVec3(1, 1, 1))
	fs := NewFileStore(filepath.Join(t.TempDir(), "relocation.bin"))

	require.NoError(t, fs.Write([]relocate.Probe{{Offset: core.NewVec3(0.25, 0, 0), Active: true}}, grid))
	require.NoError(t, fs.Write([]relocate.Probe{{Active: false}}, grid))

	probes, err := fs.Read(grid)
	require.NoError(t, err)
	assert.False(t, probes[0].Active)
	assert.Equal(t, core.Vec3{}, probes[0].Offset)
}

func TestFileStore_Clear(t *testing.T) {
	grid := relocate.NewGrid(2, 2, 2, core.Vec3{}, core.NewVec3(1, 1, 1))
	fs := NewFileStore(filepath.Join(t.TempDir(), "relocation.bin"))
	require.NoError(t, fs.Write(testProbes(), grid))

	require.NoError(t, fs.Clear())
	_, err := fs.Read(grid)
	assert.ErrorIs(t, err, ErrNoSnapshot)

	// Clearing an already-empty store is not an error
	assert.NoError(t, fs.Clear())
}

func TestSnapshotSerialization(t *testing.T) {
	snap := &Snapshot{
		RunID:          "run-1",
		TakenUnixNanos: 1234567890,
		CountX:         2,
		CountY:         3,
		CountZ:         4,
		Payload:        []byte{1, 2, 3, 4, 5, 6, 7, 8},
	}

	blob, err := serializeSnapshot(snap)
	require.NoError(t, err)

	restored, err := deserializeSnapshot(blob)
	require.NoError(t, err)
	assert.Equal(t, snap, restored)
}

func TestSnapshotDeserialization_BadBlob(t *testing.T) {
	_, err := deserializeSnapshot(nil)
	assert.Error(t, err)

	_, err = deserializeSnapshot([]byte("not a gzip stream"))
	assert.Error(t, err)
}

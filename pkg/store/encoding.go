package store

import (
	"encoding/binary"
	"fmt"

	"github.com/x448/float16"

	"github.com/df07/go-probe-relocator/pkg/core"
	"github.com/df07/go-probe-relocator/pkg/relocate"
)

// Each probe is a 4-tuple of IEEE half-precision floats: offset x, y, z and
// an active flag (1 or 0, thresholded at 0.5 on decode). Tuples are laid out
// little-endian in flattened x + y*countX + z*countX*countY order.
const bytesPerProbe = 8

// encodeProbes packs probes into the half-precision wire layout
func encodeProbes(probes []relocate.Probe) []byte {
	data := make([]byte, len(probes)*bytesPerProbe)
	for i, probe := range probes {
		active := float32(0)
		if probe.Active {
			active = 1
		}
		values := [4]float32{
			float32(probe.Offset.X),
			float32(probe.Offset.Y),
			float32(probe.Offset.Z),
			active,
		}
		for j, v := range values {
			binary.LittleEndian.PutUint16(data[i*bytesPerProbe+j*2:], float16.Fromfloat32(v).Bits())
		}
	}
	return data
}

// decodeProbes unpacks the half-precision wire layout for the given grid
func decodeProbes(data []byte, grid relocate.Grid) ([]relocate.Probe, error) {
	want := grid.NumProbes() * bytesPerProbe
	if len(data) != want {
		return nil, fmt.Errorf("relocation payload is %d bytes, want %d for %dx%dx%d grid",
			len(data), want, grid.Count[0], grid.Count[1], grid.Count[2])
	}

	probes := make([]relocate.Probe, grid.NumProbes())
	for i := range probes {
		var values [4]float32
		for j := range values {
			bits := binary.LittleEndian.Uint16(data[i*bytesPerProbe+j*2:])
			values[j] = float16.Frombits(bits).Float32()
		}
		probes[i] = relocate.Probe{
			Offset: core.NewVec3(float64(values[0]), float64(values[1]), float64(values[2])),
			Active: values[3] > 0.5,
		}
	}
	return probes, nil
}

package relocate

import (
	"math"

	"github.com/df07/go-probe-relocator/pkg/core"
)

// Probe holds the relocation result for a single grid cell. The offset is
// always relative to the probe's unperturbed grid position; the world
// position used for tracing is basePosition + offset.
type Probe struct {
	Offset core.Vec3
	Active bool
}

// Grid describes a regular 3D probe sampling grid placed over a scene
type Grid struct {
	Count   [3]int    // Probe counts along X, Y, Z
	Origin  core.Vec3 // World position of probe (0, 0, 0)
	Spacing core.Vec3 // World-space distance between adjacent probes per axis
}

// NewGrid creates a grid with the given counts, origin and per-axis spacing
func NewGrid(countX, countY, countZ int, origin, spacing core.Vec3) Grid {
	return Grid{
		Count:   [3]int{countX, countY, countZ},
		Origin:  origin,
		Spacing: spacing,
	}
}

// NumProbes returns the total number of probes in the grid
func (g Grid) NumProbes() int {
	return g.Count[0] * g.Count[1] * g.Count[2]
}

// MinSpacing returns the smallest per-axis spacing. All solver distance
// thresholds are expressed as fractions of this value, which keeps the
// refinement resolution-independent.
func (g Grid) MinSpacing() float64 {
	return math.Min(g.Spacing.X, math.Min(g.Spacing.Y, g.Spacing.Z))
}

// Index returns the flattened probe index for cell (x, y, z)
func (g Grid) Index(x, y, z int) int {
	return x + y*g.Count[0] + z*g.Count[0]*g.Count[1]
}

// Position returns the unperturbed world position of the probe at (x, y, z)
func (g Grid) Position(x, y, z int) core.Vec3 {
	return g.Origin.Add(core.NewVec3(
		float64(x)*g.Spacing.X,
		float64(y)*g.Spacing.Y,
		float64(z)*g.Spacing.Z,
	))
}

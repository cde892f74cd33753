package relocate

import (
	"math"

	"github.com/df07/go-probe-relocator/pkg/core"
)

// goldenRatio is the azimuthal step multiplier of the Fibonacci spiral
var goldenRatio = (1.0 + math.Sqrt(5.0)) / 2.0

// SphereDirections generates count unit vectors quasi-uniformly covering the
// sphere using a spherical Fibonacci (golden-angle) spiral. The construction
// is fully deterministic so repeated computations produce identical results.
func SphereDirections(count int) []core.Vec3 {
	dirs := make([]core.Vec3, count)
	for i := range dirs {
		t := float64(i) / float64(count)
		inclination := math.Acos(1.0 - 2.0*t)
		azimuth := float64(i) * 2.0 * math.Pi * goldenRatio

		sinInclination := math.Sin(inclination)
		dirs[i] = core.NewVec3(
			sinInclination*math.Cos(azimuth),
			sinInclination*math.Sin(azimuth),
			math.Cos(inclination),
		)
	}
	return dirs
}

package relocate

import (
	"math"

	"github.com/df07/go-probe-relocator/pkg/core"
	"github.com/df07/go-probe-relocator/pkg/geometry"
)

// RayIntersector is the ray query port the tracer runs against. Intersect
// must report both front and back face hits (no face culling) so the solver
// can tell a probe near a surface from one embedded in geometry. It must be
// safe for concurrent use: workers trace probes in parallel.
type RayIntersector interface {
	Intersect(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool)
}

// tMin for probe rays; avoids self-hits when a probe sits exactly on a surface
const rayEpsilon = 0.001

// TraceStats aggregates hit statistics over one full direction set for a
// single refinement step. Index fields are -1 when no such hit occurred.
type TraceStats struct {
	ClosestBackfaceIndex      int
	ClosestBackfaceDistance   float64
	ClosestFrontfaceIndex     int
	ClosestFrontfaceDistance  float64
	FarthestFrontfaceIndex    int
	FarthestFrontfaceDistance float64
	BackfaceCount             int
	HitCount                  int
}

// BackfaceRatio returns the fraction of hits that were backfaces (0 when
// nothing was hit)
func (s TraceStats) BackfaceRatio() float64 {
	if s.HitCount == 0 {
		return 0
	}
	return float64(s.BackfaceCount) / float64(s.HitCount)
}

// Trace casts the full direction set from position and aggregates the hit
// statistics the solver needs. Backface distances are scaled by backfaceBias
// (slightly below 1) so the escape push lands strictly past the exit surface
// rather than exactly on it. Misses contribute nothing; there are no retries.
func Trace(scene RayIntersector, position core.Vec3, maxDistance float64, dirs []core.Vec3, backfaceBias float64) TraceStats {
	stats := TraceStats{
		ClosestBackfaceIndex:     -1,
		ClosestBackfaceDistance:  math.MaxFloat64,
		ClosestFrontfaceIndex:    -1,
		ClosestFrontfaceDistance: math.MaxFloat64,
		FarthestFrontfaceIndex:   -1,
	}

	for i, dir := range dirs {
		hit, isHit := scene.Intersect(core.NewRay(position, dir), rayEpsilon, maxDistance)
		if !isHit {
			continue
		}
		stats.HitCount++

		if !hit.FrontFace {
			// Ray started inside geometry and hit the surface from behind
			stats.BackfaceCount++
			distance := hit.T * backfaceBias
			if distance < stats.ClosestBackfaceDistance {
				stats.ClosestBackfaceDistance = distance
				stats.ClosestBackfaceIndex = i
			}
			continue
		}

		if hit.T < stats.ClosestFrontfaceDistance {
			stats.ClosestFrontfaceDistance = hit.T
			stats.ClosestFrontfaceIndex = i
		}
		if hit.T > stats.FarthestFrontfaceDistance {
			stats.FarthestFrontfaceDistance = hit.T
			stats.FarthestFrontfaceIndex = i
		}
	}

	return stats
}

package relocate

import (
	"math"

	"github.com/df07/go-probe-relocator/pkg/core"
)

// maxOffsetFactorLimit is the hard cap on the ellipsoid bound. An offset of
// 0.45 of the spacing on every axis keeps a probe inside its own cell's
// territory, so downstream interpolation never reads across cells.
const maxOffsetFactorLimit = 0.45

// SolveParams carries the per-grid constants the solver needs. All distances
// are world-space; MinFrontFaceDistance and MinSpacing are precomputed by
// the driver so Solve stays a pure function of its arguments.
type SolveParams struct {
	Spacing              core.Vec3
	MinSpacing           float64
	MinFrontFaceDistance float64
	BackfaceThreshold    float64
	MaxOffsetFactor      float64
	EscapeBias           float64
	Policy               Policy
}

// Solve decides the next candidate offset for a probe, or that the probe
// should be deactivated. It is pure and deterministic: the same offset,
// statistics and parameters always produce the same result.
//
// The cases are evaluated strictly in order; each guard assumes the earlier
// cases did not match:
//
//  1. Mostly backface hits: the probe is inside geometry. Deactivate, or
//     push out along the closest backface direction.
//  2. A frontface closer than the comfortable minimum: if the probe is
//     sandwiched between two roughly opposite surfaces, step toward the
//     farther one; otherwise deactivate (under the deactivate policy) or
//     hold position.
//  3. Comfortably clear of geometry while carrying an offset: relax back
//     toward the original grid position without overshooting it.
//  4. Otherwise hold position.
//
// A candidate from cases 1-3 is accepted only if it stays inside the
// spacing-proportional ellipsoid; a rejected candidate leaves the offset
// unchanged rather than deactivating the probe.
func Solve(offset core.Vec3, stats TraceStats, dirs []core.Vec3, p SolveParams) (core.Vec3, bool) {
	candidate := offset
	hasCandidate := false

	if stats.ClosestBackfaceIndex >= 0 && stats.BackfaceRatio() >= p.BackfaceThreshold {
		// Inside geometry
		if p.Policy == PolicyDeactivate {
			return core.Vec3{}, true
		}
		escape := stats.ClosestBackfaceDistance + p.EscapeBias*p.MinFrontFaceDistance
		candidate = offset.Add(dirs[stats.ClosestBackfaceIndex].Multiply(escape))
		hasCandidate = true
	} else if stats.ClosestFrontfaceIndex >= 0 && stats.ClosestFrontfaceDistance < p.MinFrontFaceDistance {
		// Valid but uncomfortably close to a surface
		if stats.FarthestFrontfaceIndex >= 0 &&
			stats.FarthestFrontfaceIndex != stats.ClosestFrontfaceIndex &&
			dirs[stats.ClosestFrontfaceIndex].Dot(dirs[stats.FarthestFrontfaceIndex]) <= 0 {
			// Sandwiched between two surfaces: widen the gap toward the
			// farther one rather than pushing arbitrarily
			step := math.Min(stats.FarthestFrontfaceDistance, p.MinSpacing)
			candidate = offset.Add(dirs[stats.FarthestFrontfaceIndex].Multiply(step))
			hasCandidate = true
		} else if p.Policy == PolicyDeactivate {
			return core.Vec3{}, true
		}
	} else if stats.ClosestFrontfaceIndex >= 0 && stats.ClosestFrontfaceDistance > p.MinFrontFaceDistance && offset.Length() > 0 {
		// Previously relocated and no longer near anything: pull back toward
		// the original grid position, never overshooting past it
		margin := math.Min(stats.ClosestFrontfaceDistance-p.MinFrontFaceDistance, offset.Length())
		if margin > 0 {
			candidate = offset.Add(offset.Normalize().Negate().Multiply(margin))
			hasCandidate = true
		}
	}

	if !hasCandidate {
		return offset, false
	}

	// Ellipsoid constraint: the offset normalized by per-axis spacing must
	// stay within maxOffsetFactor. Violating candidates are rejected, not
	// deactivated; the probe simply stops moving in that direction.
	maxFactor := math.Min(p.MaxOffsetFactor, maxOffsetFactorLimit)
	if candidate.DivideVec(p.Spacing).LengthSquared() > maxFactor*maxFactor {
		return offset, false
	}

	return candidate, false
}

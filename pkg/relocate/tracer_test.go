package relocate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-probe-relocator/pkg/core"
	"github.com/df07/go-probe-relocator/pkg/geometry"
)

// shapeIntersector adapts a single shape to the ray port for tracer tests
type shapeIntersector struct {
	shape geometry.Shape
}

func (s *shapeIntersector) Intersect(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	return s.shape.Hit(ray, tMin, tMax)
}

func TestTrace_EmptySpace(t *testing.T) {
	// Sphere far outside the trace distance: every ray misses
	scene := &shapeIntersector{shape: geometry.NewSphere(core.NewVec3(100, 0, 0), 1.0)}
	dirs := SphereDirections(128)

	stats := Trace(scene, core.NewVec3(0, 0, 0), 5.0, dirs, 0.999)

	assert.Equal(t, 0, stats.HitCount)
	assert.Equal(t, 0, stats.BackfaceCount)
	assert.Equal(t, -1, stats.ClosestBackfaceIndex)
	assert.Equal(t, -1, stats.ClosestFrontfaceIndex)
	assert.Equal(t, -1, stats.FarthestFrontfaceIndex)
	assert.Equal(t, 0.0, stats.BackfaceRatio())
}

func TestTrace_InsideSphere_AllBackfaces(t *testing.T) {
	// Probe at the center of a unit sphere: every ray exits through the
	// surface at distance 1, from behind
	scene := &shapeIntersector{shape: geometry.NewSphere(core.NewVec3(0, 0, 0), 1.0)}
	dirs := SphereDirections(128)

	stats := Trace(scene, core.NewVec3(0, 0, 0), 10.0, dirs, 0.999)

	require.Equal(t, 128, stats.HitCount)
	assert.Equal(t, 128, stats.BackfaceCount)
	assert.Equal(t, 1.0, stats.BackfaceRatio())
	assert.Equal(t, -1, stats.ClosestFrontfaceIndex)

	// The stored closest backface distance carries the 0.999 bias
	require.GreaterOrEqual(t, stats.ClosestBackfaceIndex, 0)
	assert.InDelta(t, 0.999, stats.ClosestBackfaceDistance, 1e-9)
}

func TestTrace_FrontfaceWall(t *testing.T) {
	// Large quad wall below the probe (z = -1, normal +Z): downward rays
	// hit the front face, upward rays miss
	wall := geometry.NewQuad(
		core.NewVec3(-50, -50, -1),
		core.NewVec3(100, 0, 0),
		core.NewVec3(0, 100, 0),
	)
	scene := &shapeIntersector{shape: wall}
	dirs := SphereDirections(128)

	stats := Trace(scene, core.NewVec3(0, 0, 0), 20.0, dirs, 0.999)

	require.Greater(t, stats.HitCount, 0)
	assert.Equal(t, 0, stats.BackfaceCount)
	assert.Equal(t, -1, stats.ClosestBackfaceIndex)

	// The most downward direction yields the closest hit, slightly past the
	// perpendicular distance of 1
	require.GreaterOrEqual(t, stats.ClosestFrontfaceIndex, 0)
	assert.GreaterOrEqual(t, stats.ClosestFrontfaceDistance, 1.0)
	assert.Less(t, stats.ClosestFrontfaceDistance, 1.05)

	// Grazing rays hit farther away
	require.GreaterOrEqual(t, stats.FarthestFrontfaceIndex, 0)
	assert.Greater(t, stats.FarthestFrontfaceDistance, stats.ClosestFrontfaceDistance)
	assert.NotEqual(t, stats.ClosestFrontfaceIndex, stats.FarthestFrontfaceIndex)

	// Roughly half the sphere points toward the wall
	assert.Greater(t, stats.HitCount, 30)
	assert.Less(t, stats.HitCount, 100)
}

func TestTrace_MaxDistanceBounds(t *testing.T) {
	scene := &shapeIntersector{shape: geometry.NewSphere(core.NewVec3(0, 0, 3), 1.0)}
	dirs := SphereDirections(128)

	// Sphere front surface is 2 units away; with maxDistance 1.5 everything misses
	stats := Trace(scene, core.NewVec3(0, 0, 0), 1.5, dirs, 0.999)
	assert.Equal(t, 0, stats.HitCount)

	// With a generous maxDistance the sphere is visible
	stats = Trace(scene, core.NewVec3(0, 0, 0), 10.0, dirs, 0.999)
	assert.Greater(t, stats.HitCount, 0)
	assert.Equal(t, 0, stats.BackfaceCount)
	assert.InDelta(t, 2.0, stats.ClosestFrontfaceDistance, 0.1)
}

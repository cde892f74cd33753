package scene

import (
	"github.com/df07/go-probe-relocator/pkg/core"
	"github.com/df07/go-probe-relocator/pkg/geometry"
)

// Scene contains the static geometry probes are relocated against
type Scene struct {
	Shapes []geometry.Shape // Objects in the scene
	BVH    *geometry.BVH    // Acceleration structure for ray-object intersection
}

// NewScene creates a scene from a set of shapes and builds its BVH
func NewScene(shapes []geometry.Shape) *Scene {
	s := &Scene{Shapes: shapes}
	s.Preprocess()
	return s
}

// Preprocess prepares the scene for tracing by (re)building the BVH
func (s *Scene) Preprocess() {
	s.BVH = geometry.NewBVH(s.Shapes)
}

// Intersect returns the closest hit along the ray, front or back face.
// Faces are never culled: the relocation solver needs backface hits to
// detect probes embedded in geometry. Safe for concurrent use; the BVH is
// read-only after Preprocess.
func (s *Scene) Intersect(ray core.Ray, tMin, tMax float64) (*geometry.HitRecord, bool) {
	if s.BVH == nil {
		return nil, false
	}
	return s.BVH.Hit(ray, tMin, tMax)
}

// Empty reports whether the scene has no geometry to trace against
func (s *Scene) Empty() bool {
	return len(s.Shapes) == 0
}

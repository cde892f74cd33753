package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-probe-relocator/pkg/core"
)

func TestQuad_Hit_FrontAndBackFace(t *testing.T) {
	// Unit quad in the XY plane at z=0, normal +Z
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))

	tests := []struct {
		name          string
		rayOrigin     core.Vec3
		rayDirection  core.Vec3
		expectedT     float64
		expectedFront bool
	}{
		{
			name:          "front face hit",
			rayOrigin:     core.NewVec3(0.5, 0.5, 2),
			rayDirection:  core.NewVec3(0, 0, -1),
			expectedT:     2.0,
			expectedFront: true,
		},
		{
			name:          "back face hit",
			rayOrigin:     core.NewVec3(0.5, 0.5, -3),
			rayDirection:  core.NewVec3(0, 0, 1),
			expectedT:     3.0,
			expectedFront: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := quad.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
		})
	}
}

func TestQuad_Hit_OutsideBounds(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))

	// Ray crosses the quad's plane but outside its bounds
	ray := core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1))
	if _, isHit := quad.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("Expected miss outside quad bounds")
	}
}

func TestQuad_Hit_ParallelRay(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))

	ray := core.NewRay(core.NewVec3(0.5, -1, 0), core.NewVec3(0, 1, 0))
	if _, isHit := quad.Hit(ray, 0.001, 1000.0); isHit {
		t.Error("Expected miss for ray parallel to quad plane")
	}
}

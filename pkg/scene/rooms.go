package scene

import (
	"github.com/df07/go-probe-relocator/pkg/core"
	"github.com/df07/go-probe-relocator/pkg/geometry"
	"github.com/df07/go-probe-relocator/pkg/relocate"
)

// NewRoomScene creates a closed 10x10x10 room with a tall blocker box near
// the left wall, and a 4x4x4 probe grid spanning the interior. Probes that
// land inside or too close to the blocker exercise the relocation paths.
func NewRoomScene() (*Scene, relocate.Grid) {
	roomSize := 10.0

	shapes := []geometry.Shape{
		// All wall normals point into the room, so interior probes see
		// frontfaces. Floor (XZ plane at y=0):
		geometry.NewQuad(
			core.NewVec3(0, 0, 0),
			core.NewVec3(0, 0, roomSize),
			core.NewVec3(roomSize, 0, 0),
		),
		// Ceiling (XZ plane at y=roomSize)
		geometry.NewQuad(
			core.NewVec3(0, roomSize, 0),
			core.NewVec3(roomSize, 0, 0),
			core.NewVec3(0, 0, roomSize),
		),
		// Back wall (XY plane at z=roomSize)
		geometry.NewQuad(
			core.NewVec3(0, 0, roomSize),
			core.NewVec3(0, roomSize, 0),
			core.NewVec3(roomSize, 0, 0),
		),
		// Front wall (XY plane at z=0)
		geometry.NewQuad(
			core.NewVec3(0, 0, 0),
			core.NewVec3(roomSize, 0, 0),
			core.NewVec3(0, roomSize, 0),
		),
		// Left wall (YZ plane at x=0)
		geometry.NewQuad(
			core.NewVec3(0, 0, 0),
			core.NewVec3(0, roomSize, 0),
			core.NewVec3(0, 0, roomSize),
		),
		// Right wall (YZ plane at x=roomSize)
		geometry.NewQuad(
			core.NewVec3(roomSize, 0, 0),
			core.NewVec3(0, 0, roomSize),
			core.NewVec3(0, roomSize, 0),
		),
		// Tall blocker box near the left wall
		geometry.NewBox(
			core.NewVec3(2.0, 3.0, 5.0),
			core.NewVec3(1.0, 3.0, 1.5),
		),
	}

	// 4x4x4 grid covering the interior, inset from the walls
	grid := relocate.NewGrid(4, 4, 4,
		core.NewVec3(1.25, 1.25, 1.25),
		core.NewVec3(2.5, 2.5, 2.5))

	return NewScene(shapes), grid
}

// NewSolidBlockScene creates a single large solid box with a probe grid
// whose interior probes all start embedded in the geometry
func NewSolidBlockScene() (*Scene, relocate.Grid) {
	shapes := []geometry.Shape{
		geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(4, 4, 4)),
	}

	grid := relocate.NewGrid(3, 3, 3,
		core.NewVec3(-2, -2, -2),
		core.NewVec3(2, 2, 2))

	return NewScene(shapes), grid
}

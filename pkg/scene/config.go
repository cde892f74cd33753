package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/df07/go-probe-relocator/pkg/core"
	"github.com/df07/go-probe-relocator/pkg/geometry"
	"github.com/df07/go-probe-relocator/pkg/relocate"
)

// Vec3Cfg is a JSON-friendly vector
type Vec3Cfg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3Cfg) vec() core.Vec3 {
	return core.NewVec3(v.X, v.Y, v.Z)
}

// GridCfg describes the probe grid placement
type GridCfg struct {
	CountX  int     `json:"countX"`
	CountY  int     `json:"countY"`
	CountZ  int     `json:"countZ"`
	Origin  Vec3Cfg `json:"origin"`
	Spacing Vec3Cfg `json:"spacing"`
}

// RelocationCfg overrides the default relocation tuning. Zero-valued fields
// keep their defaults.
type RelocationCfg struct {
	Policy        string  `json:"policy,omitempty"` // "relocate" or "deactivate"
	RayCount      int     `json:"rayCount,omitempty"`
	MaxSteps      int     `json:"maxSteps,omitempty"`
	TraceDistance float64 `json:"traceDistance,omitempty"`
	Workers       int     `json:"workers,omitempty"`
}

// SphereCfg describes a sphere primitive
type SphereCfg struct {
	Center Vec3Cfg `json:"center"`
	Radius float64 `json:"radius"`
}

// BoxCfg describes an axis-aligned box primitive (size is half-extents)
type BoxCfg struct {
	Center Vec3Cfg `json:"center"`
	Size   Vec3Cfg `json:"size"`
}

// QuadCfg describes a rectangle from a corner and two edge vectors
type QuadCfg struct {
	Corner Vec3Cfg `json:"corner"`
	U      Vec3Cfg `json:"u"`
	V      Vec3Cfg `json:"v"`
}

// PlaneCfg describes an infinite plane
type PlaneCfg struct {
	Point  Vec3Cfg `json:"point"`
	Normal Vec3Cfg `json:"normal"`
}

// Config is a JSON scene description: the probe grid, optional relocation
// overrides, and the geometry to trace against
type Config struct {
	Grid       GridCfg        `json:"grid"`
	Relocation *RelocationCfg `json:"relocation,omitempty"`
	Spheres    []SphereCfg    `json:"spheres,omitempty"`
	Boxes      []BoxCfg       `json:"boxes,omitempty"`
	Quads      []QuadCfg      `json:"quads,omitempty"`
	Planes     []PlaneCfg     `json:"planes,omitempty"`
}

// LoadConfig reads and validates a JSON scene file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scene config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Grid.CountX < 1 || c.Grid.CountY < 1 || c.Grid.CountZ < 1 {
		return fmt.Errorf("grid counts must be positive, got %dx%dx%d",
			c.Grid.CountX, c.Grid.CountY, c.Grid.CountZ)
	}
	if c.Grid.Spacing.X <= 0 || c.Grid.Spacing.Y <= 0 || c.Grid.Spacing.Z <= 0 {
		return fmt.Errorf("grid spacing must be positive on every axis, got %v", c.Grid.Spacing)
	}
	for i, s := range c.Spheres {
		if s.Radius <= 0 {
			return fmt.Errorf("sphere %d: radius must be positive", i)
		}
	}
	if c.Relocation != nil && c.Relocation.Policy != "" {
		if _, err := relocate.ParsePolicy(c.Relocation.Policy); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs the scene, probe grid and relocation config described by
// this file
func (c *Config) Build() (*Scene, relocate.Grid, relocate.Config) {
	var shapes []geometry.Shape
	for _, s := range c.Spheres {
		shapes = append(shapes, geometry.NewSphere(s.Center.vec(), s.Radius))
	}
	for _, b := range c.Boxes {
		shapes = append(shapes, geometry.NewBox(b.Center.vec(), b.Size.vec()))
	}
	for _, q := range c.Quads {
		shapes = append(shapes, geometry.NewQuad(q.Corner.vec(), q.U.vec(), q.V.vec()))
	}
	for _, p := range c.Planes {
		shapes = append(shapes, geometry.NewPlane(p.Point.vec(), p.Normal.vec()))
	}

	grid := relocate.NewGrid(c.Grid.CountX, c.Grid.CountY, c.Grid.CountZ,
		c.Grid.Origin.vec(), c.Grid.Spacing.vec())

	relCfg := relocate.DefaultConfig(grid)
	if r := c.Relocation; r != nil {
		if r.Policy != "" {
			relCfg.Policy, _ = relocate.ParsePolicy(r.Policy) // validated in LoadConfig
		}
		if r.RayCount > 0 {
			relCfg.RayCount = r.RayCount
		}
		if r.MaxSteps > 0 {
			relCfg.MaxSteps = r.MaxSteps
		}
		if r.TraceDistance > 0 {
			relCfg.TraceDistance = r.TraceDistance
		}
		if r.Workers > 0 {
			relCfg.Workers = r.Workers
		}
	}

	return NewScene(shapes), grid, relCfg
}

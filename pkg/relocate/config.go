package relocate

import "fmt"

// Policy governs what happens to a probe that is judged embedded in geometry
type Policy int

const (
	// PolicyRelocate pushes embedded probes along the closest backface
	// direction until they escape the geometry
	PolicyRelocate Policy = iota
	// PolicyDeactivate marks embedded probes inactive with a zero offset
	PolicyDeactivate
)

// String returns the policy name
func (p Policy) String() string {
	switch p {
	case PolicyRelocate:
		return "relocate"
	case PolicyDeactivate:
		return "deactivate"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy parses a policy name as used in config files and CLI flags
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "relocate":
		return PolicyRelocate, nil
	case "deactivate":
		return PolicyDeactivate, nil
	default:
		return PolicyRelocate, fmt.Errorf("unknown relocation policy %q", s)
	}
}

// Config contains the relocation tuning parameters. The bias values are
// empirical constants kept configurable rather than re-derived, since
// downstream visual tuning may depend on them.
type Config struct {
	RayCount           int     // Rays traced per probe per refinement step
	MaxSteps           int     // Refinement steps per probe
	BackfaceThreshold  float64 // Backface hit ratio above which a probe counts as inside geometry
	MinFrontFaceFactor float64 // Minimum comfortable frontface distance, as a fraction of min spacing
	MaxOffsetFactor    float64 // Per-axis offset bound, as a fraction of spacing (capped at 0.45)
	BackfaceBias       float64 // Scale applied to backface hit distances before the escape push
	EscapeBias         float64 // Fraction of the min frontface distance added past the exit surface
	TraceDistance      float64 // Maximum ray distance per query
	Workers            int     // Parallel workers; <= 0 means runtime.NumCPU()
	Policy             Policy
}

// DefaultConfig returns the standard configuration for a grid
func DefaultConfig(grid Grid) Config {
	return Config{
		RayCount:           128,
		MaxSteps:           12,
		BackfaceThreshold:  0.25,
		MinFrontFaceFactor: 0.2,
		MaxOffsetFactor:    0.45,
		BackfaceBias:       0.999,
		EscapeBias:         0.5,
		TraceDistance:      2.0 * grid.Spacing.Length(),
		Workers:            0,
		Policy:             PolicyRelocate,
	}
}

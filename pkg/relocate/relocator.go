package relocate

import (
	"errors"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-probe-relocator/pkg/core"
)

// ErrNoScene is returned when there is no geometry to trace against; the
// computation is skipped as a no-op rather than producing bogus offsets.
var ErrNoScene = errors.New("no scene geometry to trace against")

// ErrComputeInProgress is returned when a computation is triggered while a
// previous one for the same relocator is still running.
var ErrComputeInProgress = errors.New("relocation compute already in progress")

// emptier is an optional interface scenes can implement to report that they
// contain no geometry
type emptier interface {
	Empty() bool
}

// Relocator computes per-probe relocation offsets for a grid. The scene,
// grid and direction set are read-only for the duration of a run; each
// worker writes only its own disjoint slice of the probe arena, so no
// locking is needed during the parallel phase.
type Relocator struct {
	scene  RayIntersector
	grid   Grid
	config Config
	logger core.Logger

	mu sync.Mutex // serializes ComputeAll runs
}

// NewRelocator creates a relocator for the given scene and grid
func NewRelocator(scene RayIntersector, grid Grid, config Config, logger core.Logger) *Relocator {
	return &Relocator{
		scene:  scene,
		grid:   grid,
		config: config,
		logger: logger,
	}
}

// ComputeAll computes the relocation offset and active flag for every probe
// in the grid. It replaces all probes (idempotent with respect to a static
// scene) and returns them in flattened x + y*countX + z*countX*countY order.
// Concurrent invocations are rejected with ErrComputeInProgress.
func (r *Relocator) ComputeAll() ([]Probe, error) {
	if !r.mu.TryLock() {
		return nil, ErrComputeInProgress
	}
	defer r.mu.Unlock()

	if r.scene == nil {
		return nil, ErrNoScene
	}
	if e, ok := r.scene.(emptier); ok && e.Empty() {
		return nil, ErrNoScene
	}

	startTime := time.Now()

	// Shared read-only inputs for all workers
	dirs := SphereDirections(r.config.RayCount)
	params := SolveParams{
		Spacing:              r.grid.Spacing,
		MinSpacing:           r.grid.MinSpacing(),
		MinFrontFaceDistance: r.config.MinFrontFaceFactor * r.grid.MinSpacing(),
		BackfaceThreshold:    r.config.BackfaceThreshold,
		MaxOffsetFactor:      r.config.MaxOffsetFactor,
		EscapeBias:           r.config.EscapeBias,
		Policy:               r.config.Policy,
	}

	// Pre-allocate the full probe arena before the parallel phase; workers
	// write only to the disjoint slots of their own Z slices
	probes := make([]Probe, r.grid.NumProbes())

	numWorkers := r.config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	tasks := make(chan int, r.grid.Count[2])
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for z := range tasks {
				r.computeSlice(z, dirs, params, probes)
			}
		}()
	}

	for z := 0; z < r.grid.Count[2]; z++ {
		tasks <- z
	}
	close(tasks)
	wg.Wait()

	if r.logger != nil {
		relocated, inactive := 0, 0
		for i := range probes {
			if !probes[i].Active {
				inactive++
			} else if probes[i].Offset.LengthSquared() > 0 {
				relocated++
			}
		}
		r.logger.Printf("[Relocator] computed %d probes in %v: %d relocated, %d inactive",
			len(probes), time.Since(startTime), relocated, inactive)
	}

	return probes, nil
}

// computeSlice refines every probe in one Z slice of the grid
func (r *Relocator) computeSlice(z int, dirs []core.Vec3, params SolveParams, probes []Probe) {
	for y := 0; y < r.grid.Count[1]; y++ {
		for x := 0; x < r.grid.Count[0]; x++ {
			probes[r.grid.Index(x, y, z)] = r.refineProbe(r.grid.Position(x, y, z), dirs, params)
		}
	}
}

// refineProbe runs the trace/solve loop for a single probe. Deactivation is
// terminal: the loop exits early and the probe keeps a zero offset.
func (r *Relocator) refineProbe(basePosition core.Vec3, dirs []core.Vec3, params SolveParams) Probe {
	probe := Probe{Active: true}

	for step := 0; step < r.config.MaxSteps; step++ {
		stats := Trace(r.scene, basePosition.Add(probe.Offset), r.config.TraceDistance, dirs, r.config.BackfaceBias)

		offset, deactivate := Solve(probe.Offset, stats, dirs, params)
		if deactivate {
			return Probe{Active: false}
		}
		probe.Offset = offset
	}

	return probe
}

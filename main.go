package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/df07/go-probe-relocator/pkg/relocate"
	"github.com/df07/go-probe-relocator/pkg/scene"
	"github.com/df07/go-probe-relocator/pkg/store"
)

func main() {
	// Parse command line flags
	scenePath := flag.String("scene", "room", "Scene: 'room', 'block', or a path to a JSON scene file")
	storeType := flag.String("store", "file", "Store backend: 'file' or 'sqlite'")
	outPath := flag.String("out", "relocation.bin", "Output path for the relocation snapshot")
	policyName := flag.String("policy", "", "Override relocation policy: 'relocate' or 'deactivate'")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = all CPUs)")
	clear := flag.Bool("clear", false, "Discard the persisted relocation data and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Probe Relocation Baker")
		fmt.Println("Usage: probe-relocator [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Built-in scenes:")
		fmt.Println("  room  - Closed room with a blocker box and a 4x4x4 probe grid")
		fmt.Println("  block - Solid box with all interior probes embedded")
		return
	}

	relocStore, err := openStore(*storeType, *outPath)
	if err != nil {
		fmt.Printf("Error opening store: %v\n", err)
		os.Exit(1)
	}

	if *clear {
		if err := relocStore.Clear(); err != nil {
			fmt.Printf("Error clearing relocation data: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared relocation data at %s\n", *outPath)
		return
	}

	// Build the scene, grid and relocation config
	var selectedScene *scene.Scene
	var grid relocate.Grid
	var config relocate.Config

	switch *scenePath {
	case "room":
		selectedScene, grid = scene.NewRoomScene()
		config = relocate.DefaultConfig(grid)
	case "block":
		selectedScene, grid = scene.NewSolidBlockScene()
		config = relocate.DefaultConfig(grid)
	default:
		cfg, err := scene.LoadConfig(*scenePath)
		if err != nil {
			fmt.Printf("Error loading scene: %v\n", err)
			os.Exit(1)
		}
		selectedScene, grid, config = cfg.Build()
	}

	if *policyName != "" {
		policy, err := relocate.ParsePolicy(*policyName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		config.Policy = policy
	}
	if *workers > 0 {
		config.Workers = *workers
	}

	fmt.Printf("Relocating %dx%dx%d probes (policy: %s, %d rays, %d steps)...\n",
		grid.Count[0], grid.Count[1], grid.Count[2],
		config.Policy, config.RayCount, config.MaxSteps)

	relocator := relocate.NewRelocator(selectedScene, grid, config, log.Default())

	startTime := time.Now()
	probes, err := relocator.ComputeAll()
	if errors.Is(err, relocate.ErrNoScene) {
		log.Printf("warning: scene has no geometry, skipping relocation")
		return
	}
	if err != nil {
		fmt.Printf("Error computing relocation: %v\n", err)
		os.Exit(1)
	}

	if err := relocStore.Write(probes, grid); err != nil {
		fmt.Printf("Error persisting relocation data: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Relocation completed in %v\n", time.Since(startTime))
	fmt.Printf("Snapshot saved to %s\n", *outPath)
}

// openStore creates the requested store backend
func openStore(storeType, path string) (store.Store, error) {
	switch storeType {
	case "file":
		return store.NewFileStore(path), nil
	case "sqlite":
		return store.NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown store type %q", storeType)
	}
}

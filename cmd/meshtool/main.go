// meshtool is a CLI utility for consolidating world-mesh snapshots and
// exporting them as glTF.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/halvein/worldmesh/internal/config"
	"github.com/halvein/worldmesh/internal/export"
	"github.com/halvein/worldmesh/internal/logger"
	"github.com/halvein/worldmesh/internal/snapshotio"
	"github.com/halvein/worldmesh/pkg/mesh"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "info":
		cmdInfo(args[1:])
	case "convert":
		cmdConvert(args[1:], cfg)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`meshtool - world-mesh snapshot consolidation utility

Usage:
  meshtool [options] <command> [arguments]

Commands:
  info <snapshot.json>                Show snapshot statistics
  convert <snapshot.json> [output]    Consolidate and export as glTF

Options:
  -config <path>   Path to config file
  -debug           Enable debug logging
  -log-file <path> Write logs to this file (rotated)
  -glb             Export binary glTF (.glb)

Examples:
  meshtool info world.json
  meshtool convert world.json world.gltf
  meshtool -glb convert world.json`)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool info <snapshot.json>")
		os.Exit(1)
	}

	snap, err := snapshotio.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	_, canonical := mesh.CanonicalizeMaterials(snap.Materials)

	fmt.Printf("Snapshot:   %s\n", snap.Name)
	fmt.Printf("Positions:  %d\n", len(snap.Positions))
	fmt.Printf("Features:   %d\n", len(snap.Features))
	fmt.Printf("Triangles:  %d\n", snap.TriangleCount())
	fmt.Printf("Materials:  %d raw, %d unique\n", len(snap.Materials), len(canonical))

	if len(canonical) > 0 {
		fmt.Println()
		fmt.Println("Unique materials:")
		for i, mat := range canonical {
			name := mat.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Printf("  %3d  %-24s %-10s %s\n", i, name, mat.Group, mat.Texture)
		}
	}
}

func cmdConvert(args []string, cfg *config.Config) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: meshtool convert <snapshot.json> [output]")
		os.Exit(1)
	}

	inPath := args[0]
	outPath := ""
	if len(args) >= 2 {
		outPath = args[1]
	} else {
		outPath = strings.TrimSuffix(inPath, ".json")
		if cfg.Export.Binary {
			outPath += ".glb"
		} else {
			outPath += ".gltf"
		}
	}

	snap, err := snapshotio.Load(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Sugar.Infow("consolidating snapshot",
		"name", snap.Name,
		"triangles", snap.TriangleCount(),
		"materials", len(snap.Materials))

	m := mesh.Consolidate(snap)

	if !m.Stats.Clean() {
		logger.Sugar.Warnw("snapshot contained corrupt geometry",
			"droppedTriangles", m.Stats.DroppedTriangles,
			"shiftedFeatureIndices", m.Stats.ShiftedFeatureIndices,
			"fallbackCorners", m.Stats.FallbackCorners)
	}

	if err := export.Write(m, outPath, cfg.Export.Generator); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", outPath)
	fmt.Printf("Vertices:   %d\n", m.VertexCount())
	fmt.Printf("Triangles:  %d\n", m.TriangleCount())
	fmt.Printf("Materials:  %d\n", len(m.Materials))
	fmt.Printf("Draw calls: %d\n", len(m.MaterialRuns()))
}

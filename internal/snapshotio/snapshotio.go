// Package snapshotio reads and writes mesh snapshots as JSON. A snapshot
// file is the hand-off point from an external world extractor: it carries
// the raw multi-indexed geometry exactly as loaded, before consolidation.
package snapshotio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/halvein/worldmesh/pkg/mesh"
)

// Load reads a snapshot from a JSON file.
func Load(path string) (*mesh.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot file: %w", err)
	}

	var snap mesh.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// Save writes a snapshot to a JSON file.
func Save(path string, snap *mesh.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot file: %w", err)
	}
	return nil
}

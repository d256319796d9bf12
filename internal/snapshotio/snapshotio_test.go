package snapshotio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/halvein/worldmesh/pkg/mesh"
)

func TestRoundTrip(t *testing.T) {
	snap := &mesh.Snapshot{
		Name: "test_world",
		Positions: []mgl32.Vec3{
			{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
		},
		Features: []mesh.VertexFeature{
			{Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{0, 0}, Light: 0xffffffff},
			{Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{1, 0}},
			{Normal: mgl32.Vec3{0, 0, 1}, TexCoord: mgl32.Vec2{0, 1}},
		},
		PositionIndices: []uint32{0, 1, 2},
		FeatureIndices:  []uint32{0, 1, 2},
		MaterialIndices: []uint32{0},
		Materials: []mesh.Material{
			{Name: "WALL", Group: mesh.GroupStone, Texture: "wall.tga"},
		},
	}

	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := Save(path, snap); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Name != snap.Name {
		t.Errorf("name = %q, want %q", loaded.Name, snap.Name)
	}
	if len(loaded.Positions) != 3 || loaded.Positions[1] != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("positions did not survive round trip: %v", loaded.Positions)
	}
	if len(loaded.Features) != 3 || loaded.Features[0].Light != 0xffffffff {
		t.Errorf("features did not survive round trip: %v", loaded.Features)
	}
	if len(loaded.Materials) != 1 || loaded.Materials[0].Texture != "wall.tga" {
		t.Errorf("materials did not survive round trip: %v", loaded.Materials)
	}
	if len(loaded.PositionIndices) != 3 || len(loaded.FeatureIndices) != 3 {
		t.Errorf("index streams did not survive round trip")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/snapshot.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

// Package mesh consolidates multi-indexed world-mesh snapshots into
// single-indexed, render-ready meshes with deduplicated material tables.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaterialGroup classifies the physical surface type of a material.
type MaterialGroup uint8

const (
	GroupUndefined MaterialGroup = iota
	GroupMetal
	GroupStone
	GroupWood
	GroupEarth
	GroupWater
	GroupSnow
)

// String returns a human-readable group name.
func (g MaterialGroup) String() string {
	switch g {
	case GroupUndefined:
		return "Undefined"
	case GroupMetal:
		return "Metal"
	case GroupStone:
		return "Stone"
	case GroupWood:
		return "Wood"
	case GroupEarth:
		return "Earth"
	case GroupWater:
		return "Water"
	case GroupSnow:
		return "Snow"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(g))
	}
}

// AnimMapping selects how texture animation advances UV coordinates.
type AnimMapping uint8

const (
	AnimMappingNone   AnimMapping = 0 // Static texture
	AnimMappingLinear AnimMapping = 1 // Linear UV scroll
)

// WaveMode selects vertex wave animation for the material's surface.
type WaveMode uint8

const (
	WaveNone          WaveMode = 0
	WaveAmbientGround WaveMode = 1
	WaveGround        WaveMode = 2
)

// WaveSpeed is the coarse speed setting for wave animation.
type WaveSpeed uint8

const (
	WaveSpeedNone   WaveSpeed = 0
	WaveSpeedSlow   WaveSpeed = 1
	WaveSpeedNormal WaveSpeed = 2
	WaveSpeedFast   WaveSpeed = 3
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// Material describes a visual surface as stored in a world mesh.
// Materials are read-only inputs to the pipeline and are never mutated.
type Material struct {
	// Name identifies the material in the source data. It is informational
	// only and takes no part in visual equality.
	Name string

	Group   MaterialGroup
	Color   Color
	Texture string // Texture file name

	// Texture scale and animation.
	TextureScale   mgl32.Vec2
	TextureAnimFPS float32
	AnimMapping    AnimMapping
	AnimMappingDir mgl32.Vec2 // UV scroll direction per frame

	// Environment mapping.
	EnvironmentMapping  bool
	EnvironmentStrength float32

	// Wave animation.
	WaveMode      WaveMode
	WaveSpeed     WaveSpeed
	WaveAmplitude float32
	WaveGridSize  float32

	DetailObject   string     // Referenced detail object, empty if none
	IgnoreSun      bool       // Surface ignores sun lighting
	DefaultMapping mgl32.Vec2 // Default UV mapping mode
}

// VisuallyEqual reports whether two materials render identically. Every
// visual field must compare exactly equal; there is no tolerance. The
// material name is deliberately excluded.
func (m *Material) VisuallyEqual(other *Material) bool {
	return m.Group == other.Group &&
		m.Color == other.Color &&
		m.Texture == other.Texture &&
		m.TextureScale == other.TextureScale &&
		m.TextureAnimFPS == other.TextureAnimFPS &&
		m.AnimMapping == other.AnimMapping &&
		m.AnimMappingDir == other.AnimMappingDir &&
		m.EnvironmentMapping == other.EnvironmentMapping &&
		m.EnvironmentStrength == other.EnvironmentStrength &&
		m.WaveMode == other.WaveMode &&
		m.WaveSpeed == other.WaveSpeed &&
		m.WaveAmplitude == other.WaveAmplitude &&
		m.WaveGridSize == other.WaveGridSize &&
		m.DetailObject == other.DetailObject &&
		m.IgnoreSun == other.IgnoreSun &&
		m.DefaultMapping == other.DefaultMapping
}

// CanonicalizeMaterials collapses visually-equal materials in the raw table
// to a single representative each. It returns a remap from raw material
// index to canonical index and the canonical table, ordered by first
// occurrence in the raw table.
//
// The remap is total and idempotent: every raw index maps to a canonical
// index, and canonicalizing an already-canonical table is the identity.
func CanonicalizeMaterials(materials []Material) ([]uint32, []Material) {
	k := len(materials)
	if k == 0 {
		return []uint32{}, []Material{}
	}

	// Union toward lowest index. O(K^2) comparisons, acceptable because
	// material tables are small relative to triangle counts.
	group := make([]uint32, k)
	for i := range group {
		group[i] = uint32(i)
	}
	for i := 0; i < k; i++ {
		for r := i + 1; r < k; r++ {
			if group[i] != group[r] && materials[i].VisuallyEqual(&materials[r]) {
				group[r] = group[i]
			}
		}
	}

	// Compact representatives in first-occurrence order.
	canonical := make([]Material, 0, k)
	newIndex := make(map[uint32]uint32, k)
	remap := make([]uint32, k)
	for i := 0; i < k; i++ {
		idx, seen := newIndex[group[i]]
		if !seen {
			idx = uint32(len(canonical))
			canonical = append(canonical, materials[group[i]])
			newIndex[group[i]] = idx
		}
		remap[i] = idx
	}

	return remap, canonical
}

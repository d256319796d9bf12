package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexFeature is the per-corner shading attribute bundle: normal vector,
// texture coordinate and packed light value.
type VertexFeature struct {
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
	Light    uint32
}

// Snapshot is a raw, multi-indexed polygon mesh as produced by a world
// loader: a position table, a feature table, two parallel per-corner index
// streams into them, and a per-triangle material stream into a raw (possibly
// redundant) material table.
//
// Snapshots are owned by the caller and treated as read-only for the
// duration of a Consolidate call.
type Snapshot struct {
	Name string

	Positions []mgl32.Vec3
	Features  []VertexFeature

	// Parallel corner streams. Every contiguous run of three entries is
	// one triangle, in winding order.
	PositionIndices []uint32
	FeatureIndices  []uint32

	// One raw material table index per triangle.
	MaterialIndices []uint32

	Materials []Material
}

// TriangleCount returns the number of triangles described by the corner
// streams.
func (s *Snapshot) TriangleCount() int {
	return len(s.PositionIndices) / 3
}

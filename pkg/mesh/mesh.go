package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexStride is the number of float32 values per output vertex:
// position (3), normal (3), texture coordinate (2).
const VertexStride = 8

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Stats counts the per-element repairs the pipeline performed. The
// pipeline never fails on malformed geometry; these counters are the only
// externally visible signal that input data was corrupt.
type Stats struct {
	// DroppedTriangles counts triangles skipped for an out-of-range raw
	// material index.
	DroppedTriangles int

	// ShiftedFeatureIndices counts corners whose feature index was
	// recovered by the 16-bit right shift.
	ShiftedFeatureIndices int

	// FallbackCorners counts corners replaced by the fixed fallback
	// corner (position 0, feature 0).
	FallbackCorners int
}

// Clean reports whether the pipeline ran without any repair or drop.
func (s Stats) Clean() bool {
	return s.DroppedTriangles == 0 && s.ShiftedFeatureIndices == 0 && s.FallbackCorners == 0
}

// MaterialRun is a contiguous block of triangles sharing one canonical
// material id. Runs let a renderer issue one draw call per material.
type MaterialRun struct {
	MaterialID uint32
	Start      int // First triangle of the run
	Count      int // Number of triangles in the run
}

// Mesh is the consolidated, render-ready output: a deduplicated interleaved
// vertex buffer, an index buffer with triangles grouped by material, one
// canonical material id per triangle, and the deduplicated material table.
// A Mesh is immutable once produced.
type Mesh struct {
	Name string

	// Vertices holds VertexStride float32 values per vertex, interleaved
	// as position (3), normal (3), texture coordinate (2).
	Vertices []float32

	// Indices refers into the vertex buffer, three entries per triangle,
	// grouped so that each canonical material forms one contiguous run.
	Indices []uint32

	// MaterialIDs holds one canonical material id per triangle, aligned
	// with the triangle groups in Indices.
	MaterialIDs []uint32

	// Materials is the canonical material table. No two entries are
	// visually equal.
	Materials []Material

	Bounds Bounds
	Stats  Stats
}

// VertexCount returns the number of vertices in the output buffer.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// TriangleCount returns the number of triangles in the index buffer.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) mgl32.Vec3 {
	off := i * VertexStride
	return mgl32.Vec3{m.Vertices[off], m.Vertices[off+1], m.Vertices[off+2]}
}

// Normal returns the normal of vertex i.
func (m *Mesh) Normal(i int) mgl32.Vec3 {
	off := i * VertexStride
	return mgl32.Vec3{m.Vertices[off+3], m.Vertices[off+4], m.Vertices[off+5]}
}

// TexCoord returns the texture coordinate of vertex i.
func (m *Mesh) TexCoord(i int) mgl32.Vec2 {
	off := i * VertexStride
	return mgl32.Vec2{m.Vertices[off+6], m.Vertices[off+7]}
}

// MaterialRuns returns the maximal contiguous material runs over the
// triangle list, in index-buffer order.
func (m *Mesh) MaterialRuns() []MaterialRun {
	var runs []MaterialRun
	for t, id := range m.MaterialIDs {
		if len(runs) > 0 && runs[len(runs)-1].MaterialID == id {
			runs[len(runs)-1].Count++
			continue
		}
		runs = append(runs, MaterialRun{MaterialID: id, Start: t, Count: 1})
	}
	return runs
}

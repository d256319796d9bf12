package mesh

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// corner is one repaired vertex reference of a triangle.
type corner struct {
	position uint32
	feature  uint32
}

// triangle is the pipeline-internal working record: three repaired corners
// plus the canonical material id.
type triangle struct {
	corners  [3]corner
	material uint32
}

// Consolidate converts a raw multi-indexed snapshot into a single-indexed,
// render-ready mesh. Visually-equal materials are collapsed to one entry,
// (position, feature) corner pairs are deduplicated into a compact vertex
// buffer, and triangles are reordered into contiguous per-material runs.
//
// Consolidate never fails: structural problems (mismatched corner streams,
// missing position/feature/material tables) yield an empty mesh, and
// per-element problems are repaired or skipped locally and counted in the
// result's Stats. An empty result means "nothing to render", not
// necessarily "failure".
//
// The call is pure and touches no shared state; distinct snapshots may be
// consolidated concurrently without coordination.
func Consolidate(snap *Snapshot) *Mesh {
	out := &Mesh{
		Name:        snap.Name,
		Vertices:    []float32{},
		Indices:     []uint32{},
		MaterialIDs: []uint32{},
		Materials:   []Material{},
	}

	// Structural checks. The corner streams must be parallel, and any
	// geometry at all needs non-empty position, feature and material
	// tables to resolve against.
	if len(snap.PositionIndices) != len(snap.FeatureIndices) {
		return out
	}
	if len(snap.PositionIndices) > 0 &&
		(len(snap.Positions) == 0 || len(snap.Features) == 0 || len(snap.Materials) == 0) {
		return out
	}

	remap, canonical := CanonicalizeMaterials(snap.Materials)
	out.Materials = canonical

	tris := extractTriangles(snap, remap, &out.Stats)
	repairCorners(snap, tris, &out.Stats)

	// Stable sort keeps the original relative order inside each material
	// run, so output is deterministic across runs.
	sort.SliceStable(tris, func(i, j int) bool {
		return tris[i].material < tris[j].material
	})

	consolidateVertices(snap, tris, out)
	return out
}

// extractTriangles builds the working triangle list from the parallel
// corner streams. Triangles whose raw material index is out of range are
// dropped, mirroring the defensive handling of corrupt source data.
// Corners are copied as-is; repair happens in a separate pass.
func extractTriangles(snap *Snapshot, remap []uint32, stats *Stats) []triangle {
	triangleCount := len(snap.PositionIndices) / 3

	tris := make([]triangle, 0, triangleCount)
	for t := 0; t < triangleCount; t++ {
		if t >= len(snap.MaterialIndices) || snap.MaterialIndices[t] >= uint32(len(remap)) {
			stats.DroppedTriangles++
			continue
		}

		tri := triangle{material: remap[snap.MaterialIndices[t]]}
		for c := 0; c < 3; c++ {
			off := 3*t + c
			tri.corners[c] = corner{
				position: snap.PositionIndices[off],
				feature:  snap.FeatureIndices[off],
			}
		}
		tris = append(tris, tri)
	}
	return tris
}

// repairCorners validates every corner index in place. An out-of-range
// feature index is first retried after a 16-bit right shift, a correction
// for a known index overflow in the legacy encoding. Corners that remain
// invalid are replaced with the fixed fallback corner (position 0,
// feature 0) instead of failing the mesh.
func repairCorners(snap *Snapshot, tris []triangle, stats *Stats) {
	positionCount := uint32(len(snap.Positions))
	featureCount := uint32(len(snap.Features))

	for i := range tris {
		for c := range tris[i].corners {
			cn := &tris[i].corners[c]

			shifted := false
			if cn.feature >= featureCount {
				cn.feature >>= 16
				shifted = true
			}
			if cn.feature >= featureCount || cn.position >= positionCount {
				cn.position = 0
				cn.feature = 0
				stats.FallbackCorners++
				continue
			}
			if shifted {
				stats.ShiftedFeatureIndices++
			}
		}
	}
}

// consolidateVertices deduplicates (position, feature) corner pairs into
// the output vertex buffer and emits the index buffer in triangle order.
// Corner identity is exact: corners that differ in either index stay
// distinct vertices, with no floating-point proximity merging.
func consolidateVertices(snap *Snapshot, tris []triangle, out *Mesh) {
	// Composite key packs both 32-bit indices into one map key.
	slots := make(map[uint64]uint32, len(tris))

	bounds := Bounds{
		Min: mgl32.Vec3{1e10, 1e10, 1e10},
		Max: mgl32.Vec3{-1e10, -1e10, -1e10},
	}

	for _, tri := range tris {
		for _, cn := range tri.corners {
			key := uint64(cn.position)<<32 | uint64(cn.feature)

			slot, ok := slots[key]
			if !ok {
				slot = uint32(len(out.Vertices) / VertexStride)
				slots[key] = slot

				pos := snap.Positions[cn.position]
				feat := snap.Features[cn.feature]
				out.Vertices = append(out.Vertices,
					pos.X(), pos.Y(), pos.Z(),
					feat.Normal.X(), feat.Normal.Y(), feat.Normal.Z(),
					feat.TexCoord.X(), feat.TexCoord.Y(),
				)
				growBounds(&bounds, pos)
			}
			out.Indices = append(out.Indices, slot)
		}
		out.MaterialIDs = append(out.MaterialIDs, tri.material)
	}

	if len(out.Vertices) > 0 {
		out.Bounds = bounds
	}
}

func growBounds(b *Bounds, p mgl32.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

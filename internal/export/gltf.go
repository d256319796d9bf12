// Package export converts consolidated meshes into glTF 2.0 documents.
package export

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"

	"github.com/halvein/worldmesh/pkg/mesh"
)

const vertexByteStride = mesh.VertexStride * 4

// ToDocument builds a glTF document from a consolidated mesh. The
// interleaved vertex buffer is shared by all primitives; each material run
// becomes one primitive with its own index accessor, so a viewer draws one
// call per material exactly as the consolidation intended.
func ToDocument(m *mesh.Mesh, generator string) *gltf.Document {
	doc := &gltf.Document{
		Asset: gltf.Asset{
			Version:   "2.0",
			Generator: generator,
		},
	}

	for _, mat := range m.Materials {
		doc.Materials = append(doc.Materials, toGLTFMaterial(&mat))
	}

	// An empty mesh ("nothing to render") still yields a valid document,
	// just one with no buffer and no primitives.
	var prims []*gltf.Primitive
	if m.VertexCount() > 0 {
		prims = addGeometry(doc, m)
	}

	name := m.Name
	if name == "" {
		name = "mesh"
	}
	doc.Meshes = []*gltf.Mesh{{Name: name, Primitives: prims}}
	doc.Nodes = []*gltf.Node{{Name: name, Mesh: idx(0)}}
	doc.Scenes = []*gltf.Scene{{Nodes: []int{0}}}
	doc.Scene = idx(0)

	return doc
}

// addGeometry appends the shared buffer, buffer views and vertex accessors
// for a non-empty mesh and returns one primitive per material run.
func addGeometry(doc *gltf.Document, m *mesh.Mesh) []*gltf.Primitive {
	vertexBytes := len(m.Vertices) * 4
	indexBytes := len(m.Indices) * 4

	buf := make([]byte, vertexBytes+indexBytes)
	for i, f := range m.Vertices {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	for i, index := range m.Indices {
		binary.LittleEndian.PutUint32(buf[vertexBytes+i*4:], index)
	}

	doc.Buffers = []*gltf.Buffer{
		{ByteLength: len(buf), Data: buf},
	}
	doc.BufferViews = []*gltf.BufferView{
		{
			Buffer:     0,
			ByteLength: vertexBytes,
			ByteStride: vertexByteStride,
			Target:     gltf.TargetArrayBuffer,
		},
		{
			Buffer:     0,
			ByteOffset: vertexBytes,
			ByteLength: indexBytes,
			Target:     gltf.TargetElementArrayBuffer,
		},
	}
	doc.Accessors = []*gltf.Accessor{
		{
			BufferView:    idx(0),
			ByteOffset:    0,
			ComponentType: gltf.ComponentFloat,
			Count:         m.VertexCount(),
			Type:          gltf.AccessorVec3,
		},
		{
			BufferView:    idx(0),
			ByteOffset:    12,
			ComponentType: gltf.ComponentFloat,
			Count:         m.VertexCount(),
			Type:          gltf.AccessorVec3,
		},
		{
			BufferView:    idx(0),
			ByteOffset:    24,
			ComponentType: gltf.ComponentFloat,
			Count:         m.VertexCount(),
			Type:          gltf.AccessorVec2,
		},
	}

	var prims []*gltf.Primitive
	for _, run := range m.MaterialRuns() {
		accessor := &gltf.Accessor{
			BufferView:    idx(1),
			ByteOffset:    run.Start * 3 * 4,
			ComponentType: gltf.ComponentUint,
			Count:         run.Count * 3,
			Type:          gltf.AccessorScalar,
		}
		doc.Accessors = append(doc.Accessors, accessor)

		prims = append(prims, &gltf.Primitive{
			Attributes: map[string]int{
				gltf.POSITION:   0,
				gltf.NORMAL:     1,
				gltf.TEXCOORD_0: 2,
			},
			Indices:  idx(len(doc.Accessors) - 1),
			Material: idx(int(run.MaterialID)),
			Mode:     gltf.PrimitiveTriangles,
		})
	}
	return prims
}

// Write exports a mesh to path. The extension selects the container:
// .glb writes binary glTF, anything else writes JSON glTF with the buffer
// embedded as a data URI.
func Write(m *mesh.Mesh, path, generator string) error {
	doc := ToDocument(m, generator)

	if strings.EqualFold(filepath.Ext(path), ".glb") {
		if err := gltf.SaveBinary(doc, path); err != nil {
			return fmt.Errorf("writing glb: %w", err)
		}
		return nil
	}

	for _, buf := range doc.Buffers {
		buf.EmbeddedResource()
	}
	if err := gltf.Save(doc, path); err != nil {
		return fmt.Errorf("writing gltf: %w", err)
	}
	return nil
}

// toGLTFMaterial maps a world material onto the PBR model: the material
// color becomes the base color factor, everything else (wave animation,
// environment mapping) has no glTF equivalent and is carried by name only.
func toGLTFMaterial(mat *mesh.Material) *gltf.Material {
	name := mat.Name
	if name == "" {
		name = mat.Texture
	}
	return &gltf.Material{
		Name: name,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{
				float64(mat.Color.R) / 255,
				float64(mat.Color.G) / 255,
				float64(mat.Color.B) / 255,
				float64(mat.Color.A) / 255,
			},
			MetallicFactor:  f64(0),
			RoughnessFactor: f64(1),
		},
		DoubleSided: mat.Group == mesh.GroupWater,
	}
}

func idx(i int) *int {
	return &i
}

func f64(v float64) *float64 {
	return &v
}

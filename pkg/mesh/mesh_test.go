package mesh

import (
	"testing"
)

func TestMaterialRuns(t *testing.T) {
	tests := []struct {
		name string
		ids  []uint32
		want []MaterialRun
	}{
		{"empty", nil, nil},
		{"single run", []uint32{2, 2, 2}, []MaterialRun{{2, 0, 3}}},
		{"two runs", []uint32{0, 0, 1}, []MaterialRun{{0, 0, 2}, {1, 2, 1}}},
		{"singletons", []uint32{0, 1, 2}, []MaterialRun{{0, 0, 1}, {1, 1, 1}, {2, 2, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{MaterialIDs: tt.ids}
			got := m.MaterialRuns()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d runs, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("run[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestVertexAccessors(t *testing.T) {
	m := &Mesh{
		Vertices: []float32{
			1, 2, 3, 0, 0, 1, 0.5, 0.25,
			4, 5, 6, 1, 0, 0, 0.75, 1,
		},
	}

	if m.VertexCount() != 2 {
		t.Fatalf("vertex count = %d, want 2", m.VertexCount())
	}
	if p := m.Position(1); p[0] != 4 || p[1] != 5 || p[2] != 6 {
		t.Errorf("position(1) = %v", p)
	}
	if n := m.Normal(0); n[0] != 0 || n[1] != 0 || n[2] != 1 {
		t.Errorf("normal(0) = %v", n)
	}
	if uv := m.TexCoord(1); uv[0] != 0.75 || uv[1] != 1 {
		t.Errorf("texcoord(1) = %v", uv)
	}
}

func TestStatsClean(t *testing.T) {
	if !(Stats{}).Clean() {
		t.Error("zero stats should be clean")
	}
	if (Stats{FallbackCorners: 1}).Clean() {
		t.Error("stats with fallback corners should not be clean")
	}
	if (Stats{DroppedTriangles: 2}).Clean() {
		t.Error("stats with dropped triangles should not be clean")
	}
}
